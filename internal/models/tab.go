// ABOUTME: Screen identifiers for the tab router and the dashboard snapshot model.
// ABOUTME: ResolveTab falls back to the dashboard for any unknown identifier.
package models

// Tab identifies one of the top-level screens.
type Tab string

const (
	TabDashboard Tab = "dashboard"
	TabSymptoms  Tab = "symptoms"
	TabDiet      Tab = "diet"
	TabWorkout   Tab = "workout"
)

// AllTabs lists tabs in navigation order.
var AllTabs = []Tab{TabDashboard, TabSymptoms, TabDiet, TabWorkout}

// TabLabels maps tabs to their navigation labels.
var TabLabels = map[Tab]string{
	TabDashboard: "Dashboard",
	TabSymptoms:  "Symptom Checker",
	TabDiet:      "Diet Plans",
	TabWorkout:   "Workout Plans",
}

// ResolveTab returns the tab named by id, or TabDashboard if none matches.
func ResolveTab(id string) Tab {
	for _, t := range AllTabs {
		if string(t) == id {
			return t
		}
	}
	return TabDashboard
}

// MetricStatus rates a dashboard metric card.
type MetricStatus string

const (
	StatusGood    MetricStatus = "good"
	StatusWarning MetricStatus = "warning"
	StatusDanger  MetricStatus = "danger"
)

// IsValid reports whether s is a known status.
func (s MetricStatus) IsValid() bool {
	switch s {
	case StatusGood, StatusWarning, StatusDanger:
		return true
	}
	return false
}

// Progress returns the gauge fill percentage drawn for the status.
func (s MetricStatus) Progress() int {
	switch s {
	case StatusGood:
		return 80
	case StatusWarning:
		return 60
	default:
		return 30
	}
}

// DashboardMetric is one metric card.
type DashboardMetric struct {
	Label  string       `json:"label" yaml:"label"`
	Value  float64      `json:"value" yaml:"value"`
	Unit   string       `json:"unit" yaml:"unit"`
	Status MetricStatus `json:"status" yaml:"status"`
}

// Trend is one progress line in the trends panel.
type Trend struct {
	Label    string `json:"label" yaml:"label"`
	Value    string `json:"value" yaml:"value"`
	Progress int    `json:"progress" yaml:"progress"`
}

// Alert is a short notice in the alerts panel.
type Alert struct {
	Level   string `json:"level" yaml:"level"`
	Message string `json:"message" yaml:"message"`
}

// Feature is a landing-page feature blurb.
type Feature struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// Dashboard is the static content of the dashboard and landing screens.
type Dashboard struct {
	Metrics    []DashboardMetric `json:"metrics" yaml:"metrics"`
	Trends     []Trend           `json:"trends" yaml:"trends"`
	Alerts     []Alert           `json:"alerts" yaml:"alerts"`
	Features   []Feature         `json:"features" yaml:"features"`
	Disclaimer string            `json:"disclaimer" yaml:"disclaimer"`
}
