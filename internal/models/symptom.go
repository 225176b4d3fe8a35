// ABOUTME: Symptom catalogue entries and the diagnosis produced by the checker.
// ABOUTME: Severity is a closed enum validated when the catalogue loads.
package models

// Severity rates a single symptom.
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// IsValid reports whether s is a known severity.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityMild, SeverityModerate, SeveritySevere:
		return true
	}
	return false
}

// Symptom is one selectable entry in the symptom checker.
type Symptom struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Severity Severity `json:"severity" yaml:"severity"`
}

// Diagnosis is the simulated result of a symptom analysis.
type Diagnosis struct {
	Condition       string    `json:"condition" yaml:"condition"`
	Probability     int       `json:"probability" yaml:"probability"`
	Severity        RiskLevel `json:"severity" yaml:"severity"`
	Stage           string    `json:"stage,omitempty" yaml:"stage,omitempty"`
	Description     string    `json:"description" yaml:"description"`
	Recommendations []string  `json:"recommendations" yaml:"recommendations"`
	Symptoms        []Symptom `json:"symptoms" yaml:"symptoms"`
}
