// ABOUTME: Terminal renderers for reports, plans, symptoms, and static screens.
// ABOUTME: Category badges are colored by severity with fatih/color.
package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/healthai/internal/export"
	"github.com/harperreed/healthai/internal/models"
)

var (
	faint  = color.New(color.Faint)
	bold   = color.New(color.Bold)
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed)
	blue   = color.New(color.FgBlue)
	cyan   = color.New(color.FgCyan)
)

const gaugeWidth = 20

func bmiColor(c models.BMICategory) *color.Color {
	switch c {
	case models.BMINormal:
		return green
	case models.BMIOverweight:
		return yellow
	case models.BMIObese:
		return red
	default:
		return blue
	}
}

func bloodPressureColor(c models.BloodPressureCategory) *color.Color {
	switch c {
	case models.BPNormal:
		return green
	case models.BPElevated:
		return yellow
	default:
		return red
	}
}

func heartRateColor(c models.HeartRateCategory) *color.Color {
	if c == models.HRNormal {
		return green
	}
	return red
}

func riskColor(r models.RiskLevel) *color.Color {
	switch r {
	case models.RiskLow:
		return green
	case models.RiskModerate:
		return yellow
	default:
		return red
	}
}

func statusColor(s models.MetricStatus) *color.Color {
	switch s {
	case models.StatusGood:
		return green
	case models.StatusWarning:
		return yellow
	default:
		return red
	}
}

func alertColor(level string) *color.Color {
	switch level {
	case "success":
		return green
	case "warning":
		return yellow
	case "danger", "error":
		return red
	default:
		return blue
	}
}

// gauge draws a fixed-width bar filled to fraction, clamped to [0, 1].
func gauge(fraction float64) string {
	fraction = math.Max(0, math.Min(fraction, 1))
	filled := int(math.Round(fraction * gaugeWidth))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", gaugeWidth-filled) + "]"
}

// bmiGauge fills the bar at bmi/40.
func bmiGauge(bmi float64) string {
	return gauge(bmi / 40)
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func heading(w io.Writer, title string) {
	bold.Fprintln(w, title)
	faint.Fprintln(w, strings.Repeat("─", len([]rune(title))))
}

func renderReport(w io.Writer, a *models.Assessment) {
	in, r := a.Input, a.Report

	fmt.Fprintf(w, "%s  %s  %s\n\n",
		bold.Sprint("Health Assessment"),
		faint.Sprint(a.ShortID()),
		faint.Sprint(a.AssessedAt.Format("2006-01-02 15:04")))

	fmt.Fprintf(w, "  %s %s %s  %s\n",
		padRight("BMI", 16),
		padRight(fmt.Sprintf("%.1f", r.BodyMassIndex), 12),
		bmiGauge(r.BodyMassIndex),
		bmiColor(r.BodyMassIndexCategory).Sprint(r.BodyMassIndexCategory.Label()))
	fmt.Fprintf(w, "  %s %s %s\n",
		padRight("Blood Pressure", 16),
		padRight(fmt.Sprintf("%s/%s mmHg", export.FormatNumber(in.SystolicPressure), export.FormatNumber(in.DiastolicPressure)), 35),
		bloodPressureColor(r.BloodPressureCategory).Sprint(r.BloodPressureCategory.Label()))
	fmt.Fprintf(w, "  %s %s %s\n",
		padRight("Heart Rate", 16),
		padRight(fmt.Sprintf("%s bpm", export.FormatNumber(in.HeartRate)), 35),
		heartRateColor(r.HeartRateCategory).Sprint(r.HeartRateCategory.Label()))
	if in.BodyTemperature != nil {
		fmt.Fprintf(w, "  %s %s °C\n", padRight("Temperature", 16), export.FormatNumber(*in.BodyTemperature))
	}

	factors := "no risk factors"
	if n := r.RiskFactorCount(); n > 0 {
		names := make([]string, 0, n)
		for _, f := range r.RiskFactors {
			names = append(names, string(f))
		}
		factors = strings.Join(names, ", ")
	}
	fmt.Fprintf(w, "  %s %s %s\n\n",
		padRight("Overall Risk", 16),
		riskColor(r.OverallRisk).Sprint(r.OverallRisk),
		faint.Sprintf("(%s)", factors))

	heading(w, "Recommendations")
	for i, rec := range r.Recommendations {
		fmt.Fprintf(w, "  %d. %s\n", i+1, rec)
	}
}

func renderLanding(w io.Writer, d models.Dashboard) {
	bold.Fprintln(w, "healthai")
	fmt.Fprintln(w, "Health insights, symptom checks, diet and workout planning.")
	fmt.Fprintln(w)
	for _, f := range d.Features {
		fmt.Fprintf(w, "  %s %s\n", cyan.Sprint("•"), bold.Sprint(f.Title))
		fmt.Fprintf(w, "    %s\n", f.Description)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Run %s to see every command.\n\n", bold.Sprint("healthai --help"))
	renderDisclaimer(w, d.Disclaimer)
}

func renderDisclaimer(w io.Writer, text string) {
	yellow.Fprintf(w, "⚠ %s\n", text)
}

func renderDashboard(w io.Writer, d models.Dashboard) {
	heading(w, models.TabLabels[models.TabDashboard])
	for _, m := range d.Metrics {
		fmt.Fprintf(w, "  %s %s %s  %s\n",
			padRight(m.Label, 16),
			padRight(export.FormatNumber(m.Value)+" "+m.Unit, 14),
			gauge(float64(m.Status.Progress())/100),
			statusColor(m.Status).Sprint(m.Status))
	}

	fmt.Fprintln(w)
	heading(w, "Trends")
	for _, t := range d.Trends {
		fmt.Fprintf(w, "  %s %s %s\n",
			padRight(t.Label, 22),
			padRight(t.Value, 14),
			gauge(float64(t.Progress)/100))
	}

	fmt.Fprintln(w)
	heading(w, "Alerts")
	for _, al := range d.Alerts {
		fmt.Fprintf(w, "  %s %s\n", alertColor(al.Level).Sprintf("%-8s", al.Level), al.Message)
	}
	fmt.Fprintln(w)
	renderDisclaimer(w, d.Disclaimer)
}

func renderDietPlan(w io.Writer, key models.DietKey, p models.NutritionPlan) {
	fmt.Fprintf(w, "%s  %s\n", bold.Sprint(p.Name), faint.Sprint(key))
	fmt.Fprintln(w, p.Description)
	fmt.Fprintf(w, "\n  %s %s kcal/day\n", padRight("Calories", 10), p.Calories)
	fmt.Fprintf(w, "  %s carbs %d%%  protein %d%%  fat %d%%\n\n",
		padRight("Macros", 10), p.Macros.Carbs, p.Macros.Protein, p.Macros.Fat)

	heading(w, "Benefits")
	for _, b := range p.Benefits {
		fmt.Fprintf(w, "  %s %s\n", green.Sprint("✓"), b)
	}

	fmt.Fprintln(w)
	heading(w, "Recommended Foods")
	for _, g := range p.Foods {
		fmt.Fprintf(w, "  %s %s\n", padRight(g.Category, 16), strings.Join(g.Items, ", "))
	}

	if len(p.Restrictions) > 0 {
		fmt.Fprintln(w)
		heading(w, "Avoid")
		for _, r := range p.Restrictions {
			fmt.Fprintf(w, "  %s %s\n", red.Sprint("✗"), r)
		}
	}
}

func renderWorkoutPlan(w io.Writer, p models.WorkoutPlan) {
	fmt.Fprintf(w, "%s  %s  %s\n", bold.Sprint(p.Name), faint.Sprint(p.Duration), faint.Sprint(p.Difficulty))
	fmt.Fprintln(w, p.Description)
	fmt.Fprintln(w)

	for i, ex := range p.Exercises {
		fmt.Fprintf(w, "  %d. %s\n", i+1, bold.Sprint(ex.Name))
		fmt.Fprintf(w, "     %s sets × %s  %s\n", ex.Sets, ex.Reps, faint.Sprint(ex.Duration))
		if len(ex.Equipment) > 0 {
			fmt.Fprintf(w, "     equipment: %s\n", strings.Join(ex.Equipment, ", "))
		}
		if len(ex.Benefits) > 0 {
			fmt.Fprintf(w, "     benefits: %s\n", strings.Join(ex.Benefits, ", "))
		}
	}
}

func severityColor(s models.Severity) *color.Color {
	switch s {
	case models.SeverityMild:
		return green
	case models.SeverityModerate:
		return yellow
	default:
		return red
	}
}

func renderSymptoms(w io.Writer, list []models.Symptom) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No symptoms found.")
		return
	}
	for _, s := range list {
		fmt.Fprintf(w, "  %s %s %s\n",
			faint.Sprint(padRight(s.ID, 20)),
			padRight(s.Name, 20),
			severityColor(s.Severity).Sprint(s.Severity))
	}
}

func renderDiagnosis(w io.Writer, d models.Diagnosis, disclaimer string) {
	names := make([]string, 0, len(d.Symptoms))
	for _, s := range d.Symptoms {
		names = append(names, s.Name)
	}

	fmt.Fprintf(w, "%s\n", bold.Sprint(d.Condition))
	fmt.Fprintf(w, "  %s %d%%  %s\n", padRight("Probability", 12), d.Probability, gauge(float64(d.Probability)/100))
	fmt.Fprintf(w, "  %s %s\n", padRight("Severity", 12), riskColor(d.Severity).Sprint(d.Severity))
	fmt.Fprintf(w, "  %s %s\n", padRight("Stage", 12), d.Stage)
	fmt.Fprintf(w, "  %s %s\n\n", padRight("Symptoms", 12), strings.Join(names, ", "))
	fmt.Fprintln(w, d.Description)
	fmt.Fprintln(w)

	heading(w, "Recommendations")
	for i, rec := range d.Recommendations {
		fmt.Fprintf(w, "  %d. %s\n", i+1, rec)
	}
	fmt.Fprintln(w)
	renderDisclaimer(w, disclaimer)
}
