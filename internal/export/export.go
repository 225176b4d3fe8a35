// ABOUTME: Export functionality for assessments and catalog plans.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/harperreed/healthai/internal/models"
	"gopkg.in/yaml.v3"
)

// Format names an output encoding.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// ErrUnsupportedFormat is returned when a value cannot be encoded in the requested format.
var ErrUnsupportedFormat = errors.New("unsupported format")

// ParseFormat validates a format name. "md" is accepted for markdown.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("%w: %q (use text, json, yaml, or markdown)", ErrUnsupportedFormat, s)
}

// Assessment encodes a in format. Text is rendered by the CLI and is not
// handled here.
func Assessment(a *models.Assessment, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return AssessmentJSON(a)
	case FormatYAML:
		return AssessmentYAML(a)
	case FormatMarkdown:
		return []byte(AssessmentMarkdown(a)), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
}

// AssessmentJSON exports an assessment as indented JSON.
func AssessmentJSON(a *models.Assessment) ([]byte, error) {
	return json.MarshalIndent(a, "", "  ")
}

type yamlAssessment struct {
	ID         string              `yaml:"id"`
	AssessedAt string              `yaml:"assessed_at"`
	Input      models.VitalsInput  `yaml:"input"`
	Report     models.HealthReport `yaml:"report"`
}

// AssessmentYAML exports an assessment as YAML with a short id and an
// RFC3339 timestamp.
func AssessmentYAML(a *models.Assessment) ([]byte, error) {
	return yaml.Marshal(yamlAssessment{
		ID:         a.ShortID(),
		AssessedAt: a.AssessedAt.Format(time.RFC3339),
		Input:      a.Input,
		Report:     a.Report,
	})
}

// AssessmentMarkdown exports an assessment as a Markdown document.
func AssessmentMarkdown(a *models.Assessment) string {
	var sb strings.Builder
	in := a.Input
	r := a.Report

	sb.WriteString(fmt.Sprintf("# Health Assessment - %s\n\n", a.AssessedAt.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", a.AssessedAt.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("ID: `%s`\n\n", a.ShortID()))

	sb.WriteString("## Vitals\n\n")
	sb.WriteString("| Measurement | Value |\n")
	sb.WriteString("|-------------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Blood Pressure | %s/%s mmHg |\n", FormatNumber(in.SystolicPressure), FormatNumber(in.DiastolicPressure)))
	sb.WriteString(fmt.Sprintf("| Heart Rate | %s bpm |\n", FormatNumber(in.HeartRate)))
	if in.BodyTemperature != nil {
		sb.WriteString(fmt.Sprintf("| Temperature | %s °C |\n", FormatNumber(*in.BodyTemperature)))
	}
	sb.WriteString(fmt.Sprintf("| Weight | %s kg |\n", FormatNumber(in.WeightKg)))
	sb.WriteString(fmt.Sprintf("| Height | %s cm |\n", FormatNumber(in.HeightCm)))
	sb.WriteString(fmt.Sprintf("| Age | %d |\n", in.Age))
	sb.WriteString(fmt.Sprintf("| Gender | %s |\n\n", in.Gender))

	sb.WriteString("## Report\n\n")
	sb.WriteString("| Metric | Result |\n")
	sb.WriteString("|--------|--------|\n")
	sb.WriteString(fmt.Sprintf("| BMI | %.1f (%s) |\n", r.BodyMassIndex, r.BodyMassIndexCategory.Label()))
	sb.WriteString(fmt.Sprintf("| Blood Pressure | %s |\n", r.BloodPressureCategory.Label()))
	sb.WriteString(fmt.Sprintf("| Heart Rate | %s |\n", r.HeartRateCategory.Label()))
	sb.WriteString(fmt.Sprintf("| Overall Risk | %s (%d factors) |\n\n", r.OverallRisk, r.RiskFactorCount()))

	if len(r.Recommendations) > 0 {
		sb.WriteString("## Recommendations\n\n")
		for i, rec := range r.Recommendations {
			sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, rec))
		}
	}

	return sb.String()
}

// Marshal encodes a catalog value such as a plan or diagnosis as JSON or YAML.
func Marshal(format Format, v any) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(v, "", "  ")
	case FormatYAML:
		return yaml.Marshal(v)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
}

// FormatNumber prints whole numbers without a fraction and anything else with
// one decimal.
func FormatNumber(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}
