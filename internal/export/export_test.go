// ABOUTME: Tests for export functionality.
// ABOUTME: Verifies JSON, YAML, and Markdown export formats.
package export

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/harperreed/healthai/internal/evaluator"
	"github.com/harperreed/healthai/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleAssessment(t *testing.T) *models.Assessment {
	t.Helper()
	in := models.VitalsInput{
		SystolicPressure:  130,
		DiastolicPressure: 85,
		HeartRate:         75,
		WeightKg:          85,
		HeightCm:          170,
		Age:               45,
		Gender:            models.GenderMale,
	}.WithTemperature(36.8)

	report, err := evaluator.Evaluate(in)
	require.NoError(t, err)

	return models.NewAssessment(in, report).
		WithAssessedAt(time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC))
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"":         FormatText,
		"text":     FormatText,
		"JSON":     FormatJSON,
		"yml":      FormatYAML,
		"yaml":     FormatYAML,
		"md":       FormatMarkdown,
		"markdown": FormatMarkdown,
	}
	for in, want := range tests {
		got, err := ParseFormat(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("csv")
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestAssessmentJSON(t *testing.T) {
	a := sampleAssessment(t)

	data, err := AssessmentJSON(a)
	require.NoError(t, err)

	var decoded models.Assessment
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, a.ID, decoded.ID)
	assert.True(t, a.AssessedAt.Equal(decoded.AssessedAt))
	assert.Equal(t, a.Report, decoded.Report)
	require.NotNil(t, decoded.Input.BodyTemperature)
	assert.Equal(t, 36.8, *decoded.Input.BodyTemperature)
	assert.Contains(t, string(data), `"blood_pressure_category": "Stage1Hypertension"`)
}

func TestAssessmentYAML(t *testing.T) {
	a := sampleAssessment(t)

	data, err := AssessmentYAML(a)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &decoded))

	assert.Equal(t, a.ShortID(), decoded["id"])
	assert.Equal(t, "2024-03-01T09:30:00Z", decoded["assessed_at"])

	report, ok := decoded["report"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Overweight", report["body_mass_index_category"])
	assert.Equal(t, "Low", report["overall_risk"])
}

func TestAssessmentMarkdown(t *testing.T) {
	md := AssessmentMarkdown(sampleAssessment(t))

	assert.True(t, strings.HasPrefix(md, "# Health Assessment - 2024-03-01\n"))
	assert.Contains(t, md, "| Blood Pressure | 130/85 mmHg |")
	assert.Contains(t, md, "| Temperature | 36.8 °C |")
	assert.Contains(t, md, "| BMI | 29.4 (Overweight) |")
	assert.Contains(t, md, "| Blood Pressure | Stage 1 Hypertension |")
	assert.Contains(t, md, "| Overall Risk | Low (0 factors) |")
	assert.Contains(t, md, "1. "+models.AdviceWeightManagement)
	assert.Contains(t, md, "4. "+models.AdviceBalancedDiet)
}

func TestAssessmentMarkdownOmitsMissingTemperature(t *testing.T) {
	a := sampleAssessment(t)
	a.Input.BodyTemperature = nil

	assert.NotContains(t, AssessmentMarkdown(a), "Temperature")
}

func TestAssessmentDispatch(t *testing.T) {
	a := sampleAssessment(t)

	for _, f := range []Format{FormatJSON, FormatYAML, FormatMarkdown} {
		data, err := Assessment(a, f)
		require.NoError(t, err, "format %s", f)
		assert.NotEmpty(t, data)
	}

	_, err := Assessment(a, FormatText)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestMarshal(t *testing.T) {
	plan := models.NutritionPlan{
		Name:     "Weight Loss Plan",
		Calories: "1,200-1,500",
		Macros:   models.Macros{Carbs: 40, Protein: 30, Fat: 30},
	}

	data, err := Marshal(FormatJSON, plan)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Weight Loss Plan"`)

	data, err = Marshal(FormatYAML, plan)
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: Weight Loss Plan")

	_, err = Marshal(FormatMarkdown, plan)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{130, "130"},
		{-5, "-5"},
		{36.84, "36.8"},
		{0.5, "0.5"},
		{1e15, "1000000000000000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.in), "FormatNumber(%v)", tt.in)
	}
}
