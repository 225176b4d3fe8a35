// ABOUTME: Tests for symptom search, selection toggling, and analysis rules.
// ABOUTME: Uses a seeded random source and zero delay for determinism.
package symptoms

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/harperreed/healthai/internal/catalog"
	"github.com/harperreed/healthai/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChecker(delay time.Duration) *Checker {
	return NewChecker(catalog.Default(), delay, rand.New(rand.NewSource(1)), nil)
}

func TestSearch(t *testing.T) {
	c := catalog.Default()

	assert.Len(t, Search(c, ""), 10)
	assert.Len(t, Search(c, "   "), 10)

	pain := Search(c, "PAIN")
	require.Len(t, pain, 2)
	assert.Equal(t, "chest-pain", pain[0].ID)
	assert.Equal(t, "joint-pain", pain[1].ID)

	assert.Empty(t, Search(c, "sneeze"))
}

func TestSelectionToggle(t *testing.T) {
	s := NewSelection()

	assert.True(t, s.Toggle("fever"))
	assert.True(t, s.Toggle("cough"))
	assert.True(t, s.Toggle("nausea"))
	assert.Equal(t, []string{"fever", "cough", "nausea"}, s.IDs())

	assert.False(t, s.Toggle("cough"))
	assert.Equal(t, []string{"fever", "nausea"}, s.IDs())
	assert.False(t, s.Contains("cough"))

	assert.True(t, s.Toggle("cough"))
	assert.Equal(t, []string{"fever", "nausea", "cough"}, s.IDs())
	assert.Equal(t, 3, s.Len())
}

func TestNewSelectionDropsDuplicates(t *testing.T) {
	s := NewSelection("fever", "fever", "cough")
	assert.Equal(t, []string{"fever", "cough"}, s.IDs())
}

func TestAnalyzeConditions(t *testing.T) {
	tests := []struct {
		name         string
		ids          []string
		wantCond     string
		wantSeverity models.RiskLevel
		wantStage    string
	}{
		{
			name:         "fever and cough",
			ids:          []string{"fever", "cough"},
			wantCond:     "Upper Respiratory Infection",
			wantSeverity: models.RiskModerate,
			wantStage:    "Stage 1 - Mild",
		},
		{
			name:         "respiratory wins over chest pain",
			ids:          []string{"chest-pain", "cough", "fever"},
			wantCond:     "Upper Respiratory Infection",
			wantSeverity: models.RiskHigh,
			wantStage:    "Stage 1 - Mild",
		},
		{
			name:         "chest pain",
			ids:          []string{"chest-pain"},
			wantCond:     "Cardiovascular Assessment Needed",
			wantSeverity: models.RiskHigh,
			wantStage:    "Stage 1 - Mild",
		},
		{
			name:         "mild only",
			ids:          []string{"headache", "nausea"},
			wantCond:     "General Health Evaluation",
			wantSeverity: models.RiskLow,
			wantStage:    "Stage 1 - Mild",
		},
		{
			name:         "four symptoms is stage 2",
			ids:          []string{"headache", "nausea", "cough", "skin-rash"},
			wantCond:     "General Health Evaluation",
			wantSeverity: models.RiskLow,
			wantStage:    "Stage 2 - Moderate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := newTestChecker(0).Analyze(context.Background(), tt.ids)
			require.NoError(t, err)

			assert.Equal(t, tt.wantCond, d.Condition)
			assert.Equal(t, tt.wantSeverity, d.Severity)
			assert.Equal(t, tt.wantStage, d.Stage)
			assert.GreaterOrEqual(t, d.Probability, 70)
			assert.Less(t, d.Probability, 100)
			assert.Len(t, d.Recommendations, 5)
			assert.Equal(t, "Consult with a healthcare professional", d.Recommendations[0])
			assert.NotEmpty(t, d.Description)
			assert.Len(t, d.Symptoms, len(tt.ids))
		})
	}
}

func TestAnalyzeIsReproducibleWithSeed(t *testing.T) {
	a, err := newTestChecker(0).Analyze(context.Background(), []string{"fever"})
	require.NoError(t, err)
	b, err := newTestChecker(0).Analyze(context.Background(), []string{"fever"})
	require.NoError(t, err)
	assert.Equal(t, a.Probability, b.Probability)
}

func TestAnalyzeErrors(t *testing.T) {
	c := newTestChecker(0)

	_, err := c.Analyze(context.Background(), nil)
	assert.True(t, errors.Is(err, ErrNoSymptoms))

	_, err = c.Analyze(context.Background(), []string{"fever", "5"})
	assert.True(t, errors.Is(err, ErrUnknownSymptom))
	assert.Contains(t, err.Error(), `"5"`)
}

func TestAnalyzeHonoursCancellation(t *testing.T) {
	c := newTestChecker(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := c.Analyze(ctx, []string{"fever"})
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Less(t, time.Since(start), time.Second)
}

func TestAnalyzeWaitsForDelay(t *testing.T) {
	c := newTestChecker(20 * time.Millisecond)

	start := time.Now()
	_, err := c.Analyze(context.Background(), []string{"fever"})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}
