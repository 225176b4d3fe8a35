// ABOUTME: Symptom checker: name search, selection toggling and simulated analysis.
// ABOUTME: Analysis is rule-based and randomised; it is not a medical inference.
package symptoms

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/harperreed/healthai/internal/catalog"
	"github.com/harperreed/healthai/internal/models"
	"go.uber.org/zap"
)

var (
	// ErrNoSymptoms is returned when Analyze is called with an empty selection.
	ErrNoSymptoms = errors.New("select at least one symptom")
	// ErrUnknownSymptom is returned for an id that is not in the catalog.
	ErrUnknownSymptom = errors.New("unknown symptom")
)

// DefaultDelay is how long Analyze pretends to think.
const DefaultDelay = 2 * time.Second

const (
	conditionRespiratory = "Upper Respiratory Infection"
	conditionCardio      = "Cardiovascular Assessment Needed"
	conditionGeneral     = "General Health Evaluation"

	stageMild     = "Stage 1 - Mild"
	stageModerate = "Stage 2 - Moderate"

	description = "Based on your symptoms, this appears to be a common condition that can be managed with proper care."
)

var recommendations = []string{
	"Consult with a healthcare professional",
	"Monitor symptoms for changes",
	"Stay hydrated and get adequate rest",
	"Consider dietary adjustments",
	"Regular exercise as tolerated",
}

// Search returns the symptoms whose name contains term, ignoring case, in
// catalog order. An empty term matches everything.
func Search(c *catalog.Catalog, term string) []models.Symptom {
	all := c.Symptoms()
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return all
	}
	var out []models.Symptom
	for _, s := range all {
		if strings.Contains(strings.ToLower(s.Name), term) {
			out = append(out, s)
		}
	}
	return out
}

// Selection is an ordered set of symptom ids.
type Selection struct {
	ids []string
}

// NewSelection returns a selection holding ids with duplicates dropped.
func NewSelection(ids ...string) *Selection {
	s := &Selection{}
	for _, id := range ids {
		if !s.Contains(id) {
			s.ids = append(s.ids, id)
		}
	}
	return s
}

// Toggle adds id if absent and removes it if present. It reports whether id
// is selected afterwards.
func (s *Selection) Toggle(id string) bool {
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return false
		}
	}
	s.ids = append(s.ids, id)
	return true
}

// Contains reports whether id is selected.
func (s *Selection) Contains(id string) bool {
	for _, existing := range s.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// IDs returns the selected ids in insertion order.
func (s *Selection) IDs() []string {
	return append([]string(nil), s.ids...)
}

// Len returns the number of selected ids.
func (s *Selection) Len() int {
	return len(s.ids)
}

// Checker runs the simulated symptom analysis.
type Checker struct {
	Catalog *catalog.Catalog
	Delay   time.Duration
	Logger  *zap.Logger

	mu   sync.Mutex
	rand *rand.Rand
}

// NewChecker creates a checker. A nil rnd is seeded from the clock.
func NewChecker(c *catalog.Catalog, delay time.Duration, rnd *rand.Rand, logger *zap.Logger) *Checker {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Checker{Catalog: c, Delay: delay, Logger: logger, rand: rnd}
}

// Analyze resolves ids against the catalog, waits Delay, and returns a
// diagnosis. The wait returns early with ctx.Err() if ctx is done.
func (c *Checker) Analyze(ctx context.Context, ids []string) (models.Diagnosis, error) {
	if len(ids) == 0 {
		return models.Diagnosis{}, ErrNoSymptoms
	}

	selected := make([]models.Symptom, 0, len(ids))
	for _, id := range NewSelection(ids...).IDs() {
		s, ok := c.Catalog.Symptom(id)
		if !ok {
			return models.Diagnosis{}, fmt.Errorf("%w: %q", ErrUnknownSymptom, id)
		}
		selected = append(selected, s)
	}

	if err := wait(ctx, c.Delay); err != nil {
		return models.Diagnosis{}, err
	}

	d := models.Diagnosis{
		Condition:       condition(selected),
		Probability:     70 + c.intn(30),
		Severity:        severity(selected),
		Stage:           stage(len(selected)),
		Description:     description,
		Recommendations: append([]string(nil), recommendations...),
		Symptoms:        selected,
	}

	c.logger().Debug("symptom analysis complete",
		zap.Int("symptoms", len(selected)),
		zap.String("condition", d.Condition),
		zap.Int("probability", d.Probability),
		zap.String("severity", string(d.Severity)),
	)
	return d, nil
}

func (c *Checker) intn(n int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.rand == nil {
		c.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return c.rand.Intn(n)
}

func (c *Checker) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func condition(selected []models.Symptom) string {
	has := func(id string) bool {
		for _, s := range selected {
			if s.ID == id {
				return true
			}
		}
		return false
	}
	switch {
	case has("fever") && has("cough"):
		return conditionRespiratory
	case has("chest-pain"):
		return conditionCardio
	default:
		return conditionGeneral
	}
}

func severity(selected []models.Symptom) models.RiskLevel {
	level := models.RiskLow
	for _, s := range selected {
		switch s.Severity {
		case models.SeveritySevere:
			return models.RiskHigh
		case models.SeverityModerate:
			level = models.RiskModerate
		}
	}
	return level
}

func stage(n int) string {
	if n > 3 {
		return stageModerate
	}
	return stageMild
}
