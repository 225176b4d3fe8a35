// ABOUTME: Tests for catalog loading, validation, and lookups.
// ABOUTME: Uses in-memory filesystems to exercise rejection of malformed data.
package catalog

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/harperreed/healthai/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDiet = `
plans:
  lose:
    name: Weight Loss Plan
    description: Calorie-controlled
    calories: 1,200-1,500
    macros: {carbs: 40, protein: 30, fat: 30}
    benefits: [Boosts metabolism]
    foods:
      - category: Lean Proteins
        items: [Fish]
    restrictions: [Sugary snacks]
`

const validWorkouts = `
plans:
  - id: basic
    name: Basic
    description: Basic plan
    duration: 30 minutes
    difficulty: beginner
    exercises:
      - name: Squats
        sets: "3"
        reps: "10"
        duration: 3 minutes
        difficulty: beginner
        equipment: [bodyweight]
        benefits: [legs]
recommendations:
  beginner: basic
  intermediate: basic
  advanced: basic
`

const validSymptoms = `
symptoms:
  - {id: fever, name: Fever, severity: moderate}
`

const validDashboard = `
metrics:
  - {label: BMI, value: 24.5, unit: kg/m², status: good}
trends: []
alerts: []
features: []
disclaimer: Not medical advice.
`

func testFS(overrides map[string]string) fstest.MapFS {
	files := map[string]string{
		dietFile:      validDiet,
		workoutFile:   validWorkouts,
		symptomsFile:  validSymptoms,
		dashboardFile: validDashboard,
	}
	for k, v := range overrides {
		files[k] = v
	}
	fsys := fstest.MapFS{}
	for k, v := range files {
		fsys[k] = &fstest.MapFile{Data: []byte(v)}
	}
	return fsys
}

func TestEmbeddedCatalogLoads(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []models.DietKey{"diabetes", "hypertension", "lose"}, c.DietKeys())
	assert.Len(t, c.WorkoutPlans(), 2)
	assert.Len(t, c.Symptoms(), 10)
	assert.Len(t, c.Dashboard().Metrics, 4)
	assert.NotEmpty(t, c.Dashboard().Disclaimer)
}

func TestDefaultIsShared(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestDietPlan(t *testing.T) {
	c := Default()

	tests := []struct {
		name     string
		sel      models.DietSelection
		wantName string
		wantErr  error
	}{
		{
			name:     "condition selects plan",
			sel:      models.DietSelection{Condition: models.ConditionDiabetes},
			wantName: "Diabetes-Friendly Diet",
		},
		{
			name:     "condition wins over goal",
			sel:      models.DietSelection{Condition: models.ConditionHypertension, Goal: models.GoalLose},
			wantName: "DASH Diet Plan",
		},
		{
			name:     "no condition falls back to goal",
			sel:      models.DietSelection{Condition: models.ConditionNone, Goal: models.GoalLose},
			wantName: "Weight Loss Plan",
		},
		{
			name:    "no condition and no goal",
			sel:     models.DietSelection{Condition: models.ConditionNone},
			wantErr: ErrGoalRequired,
		},
		{
			name:    "valid condition without a plan",
			sel:     models.DietSelection{Condition: models.ConditionArthritis},
			wantErr: ErrPlanNotAuthored,
		},
		{
			name:    "valid goal without a plan",
			sel:     models.DietSelection{Condition: models.ConditionNone, Goal: models.GoalMuscle},
			wantErr: ErrPlanNotAuthored,
		},
		{
			name:    "unknown key",
			sel:     models.DietSelection{Condition: "scurvy"},
			wantErr: ErrUnknownKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := c.DietPlan(tt.sel)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, plan.Name)
			assert.Equal(t, 100, plan.Macros.Total())
		})
	}
}

func TestRecommendWorkout(t *testing.T) {
	c := Default()

	plan, err := c.RecommendWorkout(models.WorkoutProfile{Level: models.LevelBeginner})
	require.NoError(t, err)
	assert.Equal(t, "Beginner Full Body", plan.Name)
	assert.Len(t, plan.Exercises, 3)

	for _, level := range []models.FitnessLevel{models.LevelIntermediate, models.LevelAdvanced} {
		plan, err := c.RecommendWorkout(models.WorkoutProfile{Level: level, AvailableMinutes: 90})
		require.NoError(t, err)
		assert.Equal(t, "Intermediate Strength", plan.Name, "level %s", level)
		assert.Len(t, plan.Exercises, 5)
	}

	_, err = c.RecommendWorkout(models.WorkoutProfile{})
	assert.True(t, errors.Is(err, ErrUnknownKey))
}

func TestSymptomLookup(t *testing.T) {
	c := Default()

	s, ok := c.Symptom("chest-pain")
	require.True(t, ok)
	assert.Equal(t, "Chest Pain", s.Name)
	assert.Equal(t, models.SeveritySevere, s.Severity)

	_, ok = c.Symptom("5")
	assert.False(t, ok)
}

func TestAccessorsReturnCopies(t *testing.T) {
	c, err := LoadFS(testFS(nil))
	require.NoError(t, err)

	symptoms := c.Symptoms()
	symptoms[0].Name = "changed"
	assert.Equal(t, "Fever", c.Symptoms()[0].Name)

	plans := c.DietPlans()
	delete(plans, "lose")
	assert.Len(t, c.DietPlans(), 1)
}

func TestLoadFSRejectsBadData(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]string
		remove    string
		errSubstr string
	}{
		{
			name: "unknown diet key",
			overrides: map[string]string{dietFile: `
plans:
  keto:
    name: Keto
    description: x
    calories: "1"
    macros: {carbs: 5, protein: 25, fat: 70}
    benefits: [x]
    foods: [{category: Fats, items: [Butter]}]
    restrictions: []
`},
			errSubstr: "unknown catalog key",
		},
		{
			name: "macros do not sum to 100",
			overrides: map[string]string{dietFile: `
plans:
  lose:
    name: Weight Loss Plan
    description: x
    calories: "1"
    macros: {carbs: 40, protein: 30, fat: 20}
    benefits: [x]
    foods: [{category: Fats, items: [Butter]}]
    restrictions: []
`},
			errSubstr: "macros sum to 90",
		},
		{
			name: "unknown field",
			overrides: map[string]string{symptomsFile: `
symptoms:
  - {id: fever, name: Fever, severity: moderate, icon: thermometer}
`},
			errSubstr: "parse symptoms.yaml",
		},
		{
			name: "bad severity",
			overrides: map[string]string{symptomsFile: `
symptoms:
  - {id: fever, name: Fever, severity: extreme}
`},
			errSubstr: "unknown severity",
		},
		{
			name: "duplicate symptom",
			overrides: map[string]string{symptomsFile: `
symptoms:
  - {id: fever, name: Fever, severity: mild}
  - {id: fever, name: Fever again, severity: mild}
`},
			errSubstr: "duplicate id",
		},
		{
			name: "missing level recommendation",
			overrides: map[string]string{workoutFile: `
plans:
  - id: basic
    name: Basic
    description: x
    duration: x
    difficulty: beginner
    exercises: [{name: Squats, sets: "1", reps: "1", duration: x, difficulty: beginner, equipment: [], benefits: []}]
recommendations:
  beginner: basic
`},
			errSubstr: "no recommendation for fitness level intermediate",
		},
		{
			name: "recommendation points at missing plan",
			overrides: map[string]string{workoutFile: `
plans:
  - id: basic
    name: Basic
    description: x
    duration: x
    difficulty: beginner
    exercises: [{name: Squats, sets: "1", reps: "1", duration: x, difficulty: beginner, equipment: [], benefits: []}]
recommendations:
  beginner: basic
  intermediate: strength
  advanced: basic
`},
			errSubstr: `unknown plan "strength"`,
		},
		{
			name: "bad dashboard status",
			overrides: map[string]string{dashboardFile: `
metrics:
  - {label: BMI, value: 24.5, unit: x, status: great}
disclaimer: x
`},
			errSubstr: "unknown status",
		},
		{
			name: "missing disclaimer",
			overrides: map[string]string{dashboardFile: `
metrics: []
`},
			errSubstr: "disclaimer is required",
		},
		{
			name:      "missing file",
			remove:    symptomsFile,
			errSubstr: "read symptoms.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := testFS(tt.overrides)
			if tt.remove != "" {
				delete(fsys, tt.remove)
			}
			_, err := LoadFS(fsys)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}
