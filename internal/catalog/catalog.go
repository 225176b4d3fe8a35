// ABOUTME: Static reference catalog for diet plans, workout plans, symptoms, dashboard.
// ABOUTME: Loads embedded YAML once and validates every key against the model enums.
package catalog

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"github.com/harperreed/healthai/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

var (
	// ErrGoalRequired is returned when no condition applies and no goal was chosen.
	ErrGoalRequired = errors.New("fitness goal required when no specific condition applies")
	// ErrPlanNotAuthored is returned for a valid key that has no plan.
	ErrPlanNotAuthored = errors.New("no plan authored for selection")
	// ErrUnknownKey is returned for a key outside the closed enumerations.
	ErrUnknownKey = errors.New("unknown catalog key")
)

const (
	dietFile      = "diet_plans.yaml"
	workoutFile   = "workout_plans.yaml"
	symptomsFile  = "symptoms.yaml"
	dashboardFile = "dashboard.yaml"
)

// Catalog is the immutable reference data. It is safe for concurrent use.
type Catalog struct {
	diet            map[models.DietKey]models.NutritionPlan
	workouts        []models.WorkoutPlan
	workoutByID     map[string]int
	recommendations map[models.FitnessLevel]string
	symptoms        []models.Symptom
	symptomByID     map[string]int
	dashboard       models.Dashboard
}

var (
	defaultCatalog *Catalog
	defaultOnce    sync.Once
)

// Default returns the catalog built from the embedded data. Invalid embedded
// data is a programming error and panics on first use.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load()
		if err != nil {
			panic(fmt.Sprintf("load embedded catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Load parses and validates the embedded data.
func Load() (*Catalog, error) {
	sub, err := fs.Sub(dataFS, "data")
	if err != nil {
		return nil, err
	}
	return LoadFS(sub)
}

type dietFileData struct {
	Plans map[string]models.NutritionPlan `yaml:"plans"`
}

type workoutFileData struct {
	Plans           []models.WorkoutPlan `yaml:"plans"`
	Recommendations map[string]string    `yaml:"recommendations"`
}

type symptomFileData struct {
	Symptoms []models.Symptom `yaml:"symptoms"`
}

// LoadFS parses and validates catalog files from fsys.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	var dietData dietFileData
	if err := decodeFile(fsys, dietFile, &dietData); err != nil {
		return nil, err
	}
	var workoutData workoutFileData
	if err := decodeFile(fsys, workoutFile, &workoutData); err != nil {
		return nil, err
	}
	var symptomData symptomFileData
	if err := decodeFile(fsys, symptomsFile, &symptomData); err != nil {
		return nil, err
	}
	var dashboard models.Dashboard
	if err := decodeFile(fsys, dashboardFile, &dashboard); err != nil {
		return nil, err
	}

	c := &Catalog{
		diet:            make(map[models.DietKey]models.NutritionPlan),
		workoutByID:     make(map[string]int),
		recommendations: make(map[models.FitnessLevel]string),
		symptomByID:     make(map[string]int),
		dashboard:       dashboard,
	}

	if err := c.loadDiet(dietData); err != nil {
		return nil, fmt.Errorf("%s: %w", dietFile, err)
	}
	if err := c.loadWorkouts(workoutData); err != nil {
		return nil, fmt.Errorf("%s: %w", workoutFile, err)
	}
	if err := c.loadSymptoms(symptomData); err != nil {
		return nil, fmt.Errorf("%s: %w", symptomsFile, err)
	}
	if err := validateDashboard(dashboard); err != nil {
		return nil, fmt.Errorf("%s: %w", dashboardFile, err)
	}

	return c, nil
}

func decodeFile(fsys fs.FS, name string, out any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

func (c *Catalog) loadDiet(data dietFileData) error {
	for key, plan := range data.Plans {
		k := models.DietKey(key)
		if !models.IsValidDietKey(k) {
			return fmt.Errorf("%w: diet plan %q", ErrUnknownKey, key)
		}
		if plan.Name == "" || plan.Description == "" || plan.Calories == "" {
			return fmt.Errorf("diet plan %q: name, description and calories are required", key)
		}
		if total := plan.Macros.Total(); total != 100 {
			return fmt.Errorf("diet plan %q: macros sum to %d, want 100", key, total)
		}
		if len(plan.Benefits) == 0 || len(plan.Foods) == 0 {
			return fmt.Errorf("diet plan %q: benefits and foods are required", key)
		}
		for _, group := range plan.Foods {
			if group.Category == "" || len(group.Items) == 0 {
				return fmt.Errorf("diet plan %q: food groups need a category and items", key)
			}
		}
		c.diet[k] = plan
	}
	return nil
}

func (c *Catalog) loadWorkouts(data workoutFileData) error {
	for i, plan := range data.Plans {
		if plan.ID == "" || plan.Name == "" {
			return fmt.Errorf("workout plan %d: id and name are required", i)
		}
		if _, dup := c.workoutByID[plan.ID]; dup {
			return fmt.Errorf("workout plan %q: duplicate id", plan.ID)
		}
		if !plan.Difficulty.IsValid() {
			return fmt.Errorf("workout plan %q: unknown difficulty %q", plan.ID, plan.Difficulty)
		}
		if len(plan.Exercises) == 0 {
			return fmt.Errorf("workout plan %q: at least one exercise is required", plan.ID)
		}
		for _, ex := range plan.Exercises {
			if ex.Name == "" {
				return fmt.Errorf("workout plan %q: exercise without a name", plan.ID)
			}
			if !ex.Difficulty.IsValid() {
				return fmt.Errorf("workout plan %q: exercise %q has unknown difficulty %q", plan.ID, ex.Name, ex.Difficulty)
			}
		}
		c.workoutByID[plan.ID] = len(c.workouts)
		c.workouts = append(c.workouts, plan)
	}

	for level, planID := range data.Recommendations {
		l, err := models.ParseFitnessLevel(level)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnknownKey, err)
		}
		if _, ok := c.workoutByID[planID]; !ok {
			return fmt.Errorf("recommendation for %s: unknown plan %q", level, planID)
		}
		c.recommendations[l] = planID
	}
	for _, l := range models.AllFitnessLevels {
		if _, ok := c.recommendations[l]; !ok {
			return fmt.Errorf("no recommendation for fitness level %s", l)
		}
	}
	return nil
}

func (c *Catalog) loadSymptoms(data symptomFileData) error {
	for _, s := range data.Symptoms {
		if s.ID == "" || s.Name == "" {
			return fmt.Errorf("symptom needs id and name: %+v", s)
		}
		if _, dup := c.symptomByID[s.ID]; dup {
			return fmt.Errorf("symptom %q: duplicate id", s.ID)
		}
		if !s.Severity.IsValid() {
			return fmt.Errorf("symptom %q: unknown severity %q", s.ID, s.Severity)
		}
		c.symptomByID[s.ID] = len(c.symptoms)
		c.symptoms = append(c.symptoms, s)
	}
	if len(c.symptoms) == 0 {
		return errors.New("no symptoms defined")
	}
	return nil
}

func validateDashboard(d models.Dashboard) error {
	for _, m := range d.Metrics {
		if !m.Status.IsValid() {
			return fmt.Errorf("metric %q: unknown status %q", m.Label, m.Status)
		}
	}
	for _, t := range d.Trends {
		if t.Progress < 0 || t.Progress > 100 {
			return fmt.Errorf("trend %q: progress %d out of range", t.Label, t.Progress)
		}
	}
	if strings.TrimSpace(d.Disclaimer) == "" {
		return errors.New("disclaimer is required")
	}
	return nil
}

// DietPlan looks up the plan for a selection.
func (c *Catalog) DietPlan(sel models.DietSelection) (models.NutritionPlan, error) {
	if sel.Condition == models.ConditionNone && sel.Goal == "" {
		return models.NutritionPlan{}, ErrGoalRequired
	}
	key := sel.Key()
	if !models.IsValidDietKey(key) {
		return models.NutritionPlan{}, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	plan, ok := c.diet[key]
	if !ok {
		return models.NutritionPlan{}, fmt.Errorf("%w: %s", ErrPlanNotAuthored, key)
	}
	return plan, nil
}

// DietKeys returns the keys that have an authored plan, sorted.
func (c *Catalog) DietKeys() []models.DietKey {
	keys := make([]models.DietKey, 0, len(c.diet))
	for k := range c.diet {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// DietPlans returns a copy of every authored plan keyed by selection key.
func (c *Catalog) DietPlans() map[models.DietKey]models.NutritionPlan {
	out := make(map[models.DietKey]models.NutritionPlan, len(c.diet))
	for k, v := range c.diet {
		out[k] = v
	}
	return out
}

// RecommendWorkout picks a plan from the profile's fitness level.
func (c *Catalog) RecommendWorkout(p models.WorkoutProfile) (models.WorkoutPlan, error) {
	planID, ok := c.recommendations[p.Level]
	if !ok {
		return models.WorkoutPlan{}, fmt.Errorf("%w: fitness level %q", ErrUnknownKey, p.Level)
	}
	return c.workouts[c.workoutByID[planID]], nil
}

// WorkoutPlans returns every plan in catalog order.
func (c *Catalog) WorkoutPlans() []models.WorkoutPlan {
	return append([]models.WorkoutPlan(nil), c.workouts...)
}

// Symptoms returns every symptom in catalog order.
func (c *Catalog) Symptoms() []models.Symptom {
	return append([]models.Symptom(nil), c.symptoms...)
}

// Symptom looks up a symptom by id.
func (c *Catalog) Symptom(id string) (models.Symptom, bool) {
	i, ok := c.symptomByID[id]
	if !ok {
		return models.Symptom{}, false
	}
	return c.symptoms[i], true
}

// Dashboard returns the dashboard and landing content.
func (c *Catalog) Dashboard() models.Dashboard {
	return c.dashboard
}
