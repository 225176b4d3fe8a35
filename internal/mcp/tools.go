// ABOUTME: MCP tool implementations for healthai.
// ABOUTME: Evaluates vitals and serves diet, workout, and symptom lookups.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/harperreed/healthai/internal/evaluator"
	"github.com/harperreed/healthai/internal/models"
	"github.com/harperreed/healthai/internal/symptoms"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

func (s *Server) registerTools() {
	// evaluate_vitals
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "evaluate_vitals",
		Description: "Evaluate vital signs: BMI, blood pressure and heart rate categories, overall risk, and recommendations",
	}, s.handleEvaluateVitals)

	// get_diet_plan
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_diet_plan",
		Description: "Get the nutrition plan for a health condition, or for a fitness goal when no condition applies",
	}, s.handleGetDietPlan)

	// recommend_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "recommend_workout",
		Description: "Recommend a workout plan for a fitness level",
	}, s.handleRecommendWorkout)

	// search_symptoms
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "search_symptoms",
		Description: "List symptoms whose name matches a search term",
	}, s.handleSearchSymptoms)

	// analyze_symptoms
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "analyze_symptoms",
		Description: "Run the simulated symptom analysis for a set of symptom IDs (informational only, not a diagnosis)",
	}, s.handleAnalyzeSymptoms)
}

// Tool input/output types

type evaluateVitalsInput struct {
	Systolic    float64  `json:"systolic" jsonschema:"Systolic blood pressure in mmHg"`
	Diastolic   float64  `json:"diastolic" jsonschema:"Diastolic blood pressure in mmHg"`
	HeartRate   float64  `json:"heart_rate" jsonschema:"Resting heart rate in beats per minute"`
	Temperature *float64 `json:"temperature,omitempty" jsonschema:"Body temperature in degrees Celsius"`
	WeightKg    float64  `json:"weight_kg" jsonschema:"Body weight in kilograms"`
	HeightCm    float64  `json:"height_cm" jsonschema:"Height in centimeters"`
	Age         int      `json:"age" jsonschema:"Age in years"`
	Gender      string   `json:"gender" jsonschema:"Gender: male, female, or other"`
}

type evaluateVitalsOutput struct {
	ID         string              `json:"id"`
	AssessedAt string              `json:"assessed_at"`
	Report     models.HealthReport `json:"report"`
	Summary    string              `json:"summary"`
}

type getDietPlanInput struct {
	Condition string `json:"condition,omitempty" jsonschema:"Health condition: diabetes, hypertension, cholesterol, heart, obesity, arthritis, or none (default none)"`
	Goal      string `json:"goal,omitempty" jsonschema:"Fitness goal used when condition is none: lose, gain, maintain, muscle, or endurance"`
}

type dietPlanOutput struct {
	Key  string               `json:"key"`
	Plan models.NutritionPlan `json:"plan"`
}

type recommendWorkoutInput struct {
	Level            string  `json:"level" jsonschema:"Fitness level: beginner, intermediate, or advanced"`
	Goal             string  `json:"goal,omitempty" jsonschema:"Primary goal: weight-loss, muscle-gain, endurance, or general-fitness"`
	AvailableMinutes int     `json:"available_minutes,omitempty" jsonschema:"Minutes available per session: 30, 45, 60, or 90"`
	Age              int     `json:"age,omitempty" jsonschema:"Age in years"`
	WeightKg         float64 `json:"weight_kg,omitempty" jsonschema:"Body weight in kilograms"`
	HeightCm         float64 `json:"height_cm,omitempty" jsonschema:"Height in centimeters"`
}

type workoutPlanOutput struct {
	Plan models.WorkoutPlan `json:"plan"`
}

type searchSymptomsInput struct {
	Term string `json:"term,omitempty" jsonschema:"Case-insensitive name filter; empty lists every symptom"`
}

type symptomListOutput struct {
	Count    int              `json:"count"`
	Symptoms []models.Symptom `json:"symptoms"`
}

type analyzeSymptomsInput struct {
	SymptomIDs []string `json:"symptom_ids" jsonschema:"Symptom IDs from search_symptoms, e.g. fever, cough"`
}

type diagnosisOutput struct {
	Diagnosis models.Diagnosis `json:"diagnosis"`
	Notice    string           `json:"notice"`
}

// Tool handlers

func (s *Server) handleEvaluateVitals(ctx context.Context, req *mcp.CallToolRequest, input evaluateVitalsInput) (*mcp.CallToolResult, evaluateVitalsOutput, error) {
	// The SDK schema has already rejected missing or non-numeric arguments, so
	// what remains is the same value validation the CLI form gets.
	gender, genderErr := models.ParseGender(input.Gender)

	in := models.VitalsInput{
		SystolicPressure:  input.Systolic,
		DiastolicPressure: input.Diastolic,
		HeartRate:         input.HeartRate,
		BodyTemperature:   input.Temperature,
		WeightKg:          input.WeightKg,
		HeightCm:          input.HeightCm,
		Age:               input.Age,
		Gender:            gender,
	}

	verr := &models.ValidationError{}
	if err := evaluator.Validate(in); err != nil && !errors.As(err, &verr) {
		return nil, evaluateVitalsOutput{}, err
	}
	if genderErr != nil {
		verr.Add("gender", genderErr.Error())
	}
	if err := verr.ErrOrNil(); err != nil {
		return nil, evaluateVitalsOutput{}, err
	}

	report, err := s.evaluator.Evaluate(in)
	if err != nil {
		return nil, evaluateVitalsOutput{}, err
	}
	a := models.NewAssessment(in, report)

	s.logger.Debug("evaluated vitals",
		zap.String("id", a.ShortID()),
		zap.Float64("bmi", report.BodyMassIndex),
		zap.String("risk", string(report.OverallRisk)),
		zap.Int("risk_factors", report.RiskFactorCount()),
	)

	return nil, evaluateVitalsOutput{
		ID:         a.ID.String(),
		AssessedAt: a.AssessedAt.Format(time.RFC3339),
		Report:     report,
		Summary: fmt.Sprintf("BMI %.1f (%s), blood pressure %s, heart rate %s, overall risk %s",
			report.BodyMassIndex,
			report.BodyMassIndexCategory.Label(),
			report.BloodPressureCategory.Label(),
			report.HeartRateCategory.Label(),
			report.OverallRisk),
	}, nil
}

func (s *Server) handleGetDietPlan(ctx context.Context, req *mcp.CallToolRequest, input getDietPlanInput) (*mcp.CallToolResult, dietPlanOutput, error) {
	sel := models.DietSelection{Condition: models.ConditionNone}
	if input.Condition != "" {
		c, err := models.ParseHealthCondition(input.Condition)
		if err != nil {
			return nil, dietPlanOutput{}, err
		}
		sel.Condition = c
	}
	if input.Goal != "" {
		g, err := models.ParseFitnessGoal(input.Goal)
		if err != nil {
			return nil, dietPlanOutput{}, err
		}
		sel.Goal = g
	}

	plan, err := s.catalog.DietPlan(sel)
	if err != nil {
		return nil, dietPlanOutput{}, err
	}

	return nil, dietPlanOutput{Key: string(sel.Key()), Plan: plan}, nil
}

func (s *Server) handleRecommendWorkout(ctx context.Context, req *mcp.CallToolRequest, input recommendWorkoutInput) (*mcp.CallToolResult, workoutPlanOutput, error) {
	level, err := models.ParseFitnessLevel(input.Level)
	if err != nil {
		return nil, workoutPlanOutput{}, err
	}

	profile := models.WorkoutProfile{
		Age:              input.Age,
		WeightKg:         input.WeightKg,
		HeightCm:         input.HeightCm,
		Level:            level,
		AvailableMinutes: input.AvailableMinutes,
	}
	if input.Goal != "" {
		g, err := models.ParseWorkoutGoal(input.Goal)
		if err != nil {
			return nil, workoutPlanOutput{}, err
		}
		profile.Goal = g
	}

	plan, err := s.catalog.RecommendWorkout(profile)
	if err != nil {
		return nil, workoutPlanOutput{}, err
	}

	return nil, workoutPlanOutput{Plan: plan}, nil
}

func (s *Server) handleSearchSymptoms(ctx context.Context, req *mcp.CallToolRequest, input searchSymptomsInput) (*mcp.CallToolResult, symptomListOutput, error) {
	found := symptoms.Search(s.catalog, input.Term)
	if found == nil {
		found = []models.Symptom{}
	}
	return nil, symptomListOutput{Count: len(found), Symptoms: found}, nil
}

func (s *Server) handleAnalyzeSymptoms(ctx context.Context, req *mcp.CallToolRequest, input analyzeSymptomsInput) (*mcp.CallToolResult, diagnosisOutput, error) {
	d, err := s.checker.Analyze(ctx, input.SymptomIDs)
	if err != nil {
		return nil, diagnosisOutput{}, err
	}
	return nil, diagnosisOutput{
		Diagnosis: d,
		Notice:    s.catalog.Dashboard().Disclaimer,
	}, nil
}
