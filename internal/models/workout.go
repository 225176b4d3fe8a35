// ABOUTME: Workout planner models: fitness levels, goals, plans, and exercises.
// ABOUTME: The planner profile is collected in full but only the level selects a plan.
package models

import (
	"fmt"
	"strings"
)

// FitnessLevel is the user's self-reported training level.
type FitnessLevel string

const (
	LevelBeginner     FitnessLevel = "beginner"
	LevelIntermediate FitnessLevel = "intermediate"
	LevelAdvanced     FitnessLevel = "advanced"
)

// AllFitnessLevels lists levels in menu order.
var AllFitnessLevels = []FitnessLevel{LevelBeginner, LevelIntermediate, LevelAdvanced}

// ParseFitnessLevel rejects anything outside AllFitnessLevels.
func ParseFitnessLevel(s string) (FitnessLevel, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for _, l := range AllFitnessLevels {
		if string(l) == v {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown fitness level: %q", s)
}

// Difficulty rates a plan or exercise. It shares values with FitnessLevel.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// IsValid reports whether d is a known difficulty.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// WorkoutGoal is the primary goal chosen in the workout planner.
type WorkoutGoal string

const (
	WorkoutGoalWeightLoss     WorkoutGoal = "weight-loss"
	WorkoutGoalMuscleGain     WorkoutGoal = "muscle-gain"
	WorkoutGoalEndurance      WorkoutGoal = "endurance"
	WorkoutGoalGeneralFitness WorkoutGoal = "general-fitness"
)

// AllWorkoutGoals lists goals in menu order.
var AllWorkoutGoals = []WorkoutGoal{
	WorkoutGoalWeightLoss, WorkoutGoalMuscleGain, WorkoutGoalEndurance, WorkoutGoalGeneralFitness,
}

// ParseWorkoutGoal rejects anything outside AllWorkoutGoals.
func ParseWorkoutGoal(s string) (WorkoutGoal, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for _, g := range AllWorkoutGoals {
		if string(g) == v {
			return g, nil
		}
	}
	return "", fmt.Errorf("unknown workout goal: %q", s)
}

// AvailableTimes are the session lengths offered by the planner, in minutes.
var AvailableTimes = []int{30, 45, 60, 90}

// WorkoutProfile is the planner form. Only Level drives plan selection.
type WorkoutProfile struct {
	Age              int
	WeightKg         float64
	HeightCm         float64
	Level            FitnessLevel
	Goal             WorkoutGoal
	AvailableMinutes int
}

// Exercise is one movement within a plan.
type Exercise struct {
	Name       string     `json:"name" yaml:"name"`
	Sets       string     `json:"sets" yaml:"sets"`
	Reps       string     `json:"reps" yaml:"reps"`
	Duration   string     `json:"duration" yaml:"duration"`
	Difficulty Difficulty `json:"difficulty" yaml:"difficulty"`
	Equipment  []string   `json:"equipment" yaml:"equipment"`
	Benefits   []string   `json:"benefits" yaml:"benefits"`
}

// WorkoutPlan is a pre-authored training session.
type WorkoutPlan struct {
	ID          string     `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description" yaml:"description"`
	Duration    string     `json:"duration" yaml:"duration"`
	Difficulty  Difficulty `json:"difficulty" yaml:"difficulty"`
	Exercises   []Exercise `json:"exercises" yaml:"exercises"`
}
