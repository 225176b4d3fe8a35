// ABOUTME: Diet planner models: health conditions, fitness goals, nutrition plans.
// ABOUTME: Selection keys are closed enums; unknown strings are rejected at parse time.
package models

import (
	"fmt"
	"strings"
)

// HealthCondition is a condition a diet plan can target.
type HealthCondition string

const (
	ConditionDiabetes     HealthCondition = "diabetes"
	ConditionHypertension HealthCondition = "hypertension"
	ConditionCholesterol  HealthCondition = "cholesterol"
	ConditionHeart        HealthCondition = "heart"
	ConditionObesity      HealthCondition = "obesity"
	ConditionArthritis    HealthCondition = "arthritis"
	ConditionNone         HealthCondition = "none"
)

// AllHealthConditions lists conditions in menu order.
var AllHealthConditions = []HealthCondition{
	ConditionDiabetes, ConditionHypertension, ConditionCholesterol,
	ConditionHeart, ConditionObesity, ConditionArthritis, ConditionNone,
}

// HealthConditionLabels maps conditions to their menu labels.
var HealthConditionLabels = map[HealthCondition]string{
	ConditionDiabetes:     "Diabetes Type 2",
	ConditionHypertension: "High Blood Pressure",
	ConditionCholesterol:  "High Cholesterol",
	ConditionHeart:        "Heart Disease",
	ConditionObesity:      "Obesity",
	ConditionArthritis:    "Arthritis",
	ConditionNone:         "No Specific Condition",
}

// ParseHealthCondition rejects anything outside AllHealthConditions.
func ParseHealthCondition(s string) (HealthCondition, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for _, c := range AllHealthConditions {
		if string(c) == v {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown health condition: %q", s)
}

// FitnessGoal is a goal used when no specific condition applies.
type FitnessGoal string

const (
	GoalLose      FitnessGoal = "lose"
	GoalGain      FitnessGoal = "gain"
	GoalMaintain  FitnessGoal = "maintain"
	GoalMuscle    FitnessGoal = "muscle"
	GoalEndurance FitnessGoal = "endurance"
)

// AllFitnessGoals lists goals in menu order.
var AllFitnessGoals = []FitnessGoal{GoalLose, GoalGain, GoalMaintain, GoalMuscle, GoalEndurance}

// FitnessGoalLabels maps goals to their menu labels.
var FitnessGoalLabels = map[FitnessGoal]string{
	GoalLose:      "Lose Weight",
	GoalGain:      "Gain Weight",
	GoalMaintain:  "Maintain Weight",
	GoalMuscle:    "Build Muscle",
	GoalEndurance: "Improve Endurance",
}

// ParseFitnessGoal rejects anything outside AllFitnessGoals.
func ParseFitnessGoal(s string) (FitnessGoal, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for _, g := range AllFitnessGoals {
		if string(g) == v {
			return g, nil
		}
	}
	return "", fmt.Errorf("unknown fitness goal: %q", s)
}

// DietKey identifies a diet plan. It is either a HealthCondition or a FitnessGoal.
type DietKey string

// IsValidDietKey reports whether k names a known condition or goal.
func IsValidDietKey(k DietKey) bool {
	for _, c := range AllHealthConditions {
		if string(c) == string(k) {
			return true
		}
	}
	for _, g := range AllFitnessGoals {
		if string(g) == string(k) {
			return true
		}
	}
	return false
}

// DietSelection is what the user picked in the diet planner.
type DietSelection struct {
	Condition HealthCondition
	Goal      FitnessGoal
}

// Key returns the plan key: the goal when no condition applies, else the condition.
func (s DietSelection) Key() DietKey {
	if s.Condition == ConditionNone {
		return DietKey(s.Goal)
	}
	return DietKey(s.Condition)
}

// Macros are macronutrient percentages of daily calories.
type Macros struct {
	Carbs   int `json:"carbs" yaml:"carbs"`
	Protein int `json:"protein" yaml:"protein"`
	Fat     int `json:"fat" yaml:"fat"`
}

// Total returns the sum of all percentages.
func (m Macros) Total() int {
	return m.Carbs + m.Protein + m.Fat
}

// FoodGroup is a category of recommended foods.
type FoodGroup struct {
	Category string   `json:"category" yaml:"category"`
	Items    []string `json:"items" yaml:"items"`
}

// NutritionPlan is a pre-authored diet plan.
type NutritionPlan struct {
	Name         string      `json:"name" yaml:"name"`
	Description  string      `json:"description" yaml:"description"`
	Calories     string      `json:"calories" yaml:"calories"`
	Macros       Macros      `json:"macros" yaml:"macros"`
	Benefits     []string    `json:"benefits" yaml:"benefits"`
	Foods        []FoodGroup `json:"foods" yaml:"foods"`
	Restrictions []string    `json:"restrictions" yaml:"restrictions"`
}
