// ABOUTME: CLI command for workout plans.
// ABOUTME: Collects the planner profile and recommends a plan by fitness level.
package main

import (
	"fmt"
	"slices"

	"github.com/harperreed/healthai/internal/models"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newWorkoutCmd(a *app) *cobra.Command {
	var (
		level   string
		goal    string
		minutes int
		age     int
		weight  float64
		height  float64
		format  string
	)

	cmd := &cobra.Command{
		Use:     "workout",
		Aliases: []string{"w"},
		Short:   "Recommend a workout plan",
		Long: `Recommend a workout plan for your fitness level.

LEVELS:   beginner, intermediate, advanced
GOALS:    weight-loss, muscle-gain, endurance, general-fitness
TIME:     30, 45, 60, or 90 minutes per session

The plan is chosen by fitness level. Goal, time, and body measurements are
recorded with the request.

EXAMPLES:

  healthai workout --level beginner
  healthai workout --level intermediate --goal muscle-gain --time 60
  healthai workout --level advanced --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := models.ParseFitnessLevel(level)
			if err != nil {
				return err
			}
			profile := models.WorkoutProfile{
				Age:              age,
				WeightKg:         weight,
				HeightCm:         height,
				Level:            l,
				AvailableMinutes: minutes,
			}
			if goal != "" {
				g, err := models.ParseWorkoutGoal(goal)
				if err != nil {
					return err
				}
				profile.Goal = g
			}
			if minutes != 0 && !slices.Contains(models.AvailableTimes, minutes) {
				return fmt.Errorf("unsupported session length: %d minutes (use 30, 45, 60, or 90)", minutes)
			}

			plan, err := a.catalog.RecommendWorkout(profile)
			if err != nil {
				return err
			}

			a.logger.Debug("recommended workout",
				zap.String("level", string(profile.Level)),
				zap.String("goal", string(profile.Goal)),
				zap.Int("minutes", profile.AvailableMinutes),
				zap.String("plan", plan.ID),
			)

			return writePlan(cmd, a, format, plan, func() {
				renderWorkoutPlan(cmd.OutOrStdout(), plan)
			})
		},
	}

	cmd.Flags().StringVarP(&level, "level", "l", "", "fitness level (required)")
	cmd.Flags().StringVarP(&goal, "goal", "g", "", "primary goal")
	cmd.Flags().IntVarP(&minutes, "time", "t", 0, "minutes available per session")
	cmd.Flags().IntVar(&age, "age", 0, "age (years)")
	cmd.Flags().Float64Var(&weight, "weight", 0, "weight (kg)")
	cmd.Flags().Float64Var(&height, "height", 0, "height (cm)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text, json, yaml (default from config)")
	_ = cmd.MarkFlagRequired("level")

	cmd.AddCommand(newWorkoutListCmd(a))
	return cmd
}

func newWorkoutListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List workout plans",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, p := range a.catalog.WorkoutPlans() {
				fmt.Fprintf(w, "%s %s %s %s\n",
					faint.Sprint(padRight(p.ID, 24)),
					padRight(p.Name, 24),
					padRight(string(p.Difficulty), 14),
					faint.Sprintf("%d exercises, %s", len(p.Exercises), p.Duration))
			}
			return nil
		},
	}
}
