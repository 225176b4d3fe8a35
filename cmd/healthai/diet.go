// ABOUTME: CLI command for nutrition plans.
// ABOUTME: Selects a plan by health condition, or by fitness goal when none applies.
package main

import (
	"errors"
	"fmt"

	"github.com/harperreed/healthai/internal/catalog"
	"github.com/harperreed/healthai/internal/export"
	"github.com/harperreed/healthai/internal/models"
	"github.com/spf13/cobra"
)

func newDietCmd(a *app) *cobra.Command {
	var (
		condition string
		goal      string
		format    string
	)

	cmd := &cobra.Command{
		Use:   "diet",
		Short: "Show a nutrition plan",
		Long: `Show the nutrition plan for a health condition or, when no specific condition
applies, for a fitness goal. A condition always wins over a goal.

CONDITIONS:

  diabetes, hypertension, cholesterol, heart, obesity, arthritis, none

GOALS (used with --condition none):

  lose, gain, maintain, muscle, endurance

Not every selection has an authored plan yet; 'healthai diet list' shows
which ones do.

EXAMPLES:

  healthai diet --condition diabetes
  healthai diet --goal lose
  healthai diet --condition hypertension --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sel := models.DietSelection{}
			c, err := models.ParseHealthCondition(condition)
			if err != nil {
				return err
			}
			sel.Condition = c
			if goal != "" {
				g, err := models.ParseFitnessGoal(goal)
				if err != nil {
					return err
				}
				sel.Goal = g
			}

			plan, err := a.catalog.DietPlan(sel)
			if errors.Is(err, catalog.ErrPlanNotAuthored) {
				return fmt.Errorf("%w (available: %v)", err, a.catalog.DietKeys())
			}
			if err != nil {
				return err
			}

			return writePlan(cmd, a, format, plan, func() {
				renderDietPlan(cmd.OutOrStdout(), sel.Key(), plan)
			})
		},
	}

	cmd.Flags().StringVarP(&condition, "condition", "c", string(models.ConditionNone), "health condition")
	cmd.Flags().StringVarP(&goal, "goal", "g", "", "fitness goal when no condition applies")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text, json, yaml (default from config)")

	cmd.AddCommand(newDietListCmd(a))
	return cmd
}

func newDietListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List conditions and goals",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			authored := make(map[models.DietKey]bool)
			for _, k := range a.catalog.DietKeys() {
				authored[k] = true
			}
			mark := func(k models.DietKey) string {
				if authored[k] {
					return green.Sprint("✓")
				}
				return faint.Sprint("·")
			}

			heading(w, "Health Conditions")
			for _, c := range models.AllHealthConditions {
				fmt.Fprintf(w, "  %s %s %s\n", mark(models.DietKey(c)), padRight(string(c), 14), models.HealthConditionLabels[c])
			}
			fmt.Fprintln(w)
			heading(w, "Fitness Goals")
			for _, g := range models.AllFitnessGoals {
				fmt.Fprintf(w, "  %s %s %s\n", mark(models.DietKey(g)), padRight(string(g), 14), models.FitnessGoalLabels[g])
			}
			fmt.Fprintln(w)
			faint.Fprintln(w, "✓ = plan available")
			return nil
		},
	}
}

// writePlan prints v as structured data, or calls text for the text format.
func writePlan(cmd *cobra.Command, a *app, format string, v any, text func()) error {
	f := a.cfg.GetFormat()
	if format != "" {
		var err error
		if f, err = export.ParseFormat(format); err != nil {
			return err
		}
	}
	if f == export.FormatText || f == export.FormatMarkdown {
		text()
		return nil
	}
	data, err := export.Marshal(f, v)
	if err != nil {
		return err
	}
	if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return err
	}
	if f == export.FormatJSON {
		fmt.Fprintln(cmd.OutOrStdout())
	}
	return nil
}
