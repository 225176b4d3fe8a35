// ABOUTME: CLI command for the static screens.
// ABOUTME: Resolves a tab name and renders that screen, defaulting to the dashboard.
package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/harperreed/healthai/internal/catalog"
	"github.com/harperreed/healthai/internal/models"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show [dashboard|symptoms|diet|workout]",
		Short: "Show a screen",
		Long: `Show one of the static screens. Unknown names show the dashboard.

SCREENS:

  dashboard   sample metrics, trends, and alerts
  symptoms    every symptom the checker knows
  diet        conditions, goals, and authored plans
  workout     levels, goals, session lengths, and plans`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := ""
			if len(args) == 1 {
				id = strings.ToLower(args[0])
			}
			tab := models.ResolveTab(id)
			if id != "" && string(tab) != id {
				a.logger.Debug("unknown tab, showing dashboard", zap.String("tab", id))
			}
			renderTab(cmd.OutOrStdout(), a.catalog, tab)
			return nil
		},
	}
}

func renderTab(w io.Writer, c *catalog.Catalog, tab models.Tab) {
	switch tab {
	case models.TabSymptoms:
		heading(w, models.TabLabels[tab])
		renderSymptoms(w, c.Symptoms())
	case models.TabDiet:
		heading(w, models.TabLabels[tab])
		for _, k := range c.DietKeys() {
			plan, _ := c.DietPlan(dietSelectionFor(k))
			fmt.Fprintf(w, "  %s %s %s\n", faint.Sprint(padRight(string(k), 14)), padRight(plan.Name, 26), faint.Sprint(plan.Calories+" kcal"))
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Run 'healthai diet list' for every condition and goal.")
	case models.TabWorkout:
		heading(w, models.TabLabels[tab])
		for _, p := range c.WorkoutPlans() {
			fmt.Fprintf(w, "  %s %s %s\n", padRight(p.Name, 24), padRight(string(p.Difficulty), 14), faint.Sprint(p.Duration))
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Session lengths: %s minutes\n", joinInts(models.AvailableTimes))
	default:
		renderDashboard(w, c.Dashboard())
	}
}

// dietSelectionFor rebuilds the selection that maps to k.
func dietSelectionFor(k models.DietKey) models.DietSelection {
	if c, err := models.ParseHealthCondition(string(k)); err == nil && c != models.ConditionNone {
		return models.DietSelection{Condition: c}
	}
	return models.DietSelection{Condition: models.ConditionNone, Goal: models.FitnessGoal(k)}
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}
