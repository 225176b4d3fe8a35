// ABOUTME: CLI commands for the symptom checker.
// ABOUTME: Lists and searches symptoms and runs the simulated analysis.
package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/harperreed/healthai/internal/models"
	"github.com/harperreed/healthai/internal/symptoms"
	"github.com/spf13/cobra"
)

func newSymptomsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "symptoms",
		Aliases: []string{"s"},
		Short:   "Symptom checker",
		Long: `Search symptoms and run a simulated analysis.

The analysis is rule-based and randomized. It is informational only and is
not a medical diagnosis.

EXAMPLES:

  healthai symptoms list
  healthai symptoms list --search pain
  healthai symptoms check fever cough
  healthai symptoms check chest-pain --delay 0s
  healthai symptoms select`,
	}

	cmd.AddCommand(newSymptomsListCmd(a), newSymptomsCheckCmd(a), newSymptomsSelectCmd(a))
	return cmd
}

func newSymptomsListCmd(a *app) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List symptoms",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderSymptoms(cmd.OutOrStdout(), symptoms.Search(a.catalog, search))
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "filter by name")
	return cmd
}

func newSymptomsCheckCmd(a *app) *cobra.Command {
	var (
		delay  time.Duration
		format string
	)

	cmd := &cobra.Command{
		Use:   "check <symptom-id>...",
		Short: "Analyze selected symptoms",
		Long: `Analyze one or more symptoms by ID. Use 'healthai symptoms list' to see IDs.

The analysis waits briefly before answering (config symptom_delay, default 2s).
Press Ctrl-C to cancel.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return analyzeSymptoms(cmd, a, symptoms.NewSelection(args...), delay, format)
		},
	}

	cmd.Flags().DurationVar(&delay, "delay", 0, "override the analysis delay (e.g. 0s)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text, json, yaml (default from config)")
	return cmd
}

func newSymptomsSelectCmd(a *app) *cobra.Command {
	var (
		delay  time.Duration
		format string
	)

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Pick symptoms interactively, then analyze",
		Long: `Show the symptom list and toggle symptoms one per line, by number, ID, or
part of the name. Entering a selected symptom again removes it.

A blank line (or end of input) runs the analysis on the current selection.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The menu and prompts go to stderr so json/yaml output stays clean.
			w := cmd.ErrOrStderr()
			list := a.catalog.Symptoms()
			for i, s := range list {
				fmt.Fprintf(w, "  %2d. %s %s\n", i+1, padRight(s.Name, 20), severityColor(s.Severity).Sprint(s.Severity))
			}
			fmt.Fprintln(w)

			sel := symptoms.NewSelection()
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(w, "Toggle symptom (blank to analyze): ")
				if !scanner.Scan() {
					fmt.Fprintln(w)
					break
				}
				entry := strings.TrimSpace(scanner.Text())
				if entry == "" {
					break
				}

				s, err := pickSymptom(a, list, entry)
				if err != nil {
					faint.Fprintln(w, err)
					continue
				}
				if sel.Toggle(s.ID) {
					green.Fprintf(w, "+ %s", s.Name)
				} else {
					faint.Fprintf(w, "- %s", s.Name)
				}
				fmt.Fprintf(w, " (%d selected)\n", sel.Len())
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read selection: %w", err)
			}
			fmt.Fprintln(w)

			return analyzeSymptoms(cmd, a, sel, delay, format)
		},
	}

	cmd.Flags().DurationVar(&delay, "delay", 0, "override the analysis delay (e.g. 0s)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text, json, yaml (default from config)")
	return cmd
}

// pickSymptom resolves a menu number, an exact id, or a name fragment that
// matches exactly one symptom.
func pickSymptom(a *app, list []models.Symptom, entry string) (models.Symptom, error) {
	if n, err := strconv.Atoi(entry); err == nil {
		if n < 1 || n > len(list) {
			return models.Symptom{}, fmt.Errorf("no symptom number %d", n)
		}
		return list[n-1], nil
	}
	if s, ok := a.catalog.Symptom(entry); ok {
		return s, nil
	}
	switch matches := symptoms.Search(a.catalog, entry); len(matches) {
	case 0:
		return models.Symptom{}, fmt.Errorf("no symptom matches %q", entry)
	case 1:
		return matches[0], nil
	default:
		return models.Symptom{}, fmt.Errorf("%q matches %d symptoms, be more specific", entry, len(matches))
	}
}

func analyzeSymptoms(cmd *cobra.Command, a *app, sel *symptoms.Selection, delay time.Duration, format string) error {
	d := a.cfg.GetSymptomDelay()
	if cmd.Flags().Changed("delay") {
		d = delay
	}

	checker := symptoms.NewChecker(a.catalog, d, nil, a.logger)
	diagnosis, err := checker.Analyze(cmd.Context(), sel.IDs())
	if err != nil {
		return err
	}

	return writePlan(cmd, a, format, diagnosis, func() {
		renderDiagnosis(cmd.OutOrStdout(), diagnosis, a.catalog.Dashboard().Disclaimer)
	})
}
