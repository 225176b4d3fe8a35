// ABOUTME: CLI commands for viewing and changing configuration.
// ABOUTME: Values are validated before they are saved.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/healthai/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change configuration",
		Long: `Show or change healthai configuration.

KEYS:

  format               default output: text, json, yaml, markdown
  no_color             true or false
  blood_pressure_rule  literal (default) or clinical
  symptom_delay        analysis delay as a duration, e.g. 2s or 0s
  log_level            debug, info, warn, error
  log_format           console or json`,
	}

	cmd.AddCommand(newConfigShowCmd(a), newConfigSetCmd(a))
	return cmd
}

func newConfigShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			c := a.cfg
			fmt.Fprintf(w, "%s %s\n\n", faint.Sprint("config:"), config.GetConfigPath())
			rows := [][2]string{
				{"format", string(c.GetFormat())},
				{"no_color", strconv.FormatBool(c.NoColor)},
				{"blood_pressure_rule", string(c.GetBloodPressureRule())},
				{"symptom_delay", c.GetSymptomDelay().String()},
				{"log_level", c.GetLogLevel()},
				{"log_format", c.GetLogFormat()},
			}
			for _, r := range rows {
				fmt.Fprintf(w, "  %s %s\n", padRight(r[0], 20), r[1])
			}
			return nil
		},
	}
}

func newConfigSetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := a.cfg.Save(); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Set %s = %s\n", args[0], args[1])
			return nil
		},
	}
}
