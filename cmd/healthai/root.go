// ABOUTME: Root Cobra command for healthai CLI.
// ABOUTME: Loads config, logger, evaluator, and catalog via PersistentPreRunE.
package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/healthai/internal/catalog"
	"github.com/harperreed/healthai/internal/config"
	"github.com/harperreed/healthai/internal/evaluator"
	"github.com/harperreed/healthai/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app holds what every subcommand needs once the root has run its setup.
type app struct {
	cfg       *config.Config
	logger    *zap.Logger
	evaluator *evaluator.Evaluator
	catalog   *catalog.Catalog

	noColor  bool
	logLevel string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "healthai",
		Short: "Health metrics evaluator and wellness planner",
		Long: `healthai evaluates vital signs and serves reference wellness plans.

WHAT IT DOES:

  Assess      BMI, blood pressure and heart rate categories, overall risk
  Symptoms    simulated symptom analysis (informational only)
  Diet        nutrition plans by health condition or fitness goal
  Workout     training plans by fitness level

QUICK START:

  $ healthai assess --systolic 130 --diastolic 85 --heart-rate 75 \
      --weight 85 --height 170 --age 45 --gender male
  $ healthai diet --condition none --goal lose
  $ healthai workout --level beginner
  $ healthai symptoms check fever cough
  $ healthai show dashboard

MCP INTEGRATION:

  Run 'healthai mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants. Add to your Claude
  config:

  {
    "mcpServers": {
      "healthai": { "command": "healthai", "args": ["mcp"] }
    }
  }

  Run 'healthai install-skill' to teach Claude Code when to use these tools.

CONFIGURATION:

  Preferences live in ~/.config/healthai/config.json (or under
  $XDG_CONFIG_HOME). Use 'healthai config show' and 'healthai config set'.

Nothing you enter is stored. This tool is not a substitute for professional
medical advice.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			renderLanding(cmd.OutOrStdout(), a.catalog.Dashboard())
			return nil
		},
	}

	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "diagnostic log level: debug, info, warn, error (default from config)")

	root.AddCommand(
		newAssessCmd(a),
		newDietCmd(a),
		newWorkoutCmd(a),
		newSymptomsCmd(a),
		newShowCmd(a),
		newConfigCmd(a),
		newMCPCmd(a),
		newInstallSkillCmd(),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	var warning string
	if errors.Is(err, config.ErrInvalidConfig) {
		// Fall back to defaults so 'config set' can still repair the file.
		invalid := cfg.Sanitize()
		warning = fmt.Sprintf("Warning: ignoring invalid values in %s: %s",
			config.GetConfigPath(), strings.ReplaceAll(invalid.Error(), "\n", "; "))
	} else if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg

	if a.noColor || cfg.NoColor {
		color.NoColor = true
	}
	if warning != "" {
		yellow.Fprintln(cmd.ErrOrStderr(), warning)
	}

	level := cfg.GetLogLevel()
	if a.logLevel != "" {
		level = a.logLevel
	}
	logger, err := logging.NewLogger(level, cfg.GetLogFormat())
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	a.logger = logger

	a.evaluator = evaluator.New(evaluator.Options{BloodPressureRule: cfg.GetBloodPressureRule()})
	a.catalog = catalog.Default()

	a.logger.Debug("initialized",
		zap.String("config", config.GetConfigPath()),
		zap.String("blood_pressure_rule", string(a.evaluator.Rule())),
		zap.Int("symptoms", len(a.catalog.Symptoms())),
		zap.Int("diet_plans", len(a.catalog.DietKeys())),
	)
	return nil
}
