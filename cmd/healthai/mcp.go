// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"github.com/harperreed/healthai/internal/mcp"
	"github.com/harperreed/healthai/internal/symptoms"
	"github.com/spf13/cobra"
)

func newMCPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server",
		Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to use healthai through a standardized
protocol. The server communicates via stdin/stdout; logs go to stderr.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "healthai": {
        "command": "healthai",
        "args": ["mcp"]
      }
    }
  }

  On macOS, the config is at:
    ~/Library/Application Support/Claude/claude_desktop_config.json

AVAILABLE TOOLS:

  evaluate_vitals     BMI, blood pressure, heart rate, and risk report
  get_diet_plan       Nutrition plan by condition or goal
  recommend_workout   Workout plan by fitness level
  search_symptoms     Find symptom IDs by name
  analyze_symptoms    Simulated symptom analysis

AVAILABLE RESOURCES:

  healthai://dashboard           Dashboard metrics, trends, and alerts
  healthai://catalog/diet        All nutrition plans
  healthai://catalog/workouts    All workout plans
  healthai://catalog/symptoms    All symptoms`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			checker := symptoms.NewChecker(a.catalog, a.cfg.GetSymptomDelay(), nil, a.logger)
			server, err := mcp.NewServer(a.catalog, a.evaluator, checker, a.logger)
			if err != nil {
				return err
			}
			return server.Serve(cmd.Context())
		},
	}
}
