// ABOUTME: Install Claude Code skill for healthai
// ABOUTME: Embeds and installs the skill definition to ~/.claude/skills/

package main

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

//go:embed skill/SKILL.md
var skillFS embed.FS

func newInstallSkillCmd() *cobra.Command {
	var skipConfirm bool

	cmd := &cobra.Command{
		Use:   "install-skill",
		Short: "Install Claude Code skill",
		Long: `Install the healthai skill for Claude Code.

This copies the skill definition to ~/.claude/skills/healthai/
so Claude Code knows when to reach for the healthai MCP tools.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("failed to get home directory: %w", err)
			}
			return installSkill(cmd.OutOrStdout(), cmd.InOrStdin(), home, skipConfirm)
		},
	}

	cmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	return cmd
}

func installSkill(w io.Writer, in io.Reader, home string, skipConfirm bool) error {
	skillDir := filepath.Join(home, ".claude", "skills", "healthai")
	skillPath := filepath.Join(skillDir, "SKILL.md")

	fmt.Fprintln(w, "This will install the healthai skill, enabling Claude Code to:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  • Evaluate vitals into a health report")
	fmt.Fprintln(w, "  • Look up diet and workout plans")
	fmt.Fprintln(w, "  • Run the simulated symptom checker")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Destination:")
	fmt.Fprintf(w, "  %s\n", skillPath)
	fmt.Fprintln(w)

	// Check if already installed
	if _, err := os.Stat(skillPath); err == nil {
		fmt.Fprintln(w, "Note: A skill file already exists and will be overwritten.")
		fmt.Fprintln(w)
	}

	if !skipConfirm {
		fmt.Fprint(w, "Install the healthai skill? [y/N] ")
		response, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("failed to read response: %w", err)
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Fprintln(w, "Installation canceled.")
			return nil
		}
		fmt.Fprintln(w)
	}

	content, err := skillFS.ReadFile("skill/SKILL.md")
	if err != nil {
		return fmt.Errorf("failed to read embedded skill: %w", err)
	}

	if err := os.MkdirAll(skillDir, 0750); err != nil {
		return fmt.Errorf("failed to create skill directory: %w", err)
	}
	if err := os.WriteFile(skillPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write skill file: %w", err)
	}

	green.Fprintln(w, "✓ Installed healthai skill successfully!")
	return nil
}
