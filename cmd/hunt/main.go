// Package main provides the entry point for the hunt CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/specfirst/hunt/internal/config"
	"github.com/specfirst/hunt/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// useColor resolves the --color persistent flag against actual TTY detection.
func useColor(cmd *cobra.Command) bool {
	mode := "auto"
	if flag := cmd.Root().PersistentFlags().Lookup("color"); flag != nil {
		mode = flag.Value.String()
	}
	return output.ResolveColorMode(mode, output.IsTTY(cmd.OutOrStdout()))
}

// newPrinter builds a printer honoring the persistent output flags.
func newPrinter(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())
}

// projectDir reads the --dir persistent flag. Defaults to the current
// directory.
func projectDir(cmd *cobra.Command) string {
	if flag := cmd.Root().PersistentFlags().Lookup("dir"); flag != nil {
		if dir := flag.Value.String(); dir != "" {
			return dir
		}
	}
	return "."
}

// projectName derives a display name for the project from its directory.
func projectName(cmd *cobra.Command) string {
	abs, err := filepath.Abs(projectDir(cmd))
	if err != nil {
		return "project"
	}
	return filepath.Base(abs)
}

// managerFor creates a config manager rooted at the --dir project directory.
func managerFor(cmd *cobra.Command) *config.Manager {
	return config.NewManager(projectDir(cmd))
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the hunt CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hunt",
		Short: "A spec-first workflow kit for small teams",
		Long: `Hunt - a scaffolding kit for spec-first development in teams of one to four.

Hunt keeps feature work moving through a fixed role sequence:
  requirements -> spec -> implementation -> testing -> deploy

It manages the team roster and board layout, tracks features ("hunts")
through role handoffs, scores task complexity, generates AI-assistant
instruction files, and optionally mirrors the board to GitHub Projects.

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.UserError("no command specified. Run 'hunt --help' for usage")
				printer.Error(err)
				return err
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", "auto", "Color output: auto, always, never")
	cmd.PersistentFlags().StringP("dir", "C", ".", "Project directory")

	// Configure lipgloss for TTY detection
	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "workflow", Title: "Workflow Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "project", Title: "Project Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "integrate", Title: "Integration Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	// Workflow commands: the day-to-day loop
	addGroupedCommand(cmd, newAnalyzeCmd(), "workflow")
	addGroupedCommand(cmd, newStartCmd(), "workflow")
	addGroupedCommand(cmd, newHandoffCmd(), "workflow")
	addGroupedCommand(cmd, newStatusCmd(), "workflow")
	addGroupedCommand(cmd, newBoardCmd(), "workflow")

	// Project commands: setup and roster management
	addGroupedCommand(cmd, newInitCmd(), "project")
	addGroupedCommand(cmd, newTeamCmd(), "project")
	addGroupedCommand(cmd, newPrinciplesCmd(), "project")

	// Integration commands: outward surfaces
	addGroupedCommand(cmd, newScaffoldCmd(), "integrate")
	addGroupedCommand(cmd, newGitHubCmd(), "integrate")
	addGroupedCommand(cmd, newServeCmd(), "integrate")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
