// Package main provides the entry point for the hunt CLI.
package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/specfirst/hunt/internal/board"
	"github.com/specfirst/hunt/internal/config"
	"github.com/specfirst/hunt/internal/output"
)

// newGitHubCmd creates the github command and its subcommands.
func newGitHubCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "github",
		Short: "Manage the GitHub board integration",
		Long: `Manage the GitHub board integration.

Setup creates one label per role and a project board whose columns
mirror the configured workflow. The board state is persisted in the
project document. Requires the GitHub CLI (gh), authenticated.

Examples:
  hunt github setup
  hunt github setup --owner my-org --title "Q3 features"
  hunt github status`,
	}

	cmd.AddCommand(newGitHubSetupCmd(), newGitHubStatusCmd())
	return cmd
}

func newGitHubSetupCmd() *cobra.Command {
	var owner, title string
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Provision labels and a project board",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGitHubSetup(cmd, owner, title)
		},
	}
	cmd.Flags().StringVar(&owner, "owner", "", "Project owner (default: authenticated user)")
	cmd.Flags().StringVar(&title, "title", "", "Project board title (default: project directory name)")
	return cmd
}

func newGitHubStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the integration state and API quota",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGitHubStatus(cmd)
		},
	}
}

// runGitHubSetup provisions the remote side and persists the board state.
func runGitHubSetup(cmd *cobra.Command, owner, title string) error {
	printer := newPrinter(cmd)

	manager := managerFor(cmd)
	doc, err := manager.Load()
	if err != nil {
		err = wrapError(err)
		printer.Error(err)
		return err
	}

	if doc.GitHub.Enabled {
		err := output.ConflictError("GitHub board already set up (project #" + strconv.Itoa(doc.GitHub.ProjectNumber) + ")")
		printer.Error(err)
		return err
	}

	ctx := cmd.Context()
	if !board.IsAvailable(ctx) {
		err := output.SystemError("gh is not installed or not authenticated; run 'gh auth login'")
		printer.Error(err)
		return err
	}

	if title == "" {
		title = projectName(cmd)
	}

	gh, err := board.Setup(ctx, board.NewGHCLI(owner), title, doc)
	if err != nil {
		err = wrapError(err)
		printer.Error(err)
		return err
	}
	doc.GitHub = gh
	if err := manager.Save(); err != nil {
		err = wrapError(err)
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"message":        "github board created",
			"project_number": gh.ProjectNumber,
			"columns":        gh.Columns,
		})
	}
	printer.Success(map[string]any{"message": "Created project board #" + strconv.Itoa(gh.ProjectNumber) + " with phase labels"})
	return nil
}

// runGitHubStatus shows availability, the stored board state, and quota.
func runGitHubStatus(cmd *cobra.Command) error {
	printer := newPrinter(cmd)

	doc, err := managerFor(cmd).Load()
	if err != nil {
		err = wrapError(err)
		printer.Error(err)
		return err
	}

	ctx := cmd.Context()
	available := board.IsAvailable(ctx)

	data := map[string]any{
		"gh_available": available,
		"enabled":      doc.GitHub.Enabled,
	}
	if doc.GitHub.Enabled {
		data["project_number"] = doc.GitHub.ProjectNumber
		data["columns"] = doc.GitHub.Columns
		data["labels_created"] = doc.GitHub.LabelsCreated
	}

	var quota board.RateLimit
	haveQuota := false
	if available {
		if quota, err = board.NewGHCLI("").RateLimit(ctx); err == nil {
			haveQuota = true
			data["rate_limit"] = quota
		}
	}

	if printer.IsJSON() {
		return printer.Success(data)
	}

	printer.Section("GitHub")
	printer.KeyValue("gh", formatAvailable(available))
	printer.KeyValue("Board", formatEnabled(doc.GitHub))
	if haveQuota {
		printer.KeyValue("API quota", quota.Describe())
	}
	return nil
}

func formatAvailable(available bool) string {
	if available {
		return "available"
	}
	return "not available"
}

func formatEnabled(gh config.GitHub) string {
	if gh.Enabled {
		return "project #" + strconv.Itoa(gh.ProjectNumber)
	}
	return "not set up (run 'hunt github setup')"
}
