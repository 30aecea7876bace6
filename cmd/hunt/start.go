// Package main provides the entry point for the hunt CLI.
package main

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/specfirst/hunt/internal/board"
	"github.com/specfirst/hunt/internal/hunt"
	"github.com/specfirst/hunt/internal/output"
	"github.com/specfirst/hunt/internal/role"
)

// startFlags holds the command-line flags for the start command.
type startFlags struct {
	description string
	github      bool
	owner       string
}

// newStartCmd creates the start command.
func newStartCmd() *cobra.Command {
	flags := &startFlags{}

	cmd := &cobra.Command{
		Use:   "start <feature>",
		Short: "Start a new hunt in the requirements phase",
		Long: `Start a new hunt (a tracked unit of feature work).

The hunt enters the first phase of the sequence, assigned to the roster
member holding that role (in solo mode the single member owns every
phase). With --github an issue is filed and, when a board is set up,
added as a card.

Examples:
  hunt start "login page"
  hunt start "billing export" --description "CSV export of invoices"
  hunt start "login page" --github`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStart(cmd, strings.Join(args, " "), flags)
		},
	}

	cmd.Flags().StringVarP(&flags.description, "description", "d", "", "Longer description recorded on the hunt")
	cmd.Flags().BoolVar(&flags.github, "github", false, "File a GitHub issue for the hunt")
	cmd.Flags().StringVar(&flags.owner, "owner", "", "GitHub project owner (default: authenticated user)")

	return cmd
}

// runStart executes the start command.
func runStart(cmd *cobra.Command, feature string, flags *startFlags) error {
	printer := newPrinter(cmd)

	manager := managerFor(cmd)
	doc, err := manager.Load()
	if err != nil {
		err = wrapError(err)
		printer.Error(err)
		return err
	}

	coordinator := hunt.NewCoordinator(doc.Members)
	assignee, err := coordinator.MemberFor(role.Entry())
	if err != nil {
		err = wrapError(err)
		printer.Error(err)
		return err
	}

	h := hunt.New(feature, flags.description, assignee, time.Now())
	if err := manager.AddHunt(h); err != nil {
		err = wrapError(err)
		printer.Error(err)
		return err
	}

	issueURL := ""
	if flags.github {
		// TODO: persist the returned board item ID on the hunt so handoff can
		// move the card across columns.
		issue, _, ghErr := board.FileHunt(cmd.Context(), board.NewGHCLI(flags.owner), doc.GitHub, feature, flags.description)
		if ghErr != nil {
			printer.Warn("GitHub issue not filed: %v", ghErr)
		} else {
			issueURL = issue.URL
		}
	}

	if printer.IsJSON() {
		data := map[string]any{
			"id":            h.ID,
			"feature":       h.Feature,
			"current_phase": h.CurrentPhase,
			"assignee":      assignee,
			"status":        string(h.Status),
		}
		if issueURL != "" {
			data["issue_url"] = issueURL
		}
		return printer.Success(data)
	}

	printHumanStart(printer, h, assignee, issueURL)
	return nil
}

// printHumanStart renders the started hunt.
func printHumanStart(printer *output.Printer, h *hunt.Hunt, assignee, issueURL string) {
	printer.Success(map[string]any{"message": "Started hunt for " + strconv.Quote(h.Feature)})
	printer.KeyValue("ID", h.ID)
	if r, err := role.Get(h.CurrentPhase); err == nil {
		printer.KeyValue("Phase", printer.RoleTag(r.Emoji, r.Name, r.Color))
	}
	printer.KeyValue("Assignee", assignee)
	if issueURL != "" {
		printer.KeyValue("Issue", issueURL)
	}
	printer.Println()
	printer.Muted("Hand off with 'hunt handoff %s' when the phase is done.", h.ID)
}
