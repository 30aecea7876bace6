// Package main provides the entry point for the hunt CLI.
package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/specfirst/hunt/internal/config"
	"github.com/specfirst/hunt/internal/hunt"
	"github.com/specfirst/hunt/internal/output"
	"github.com/specfirst/hunt/internal/role"
)

// newStatusCmd creates the status command.
func newStatusCmd() *cobra.Command {
	var allFlag bool
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the project's workflow state",
		Long: `Show the project's workflow state.

Displays the mode, team size, board columns, and hunts in flight with
their current phases. Completed hunts are hidden unless --all is given.

Examples:
  hunt status
  hunt status --all
  hunt status --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStatus(cmd, allFlag)
		},
	}
	cmd.Flags().BoolVarP(&allFlag, "all", "a", false, "Include completed hunts")
	return cmd
}

// runStatus executes the status command.
func runStatus(cmd *cobra.Command, includeCompleted bool) error {
	printer := newPrinter(cmd)

	doc, err := managerFor(cmd).Load()
	if err != nil {
		err = wrapError(err)
		printer.Error(err)
		return err
	}

	hunts := filterHunts(doc.Hunts, includeCompleted)

	if printer.IsJSON() {
		columns := make([]string, len(doc.Workflow.Columns))
		for i, c := range doc.Workflow.Columns {
			columns[i] = c.ID
		}
		return printer.Success(map[string]any{
			"mode":       doc.Mode,
			"team_size":  doc.TeamSize,
			"columns":    columns,
			"hunts":      hunts,
			"github":     doc.GitHub.Enabled,
			"principles": len(doc.Principles),
		})
	}

	printHumanStatus(printer, doc, hunts)
	return nil
}

// filterHunts drops completed hunts unless asked to keep them.
func filterHunts(hunts []*hunt.Hunt, includeCompleted bool) []*hunt.Hunt {
	if includeCompleted {
		return hunts
	}
	active := make([]*hunt.Hunt, 0, len(hunts))
	for _, h := range hunts {
		if h.Status != hunt.Completed {
			active = append(active, h)
		}
	}
	return active
}

// printHumanStatus renders the project state in human-readable form.
func printHumanStatus(printer *output.Printer, doc *config.Document, hunts []*hunt.Hunt) {
	printer.Section("Project")
	printer.KeyValue("Mode", doc.Mode)
	printer.KeyValue("Team size", strconv.Itoa(doc.TeamSize))

	columns := make([]string, len(doc.Workflow.Columns))
	for i, c := range doc.Workflow.Columns {
		columns[i] = c.Name
	}
	printer.KeyValue("Board", strings.Join(columns, " -> "))
	if doc.GitHub.Enabled {
		printer.KeyValue("GitHub", "project #"+strconv.Itoa(doc.GitHub.ProjectNumber))
	}
	if len(doc.Principles) > 0 {
		printer.KeyValue("Principles", strconv.Itoa(len(doc.Principles)))
	}

	printer.Section("Hunts")
	if len(hunts) == 0 {
		printer.Muted("No hunts. Start one with 'hunt start <feature>'.")
		return
	}

	rows := make([][]string, 0, len(hunts))
	for _, h := range hunts {
		phase := h.CurrentPhase
		if r, err := role.Get(h.CurrentPhase); err == nil {
			phase = r.Emoji + " " + r.Name
		}
		assignee := ""
		if len(h.PhaseHistory) > 0 {
			assignee = h.PhaseHistory[len(h.PhaseHistory)-1].Assignee
		}
		rows = append(rows, []string{shortID(h.ID), h.Feature, phase, assignee, string(h.Status)})
	}
	printer.Table([]string{"ID", "FEATURE", "PHASE", "ASSIGNEE", "STATUS"}, rows)
}

// shortID trims a hunt ID for table display; the full ID stays valid input
// everywhere a prefix is accepted.
func shortID(id string) string {
	const max = 24
	if len(id) <= max {
		return id
	}
	return id[:max]
}
