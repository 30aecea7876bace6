// Package main provides the entry point for the hunt CLI.
package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/specfirst/hunt/internal/output"
	"github.com/specfirst/hunt/internal/tui"
)

// newBoardCmd creates the board command.
func newBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Browse the workflow board in the terminal",
		Long: `Browse the workflow board in the terminal.

Renders the project's columns with their owners and hunt cards. The
board is read-only; use 'hunt handoff' to move work.

Keys: left/right (or h/l) switch columns, q quits.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBoard(cmd)
		},
	}
}

// runBoard executes the board command.
func runBoard(cmd *cobra.Command) error {
	printer := newPrinter(cmd)

	if isJSONMode(cmd) {
		err := output.UserError("board is interactive; use 'hunt status --json' for structured output")
		printer.Error(err)
		return err
	}

	doc, err := managerFor(cmd).Load()
	if err != nil {
		err = wrapError(err)
		printer.Error(err)
		return err
	}

	program := tea.NewProgram(tui.NewModel(doc),
		tea.WithOutput(cmd.OutOrStdout()),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		err = output.SystemErrorWithCause("board rendering failed", err)
		printer.Error(err)
		return err
	}
	return nil
}
