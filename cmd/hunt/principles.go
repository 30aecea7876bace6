// Package main provides the entry point for the hunt CLI.
package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// newPrinciplesCmd creates the principles command and its subcommands.
func newPrinciplesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "principles",
		Short: "Manage the project's constitutional principles",
		Long: `Manage the project's constitutional principles.

Principles are short, binding statements injected into generated
instruction files so every assistant works under the same rules.

Examples:
  hunt principles
  hunt principles add "All public APIs ship with a spec section"
  hunt principles remove "All public APIs ship with a spec section"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPrinciplesList(cmd)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List recorded principles",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runPrinciplesList(cmd)
			},
		},
		&cobra.Command{
			Use:   "add <text>",
			Short: "Record a principle",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runPrinciplesAdd(cmd, strings.Join(args, " "))
			},
		},
		&cobra.Command{
			Use:   "remove <text>",
			Short: "Remove a principle by exact text",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runPrinciplesRemove(cmd, strings.Join(args, " "))
			},
		},
	)
	return cmd
}

// runPrinciplesList lists the recorded principles.
func runPrinciplesList(cmd *cobra.Command) error {
	printer := newPrinter(cmd)

	doc, err := managerFor(cmd).Load()
	if err != nil {
		err = wrapError(err)
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{"principles": doc.Principles})
	}

	if len(doc.Principles) == 0 {
		printer.Muted("No principles recorded. Add one with 'hunt principles add <text>'.")
		return nil
	}
	printer.Section("Principles")
	for i, p := range doc.Principles {
		printer.Println("  " + strconv.Itoa(i+1) + ". " + p)
	}
	return nil
}

// runPrinciplesAdd records a new principle.
func runPrinciplesAdd(cmd *cobra.Command, text string) error {
	printer := newPrinter(cmd)

	manager := managerFor(cmd)
	if _, err := manager.Load(); err != nil {
		err = wrapError(err)
		printer.Error(err)
		return err
	}
	if err := manager.AddPrinciple(text); err != nil {
		err = wrapError(err)
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{"message": "principle added", "count": len(manager.Document().Principles)})
	}
	printer.Success(map[string]any{"message": "Recorded principle."})
	return nil
}

// runPrinciplesRemove removes a principle by exact text.
func runPrinciplesRemove(cmd *cobra.Command, text string) error {
	printer := newPrinter(cmd)

	manager := managerFor(cmd)
	if _, err := manager.Load(); err != nil {
		err = wrapError(err)
		printer.Error(err)
		return err
	}
	if err := manager.RemovePrinciple(text); err != nil {
		err = wrapError(err)
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{"message": "principle removed", "count": len(manager.Document().Principles)})
	}
	printer.Success(map[string]any{"message": "Removed principle."})
	return nil
}
