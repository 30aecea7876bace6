// Package main provides the entry point for the hunt CLI.
package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/specfirst/hunt/internal/config"
	"github.com/specfirst/hunt/internal/hunt"
	"github.com/specfirst/hunt/internal/output"
	"github.com/specfirst/hunt/internal/role"
)

// handoffFlags holds the command-line flags for the handoff command.
type handoffFlags struct {
	toRole string
	note   string
}

// newHandoffCmd creates the handoff command.
func newHandoffCmd() *cobra.Command {
	flags := &handoffFlags{}

	cmd := &cobra.Command{
		Use:   "handoff <hunt-id>",
		Short: "Hand a hunt off to the next role in the sequence",
		Long: `Hand a hunt off to the next role in the sequence.

Without --to the hunt advances to the immediate successor of its current
phase. A hunt sitting in the terminal phase is completed instead.
Skipping phases is rejected.

The hunt ID accepts any unique prefix of at least four characters.

Examples:
  hunt handoff hu_2026-03-02T09:30:00Z_login-page
  hunt handoff hu_2026 --note "acceptance criteria in docs/login.md"
  hunt handoff hu_2026 --to implementation`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHandoff(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.toRole, "to", "", "Target role (default: the next role in sequence)")
	cmd.Flags().StringVar(&flags.note, "note", "", "Context note recorded with the handoff")

	return cmd
}

// runHandoff executes the handoff command.
func runHandoff(cmd *cobra.Command, huntID string, flags *handoffFlags) error {
	printer := newPrinter(cmd)

	manager := managerFor(cmd)
	doc, err := manager.Load()
	if err != nil {
		err = wrapError(err)
		printer.Error(err)
		return err
	}

	h, err := manager.Hunt(huntID)
	if err != nil {
		err = wrapError(err)
		printer.Error(err)
		return err
	}

	// A terminal-phase hunt with no explicit target completes instead of
	// handing off; there is no next role.
	if flags.toRole == "" && h.CurrentPhase == role.Terminal() {
		return completeHunt(printer, manager, h)
	}

	toRole := flags.toRole
	if toRole == "" {
		next, nextErr := role.Next(h.CurrentPhase)
		if nextErr != nil {
			err = wrapError(nextErr)
			printer.Error(err)
			return err
		}
		toRole = next
	}

	coordinator := hunt.NewCoordinator(doc.Members)
	record, err := coordinator.ExecuteHandoff(h, h.CurrentPhase, toRole, flags.note)
	if err != nil {
		err = wrapError(err)
		printer.Error(err)
		return err
	}
	if err := manager.Save(); err != nil {
		err = wrapError(err)
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"hunt_id":     record.HuntID,
			"from_role":   record.FromRole,
			"to_role":     record.ToRole,
			"from_member": record.FromMember,
			"to_member":   record.ToMember,
			"timestamp":   record.Timestamp.Format(time.RFC3339),
		})
	}

	printHumanHandoff(printer, record)
	return nil
}

// completeHunt marks a terminal-phase hunt completed and persists.
func completeHunt(printer *output.Printer, manager *config.Manager, h *hunt.Hunt) error {
	if err := h.Complete(time.Now()); err != nil {
		err = wrapError(err)
		printer.Error(err)
		return err
	}
	if err := manager.Save(); err != nil {
		err = wrapError(err)
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"hunt_id": h.ID,
			"status":  string(h.Status),
		})
	}
	printer.Success(map[string]any{"message": "Completed hunt " + h.ID})
	return nil
}

// printHumanHandoff renders an executed handoff.
func printHumanHandoff(printer *output.Printer, record hunt.HandoffRecord) {
	from, to := record.FromRole, record.ToRole
	if r, err := role.Get(record.FromRole); err == nil {
		from = printer.RoleTag(r.Emoji, r.Name, r.Color)
	}
	if r, err := role.Get(record.ToRole); err == nil {
		to = printer.RoleTag(r.Emoji, r.Name, r.Color)
	}

	printer.Success(map[string]any{"message": "Handed off " + record.HuntID})
	printer.KeyValue("From", from+" (@"+record.FromMember+")")
	printer.KeyValue("To", to+" (@"+record.ToMember+")")
	if record.Context != "" {
		printer.KeyValue("Note", record.Context)
	}
}
