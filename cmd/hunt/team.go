// Package main provides the entry point for the hunt CLI.
package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/specfirst/hunt/internal/config"
	"github.com/specfirst/hunt/internal/output"
	"github.com/specfirst/hunt/internal/role"
	"github.com/specfirst/hunt/internal/workflow"
)

// newTeamCmd creates the team command and its subcommands.
func newTeamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Show and manage the team roster",
		Long: `Show and manage the team roster.

Adding or removing a member changes the team size, which re-derives the
workflow mode and board column layout.

Examples:
  hunt team                     # Show the roster and board layout
  hunt team add bob testing     # Add a member with a role
  hunt team remove bob          # Remove a member`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTeamShow(cmd)
		},
	}

	cmd.AddCommand(newTeamShowCmd(), newTeamAddCmd(), newTeamRemoveCmd())
	return cmd
}

func newTeamShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the roster and board layout",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTeamShow(cmd)
		},
	}
}

func newTeamAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <username> <role>",
		Short: "Add a member to the roster",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTeamAdd(cmd, args[0], args[1])
		},
	}
}

func newTeamRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <username>",
		Short: "Remove a member from the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTeamRemove(cmd, args[0])
		},
	}
}

// runTeamShow lists the roster with each member's role and board column.
func runTeamShow(cmd *cobra.Command) error {
	printer := newPrinter(cmd)

	doc, err := managerFor(cmd).Load()
	if err != nil {
		err = wrapError(err)
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"mode":      doc.Mode,
			"team_size": doc.TeamSize,
			"members":   doc.Members,
			"columns":   doc.Workflow.Columns,
		})
	}

	printHumanRoster(printer, doc)
	return nil
}

// printHumanRoster renders the roster table and column layout.
func printHumanRoster(printer *output.Printer, doc *config.Document) {
	printer.Section("Team")
	printer.KeyValue("Mode", doc.Mode)
	printer.KeyValue("Size", strconv.Itoa(doc.TeamSize))

	rows := make([][]string, 0, len(doc.Members))
	for _, m := range doc.Members {
		r, err := role.Get(m.Role)
		roleLabel := m.Role
		if err == nil {
			roleLabel = printer.RoleTag(r.Emoji, r.Name, r.Color)
		}
		column := ""
		if col, colErr := workflow.ColumnForRole(doc.TeamSize, m.Role); colErr == nil {
			column = col.Name
		}
		rows = append(rows, []string{m.Username, roleLabel, column})
	}
	printer.Println()
	printer.Table([]string{"MEMBER", "ROLE", "COLUMN"}, rows)

	printer.Section("Board")
	for _, col := range doc.Workflow.Columns {
		printer.KeyValue(col.Name, strconv.Itoa(len(col.Roles))+" role(s)")
	}
}

// runTeamAdd adds a member and reports the re-derived layout.
func runTeamAdd(cmd *cobra.Command, username, roleID string) error {
	printer := newPrinter(cmd)

	manager := managerFor(cmd)
	if _, err := manager.Load(); err != nil {
		err = wrapError(err)
		printer.Error(err)
		return err
	}

	members, err := manager.AddMember(username, roleID)
	if err != nil {
		err = wrapError(err)
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"message":   "member added",
			"username":  username,
			"role":      roleID,
			"team_size": len(members),
			"mode":      manager.Document().Mode,
		})
	}
	printer.Success(map[string]any{"message": "Added " + username + " as " + roleID + " (team size now " + strconv.Itoa(len(members)) + ")"})
	return nil
}

// runTeamRemove removes a member and reports the re-derived layout.
func runTeamRemove(cmd *cobra.Command, username string) error {
	printer := newPrinter(cmd)

	manager := managerFor(cmd)
	if _, err := manager.Load(); err != nil {
		err = wrapError(err)
		printer.Error(err)
		return err
	}

	members, err := manager.RemoveMember(username)
	if err != nil {
		err = wrapError(err)
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"message":   "member removed",
			"username":  username,
			"team_size": len(members),
			"mode":      manager.Document().Mode,
		})
	}
	printer.Success(map[string]any{"message": "Removed " + username + " (team size now " + strconv.Itoa(len(members)) + ")"})
	return nil
}
