// Package main provides the entry point for the hunt CLI.
package main

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/specfirst/hunt/internal/output"
	"github.com/specfirst/hunt/internal/scaffold"
)

// newScaffoldCmd creates the scaffold command and its subcommands.
func newScaffoldCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scaffold",
		Short: "Generate instruction files and component stubs",
		Long: `Generate AI-assistant instruction files and UI component stubs.

Instruction templates resolve project-local overrides first
(.hunt/templates/<tool>.md), then user-global ones, then the built-ins.

Examples:
  hunt scaffold instructions              # All built-in tools
  hunt scaffold instructions copilot      # One tool
  hunt scaffold component LoginForm
  hunt scaffold list`,
	}

	cmd.AddCommand(newScaffoldInstructionsCmd(), newScaffoldComponentCmd(), newScaffoldListCmd())
	return cmd
}

func newScaffoldInstructionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "instructions [tool...]",
		Short: "Write AI-assistant instruction files for the project",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScaffoldInstructions(cmd, args)
		},
	}
}

func newScaffoldComponentCmd() *cobra.Command {
	var dirFlag string
	cmd := &cobra.Command{
		Use:   "component <Name>",
		Short: "Write a UI component stub with its test file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScaffoldComponent(cmd, args[0], dirFlag)
		},
	}
	cmd.Flags().StringVar(&dirFlag, "component-dir", filepath.Join("src", "components"), "Directory for component files")
	return cmd
}

func newScaffoldListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available instruction templates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScaffoldList(cmd)
		},
	}
}

// runScaffoldInstructions renders and writes instruction files.
func runScaffoldInstructions(cmd *cobra.Command, tools []string) error {
	printer := newPrinter(cmd)

	doc, err := managerFor(cmd).Load()
	if err != nil {
		err = wrapError(err)
		printer.Error(err)
		return err
	}

	if len(tools) == 0 {
		tools = scaffold.Tools()
	}

	ctx := scaffold.NewContext(projectName(cmd), doc)
	results, err := scaffold.WriteInstructions(projectDir(cmd), tools, ctx)
	if err != nil {
		err = wrapError(err)
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{"written": results})
	}

	printer.Success(map[string]any{"message": "Wrote instruction files for " + strings.Join(tools, ", ")})
	for _, r := range results {
		printer.KeyValue(r.Tool, r.Path+" ("+r.Source+")")
	}
	return nil
}

// runScaffoldComponent writes a component stub and its test.
func runScaffoldComponent(cmd *cobra.Command, name, dir string) error {
	printer := newPrinter(cmd)

	written, err := scaffold.WriteComponent(filepath.Join(projectDir(cmd), dir), name)
	if err != nil {
		err = output.UserErrorWithCause(err.Error(), err)
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{"component": name, "written": written})
	}
	printer.Success(map[string]any{"message": "Created component " + name})
	for _, path := range written {
		printer.Println("  " + path)
	}
	return nil
}

// runScaffoldList lists template names with their resolved sources.
func runScaffoldList(cmd *cobra.Command) error {
	printer := newPrinter(cmd)

	type templateInfo struct {
		Tool        string `json:"tool"`
		Target      string `json:"target"`
		Source      string `json:"source"`
		Description string `json:"description,omitempty"`
	}

	infos := make([]templateInfo, 0)
	for _, tool := range scaffold.Tools() {
		tmpl, err := scaffold.LoadTemplate(projectDir(cmd), tool)
		if err != nil {
			continue
		}
		infos = append(infos, templateInfo{
			Tool:        tool,
			Target:      tmpl.Target,
			Source:      tmpl.Source,
			Description: tmpl.Description,
		})
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{"templates": infos})
	}

	rows := make([][]string, len(infos))
	for i, info := range infos {
		rows[i] = []string{info.Tool, info.Target, info.Source}
	}
	printer.Table([]string{"TOOL", "TARGET", "SOURCE"}, rows)
	return nil
}
