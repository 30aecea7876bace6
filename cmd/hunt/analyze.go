// Package main provides the entry point for the hunt CLI.
package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/specfirst/hunt/internal/complexity"
	"github.com/specfirst/hunt/internal/output"
	"github.com/specfirst/hunt/internal/role"
)

// newAnalyzeCmd creates the analyze command.
func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <description>",
		Short: "Score a task description for complexity",
		Long: `Score a free-text task description for complexity.

The score is a keyword heuristic. The result classifies the task as
simple, moderate, or complex, detects the task type, estimates effort,
and recommends whether to take the spec-first path. When the text
matches a role's keywords, the best-matching role is suggested as the
starting point.

Examples:
  hunt analyze "fix typo in README"
  hunt analyze "design a distributed microservice architecture platform"
  hunt analyze "build admin dashboard with authentication" --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, strings.Join(args, " "))
		},
	}
}

// runAnalyze executes the analyze command.
func runAnalyze(cmd *cobra.Command, description string) error {
	printer := newPrinter(cmd)

	if strings.TrimSpace(description) == "" {
		err := output.UserError("description must not be empty")
		printer.Error(err)
		return err
	}

	analysis := complexity.Analyze(description)

	suggestedRole := ""
	if r, err := role.FindByKeyword(description); err == nil {
		suggestedRole = r.ID
	}

	if printer.IsJSON() {
		data := map[string]any{
			"level":                  string(analysis.Level),
			"score":                  analysis.Score,
			"task_type":              analysis.TaskType,
			"estimated_effort":       analysis.EstimatedEffort,
			"spec_first_recommended": analysis.SpecFirstRecommended,
		}
		if len(analysis.Features) > 0 {
			data["features"] = analysis.Features
		}
		if suggestedRole != "" {
			data["suggested_role"] = suggestedRole
		}
		return printer.Success(data)
	}

	printHumanAnalysis(printer, analysis, suggestedRole)
	return nil
}

// printHumanAnalysis renders the analysis in human-readable form.
func printHumanAnalysis(printer *output.Printer, analysis complexity.Analysis, suggestedRole string) {
	printer.Section("Analysis")
	printer.KeyValue("Complexity", string(analysis.Level)+" (score "+strconv.Itoa(analysis.Score)+")")
	printer.KeyValue("Task type", analysis.TaskType)
	printer.KeyValue("Estimated effort", analysis.EstimatedEffort)

	if suggestedRole != "" {
		if r, err := role.Get(suggestedRole); err == nil {
			printer.KeyValue("Suggested role", printer.RoleTag(r.Emoji, r.Name, r.Color))
		}
	}

	if len(analysis.Features) > 0 {
		printer.Section("Detected features")
		for _, f := range analysis.Features {
			printer.Println("  - " + f)
		}
	}

	printer.Println()
	if analysis.SpecFirstRecommended {
		printer.Success(map[string]any{"message": "Spec-first path recommended: start with 'hunt start' and hand off through the sequence."})
		return
	}
	printer.Muted("Spec-first path optional for this task.")
}
