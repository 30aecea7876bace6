// Package main provides the entry point for the hunt CLI.
package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/specfirst/hunt/internal/board"
	"github.com/specfirst/hunt/internal/config"
	"github.com/specfirst/hunt/internal/output"
	"github.com/specfirst/hunt/internal/role"
	"github.com/specfirst/hunt/internal/scaffold"
	"github.com/specfirst/hunt/internal/workflow"
)

// initFlags holds the command-line flags for the init command.
type initFlags struct {
	teamSize int
	members  []string
	github   bool
	owner    string
	tools    []string
	force    bool
	dryRun   bool
}

// initStepResult tracks the result of a single initialization step.
type initStepResult struct {
	Name    string `json:"name"`
	Status  string `json:"status"` // "ok", "skipped", "failed", "dry_run"
	Message string `json:"message,omitempty"`
}

// newInitCmd creates the init command.
func newInitCmd() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a hunt project in the current directory",
		Long: `Initialize a hunt project in the current directory.

This command sets up everything needed to run the workflow:
  - Writes the project document (.hunt/hunt.json) with the roster,
    derived mode, and board column layout for the team size
  - Generates AI-assistant instruction files (optional)
  - Provisions GitHub labels and a project board (optional)

Members are given as username:role pairs. A solo member may omit the
role; they own every phase regardless.

Examples:
  hunt init --team-size 1 --member alice
  hunt init --team-size 2 --member alice:requirements --member bob:implementation
  hunt init --team-size 2 --member alice:spec --member bob:testing --scaffold copilot
  hunt init --team-size 3 --member a:requirements --member b:implementation --member c:deploy --github
  hunt init --team-size 2 --member alice:spec --member bob:deploy --dry-run`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().IntVarP(&flags.teamSize, "team-size", "n", 1, "Team size (1-4)")
	cmd.Flags().StringArrayVarP(&flags.members, "member", "m", nil, "Roster entry as username:role (repeatable)")
	cmd.Flags().BoolVar(&flags.github, "github", false, "Provision GitHub labels and a project board")
	cmd.Flags().StringVar(&flags.owner, "owner", "", "GitHub project owner (default: authenticated user)")
	cmd.Flags().StringSliceVar(&flags.tools, "scaffold", nil, "Generate instruction files for tools (e.g. copilot,cursor; 'all' for every built-in)")
	cmd.Flags().BoolVar(&flags.force, "force", false, "Overwrite an existing project document")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Show what would be done without doing it")

	return cmd
}

// runInit executes the init command.
func runInit(cmd *cobra.Command, flags *initFlags) error {
	printer := newPrinter(cmd)

	members, err := parseMembers(flags.members, flags.teamSize)
	if err != nil {
		err = wrapError(err)
		printer.Error(err)
		return err
	}

	manager := managerFor(cmd)
	if manager.Exists() && !flags.force {
		err := output.ConflictError("project already initialized at " + manager.Path() + " (use --force to overwrite)")
		printer.Error(err)
		return err
	}

	if flags.dryRun {
		return handleInitDryRun(cmd, printer, flags, members)
	}

	doc, err := manager.Initialize(flags.teamSize, members)
	if err != nil {
		err = wrapError(err)
		printer.Error(err)
		return err
	}

	steps := []initStepResult{{Name: "document", Status: "ok", Message: manager.Path()}}
	steps = append(steps, runInitScaffold(cmd, flags, doc)...)
	steps = append(steps, runInitGitHub(cmd, flags, manager)...)

	return outputInitResult(cmd, printer, doc, steps)
}

// parseMembers converts username:role pairs to roster members. A bare
// username is accepted for solo teams only; it defaults to the entry role.
func parseMembers(raw []string, teamSize int) ([]workflow.Member, error) {
	members := make([]workflow.Member, 0, len(raw))
	for _, pair := range raw {
		username, roleID, ok := strings.Cut(pair, ":")
		if !ok {
			if teamSize != 1 {
				return nil, output.UserError("member " + pair + " must be username:role")
			}
			roleID = role.Entry()
		}
		if _, err := role.Get(roleID); err != nil {
			return nil, err
		}
		members = append(members, workflow.Member{Username: username, Role: roleID})
	}
	return members, nil
}

// handleInitDryRun outputs what would be done without making changes.
func handleInitDryRun(cmd *cobra.Command, printer *output.Printer, flags *initFlags, members []workflow.Member) error {
	cfg, err := workflow.ConfigByTeamSize(flags.teamSize)
	if err != nil {
		err = wrapError(err)
		printer.Error(err)
		return err
	}
	if len(members) != flags.teamSize {
		err := wrapError(workflow.ErrTeamSizeMismatch)
		printer.Error(err)
		return err
	}

	columns := make([]string, len(cfg.Columns))
	for i, c := range cfg.Columns {
		columns[i] = c.Name
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"status":    "dry_run",
			"path":      managerFor(cmd).Path(),
			"team_size": flags.teamSize,
			"mode":      cfg.Mode,
			"columns":   columns,
			"scaffold":  resolveTools(flags.tools),
			"github":    flags.github,
		})
	}

	printer.Section("Dry run")
	printer.KeyValue("Document", managerFor(cmd).Path())
	printer.KeyValue("Mode", cfg.Mode)
	printer.KeyValue("Team size", strconv.Itoa(flags.teamSize))
	printer.KeyValue("Columns", strings.Join(columns, " -> "))
	if tools := resolveTools(flags.tools); len(tools) > 0 {
		printer.KeyValue("Scaffold", strings.Join(tools, ", "))
	}
	if flags.github {
		printer.KeyValue("GitHub", "labels + project board")
	}
	return nil
}

// resolveTools expands the "all" shorthand to every built-in tool.
func resolveTools(tools []string) []string {
	if len(tools) == 1 && tools[0] == "all" {
		return scaffold.Tools()
	}
	return tools
}

// runInitScaffold generates instruction files for the requested tools.
func runInitScaffold(cmd *cobra.Command, flags *initFlags, doc *config.Document) []initStepResult {
	tools := resolveTools(flags.tools)
	if len(tools) == 0 {
		return nil
	}

	ctx := scaffold.NewContext(projectName(cmd), doc)
	results, err := scaffold.WriteInstructions(projectDir(cmd), tools, ctx)
	if err != nil {
		return []initStepResult{{Name: "scaffold", Status: "failed", Message: err.Error()}}
	}

	paths := make([]string, len(results))
	for i, r := range results {
		paths[i] = r.Path
	}
	return []initStepResult{{Name: "scaffold", Status: "ok", Message: strings.Join(paths, ", ")}}
}

// runInitGitHub provisions the GitHub side and persists the board state.
func runInitGitHub(cmd *cobra.Command, flags *initFlags, manager *config.Manager) []initStepResult {
	if !flags.github {
		return nil
	}

	ctx := cmd.Context()
	if !board.IsAvailable(ctx) {
		return []initStepResult{{Name: "github", Status: "skipped", Message: "gh is not installed or not authenticated"}}
	}

	gh, err := board.Setup(ctx, board.NewGHCLI(flags.owner), projectName(cmd), manager.Document())
	if err != nil {
		return []initStepResult{{Name: "github", Status: "failed", Message: err.Error()}}
	}
	manager.Document().GitHub = gh
	if err := manager.Save(); err != nil {
		return []initStepResult{{Name: "github", Status: "failed", Message: err.Error()}}
	}
	return []initStepResult{{Name: "github", Status: "ok", Message: "project #" + strconv.Itoa(gh.ProjectNumber)}}
}

// outputInitResult outputs the final initialization result.
func outputInitResult(cmd *cobra.Command, printer *output.Printer, doc *config.Document, steps []initStepResult) error {
	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"status":    "ok",
			"path":      managerFor(cmd).Path(),
			"mode":      doc.Mode,
			"team_size": doc.TeamSize,
			"steps":     steps,
		})
	}

	printer.Success(map[string]any{"message": "Initialized " + doc.Mode + " project (team size " + strconv.Itoa(doc.TeamSize) + ")"})
	for _, step := range steps {
		switch step.Status {
		case "ok":
			printer.KeyValue(step.Name, step.Message)
		case "skipped":
			printer.Muted("%s skipped: %s", step.Name, step.Message)
		case "failed":
			printer.Warn("%s failed: %s", step.Name, step.Message)
		}
	}
	printer.Println()
	printer.Muted("Run 'hunt start <feature>' to begin a hunt.")
	return nil
}
