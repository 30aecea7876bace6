// Package board defines the issue/board collaborator interface the workflow
// core drives, and its gh-CLI-backed implementation. The core treats every
// call as a fallible remote operation; failures are wrapped with context and
// never retried.
package board

import (
	"context"
	"fmt"
	"time"

	"github.com/specfirst/hunt/internal/config"
	"github.com/specfirst/hunt/internal/role"
)

// Issue is a created or referenced GitHub issue.
type Issue struct {
	Number int    `json:"number"`
	URL    string `json:"url"`
	Title  string `json:"title"`
}

// Project is a created project board. Columns maps column display names to
// the board's single-select option IDs, used when moving cards.
type Project struct {
	ID            string            `json:"id"`
	Number        int               `json:"number"`
	URL           string            `json:"url,omitempty"`
	StatusFieldID string            `json:"status_field_id,omitempty"`
	Columns       map[string]string `json:"columns,omitempty"`
}

// RateLimit is the remote API quota snapshot.
type RateLimit struct {
	Limit     int       `json:"limit"`
	Remaining int       `json:"remaining"`
	ResetAt   time.Time `json:"reset_at"`
}

// Collaborator is the abstract issue/board surface. The production
// implementation shells out to gh; tests plug in a fake without touching the
// workflow core.
type Collaborator interface {
	CreateLabel(ctx context.Context, name, color, description string) error
	CreateIssue(ctx context.Context, title, body string, labels []string) (Issue, error)
	CreateProject(ctx context.Context, title string, columns []string) (Project, error)
	AddCard(ctx context.Context, project Project, issueURL string) (itemID string, err error)
	MoveCard(ctx context.Context, project Project, itemID, column string) error
	AddComment(ctx context.Context, issueNumber int, body string) error
	RateLimit(ctx context.Context) (RateLimit, error)
}

// labelColors maps role IDs to label hex colors.
var labelColors = map[string]string{
	role.Requirements:   "1f6feb",
	role.Spec:           "8250df",
	role.Implementation: "bf8700",
	role.Testing:        "1a7f37",
	role.Deploy:         "cf222e",
}

// labelFor returns the label name for a role.
func labelFor(roleID string) string {
	return "phase:" + roleID
}

// Setup provisions the remote side of a project: one label per role and a
// project board whose columns mirror the configured workflow. Returns the
// GitHub state to persist in the project document.
func Setup(ctx context.Context, c Collaborator, projectTitle string, doc *config.Document) (config.GitHub, error) {
	for _, r := range role.All() {
		desc := r.Name + " phase"
		if err := c.CreateLabel(ctx, labelFor(r.ID), labelColors[r.ID], desc); err != nil {
			return config.GitHub{}, fmt.Errorf("github: creating label %s: %w", labelFor(r.ID), err)
		}
	}

	columns := make([]string, len(doc.Workflow.Columns))
	for i, col := range doc.Workflow.Columns {
		columns[i] = col.Name
	}

	project, err := c.CreateProject(ctx, projectTitle, columns)
	if err != nil {
		return config.GitHub{}, fmt.Errorf("github: creating project board: %w", err)
	}

	return config.GitHub{
		Enabled:       true,
		ProjectID:     project.ID,
		ProjectNumber: project.Number,
		Columns:       columns,
		LabelsCreated: true,
	}, nil
}

// FileHunt opens an issue for a new hunt, labels it with the entry phase,
// and adds it to the board when one is configured. Returns the issue and
// the board item ID (empty when no board is set up).
func FileHunt(ctx context.Context, c Collaborator, gh config.GitHub, title, body string) (Issue, string, error) {
	issue, err := c.CreateIssue(ctx, title, body, []string{labelFor(role.Entry())})
	if err != nil {
		return Issue{}, "", fmt.Errorf("github: creating issue: %w", err)
	}

	if gh.ProjectID == "" {
		return issue, "", nil
	}
	itemID, err := c.AddCard(ctx, Project{ID: gh.ProjectID, Number: gh.ProjectNumber}, issue.URL)
	if err != nil {
		return Issue{}, "", fmt.Errorf("github: adding card for issue #%d: %w", issue.Number, err)
	}
	return issue, itemID, nil
}
