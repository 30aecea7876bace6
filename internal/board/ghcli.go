package board

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/specfirst/hunt/internal/output"
)

// GHCLI implements Collaborator by shelling out to the GitHub CLI.
// Owner selects the project owner; "@me" targets the authenticated user.
type GHCLI struct {
	Owner string
}

// NewGHCLI creates a gh-backed collaborator for the given owner.
// An empty owner defaults to "@me".
func NewGHCLI(owner string) *GHCLI {
	if owner == "" {
		owner = "@me"
	}
	return &GHCLI{Owner: owner}
}

// run executes a gh command, returning trimmed stdout.
// Returns an *output.ExitError on failure.
func run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "gh", args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return "", output.SystemError("gh not found: install the GitHub CLI and ensure it is in PATH")
		}
		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = err.Error()
		}
		return "", output.SystemErrorWithCause("gh command failed: "+errMsg, err)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// IsAvailable reports whether gh is installed and authenticated.
func IsAvailable(ctx context.Context) bool {
	_, err := run(ctx, "auth", "status")
	return err == nil
}

// CreateLabel creates (or updates) an issue label.
func (g *GHCLI) CreateLabel(ctx context.Context, name, color, description string) error {
	_, err := run(ctx, "label", "create", name, "--color", color, "--description", description, "--force")
	return err
}

// CreateIssue opens an issue and parses its number from the returned URL.
func (g *GHCLI) CreateIssue(ctx context.Context, title, body string, labels []string) (Issue, error) {
	args := []string{"issue", "create", "--title", title, "--body", body}
	for _, l := range labels {
		args = append(args, "--label", l)
	}
	url, err := run(ctx, args...)
	if err != nil {
		return Issue{}, err
	}

	number, err := issueNumberFromURL(url)
	if err != nil {
		return Issue{}, err
	}
	return Issue{Number: number, URL: url, Title: title}, nil
}

// issueNumberFromURL extracts the trailing issue number from a gh issue URL.
func issueNumberFromURL(url string) (int, error) {
	idx := strings.LastIndex(url, "/")
	if idx < 0 || idx == len(url)-1 {
		return 0, output.SystemError("unexpected issue URL from gh: " + url)
	}
	number, err := strconv.Atoi(url[idx+1:])
	if err != nil {
		return 0, output.SystemErrorWithCause("unexpected issue URL from gh: "+url, err)
	}
	return number, nil
}

// projectCreateResult is the JSON shape of `gh project create --format json`.
type projectCreateResult struct {
	ID     string `json:"id"`
	Number int    `json:"number"`
	URL    string `json:"url"`
}

// fieldCreateResult is the JSON shape of `gh project field-create --format json`.
type fieldCreateResult struct {
	ID      string `json:"id"`
	Options []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"options"`
}

// CreateProject creates a project board and a single-select "Phase" field
// with one option per workflow column.
func (g *GHCLI) CreateProject(ctx context.Context, title string, columns []string) (Project, error) {
	out, err := run(ctx, "project", "create", "--owner", g.Owner, "--title", title, "--format", "json")
	if err != nil {
		return Project{}, err
	}
	var created projectCreateResult
	if err := json.Unmarshal([]byte(out), &created); err != nil {
		return Project{}, output.SystemErrorWithCause("parsing gh project create output", err)
	}

	out, err = run(ctx,
		"project", "field-create", strconv.Itoa(created.Number),
		"--owner", g.Owner,
		"--name", "Phase",
		"--data-type", "SINGLE_SELECT",
		"--single-select-options", strings.Join(columns, ","),
		"--format", "json",
	)
	if err != nil {
		return Project{}, err
	}
	var field fieldCreateResult
	if err := json.Unmarshal([]byte(out), &field); err != nil {
		return Project{}, output.SystemErrorWithCause("parsing gh field-create output", err)
	}

	options := make(map[string]string, len(field.Options))
	for _, opt := range field.Options {
		options[opt.Name] = opt.ID
	}

	return Project{
		ID:            created.ID,
		Number:        created.Number,
		URL:           created.URL,
		StatusFieldID: field.ID,
		Columns:       options,
	}, nil
}

// itemAddResult is the JSON shape of `gh project item-add --format json`.
type itemAddResult struct {
	ID string `json:"id"`
}

// AddCard adds an issue to the board and returns the item ID.
func (g *GHCLI) AddCard(ctx context.Context, project Project, issueURL string) (string, error) {
	out, err := run(ctx,
		"project", "item-add", strconv.Itoa(project.Number),
		"--owner", g.Owner,
		"--url", issueURL,
		"--format", "json",
	)
	if err != nil {
		return "", err
	}
	var item itemAddResult
	if err := json.Unmarshal([]byte(out), &item); err != nil {
		return "", output.SystemErrorWithCause("parsing gh item-add output", err)
	}
	return item.ID, nil
}

// MoveCard sets the board item's Phase option to the named column.
func (g *GHCLI) MoveCard(ctx context.Context, project Project, itemID, column string) error {
	optionID, ok := project.Columns[column]
	if !ok {
		return output.UserError("unknown board column: " + column)
	}
	_, err := run(ctx,
		"project", "item-edit",
		"--id", itemID,
		"--project-id", project.ID,
		"--field-id", project.StatusFieldID,
		"--single-select-option-id", optionID,
	)
	return err
}

// AddComment comments on an issue.
func (g *GHCLI) AddComment(ctx context.Context, issueNumber int, body string) error {
	_, err := run(ctx, "issue", "comment", strconv.Itoa(issueNumber), "--body", body)
	return err
}

// rateLimitResult is the subset of `gh api rate_limit` the CLI reports.
type rateLimitResult struct {
	Resources struct {
		Core struct {
			Limit     int   `json:"limit"`
			Remaining int   `json:"remaining"`
			Reset     int64 `json:"reset"`
		} `json:"core"`
	} `json:"resources"`
}

// RateLimit reads the authenticated user's core API quota.
func (g *GHCLI) RateLimit(ctx context.Context) (RateLimit, error) {
	out, err := run(ctx, "api", "rate_limit")
	if err != nil {
		return RateLimit{}, err
	}
	var parsed rateLimitResult
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		return RateLimit{}, output.SystemErrorWithCause("parsing gh rate_limit output", err)
	}
	core := parsed.Resources.Core
	return RateLimit{
		Limit:     core.Limit,
		Remaining: core.Remaining,
		ResetAt:   time.Unix(core.Reset, 0).UTC(),
	}, nil
}

// Describe returns a short human string for a rate limit snapshot.
func (r RateLimit) Describe() string {
	return fmt.Sprintf("%d/%d remaining, resets %s", r.Remaining, r.Limit, r.ResetAt.Format(time.RFC3339))
}
