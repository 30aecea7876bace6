// Package config owns the per-project configuration document: the roster,
// the derived workflow mode, principles, hunts, and GitHub board state. The
// document is a single versioned JSON file under .hunt/ in the project root,
// mutated only through the Manager.
package config

import (
	"errors"
	"fmt"

	"github.com/specfirst/hunt/internal/hunt"
	"github.com/specfirst/hunt/internal/role"
	"github.com/specfirst/hunt/internal/workflow"
)

// SchemaVersion is the current document schema version.
const SchemaVersion = "hunt.project/v1"

var (
	// ErrNoConfiguration is returned when no document has been initialized
	// or persisted for the project.
	ErrNoConfiguration = errors.New("no configuration")
	// ErrNotFound is returned when a member or principle is absent.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when an addition collides with existing state:
	// duplicate username, duplicate role, or a full roster.
	ErrConflict = errors.New("conflict")
)

// GitHub records the state of the optional GitHub board integration.
type GitHub struct {
	Enabled       bool     `json:"enabled"`
	ProjectID     string   `json:"project_id,omitempty"`
	ProjectNumber int      `json:"project_number,omitempty"`
	Columns       []string `json:"columns,omitempty"`
	LabelsCreated bool     `json:"labels_created"`
}

// Workflow is the persisted column layout, re-derived from the mode table
// whenever the roster changes.
type Workflow struct {
	Columns []workflow.Column `json:"columns"`
}

// Document is the on-disk structure of .hunt/hunt.json.
type Document struct {
	Version    string            `json:"version"`
	TeamSize   int               `json:"team_size"`
	Mode       string            `json:"mode"`
	Members    []workflow.Member `json:"members"`
	Workflow   Workflow          `json:"workflow"`
	GitHub     GitHub            `json:"github"`
	Principles []string          `json:"principles,omitempty"`
	Hunts      []*hunt.Hunt      `json:"hunts,omitempty"`
}

// Validate checks the document's invariants. Called on load and before save.
func (d *Document) Validate() error {
	if d.Version != SchemaVersion {
		return fmt.Errorf("unsupported document version %q (want %s)", d.Version, SchemaVersion)
	}
	if _, err := workflow.ConfigByTeamSize(d.TeamSize); err != nil {
		return err
	}
	if len(d.Members) != d.TeamSize {
		return fmt.Errorf("%w: %d members for team size %d", workflow.ErrTeamSizeMismatch, len(d.Members), d.TeamSize)
	}
	return validateRoster(d.Members)
}

// validateRoster checks usernames and roles: non-empty unique usernames,
// known unique roles.
func validateRoster(members []workflow.Member) error {
	usernames := make(map[string]bool, len(members))
	roles := make(map[string]bool, len(members))
	for _, m := range members {
		if m.Username == "" {
			return fmt.Errorf("%w: member with empty username", ErrConflict)
		}
		if _, err := role.Get(m.Role); err != nil {
			return err
		}
		if usernames[m.Username] {
			return fmt.Errorf("%w: duplicate username %q", ErrConflict, m.Username)
		}
		if roles[m.Role] {
			return fmt.Errorf("%w: role %q assigned twice", ErrConflict, m.Role)
		}
		usernames[m.Username] = true
		roles[m.Role] = true
	}
	return nil
}

// deriveMode returns the mode string for a team size.
func deriveMode(teamSize int) string {
	if teamSize == 1 {
		return "solo"
	}
	return "team"
}
