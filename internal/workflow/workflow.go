// Package workflow holds the fixed board configurations for team sizes 1-4.
// Each configuration partitions the five roles into exactly teamSize
// role-bearing columns, followed by a roleless done column. The tables are
// immutable and loaded at process start.
package workflow

import (
	"errors"
	"fmt"

	"github.com/specfirst/hunt/internal/role"
)

var (
	// ErrInvalidTeamSize is returned for team sizes outside 1-4.
	ErrInvalidTeamSize = errors.New("invalid team size")
	// ErrUnknownColumn is returned when a column ID is absent from a configuration.
	ErrUnknownColumn = errors.New("unknown column")
	// ErrTeamSizeMismatch is returned when a roster's length does not match the team size.
	ErrTeamSizeMismatch = errors.New("team size mismatch")
)

// MinTeamSize and MaxTeamSize bound the supported configurations.
const (
	MinTeamSize = 1
	MaxTeamSize = 4
)

// Column is one stage of the workflow board. Roles lists the role IDs the
// column represents; a nil Roles means the column is purely presentational
// (no owner). Position values are unique and contiguous from 1.
type Column struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Roles    []string `json:"roles"`
	Position int      `json:"position"`
}

// Config is the board configuration for one team size.
type Config struct {
	TeamSize int      `json:"team_size"`
	Mode     string   `json:"mode"`
	Columns  []Column `json:"columns"`
}

// Member pairs a username with their single assigned role.
type Member struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// configs maps team size to its fixed configuration. Within each size the
// role-bearing columns partition the full role set: no duplicates, no
// omissions.
var configs = map[int]Config{
	1: {
		TeamSize: 1,
		Mode:     "solo",
		Columns: []Column{
			{ID: "flow", Name: "Flow", Roles: []string{role.Requirements, role.Spec, role.Implementation, role.Testing, role.Deploy}, Position: 1},
			{ID: "done", Name: "Done", Position: 2},
		},
	},
	2: {
		TeamSize: 2,
		Mode:     "team",
		Columns: []Column{
			{ID: "plan", Name: "Plan", Roles: []string{role.Requirements, role.Spec}, Position: 1},
			{ID: "build", Name: "Build", Roles: []string{role.Implementation, role.Testing, role.Deploy}, Position: 2},
			{ID: "done", Name: "Done", Position: 3},
		},
	},
	3: {
		TeamSize: 3,
		Mode:     "team",
		Columns: []Column{
			{ID: "plan", Name: "Plan", Roles: []string{role.Requirements, role.Spec}, Position: 1},
			{ID: "build", Name: "Build", Roles: []string{role.Implementation}, Position: 2},
			{ID: "verify", Name: "Verify & Ship", Roles: []string{role.Testing, role.Deploy}, Position: 3},
			{ID: "done", Name: "Done", Position: 4},
		},
	},
	4: {
		TeamSize: 4,
		Mode:     "team",
		Columns: []Column{
			{ID: "requirements", Name: "Requirements", Roles: []string{role.Requirements}, Position: 1},
			{ID: "spec", Name: "Specification", Roles: []string{role.Spec}, Position: 2},
			{ID: "build", Name: "Build", Roles: []string{role.Implementation}, Position: 3},
			{ID: "verify", Name: "Verify & Ship", Roles: []string{role.Testing, role.Deploy}, Position: 4},
			{ID: "done", Name: "Done", Position: 5},
		},
	},
}

// ConfigByTeamSize returns the fixed configuration for a team size.
// Returns ErrInvalidTeamSize outside 1-4.
func ConfigByTeamSize(n int) (Config, error) {
	cfg, ok := configs[n]
	if !ok {
		return Config{}, fmt.Errorf("%w: %d (must be %d-%d)", ErrInvalidTeamSize, n, MinTeamSize, MaxTeamSize)
	}
	return cfg, nil
}

// ColumnSequence returns the column IDs for a team size sorted by position.
func ColumnSequence(n int) ([]string, error) {
	cfg, err := ConfigByTeamSize(n)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(cfg.Columns))
	for i, c := range cfg.Columns {
		ids[i] = c.ID
	}
	return ids, nil
}

// NextColumn returns the column following columnID for a team size.
// Returns ("", nil) at the last column.
// Returns ErrUnknownColumn if columnID is absent from the configuration.
func NextColumn(n int, columnID string) (string, error) {
	cfg, err := ConfigByTeamSize(n)
	if err != nil {
		return "", err
	}
	for i, c := range cfg.Columns {
		if c.ID != columnID {
			continue
		}
		if i == len(cfg.Columns)-1 {
			return "", nil
		}
		return cfg.Columns[i+1].ID, nil
	}
	return "", fmt.Errorf("%w: %q in team-size-%d config", ErrUnknownColumn, columnID, n)
}

// ColumnForRole returns the column that lists roleID for a team size.
// Returns ErrUnknownColumn if no column carries the role (roleless columns
// never match).
func ColumnForRole(n int, roleID string) (Column, error) {
	cfg, err := ConfigByTeamSize(n)
	if err != nil {
		return Column{}, err
	}
	for _, c := range cfg.Columns {
		for _, r := range c.Roles {
			if r == roleID {
				return c, nil
			}
		}
	}
	return Column{}, fmt.Errorf("%w: no column carries role %q", ErrUnknownColumn, roleID)
}

// MapMembersToColumns assigns each role-bearing column the username of the
// member whose role the column lists. If more than one member matches a
// column (possible when a roster's roles cluster in one column), the member
// listed first wins; this mirrors the roster order deterministically rather
// than resolving the ambiguity differently per run. Columns with no roles
// and columns no member covers are absent from the result.
// Returns ErrTeamSizeMismatch when len(members) != n.
func MapMembersToColumns(n int, members []Member) (map[string]string, error) {
	cfg, err := ConfigByTeamSize(n)
	if err != nil {
		return nil, err
	}
	if len(members) != n {
		return nil, fmt.Errorf("%w: %d members for team size %d", ErrTeamSizeMismatch, len(members), n)
	}

	owners := make(map[string]string)
	for _, c := range cfg.Columns {
		for _, m := range members {
			if columnHasRole(c, m.Role) {
				owners[c.ID] = m.Username
				break
			}
		}
	}
	return owners, nil
}

func columnHasRole(c Column, roleID string) bool {
	for _, r := range c.Roles {
		if r == roleID {
			return true
		}
	}
	return false
}
