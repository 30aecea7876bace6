package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/specfirst/hunt/internal/hunt"
	"github.com/specfirst/hunt/internal/workflow"
)

// DocumentDirName is the directory under the project root holding the document.
const DocumentDirName = ".hunt"

// DocumentFileName is the document file name inside DocumentDirName.
const DocumentFileName = "hunt.json"

// Manager owns the project document. All roster, principle, and hunt
// mutations go through it; external code never writes the file directly.
// The design assumes one CLI invocation at a time; concurrent writers to
// the same project directory can race.
type Manager struct {
	projectDir string
	doc        *Document
}

// NewManager creates a manager rooted at the given project directory.
// Nothing is read until Load or Initialize.
func NewManager(projectDir string) *Manager {
	return &Manager{projectDir: projectDir}
}

// Path returns the document file path.
func (m *Manager) Path() string {
	return filepath.Join(m.projectDir, DocumentDirName, DocumentFileName)
}

// Exists reports whether a persisted document is present.
func (m *Manager) Exists() bool {
	_, err := os.Stat(m.Path())
	return err == nil
}

// Document returns the loaded document, or nil before Load/Initialize.
func (m *Manager) Document() *Document {
	return m.doc
}

// Initialize validates the roster, derives the mode and column layout, and
// persists a fresh document. The roster length must equal teamSize.
func (m *Manager) Initialize(teamSize int, members []workflow.Member) (*Document, error) {
	cfg, err := workflow.ConfigByTeamSize(teamSize)
	if err != nil {
		return nil, err
	}
	if len(members) != teamSize {
		return nil, fmt.Errorf("%w: %d members for team size %d", workflow.ErrTeamSizeMismatch, len(members), teamSize)
	}
	if err := validateRoster(members); err != nil {
		return nil, err
	}

	m.doc = &Document{
		Version:  SchemaVersion,
		TeamSize: teamSize,
		Mode:     deriveMode(teamSize),
		Members:  members,
		Workflow: Workflow{Columns: cfg.Columns},
	}
	if err := m.Save(); err != nil {
		return nil, err
	}
	return m.doc, nil
}

// Load reads and validates the persisted document.
// Returns ErrNoConfiguration when no document exists.
func (m *Manager) Load() (*Document, error) {
	data, err := os.ReadFile(m.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: run 'hunt init' first", ErrNoConfiguration)
		}
		return nil, fmt.Errorf("reading %s: %w", m.Path(), err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", m.Path(), err)
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid document %s: %w", m.Path(), err)
	}

	m.doc = &doc
	return m.doc, nil
}

// Save validates and persists the current document atomically.
// Returns ErrNoConfiguration when nothing has been initialized or loaded.
func (m *Manager) Save() error {
	if m.doc == nil {
		return ErrNoConfiguration
	}
	if err := m.doc.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(m.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(m.Path())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	return writeFileAtomic(m.Path(), data, 0o644)
}

// AddMember appends a member, grows the team size, re-derives the mode and
// column layout, and persists. Fails with ErrConflict when the roster is
// full, the username exists, or the role is taken.
func (m *Manager) AddMember(username, roleID string) ([]workflow.Member, error) {
	if m.doc == nil {
		return nil, ErrNoConfiguration
	}
	if len(m.doc.Members) >= workflow.MaxTeamSize {
		return nil, fmt.Errorf("%w: roster already has %d members", ErrConflict, workflow.MaxTeamSize)
	}

	next := append(append([]workflow.Member{}, m.doc.Members...), workflow.Member{Username: username, Role: roleID})
	if err := validateRoster(next); err != nil {
		return nil, err
	}
	return m.applyRoster(next)
}

// RemoveMember drops a member by username, shrinks the team size, re-derives
// the mode and column layout, and persists. Fails with ErrNotFound when the
// username is absent, and with ErrInvalidTeamSize when removal would empty
// the roster.
func (m *Manager) RemoveMember(username string) ([]workflow.Member, error) {
	if m.doc == nil {
		return nil, ErrNoConfiguration
	}

	next := make([]workflow.Member, 0, len(m.doc.Members))
	found := false
	for _, member := range m.doc.Members {
		if member.Username == username {
			found = true
			continue
		}
		next = append(next, member)
	}
	if !found {
		return nil, fmt.Errorf("%w: member %q", ErrNotFound, username)
	}
	return m.applyRoster(next)
}

// applyRoster installs a new roster, re-deriving size, mode, and columns.
func (m *Manager) applyRoster(members []workflow.Member) ([]workflow.Member, error) {
	cfg, err := workflow.ConfigByTeamSize(len(members))
	if err != nil {
		return nil, err
	}

	m.doc.Members = members
	m.doc.TeamSize = len(members)
	m.doc.Mode = deriveMode(len(members))
	m.doc.Workflow = Workflow{Columns: cfg.Columns}
	if err := m.Save(); err != nil {
		return nil, err
	}
	return m.doc.Members, nil
}

// ColumnForRole returns the board column carrying a role under the stored
// team size.
func (m *Manager) ColumnForRole(roleID string) (workflow.Column, error) {
	if m.doc == nil {
		return workflow.Column{}, ErrNoConfiguration
	}
	return workflow.ColumnForRole(m.doc.TeamSize, roleID)
}

// NextColumn returns the column after the one carrying a role, or "" at the
// end of the board.
func (m *Manager) NextColumn(roleID string) (string, error) {
	col, err := m.ColumnForRole(roleID)
	if err != nil {
		return "", err
	}
	return workflow.NextColumn(m.doc.TeamSize, col.ID)
}

// --- Principles ---

// AddPrinciple appends a constitutional principle and persists.
// Duplicates are rejected with ErrConflict.
func (m *Manager) AddPrinciple(text string) error {
	if m.doc == nil {
		return ErrNoConfiguration
	}
	for _, p := range m.doc.Principles {
		if p == text {
			return fmt.Errorf("%w: principle already recorded", ErrConflict)
		}
	}
	m.doc.Principles = append(m.doc.Principles, text)
	return m.Save()
}

// RemovePrinciple removes a principle by exact text and persists.
// Fails with ErrNotFound when absent.
func (m *Manager) RemovePrinciple(text string) error {
	if m.doc == nil {
		return ErrNoConfiguration
	}
	for i, p := range m.doc.Principles {
		if p == text {
			m.doc.Principles = append(m.doc.Principles[:i], m.doc.Principles[i+1:]...)
			return m.Save()
		}
	}
	return fmt.Errorf("%w: principle %q", ErrNotFound, text)
}

// --- Hunts ---

// AddHunt records a new hunt and persists.
func (m *Manager) AddHunt(h *hunt.Hunt) error {
	if m.doc == nil {
		return ErrNoConfiguration
	}
	for _, existing := range m.doc.Hunts {
		if existing.ID == h.ID {
			return fmt.Errorf("%w: hunt %s already exists", ErrConflict, h.ID)
		}
	}
	m.doc.Hunts = append(m.doc.Hunts, h)
	return m.Save()
}

// Hunt returns a hunt by ID, or by unique ID prefix as a convenience.
// Fails with ErrNotFound when no hunt matches or the prefix is ambiguous.
func (m *Manager) Hunt(id string) (*hunt.Hunt, error) {
	if m.doc == nil {
		return nil, ErrNoConfiguration
	}
	var match *hunt.Hunt
	for _, h := range m.doc.Hunts {
		if h.ID == id {
			return h, nil
		}
		if len(id) >= 4 && len(h.ID) > len(id) && h.ID[:len(id)] == id {
			if match != nil {
				return nil, fmt.Errorf("%w: hunt prefix %q is ambiguous", ErrNotFound, id)
			}
			match = h
		}
	}
	if match == nil {
		return nil, fmt.Errorf("%w: hunt %q", ErrNotFound, id)
	}
	return match, nil
}

// Hunts returns all recorded hunts.
func (m *Manager) Hunts() []*hunt.Hunt {
	if m.doc == nil {
		return nil
	}
	return m.doc.Hunts
}
