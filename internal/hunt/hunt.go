// Package hunt tracks units of feature work ("hunts") moving through the
// fixed role sequence, and validates handoffs between roles.
package hunt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/specfirst/hunt/internal/role"
)

var (
	// ErrInvalidHandoff is returned when a handoff violates the role sequence
	// or the hunt is not in a state that permits transitions.
	ErrInvalidHandoff = errors.New("invalid handoff")
	// ErrUnknownMember is returned when no roster member holds the target role.
	ErrUnknownMember = errors.New("no member assigned to role")
)

// Status is the lifecycle state of a hunt.
type Status string

const (
	NotStarted Status = "not-started"
	InProgress Status = "in-progress"
	Completed  Status = "completed"
)

// PhaseRecord is one entry in a hunt's phase history. DurationSeconds is
// filled in when the phase is left; the current phase's record has zero.
type PhaseRecord struct {
	Phase           string    `json:"phase"`
	Assignee        string    `json:"assignee"`
	EnteredAt       time.Time `json:"entered_at"`
	DurationSeconds int64     `json:"duration_seconds,omitempty"`
}

// Hunt is a tracked unit of feature work. CurrentPhase is mutated only
// through Coordinator.ExecuteHandoff; once Status is Completed no further
// transitions are permitted.
type Hunt struct {
	ID           string        `json:"id"`
	Feature      string        `json:"feature"`
	Description  string        `json:"description,omitempty"`
	CurrentPhase string        `json:"current_phase"`
	Status       Status        `json:"status"`
	PhaseHistory []PhaseRecord `json:"phase_history"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// idPrefix is the prefix for all hunt IDs.
const idPrefix = "hu_"

// slugLength caps the feature slug used in IDs.
const slugLength = 12

// GenerateID creates a deterministic hunt ID from the feature name and a
// timestamp. Format: hu_<RFC3339-UTC>_<feature-slug>.
func GenerateID(feature string, timestamp time.Time) string {
	return idPrefix + timestamp.UTC().Format(time.RFC3339) + "_" + slugify(feature)
}

// slugify lowercases the feature name, replaces runs of non-alphanumerics
// with hyphens, and truncates to slugLength.
func slugify(feature string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(feature) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		slug = "hunt"
	}
	if len(slug) > slugLength {
		slug = strings.Trim(slug[:slugLength], "-")
	}
	return slug
}

// New creates a hunt in the entry phase with status in-progress.
// The assignee is recorded in the first phase history entry.
func New(feature, description, assignee string, now time.Time) *Hunt {
	return &Hunt{
		ID:           GenerateID(feature, now),
		Feature:      feature,
		Description:  description,
		CurrentPhase: role.Entry(),
		Status:       InProgress,
		PhaseHistory: []PhaseRecord{
			{Phase: role.Entry(), Assignee: assignee, EnteredAt: now.UTC()},
		},
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}
}

// Complete marks the hunt completed. Fails with ErrInvalidHandoff unless the
// hunt is in progress and has reached the terminal phase.
func (h *Hunt) Complete(now time.Time) error {
	if h.Status != InProgress {
		return fmt.Errorf("%w: hunt %s is %s", ErrInvalidHandoff, h.ID, h.Status)
	}
	if h.CurrentPhase != role.Terminal() {
		return fmt.Errorf("%w: hunt %s is in phase %s, not %s", ErrInvalidHandoff, h.ID, h.CurrentPhase, role.Terminal())
	}
	h.closeCurrentPhase(now)
	h.Status = Completed
	h.UpdatedAt = now.UTC()
	return nil
}

// closeCurrentPhase stamps the duration on the latest phase history entry.
func (h *Hunt) closeCurrentPhase(now time.Time) {
	if len(h.PhaseHistory) == 0 {
		return
	}
	last := &h.PhaseHistory[len(h.PhaseHistory)-1]
	if last.DurationSeconds == 0 {
		last.DurationSeconds = int64(now.UTC().Sub(last.EnteredAt).Seconds())
	}
}
