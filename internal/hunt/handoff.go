package hunt

import (
	"fmt"
	"time"

	"github.com/specfirst/hunt/internal/role"
	"github.com/specfirst/hunt/internal/workflow"
)

// HandoffRecord describes one executed handoff.
type HandoffRecord struct {
	HuntID     string    `json:"hunt_id"`
	FromRole   string    `json:"from_role"`
	ToRole     string    `json:"to_role"`
	FromMember string    `json:"from_member,omitempty"`
	ToMember   string    `json:"to_member"`
	Timestamp  time.Time `json:"timestamp"`
	Context    string    `json:"context,omitempty"`
}

// Coordinator validates and records phase transitions against the active
// roster. It holds no state beyond the roster and a clock.
type Coordinator struct {
	members []workflow.Member
	now     func() time.Time
}

// NewCoordinator creates a coordinator over the given roster.
func NewCoordinator(members []workflow.Member) *Coordinator {
	return &Coordinator{members: members, now: time.Now}
}

// WithClock overrides the coordinator's clock. Intended for tests.
func (c *Coordinator) WithClock(now func() time.Time) *Coordinator {
	c.now = now
	return c
}

// MemberFor returns the username assigned to a role. In solo mode the single
// member owns every role. Returns ErrUnknownMember when nobody holds the
// role.
func (c *Coordinator) MemberFor(roleID string) (string, error) {
	if len(c.members) == 1 {
		return c.members[0].Username, nil
	}
	for _, m := range c.members {
		if m.Role == roleID {
			return m.Username, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownMember, roleID)
}

// ExecuteHandoff transitions a hunt from one role to the next. It fails with
// ErrInvalidHandoff unless the hunt is in progress, fromRole matches the
// hunt's current phase, and toRole is the immediate successor of fromRole.
// It fails with ErrUnknownMember when no roster member holds toRole. On
// success the phase history gains an entry, the hunt's current phase
// advances, and a HandoffRecord is returned.
func (c *Coordinator) ExecuteHandoff(h *Hunt, fromRole, toRole, context string) (HandoffRecord, error) {
	if h.Status != InProgress {
		return HandoffRecord{}, fmt.Errorf("%w: hunt %s is %s", ErrInvalidHandoff, h.ID, h.Status)
	}
	if h.CurrentPhase != fromRole {
		return HandoffRecord{}, fmt.Errorf("%w: hunt %s is in phase %s, not %s", ErrInvalidHandoff, h.ID, h.CurrentPhase, fromRole)
	}
	if !role.IsValidTransition(fromRole, toRole) {
		return HandoffRecord{}, fmt.Errorf("%w: %s -> %s", ErrInvalidHandoff, fromRole, toRole)
	}

	toMember, err := c.MemberFor(toRole)
	if err != nil {
		return HandoffRecord{}, err
	}
	// The outgoing member is informational; a role nobody holds just leaves
	// it blank in the record.
	fromMember, _ := c.MemberFor(fromRole)

	now := c.now()
	h.closeCurrentPhase(now)
	h.PhaseHistory = append(h.PhaseHistory, PhaseRecord{
		Phase:     toRole,
		Assignee:  toMember,
		EnteredAt: now.UTC(),
	})
	h.CurrentPhase = toRole
	h.UpdatedAt = now.UTC()

	return HandoffRecord{
		HuntID:     h.ID,
		FromRole:   fromRole,
		ToRole:     toRole,
		FromMember: fromMember,
		ToMember:   toMember,
		Timestamp:  now.UTC(),
		Context:    context,
	}, nil
}

// CanProceed reports whether the hunt may hand off to nextRole: the hunt
// must be in progress with a current phase set, and nextRole must be the
// immediate successor of that phase.
func (c *Coordinator) CanProceed(h *Hunt, nextRole string) bool {
	if h.Status != InProgress {
		return false
	}
	if h.CurrentPhase == "" {
		return false
	}
	return role.IsValidTransition(h.CurrentPhase, nextRole)
}
