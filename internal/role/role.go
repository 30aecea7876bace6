// Package role defines the five fixed workflow roles and pure sequence
// operations over them. The role table is immutable and loaded at process
// start; no caller may mutate it.
package role

import "errors"

// ErrInvalidRole is returned when a role ID does not exist in the table.
var ErrInvalidRole = errors.New("invalid role")

// Canonical role IDs in sequence order.
const (
	Requirements   = "requirements"
	Spec           = "spec"
	Implementation = "implementation"
	Testing        = "testing"
	Deploy         = "deploy"
)

// Role describes one of the five fixed specializations.
// SequenceOrder values are unique and contiguous starting at 1; the lowest
// order is the entry point of the sequence, the highest is terminal.
type Role struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Emoji            string   `json:"emoji"`
	Color            string   `json:"color"`
	SequenceOrder    int      `json:"sequence_order"`
	Responsibilities []string `json:"responsibilities"`
	Keywords         []string `json:"keywords"`
}

// table holds the role definitions sorted by SequenceOrder.
var table = []Role{
	{
		ID:            Requirements,
		Name:          "Requirements",
		Emoji:         "🎯",
		Color:         "12",
		SequenceOrder: 1,
		Responsibilities: []string{
			"Gather stakeholder needs",
			"Write user stories and acceptance criteria",
			"Define scope and out-of-scope items",
		},
		Keywords: []string{"requirement", "requirements", "gather", "discovery", "stakeholder", "scope", "user story"},
	},
	{
		ID:            Spec,
		Name:          "Specification",
		Emoji:         "📋",
		Color:         "14",
		SequenceOrder: 2,
		Responsibilities: []string{
			"Turn requirements into a technical specification",
			"Decide architecture and interfaces",
			"Call out risks and open questions",
		},
		Keywords: []string{"spec", "specification", "design", "architecture", "blueprint", "plan"},
	},
	{
		ID:            Implementation,
		Name:          "Implementation",
		Emoji:         "🔨",
		Color:         "11",
		SequenceOrder: 3,
		Responsibilities: []string{
			"Build the feature against the specification",
			"Keep the spec updated when reality disagrees",
		},
		Keywords: []string{"implement", "implementation", "code", "build", "develop"},
	},
	{
		ID:            Testing,
		Name:          "Testing",
		Emoji:         "🧪",
		Color:         "10",
		SequenceOrder: 4,
		Responsibilities: []string{
			"Verify the implementation against acceptance criteria",
			"File regressions back to implementation",
		},
		Keywords: []string{"test", "testing", "qa", "quality", "verify", "validation"},
	},
	{
		ID:            Deploy,
		Name:          "Deploy",
		Emoji:         "🚀",
		Color:         "13",
		SequenceOrder: 5,
		Responsibilities: []string{
			"Release the verified feature",
			"Confirm rollout and close out the work",
		},
		Keywords: []string{"deploy", "deployment", "release", "ship", "production"},
	},
}

// All returns the role table sorted by sequence order.
// Callers must treat the returned slice as read-only.
func All() []Role {
	return table
}
