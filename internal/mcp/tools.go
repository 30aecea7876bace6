package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/specfirst/hunt/internal/complexity"
	"github.com/specfirst/hunt/internal/config"
	"github.com/specfirst/hunt/internal/hunt"
	"github.com/specfirst/hunt/internal/role"
	"github.com/specfirst/hunt/internal/workflow"
)

// --- analyze tool ---

// AnalyzeInput is the input for the analyze tool.
type AnalyzeInput struct {
	Description string `json:"description" jsonschema:"free-text task description to score"`
}

// AnalyzeOutput is the output for the analyze tool.
type AnalyzeOutput struct {
	Level                string   `json:"level"                  jsonschema:"simple, moderate, or complex"`
	Score                int      `json:"score"                  jsonschema:"raw keyword score"`
	TaskType             string   `json:"task_type"              jsonschema:"detected task category"`
	EstimatedEffort      string   `json:"estimated_effort"       jsonschema:"effort bucket"`
	SpecFirstRecommended bool     `json:"spec_first_recommended" jsonschema:"true when the spec-first path is recommended"`
	Features             []string `json:"features,omitempty"     jsonschema:"feature phrases extracted from the description"`
}

func handleAnalyze() mcp.ToolHandlerFor[AnalyzeInput, AnalyzeOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, in AnalyzeInput) (*mcp.CallToolResult, AnalyzeOutput, error) {
		a := complexity.Analyze(in.Description)
		return nil, AnalyzeOutput{
			Level:                string(a.Level),
			Score:                a.Score,
			TaskType:             a.TaskType,
			EstimatedEffort:      a.EstimatedEffort,
			SpecFirstRecommended: a.SpecFirstRecommended,
			Features:             a.Features,
		}, nil
	}
}

// --- status tool ---

// StatusInput is the input for the status tool (no parameters needed).
type StatusInput struct{}

// HuntSummary is a compact view of one hunt.
type HuntSummary struct {
	ID           string `json:"id"            jsonschema:"hunt ID"`
	Feature      string `json:"feature"       jsonschema:"feature name"`
	CurrentPhase string `json:"current_phase" jsonschema:"role currently owning the hunt"`
	Status       string `json:"status"        jsonschema:"not-started, in-progress, or completed"`
}

// StatusOutput is the output for the status tool.
type StatusOutput struct {
	Mode     string        `json:"mode"            jsonschema:"solo or team"`
	TeamSize int           `json:"team_size"       jsonschema:"number of roster members"`
	Columns  []string      `json:"columns"         jsonschema:"board columns in traversal order"`
	Hunts    []HuntSummary `json:"hunts,omitempty" jsonschema:"recorded hunts"`
}

func handleStatus(manager *config.Manager) mcp.ToolHandlerFor[StatusInput, StatusOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ StatusInput) (*mcp.CallToolResult, StatusOutput, error) {
		doc, err := loadDoc(manager)
		if err != nil {
			return nil, StatusOutput{}, err
		}

		columns := make([]string, len(doc.Workflow.Columns))
		for i, c := range doc.Workflow.Columns {
			columns[i] = c.ID
		}

		hunts := make([]HuntSummary, 0, len(doc.Hunts))
		for _, h := range doc.Hunts {
			hunts = append(hunts, HuntSummary{
				ID:           h.ID,
				Feature:      h.Feature,
				CurrentPhase: h.CurrentPhase,
				Status:       string(h.Status),
			})
		}

		return nil, StatusOutput{
			Mode:     doc.Mode,
			TeamSize: doc.TeamSize,
			Columns:  columns,
			Hunts:    hunts,
		}, nil
	}
}

// --- roster tool ---

// RosterInput is the input for the roster tool (no parameters needed).
type RosterInput struct{}

// RosterMember is one roster entry with its board column.
type RosterMember struct {
	Username string `json:"username"         jsonschema:"member username"`
	Role     string `json:"role"             jsonschema:"assigned role ID"`
	Column   string `json:"column,omitempty" jsonschema:"board column the member's role belongs to"`
}

// RosterOutput is the output for the roster tool.
type RosterOutput struct {
	Members []RosterMember `json:"members" jsonschema:"team roster"`
}

func handleRoster(manager *config.Manager) mcp.ToolHandlerFor[RosterInput, RosterOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ RosterInput) (*mcp.CallToolResult, RosterOutput, error) {
		doc, err := loadDoc(manager)
		if err != nil {
			return nil, RosterOutput{}, err
		}

		members := make([]RosterMember, 0, len(doc.Members))
		for _, m := range doc.Members {
			entry := RosterMember{Username: m.Username, Role: m.Role}
			if col, colErr := workflow.ColumnForRole(doc.TeamSize, m.Role); colErr == nil {
				entry.Column = col.ID
			}
			members = append(members, entry)
		}
		return nil, RosterOutput{Members: members}, nil
	}
}

// --- start_hunt tool ---

// StartHuntInput is the input for the start_hunt tool.
type StartHuntInput struct {
	Feature     string `json:"feature"               jsonschema:"short feature name"`
	Description string `json:"description,omitempty" jsonschema:"optional longer description"`
}

// StartHuntOutput is the output for the start_hunt tool.
type StartHuntOutput struct {
	ID           string `json:"id"            jsonschema:"new hunt ID"`
	CurrentPhase string `json:"current_phase" jsonschema:"entry phase of the sequence"`
	Assignee     string `json:"assignee"      jsonschema:"member owning the entry phase"`
}

func handleStartHunt(manager *config.Manager) mcp.ToolHandlerFor[StartHuntInput, StartHuntOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, in StartHuntInput) (*mcp.CallToolResult, StartHuntOutput, error) {
		if in.Feature == "" {
			return nil, StartHuntOutput{}, fmt.Errorf("feature is required")
		}
		doc, err := loadDoc(manager)
		if err != nil {
			return nil, StartHuntOutput{}, err
		}

		coordinator := hunt.NewCoordinator(doc.Members)
		assignee, err := coordinator.MemberFor(role.Entry())
		if err != nil {
			return nil, StartHuntOutput{}, err
		}

		h := hunt.New(in.Feature, in.Description, assignee, time.Now())
		if err := manager.AddHunt(h); err != nil {
			return nil, StartHuntOutput{}, err
		}
		return nil, StartHuntOutput{ID: h.ID, CurrentPhase: h.CurrentPhase, Assignee: assignee}, nil
	}
}

// --- handoff tool ---

// HandoffInput is the input for the handoff tool.
type HandoffInput struct {
	HuntID  string `json:"hunt_id"           jsonschema:"hunt ID or unique prefix"`
	ToRole  string `json:"to_role"           jsonschema:"role to hand the hunt to; must be the next role in sequence"`
	Context string `json:"context,omitempty" jsonschema:"optional note recorded with the handoff"`
}

// HandoffOutput is the output for the handoff tool.
type HandoffOutput struct {
	FromRole   string `json:"from_role"             jsonschema:"role the hunt left"`
	ToRole     string `json:"to_role"               jsonschema:"role the hunt entered"`
	FromMember string `json:"from_member,omitempty" jsonschema:"outgoing member"`
	ToMember   string `json:"to_member"             jsonschema:"incoming member"`
	Timestamp  string `json:"timestamp"             jsonschema:"handoff time (RFC3339)"`
}

func handleHandoff(manager *config.Manager) mcp.ToolHandlerFor[HandoffInput, HandoffOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, in HandoffInput) (*mcp.CallToolResult, HandoffOutput, error) {
		doc, err := loadDoc(manager)
		if err != nil {
			return nil, HandoffOutput{}, err
		}

		h, err := manager.Hunt(in.HuntID)
		if err != nil {
			return nil, HandoffOutput{}, err
		}

		coordinator := hunt.NewCoordinator(doc.Members)
		record, err := coordinator.ExecuteHandoff(h, h.CurrentPhase, in.ToRole, in.Context)
		if err != nil {
			return nil, HandoffOutput{}, err
		}
		if err := manager.Save(); err != nil {
			return nil, HandoffOutput{}, err
		}

		return nil, HandoffOutput{
			FromRole:   record.FromRole,
			ToRole:     record.ToRole,
			FromMember: record.FromMember,
			ToMember:   record.ToMember,
			Timestamp:  record.Timestamp.Format(time.RFC3339),
		}, nil
	}
}

// loadDoc returns the manager's document, loading it on first use.
func loadDoc(manager *config.Manager) (*config.Document, error) {
	if doc := manager.Document(); doc != nil {
		return doc, nil
	}
	return manager.Load()
}
