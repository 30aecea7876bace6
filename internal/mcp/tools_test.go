package mcp

import (
	"context"
	"testing"

	"github.com/specfirst/hunt/internal/config"
	"github.com/specfirst/hunt/internal/role"
	"github.com/specfirst/hunt/internal/workflow"
)

func testManager(t *testing.T) *config.Manager {
	t.Helper()
	m := config.NewManager(t.TempDir())
	_, err := m.Initialize(2, []workflow.Member{
		{Username: "ada", Role: role.Requirements},
		{Username: "brin", Role: role.Spec},
	})
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestHandleAnalyze(t *testing.T) {
	handler := handleAnalyze()

	_, out, err := handler(context.Background(), nil, AnalyzeInput{
		Description: "design a distributed microservice architecture platform",
	})
	if err != nil {
		t.Fatalf("analyze error: %v", err)
	}
	if out.Level != "complex" {
		t.Errorf("level = %q, want complex", out.Level)
	}
	if !out.SpecFirstRecommended {
		t.Error("spec_first_recommended = false, want true")
	}
}

func TestHandleStatus(t *testing.T) {
	m := testManager(t)
	handler := handleStatus(m)

	_, out, err := handler(context.Background(), nil, StatusInput{})
	if err != nil {
		t.Fatalf("status error: %v", err)
	}
	if out.Mode != "team" || out.TeamSize != 2 {
		t.Errorf("status = %+v", out)
	}
	if len(out.Columns) != 3 {
		t.Errorf("columns = %v, want plan/build/done", out.Columns)
	}
}

func TestHandleStatus_NoConfiguration(t *testing.T) {
	m := config.NewManager(t.TempDir())
	handler := handleStatus(m)

	if _, _, err := handler(context.Background(), nil, StatusInput{}); err == nil {
		t.Fatal("expected error without configuration")
	}
}

func TestStartHuntAndHandoff(t *testing.T) {
	m := testManager(t)

	_, started, err := handleStartHunt(m)(context.Background(), nil, StartHuntInput{Feature: "login page"})
	if err != nil {
		t.Fatalf("start_hunt error: %v", err)
	}
	if started.CurrentPhase != role.Requirements {
		t.Errorf("current_phase = %s, want requirements", started.CurrentPhase)
	}
	if started.Assignee != "ada" {
		t.Errorf("assignee = %s, want ada", started.Assignee)
	}

	_, handed, err := handleHandoff(m)(context.Background(), nil, HandoffInput{
		HuntID: started.ID,
		ToRole: role.Spec,
	})
	if err != nil {
		t.Fatalf("handoff error: %v", err)
	}
	if handed.ToMember != "brin" {
		t.Errorf("to_member = %s, want brin", handed.ToMember)
	}

	// Transition skipping a phase is rejected.
	_, _, err = handleHandoff(m)(context.Background(), nil, HandoffInput{
		HuntID: started.ID,
		ToRole: role.Testing,
	})
	if err == nil {
		t.Fatal("expected invalid handoff error")
	}
}

func TestStartHunt_RequiresFeature(t *testing.T) {
	m := testManager(t)
	if _, _, err := handleStartHunt(m)(context.Background(), nil, StartHuntInput{}); err == nil {
		t.Fatal("expected error for empty feature")
	}
}

func TestHandleRoster(t *testing.T) {
	m := testManager(t)

	_, out, err := handleRoster(m)(context.Background(), nil, RosterInput{})
	if err != nil {
		t.Fatalf("roster error: %v", err)
	}
	if len(out.Members) != 2 {
		t.Fatalf("members = %v", out.Members)
	}
	// Both size-2 roles sit in the plan column.
	for _, member := range out.Members {
		if member.Column != "plan" {
			t.Errorf("member %s column = %q, want plan", member.Username, member.Column)
		}
	}
}
