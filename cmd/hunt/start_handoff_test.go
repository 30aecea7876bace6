package main

import (
	"testing"

	"github.com/specfirst/hunt/internal/output"
)

// startHunt starts a hunt and returns its ID.
func startHunt(t *testing.T, dir, feature string) string {
	t.Helper()
	out, err := execCommand(t, "start", feature, "-C", dir, "--json")
	if err != nil {
		t.Fatalf("start error = %v", err)
	}
	id, ok := decodeJSON(t, out)["id"].(string)
	if !ok || id == "" {
		t.Fatalf("start output missing id: %s", out)
	}
	return id
}

func TestStart_AssignsEntryPhase(t *testing.T) {
	dir := initPairProject(t)

	out, err := execCommand(t, "start", "login page", "-C", dir, "--json")
	if err != nil {
		t.Fatalf("start error = %v", err)
	}

	result := decodeJSON(t, out)
	if result["current_phase"] != "requirements" {
		t.Errorf("current_phase = %v, want requirements", result["current_phase"])
	}
	if result["assignee"] != "ada" {
		t.Errorf("assignee = %v, want ada (holds requirements)", result["assignee"])
	}
}

func TestStart_NoConfiguration(t *testing.T) {
	dir := t.TempDir()
	_, err := execCommand(t, "start", "anything", "-C", dir, "--json")
	if err == nil {
		t.Fatal("expected error without configuration")
	}
}

func TestHandoff_AdvancesToNextRole(t *testing.T) {
	dir := initPairProject(t)
	id := startHunt(t, dir, "login page")

	out, err := execCommand(t, "handoff", id, "-C", dir, "--json")
	if err != nil {
		t.Fatalf("handoff error = %v", err)
	}

	result := decodeJSON(t, out)
	if result["from_role"] != "requirements" || result["to_role"] != "spec" {
		t.Errorf("handoff = %v -> %v, want requirements -> spec", result["from_role"], result["to_role"])
	}
}

func TestHandoff_RejectsSkippedPhase(t *testing.T) {
	dir := initPairProject(t)
	id := startHunt(t, dir, "login page")

	_, err := execCommand(t, "handoff", id, "--to", "testing", "-C", dir, "--json")
	if err == nil {
		t.Fatal("expected error for skipped phase")
	}
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
	}
}

func TestHandoff_AcceptsIDPrefix(t *testing.T) {
	dir := initPairProject(t)
	id := startHunt(t, dir, "login page")

	out, err := execCommand(t, "handoff", id[:10], "-C", dir, "--json")
	if err != nil {
		t.Fatalf("handoff by prefix error = %v", err)
	}
	if result := decodeJSON(t, out); result["hunt_id"] != id {
		t.Errorf("hunt_id = %v, want %v", result["hunt_id"], id)
	}
}

func TestHandoff_UnknownHunt(t *testing.T) {
	dir := initPairProject(t)

	_, err := execCommand(t, "handoff", "hu_never-existed", "-C", dir, "--json")
	if err == nil {
		t.Fatal("expected error for unknown hunt")
	}
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
	}
}

func TestHandoff_SoloRunsFullSequence(t *testing.T) {
	dir := initSoloProject(t)
	id := startHunt(t, dir, "billing export")

	// Four handoffs walk requirements through deploy.
	for i := 0; i < 4; i++ {
		if _, err := execCommand(t, "handoff", id, "-C", dir, "--json"); err != nil {
			t.Fatalf("handoff %d error = %v", i+1, err)
		}
	}

	// The fifth invocation completes the terminal-phase hunt.
	out, err := execCommand(t, "handoff", id, "-C", dir, "--json")
	if err != nil {
		t.Fatalf("complete error = %v", err)
	}
	if result := decodeJSON(t, out); result["status"] != "completed" {
		t.Errorf("status = %v, want completed", result["status"])
	}

	// A completed hunt accepts no further transitions.
	if _, err := execCommand(t, "handoff", id, "--to", "spec", "-C", dir, "--json"); err == nil {
		t.Fatal("expected error for handoff on completed hunt")
	}
}
