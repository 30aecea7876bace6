package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/specfirst/hunt/internal/output"
)

// initSoloProject initializes a solo project in a temp dir and returns it.
func initSoloProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if _, err := execCommand(t, "init", "-C", dir, "--team-size", "1", "--member", "ada", "--json"); err != nil {
		t.Fatalf("init error = %v", err)
	}
	return dir
}

// initPairProject initializes a two-person project in a temp dir.
func initPairProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	_, err := execCommand(t, "init", "-C", dir, "--team-size", "2",
		"--member", "ada:requirements", "--member", "brin:implementation", "--json")
	if err != nil {
		t.Fatalf("init error = %v", err)
	}
	return dir
}

func TestInit_Solo(t *testing.T) {
	dir := t.TempDir()
	out, err := execCommand(t, "init", "-C", dir, "--team-size", "1", "--member", "ada", "--json")
	if err != nil {
		t.Fatalf("init error = %v", err)
	}

	result := decodeJSON(t, out)
	if result["mode"] != "solo" {
		t.Errorf("mode = %v, want solo", result["mode"])
	}

	if _, err := os.Stat(filepath.Join(dir, ".hunt", "hunt.json")); err != nil {
		t.Errorf("document not written: %v", err)
	}
}

func TestInit_AlreadyInitialized(t *testing.T) {
	dir := initSoloProject(t)

	_, err := execCommand(t, "init", "-C", dir, "--team-size", "1", "--member", "ada", "--json")
	if err == nil {
		t.Fatal("expected error for repeated init")
	}
	if code := output.GetExitCode(err); code != output.ExitConflict {
		t.Errorf("exit code = %d, want %d", code, output.ExitConflict)
	}
}

func TestInit_ForceOverwrites(t *testing.T) {
	dir := initSoloProject(t)

	out, err := execCommand(t, "init", "-C", dir, "--team-size", "2",
		"--member", "ada:spec", "--member", "brin:testing", "--force", "--json")
	if err != nil {
		t.Fatalf("forced init error = %v", err)
	}
	if result := decodeJSON(t, out); result["mode"] != "team" {
		t.Errorf("mode = %v, want team", result["mode"])
	}
}

func TestInit_TeamSizeMismatch(t *testing.T) {
	dir := t.TempDir()
	_, err := execCommand(t, "init", "-C", dir, "--team-size", "2", "--member", "ada:spec", "--json")
	if err == nil {
		t.Fatal("expected error for one member with team size 2")
	}
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
	}
}

func TestInit_InvalidRole(t *testing.T) {
	dir := t.TempDir()
	_, err := execCommand(t, "init", "-C", dir, "--team-size", "1", "--member", "ada:wizard", "--json")
	if err == nil {
		t.Fatal("expected error for unknown role")
	}
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
	}
}

func TestInit_BareMemberNeedsSolo(t *testing.T) {
	dir := t.TempDir()
	_, err := execCommand(t, "init", "-C", dir, "--team-size", "2",
		"--member", "ada", "--member", "brin:spec", "--json")
	if err == nil {
		t.Fatal("expected error for bare username outside solo mode")
	}
}

func TestInit_DryRunWritesNothing(t *testing.T) {
	dir := t.TempDir()
	out, err := execCommand(t, "init", "-C", dir, "--team-size", "1", "--member", "ada", "--dry-run", "--json")
	if err != nil {
		t.Fatalf("dry-run error = %v", err)
	}
	if result := decodeJSON(t, out); result["status"] != "dry_run" {
		t.Errorf("status = %v, want dry_run", result["status"])
	}
	if _, err := os.Stat(filepath.Join(dir, ".hunt")); !os.IsNotExist(err) {
		t.Error("dry-run should not create the document directory")
	}
}

func TestInit_WithScaffold(t *testing.T) {
	dir := t.TempDir()
	_, err := execCommand(t, "init", "-C", dir, "--team-size", "1", "--member", "ada",
		"--scaffold", "copilot", "--json")
	if err != nil {
		t.Fatalf("init error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".github", "copilot-instructions.md")); err != nil {
		t.Errorf("instruction file not written: %v", err)
	}
}
