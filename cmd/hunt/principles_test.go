package main

import (
	"strings"
	"testing"

	"github.com/specfirst/hunt/internal/output"
)

func TestPrinciples_AddListRemove(t *testing.T) {
	dir := initSoloProject(t)
	principle := "All public APIs ship with a spec section"

	if _, err := execCommand(t, "principles", "add", principle, "-C", dir, "--json"); err != nil {
		t.Fatalf("add error = %v", err)
	}

	out, err := execCommand(t, "principles", "-C", dir, "--json")
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	principles, ok := decodeJSON(t, out)["principles"].([]any)
	if !ok || len(principles) != 1 || principles[0] != principle {
		t.Errorf("principles = %v, want [%q]", principles, principle)
	}

	if _, err := execCommand(t, "principles", "remove", principle, "-C", dir, "--json"); err != nil {
		t.Fatalf("remove error = %v", err)
	}

	out, err = execCommand(t, "principles", "-C", dir)
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	if !strings.Contains(out, "No principles") {
		t.Errorf("expected empty-list hint, got:\n%s", out)
	}
}

func TestPrinciples_DuplicateAdd(t *testing.T) {
	dir := initSoloProject(t)
	principle := "Tests accompany every change"

	if _, err := execCommand(t, "principles", "add", principle, "-C", dir, "--json"); err != nil {
		t.Fatalf("add error = %v", err)
	}
	_, err := execCommand(t, "principles", "add", principle, "-C", dir, "--json")
	if err == nil {
		t.Fatal("expected conflict for duplicate principle")
	}
	if code := output.GetExitCode(err); code != output.ExitConflict {
		t.Errorf("exit code = %d, want %d", code, output.ExitConflict)
	}
}

func TestPrinciples_RemoveMissing(t *testing.T) {
	dir := initSoloProject(t)

	_, err := execCommand(t, "principles", "remove", "never recorded", "-C", dir, "--json")
	if err == nil {
		t.Fatal("expected error for missing principle")
	}
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
	}
}
