package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestScaffoldInstructions_WritesAllBuiltins(t *testing.T) {
	dir := initPairProject(t)

	_, err := execCommand(t, "scaffold", "instructions", "-C", dir, "--json")
	if err != nil {
		t.Fatalf("scaffold instructions error = %v", err)
	}

	for _, path := range []string{
		filepath.Join(".github", "copilot-instructions.md"),
		".cursorrules",
		".clinerules",
		filepath.Join(".codeium", "instructions.md"),
	} {
		if _, err := os.Stat(filepath.Join(dir, path)); err != nil {
			t.Errorf("missing %s: %v", path, err)
		}
	}
}

func TestScaffoldInstructions_InjectsRoster(t *testing.T) {
	dir := initPairProject(t)

	if _, err := execCommand(t, "scaffold", "instructions", "cursor", "-C", dir); err != nil {
		t.Fatalf("scaffold instructions error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, ".cursorrules"))
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	for _, want := range []string{"ada", "brin", "Requirements", "Implementation"} {
		if !strings.Contains(content, want) {
			t.Errorf("instructions missing %q", want)
		}
	}
}

func TestScaffoldInstructions_ProjectOverride(t *testing.T) {
	dir := initPairProject(t)
	overrideDir := filepath.Join(dir, ".hunt", "templates")
	if err := os.MkdirAll(overrideDir, 0o755); err != nil {
		t.Fatal(err)
	}
	override := "---\nname: cursor\ntarget: .cursorrules\n---\nproject-specific cursor rules"
	if err := os.WriteFile(filepath.Join(overrideDir, "cursor.md"), []byte(override), 0o644); err != nil {
		t.Fatal(err)
	}

	// -C points at the project; the override must win even though the
	// process runs elsewhere.
	if _, err := execCommand(t, "scaffold", "instructions", "cursor", "-C", dir); err != nil {
		t.Fatalf("scaffold instructions error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, ".cursorrules"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "project-specific cursor rules") {
		t.Errorf("project override ignored, got:\n%s", data)
	}
}

func TestScaffoldInstructions_UnknownTool(t *testing.T) {
	dir := initPairProject(t)
	if _, err := execCommand(t, "scaffold", "instructions", "emacs", "-C", dir, "--json"); err == nil {
		t.Fatal("expected error for unknown tool")
	}
}

func TestScaffoldComponent(t *testing.T) {
	dir := initSoloProject(t)

	out, err := execCommand(t, "scaffold", "component", "LoginForm", "-C", dir, "--json")
	if err != nil {
		t.Fatalf("scaffold component error = %v", err)
	}

	written, ok := decodeJSON(t, out)["written"].([]any)
	if !ok || len(written) != 2 {
		t.Fatalf("written = %v, want stub and test", written)
	}
	if _, err := os.Stat(filepath.Join(dir, "src", "components", "LoginForm.tsx")); err != nil {
		t.Errorf("component stub missing: %v", err)
	}
}

func TestScaffoldComponent_RejectsInvalidName(t *testing.T) {
	dir := initSoloProject(t)
	if _, err := execCommand(t, "scaffold", "component", "loginForm", "-C", dir, "--json"); err == nil {
		t.Fatal("expected error for non-PascalCase name")
	}
}

func TestScaffoldList(t *testing.T) {
	out, err := execCommand(t, "scaffold", "list", "--json")
	if err != nil {
		t.Fatalf("scaffold list error = %v", err)
	}
	templates, ok := decodeJSON(t, out)["templates"].([]any)
	if !ok || len(templates) != 4 {
		t.Errorf("templates = %v, want the four built-ins", templates)
	}
}
