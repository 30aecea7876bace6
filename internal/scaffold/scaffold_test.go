package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specfirst/hunt/internal/config"
	"github.com/specfirst/hunt/internal/role"
	"github.com/specfirst/hunt/internal/workflow"
)

func testDoc(t *testing.T) *config.Document {
	t.Helper()
	m := config.NewManager(t.TempDir())
	doc, err := m.Initialize(2, []workflow.Member{
		{Username: "ada", Role: role.Requirements},
		{Username: "brin", Role: role.Implementation},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := m.AddPrinciple("tests before merge"); err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestTools(t *testing.T) {
	tools := Tools()
	want := []string{"cline", "codeium", "copilot", "cursor"}
	if len(tools) != len(want) {
		t.Fatalf("Tools() = %v, want %v", tools, want)
	}
	for i := range want {
		if tools[i] != want[i] {
			t.Errorf("Tools()[%d] = %q, want %q", i, tools[i], want[i])
		}
	}
}

func TestLoadBuiltinTemplates(t *testing.T) {
	for _, tool := range Tools() {
		t.Run(tool, func(t *testing.T) {
			tmpl, err := loadBuiltin(tool)
			if err != nil {
				t.Fatalf("loadBuiltin(%s) error: %v", tool, err)
			}
			if tmpl.Name != tool {
				t.Errorf("frontmatter name = %q, want %q", tmpl.Name, tool)
			}
			if tmpl.Target == "" {
				t.Error("template declares no target path")
			}
			if tmpl.Content == "" {
				t.Error("template has empty content")
			}
		})
	}
}

func TestSplitFrontmatter(t *testing.T) {
	raw := "---\nname: x\n---\nbody here"
	fm, content := splitFrontmatter(raw)
	if fm != "name: x" {
		t.Errorf("frontmatter = %q", fm)
	}
	if content != "body here" {
		t.Errorf("content = %q", content)
	}

	// No frontmatter: everything is content.
	fm, content = splitFrontmatter("plain body")
	if fm != "" || content != "plain body" {
		t.Errorf("splitFrontmatter(plain) = %q, %q", fm, content)
	}
}

func TestRender(t *testing.T) {
	ctx := NewContext("acme-app", testDoc(t))
	tmpl, err := LoadTemplate(t.TempDir(), "copilot")
	if err != nil {
		t.Fatal(err)
	}

	got, err := Render(tmpl, ctx)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}

	for _, want := range []string{"acme-app", "ada", "Requirements", "tests before merge", "Plan"} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered output missing %q", want)
		}
	}
}

func TestWriteInstructions(t *testing.T) {
	dir := t.TempDir()
	ctx := NewContext("acme-app", testDoc(t))

	results, err := WriteInstructions(dir, []string{"copilot", "cursor"}, ctx)
	if err != nil {
		t.Fatalf("WriteInstructions error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("wrote %d files, want 2", len(results))
	}

	copilotPath := filepath.Join(dir, ".github", "copilot-instructions.md")
	data, err := os.ReadFile(copilotPath)
	if err != nil {
		t.Fatalf("reading %s: %v", copilotPath, err)
	}
	if !strings.Contains(string(data), "spec-first") {
		t.Error("copilot instructions missing workflow description")
	}

	if _, err := os.Stat(filepath.Join(dir, ".cursorrules")); err != nil {
		t.Errorf("cursor rules not written: %v", err)
	}
}

func TestLoadTemplate_ProjectOverrideWins(t *testing.T) {
	project := t.TempDir()
	overrideDir := filepath.Join(project, ".hunt", "templates")
	if err := os.MkdirAll(overrideDir, 0o755); err != nil {
		t.Fatal(err)
	}
	override := "---\nname: copilot\ntarget: .github/copilot-instructions.md\n---\nhouse rules for {{.Project}}"
	if err := os.WriteFile(filepath.Join(overrideDir, "copilot.md"), []byte(override), 0o644); err != nil {
		t.Fatal(err)
	}

	// The project dir is not the working directory; resolution must still
	// find the override.
	tmpl, err := LoadTemplate(project, "copilot")
	if err != nil {
		t.Fatalf("LoadTemplate error: %v", err)
	}
	if tmpl.Source != "project" {
		t.Fatalf("Source = %q, want project", tmpl.Source)
	}

	ctx := NewContext("acme-app", testDoc(t))
	results, err := WriteInstructions(project, []string{"copilot"}, ctx)
	if err != nil {
		t.Fatalf("WriteInstructions error: %v", err)
	}
	if results[0].Source != "project" {
		t.Errorf("written Source = %q, want project", results[0].Source)
	}

	data, err := os.ReadFile(filepath.Join(project, ".github", "copilot-instructions.md"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "house rules for acme-app") {
		t.Errorf("override body not rendered:\n%s", data)
	}
}

func TestWriteInstructions_UnknownTool(t *testing.T) {
	ctx := NewContext("acme-app", testDoc(t))
	_, err := WriteInstructions(t.TempDir(), []string{"emacs"}, ctx)
	if err == nil {
		t.Fatal("expected error for unknown tool")
	}
}

func TestValidComponentName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{name: "Button", want: true},
		{name: "UserCard2", want: true},
		{name: "button", want: false},
		{name: "User-Card", want: false},
		{name: "", want: false},
	}
	for _, tt := range tests {
		if got := ValidComponentName(tt.name); got != tt.want {
			t.Errorf("ValidComponentName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestWriteComponent(t *testing.T) {
	dir := t.TempDir()

	files, err := WriteComponent(dir, "UserCard")
	if err != nil {
		t.Fatalf("WriteComponent error: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("wrote %d files, want 2", len(files))
	}

	data, err := os.ReadFile(filepath.Join(dir, "UserCard.tsx"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "data-testid=\"user-card\"") {
		t.Errorf("component stub missing kebab test id:\n%s", data)
	}

	// Second write collides.
	if _, err := WriteComponent(dir, "UserCard"); err == nil {
		t.Error("expected error when component already exists")
	}
}
