package scaffold

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/specfirst/hunt/internal/config"
	"github.com/specfirst/hunt/internal/role"
)

// Context carries the project facts injected into instruction templates.
type Context struct {
	Project    string
	Mode       string
	TeamSize   int
	Members    []ContextMember
	Roles      []role.Role
	Columns    []string
	Principles []string
}

// ContextMember is a roster entry with its resolved role display name.
type ContextMember struct {
	Username string
	RoleName string
}

// NewContext builds a render context from the project document.
func NewContext(projectName string, doc *config.Document) Context {
	members := make([]ContextMember, len(doc.Members))
	for i, m := range doc.Members {
		name := m.Role
		if r, err := role.Get(m.Role); err == nil {
			name = r.Name
		}
		members[i] = ContextMember{Username: m.Username, RoleName: name}
	}

	columns := make([]string, len(doc.Workflow.Columns))
	for i, c := range doc.Workflow.Columns {
		columns[i] = c.Name
	}

	return Context{
		Project:    projectName,
		Mode:       doc.Mode,
		TeamSize:   doc.TeamSize,
		Members:    members,
		Roles:      role.All(),
		Columns:    columns,
		Principles: doc.Principles,
	}
}

// Render executes the template content against a context.
func Render(tmpl *Template, ctx Context) (string, error) {
	parsed, err := template.New(tmpl.Name).Parse(tmpl.Content)
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", tmpl.Name, err)
	}
	var buf bytes.Buffer
	if err := parsed.Execute(&buf, ctx); err != nil {
		return "", fmt.Errorf("rendering template %s: %w", tmpl.Name, err)
	}
	return buf.String(), nil
}

// Result records one written instruction file.
type Result struct {
	Tool   string `json:"tool"`
	Path   string `json:"path"`
	Source string `json:"source"`
}

// WriteInstructions renders and writes the instruction document for each
// tool under dir, creating parent directories as needed. Templates resolve
// against the same dir, so project-local overrides win regardless of the
// process working directory. The template's frontmatter target decides the
// relative output path.
func WriteInstructions(dir string, tools []string, ctx Context) ([]Result, error) {
	results := make([]Result, 0, len(tools))
	for _, tool := range tools {
		tmpl, err := LoadTemplate(dir, tool)
		if err != nil {
			return results, err
		}
		if tmpl.Target == "" {
			return results, fmt.Errorf("template %s declares no target path", tool)
		}

		rendered, err := Render(tmpl, ctx)
		if err != nil {
			return results, err
		}

		path := filepath.Join(dir, filepath.FromSlash(tmpl.Target))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return results, fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(rendered+"\n"), 0o644); err != nil {
			return results, fmt.Errorf("writing %s: %w", path, err)
		}
		results = append(results, Result{Tool: tool, Path: path, Source: tmpl.Source})
	}
	return results, nil
}
