// Package scaffold assembles AI-assistant instruction documents and UI
// component stubs from templates. Template bodies are opaque Markdown assets
// with YAML frontmatter; project context is injected via text/template.
package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/specfirst/hunt/internal/config"
)

// Template is an instruction document template with metadata and content.
type Template struct {
	// Metadata from frontmatter
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Target      string `yaml:"target"`
	Version     int    `yaml:"version,omitempty"`

	// Template content (after frontmatter)
	Content string `yaml:"-"`

	// Source location for display: "built-in", "global", or "project"
	Source string `yaml:"-"`
}

// LoadTemplate finds and loads a template by tool name for a project rooted
// at projectDir. Resolution order: project-local → user global → built-in.
func LoadTemplate(projectDir, tool string) (*Template, error) {
	if tmpl, err := loadFromPath(projectTemplatesDir(projectDir), tool); err == nil {
		tmpl.Source = "project"
		return tmpl, nil
	}
	if tmpl, err := loadFromPath(globalTemplatesDir(), tool); err == nil {
		tmpl.Source = "global"
		return tmpl, nil
	}
	if tmpl, err := loadBuiltin(tool); err == nil {
		tmpl.Source = "built-in"
		return tmpl, nil
	}
	return nil, fmt.Errorf("no template for tool %q", tool)
}

// projectTemplatesDir returns the template override directory under a
// project root.
func projectTemplatesDir(projectDir string) string {
	return filepath.Join(projectDir, config.DocumentDirName, "templates")
}

// globalTemplatesDir returns the user-global template override directory.
func globalTemplatesDir() string {
	dir := config.GlobalDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "templates")
}

// loadFromPath loads a template file from a directory.
func loadFromPath(dir, tool string) (*Template, error) {
	if dir == "" {
		return nil, errors.New("no directory")
	}
	path := filepath.Join(dir, tool+".md")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}
	return parseTemplate(string(data))
}

// parseTemplate parses raw content with YAML frontmatter.
func parseTemplate(raw string) (*Template, error) {
	frontmatter, content := splitFrontmatter(raw)

	var tmpl Template
	if frontmatter != "" {
		if err := yaml.Unmarshal([]byte(frontmatter), &tmpl); err != nil {
			return nil, fmt.Errorf("invalid frontmatter: %w", err)
		}
	}
	tmpl.Content = strings.TrimSpace(content)
	return &tmpl, nil
}

// splitFrontmatter separates YAML frontmatter (delimited by ---) from content.
func splitFrontmatter(raw string) (frontmatter, content string) {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "---") {
		return "", raw
	}

	rest := raw[3:]
	before, after, ok := strings.Cut(rest, "\n---")
	if !ok {
		return "", raw
	}
	return strings.TrimSpace(before), strings.TrimSpace(after)
}
