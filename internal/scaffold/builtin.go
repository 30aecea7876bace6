package scaffold

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed templates/*.md
var builtinFS embed.FS

// Tools lists the assistant tools with built-in templates.
func Tools() []string {
	entries, err := builtinFS.ReadDir("templates")
	if err != nil {
		return nil
	}
	var tools []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		tools = append(tools, strings.TrimSuffix(entry.Name(), ".md"))
	}
	return tools
}

// loadBuiltin loads a built-in template by tool name.
func loadBuiltin(tool string) (*Template, error) {
	path := "templates/" + tool + ".md"
	data, err := builtinFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading builtin template %s: %w", path, err)
	}
	return parseTemplate(string(data))
}
