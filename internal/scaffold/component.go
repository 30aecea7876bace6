package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// componentTemplate is the UI component stub. These are opaque string assets
// the kit assembles; only the component name is substituted.
const componentTemplate = `import React from 'react';

export interface %[1]sProps {
  className?: string;
}

export function %[1]s({ className }: %[1]sProps) {
  return (
    <div className={className} data-testid="%[2]s">
      {/* TODO: implement %[1]s */}
    </div>
  );
}
`

const componentTestTemplate = `import { render, screen } from '@testing-library/react';
import { %[1]s } from './%[1]s';

describe('%[1]s', () => {
  it('renders', () => {
    render(<%[1]s />);
    expect(screen.getByTestId('%[2]s')).toBeInTheDocument();
  });
});
`

// ValidComponentName reports whether name is a PascalCase identifier.
func ValidComponentName(name string) bool {
	if name == "" {
		return false
	}
	if name[0] < 'A' || name[0] > 'Z' {
		return false
	}
	for _, r := range name {
		if !isAlnum(r) {
			return false
		}
	}
	return true
}

func isAlnum(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}

// kebab converts a PascalCase name to kebab-case for test IDs.
func kebab(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// WriteComponent writes a component stub and its test file under dir.
// Fails when either file already exists.
func WriteComponent(dir, name string) ([]string, error) {
	if !ValidComponentName(name) {
		return nil, fmt.Errorf("component name %q must be PascalCase", name)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}

	files := map[string]string{
		filepath.Join(dir, name+".tsx"):      fmt.Sprintf(componentTemplate, name, kebab(name)),
		filepath.Join(dir, name+".test.tsx"): fmt.Sprintf(componentTestTemplate, name, kebab(name)),
	}

	var written []string
	for path := range files {
		if _, err := os.Stat(path); err == nil {
			return nil, fmt.Errorf("%s already exists", path)
		}
	}
	for _, path := range []string{filepath.Join(dir, name+".tsx"), filepath.Join(dir, name+".test.tsx")} {
		if err := os.WriteFile(path, []byte(files[path]), 0o644); err != nil {
			return written, fmt.Errorf("writing %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
