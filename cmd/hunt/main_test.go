package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

// execCommand runs the root command with args and captures combined output.
func execCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// decodeJSON parses a single JSON object from command output.
func decodeJSON(t *testing.T, out string) map[string]any {
	t.Helper()
	var result map[string]any
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output should be valid JSON: %v\noutput: %s", err, out)
	}
	return result
}

func TestRootCommand_Version(t *testing.T) {
	version = "1.2.3"

	out, err := execCommand(t, "--version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "1.2.3") {
		t.Errorf("--version output should contain version: %q", out)
	}
	if !strings.Contains(out, "hunt") {
		t.Errorf("--version output should contain 'hunt': %q", out)
	}
}

func TestRootCommand_Help(t *testing.T) {
	out, err := execCommand(t, "--help")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, expected := range []string{"hunt", "Usage:", "--json", "Workflow Commands:", "init", "handoff"} {
		if !strings.Contains(out, expected) {
			t.Errorf("--help output should contain %q", expected)
		}
	}
}

func TestRootCommand_JSONFlag_NoSubcommand(t *testing.T) {
	out, err := execCommand(t, "--json")
	if err == nil {
		t.Fatal("expected error when running with --json but no subcommand")
	}

	result := decodeJSON(t, out)
	if _, ok := result["error"]; !ok {
		t.Errorf("JSON output should contain 'error' field: %s", out)
	}
	if _, ok := result["code"]; !ok {
		t.Errorf("JSON output should contain 'code' field: %s", out)
	}
}

func TestRootCommand_PersistentFlags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"json", "color", "dir"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("--%s should be a persistent flag", name)
		}
	}
}
