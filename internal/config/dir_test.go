package config

import (
	"path/filepath"
	"testing"
)

func TestGlobalDir_ExplicitOverride(t *testing.T) {
	t.Setenv("HUNT_CONFIG_HOME", "/tmp/hunt-test")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	if got := GlobalDir(); got != "/tmp/hunt-test" {
		t.Errorf("GlobalDir() = %q, want explicit override", got)
	}
}

func TestGlobalDir_XDG(t *testing.T) {
	t.Setenv("HUNT_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	want := filepath.Join("/tmp/xdg", "hunt")
	if got := GlobalDir(); got != want {
		t.Errorf("GlobalDir() = %q, want %q", got, want)
	}
}
