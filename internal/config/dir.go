package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// GlobalDir returns the user-level hunt configuration directory, used for
// global scaffold template overrides.
//
// Resolution:
//   - $HUNT_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/hunt if set (respects XDG on any platform)
//   - %AppData%/hunt on Windows
//   - ~/.config/hunt on macOS and Linux
func GlobalDir() string {
	if dir := os.Getenv("HUNT_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "hunt")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "hunt")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "hunt")
}
