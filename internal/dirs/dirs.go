// Package dirs resolves per-user directories for xten.
package dirs

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

const appName = "xten"

// ConfigDir returns the app's configuration directory.
// - Linux: $XDG_CONFIG_HOME/xten or ~/.config/xten
// - macOS: ~/Library/Application Support/xten
// - elsewhere: os.UserConfigDir()/xten
func ConfigDir() (string, error) {
	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Application Support", appName), nil
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", appName), nil
	default:
		cfg, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(cfg, appName), nil
	}
}

// Ensure creates the directory if it doesn't exist.
func Ensure(path string) error {
	if path == "" {
		return errors.New("empty path")
	}
	return os.MkdirAll(path, 0o755)
}
