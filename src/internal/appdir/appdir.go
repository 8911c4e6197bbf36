// Package appdir locates the per-user directories deborg reads from.
package appdir

import (
	"os"
	"path/filepath"
	"runtime"
)

const Name = "deborg"

// ConfigDir returns the directory holding the global config file.
func ConfigDir() (string, error) {
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, Name), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "AppData", "Roaming", Name), nil
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, Name), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", Name), nil
}

// StateDir returns the directory for data deborg writes, such as traces.
func StateDir() (string, error) {
	if runtime.GOOS == "windows" {
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			return filepath.Join(local, Name), nil
		}
	}
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, Name), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "state", Name), nil
}

func MustStateDir() string {
	dir, err := StateDir()
	if err != nil {
		return Name
	}
	return dir
}

// TraceDir is the default destination of --trace.
func TraceDir() string {
	return filepath.Join(MustStateDir(), "traces")
}
