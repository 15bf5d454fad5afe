// Package datadir resolves the per-user directories shell-todo keeps its files in.
package datadir

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

const (
	// AppDir is the application directory created under the user data and config directories.
	AppDir = "shell_todo"

	// TasksFile is the task list file name (inside AppDir).
	TasksFile = "tasks.json"

	// ConfigFile is the config file name (inside AppDir).
	ConfigFile = "config.toml"
)

var (
	// ErrNoDataDir is returned when the platform data directory cannot be determined.
	ErrNoDataDir = errors.New("cannot determine user data directory")

	// ErrNoConfigDir is returned when the platform config directory cannot be determined.
	ErrNoConfigDir = errors.New("cannot determine user config directory")
)

// Resolver resolves platform directories. The zero value uses the running
// platform and process environment.
type Resolver struct {
	GOOS    string
	Getenv  func(string) string
	HomeDir func() (string, error)
}

func (r Resolver) goos() string {
	if r.GOOS != "" {
		return r.GOOS
	}
	return runtime.GOOS
}

func (r Resolver) getenv(key string) string {
	if r.Getenv != nil {
		return r.Getenv(key)
	}
	return os.Getenv(key)
}

func (r Resolver) home() string {
	homeDir := r.HomeDir
	if homeDir == nil {
		homeDir = os.UserHomeDir
	}
	home, err := homeDir()
	if err != nil {
		return ""
	}
	return home
}

// DataDir returns the platform's per-user data directory.
//   - Windows: %APPDATA%
//   - macOS: ~/Library/Application Support
//   - Linux/BSD: $XDG_DATA_HOME or ~/.local/share
func (r Resolver) DataDir() (string, error) {
	dir := r.platformDir("XDG_DATA_HOME", filepath.Join(".local", "share"))
	if dir == "" {
		return "", ErrNoDataDir
	}
	return dir, nil
}

// ConfigDir returns the platform's per-user config directory.
//   - Windows: %APPDATA%
//   - macOS: ~/Library/Application Support
//   - Linux/BSD: $XDG_CONFIG_HOME or ~/.config
func (r Resolver) ConfigDir() (string, error) {
	dir := r.platformDir("XDG_CONFIG_HOME", ".config")
	if dir == "" {
		return "", ErrNoConfigDir
	}
	return dir, nil
}

func (r Resolver) platformDir(xdgKey, homeRel string) string {
	switch r.goos() {
	case "windows":
		return r.getenv("APPDATA")
	case "darwin", "ios":
		if home := r.home(); home != "" {
			return filepath.Join(home, "Library", "Application Support")
		}
	case "plan9", "js", "wasip1":
		return ""
	default:
		// XDG paths must be absolute; relative values are ignored.
		if xdg := r.getenv(xdgKey); xdg != "" && filepath.IsAbs(xdg) {
			return xdg
		}
		if home := r.home(); home != "" {
			return filepath.Join(home, homeRel)
		}
	}
	return ""
}

// TasksPath returns <data-dir>/shell_todo/tasks.json.
func (r Resolver) TasksPath() (string, error) {
	dir, err := r.DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppDir, TasksFile), nil
}

// ConfigPath returns <config-dir>/shell_todo/config.toml.
func (r Resolver) ConfigPath() (string, error) {
	dir, err := r.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppDir, ConfigFile), nil
}

// TasksPath resolves the task file path for the running process.
func TasksPath() (string, error) {
	return Resolver{}.TasksPath()
}
