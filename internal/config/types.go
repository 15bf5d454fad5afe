package config

import (
	"github.com/TitaniumBrain/shell-todo/internal/logging"
	"github.com/TitaniumBrain/shell-todo/internal/todo"
)

// Source represents where a configuration value came from.
type Source string

const (
	SourceDefault Source = "default"
	SourceFile    Source = "file"
	SourceEnv     Source = "environment"
	SourceFlag    Source = "flag"
)

// Default values.
const (
	DefaultPriority   = "normal"
	DefaultAtomicSave = true
	DefaultLogLevel   = "warn"
	DefaultLogFormat  = "text"
)

// Config holds the full configuration for shell-todo.
type Config struct {
	// DataFile overrides the task file location. Empty means
	// <user-data-dir>/shell_todo/tasks.json.
	DataFile string `toml:"data_file"`

	// Output
	NoColor bool `toml:"no_color"`

	// Priority used by add when -p is not given.
	DefaultPriority string `toml:"default_priority"`

	// Write a temp file and rename it over the task file.
	AtomicSave bool `toml:"atomic_save"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`
	LogFile       string `toml:"log_file"`

	// ConfigFile is the config file that was loaded, or "" (computed).
	ConfigFile string `toml:"-"`

	// Sources maps config keys to the layer that last set them (computed).
	Sources map[string]Source `toml:"-"`

	priority todo.Priority
}

// Keys returns the configurable keys in display order.
func Keys() []string {
	return []string{
		"data_file",
		"no_color",
		"default_priority",
		"atomic_save",
		"log_level",
		"log_format",
		"log_timestamps",
		"log_caller",
		"log_file",
	}
}

// Priority returns the parsed default priority.
func (c *Config) Priority() todo.Priority {
	return c.priority
}

// LoggingOptions returns logger options derived from the config.
func (c *Config) LoggingOptions() logging.Options {
	return logging.Options{
		Level:           c.LogLevel,
		Format:          c.LogFormat,
		ReportTimestamp: c.LogTimestamps,
		ReportCaller:    c.LogCaller,
		Prefix:          logging.DefaultPrefix,
		File:            c.LogFile,
	}
}

// Value returns the display value of a key.
func (c *Config) Value(key string) any {
	switch key {
	case "data_file":
		return c.DataFile
	case "no_color":
		return c.NoColor
	case "default_priority":
		return c.DefaultPriority
	case "atomic_save":
		return c.AtomicSave
	case "log_level":
		return c.LogLevel
	case "log_format":
		return c.LogFormat
	case "log_timestamps":
		return c.LogTimestamps
	case "log_caller":
		return c.LogCaller
	case "log_file":
		return c.LogFile
	default:
		return nil
	}
}

func (c *Config) setSource(key string, source Source) {
	if c.Sources == nil {
		c.Sources = make(map[string]Source)
	}
	c.Sources[key] = source
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.DefaultPriority = DefaultPriority
	cfg.AtomicSave = DefaultAtomicSave
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	for _, key := range Keys() {
		cfg.setSource(key, SourceDefault)
	}
}
