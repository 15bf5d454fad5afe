package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// loadFromEnv overrides config from environment variables. Unparseable
// booleans are reported rather than read as false.
func loadFromEnv(cfg *Config, getenv func(string) string) error {
	var errs []error
	setString := func(key, env string, target *string) {
		if v := getenv(env); v != "" {
			*target = v
			cfg.setSource(key, SourceEnv)
		}
	}
	setBool := func(key, env string, target *bool) {
		if v := getenv(env); v != "" {
			b, err := parseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", env, err))
				return
			}
			*target = b
			cfg.setSource(key, SourceEnv)
		}
	}

	setString("data_file", "SHELL_TODO_DATA_FILE", &cfg.DataFile)
	setString("default_priority", "SHELL_TODO_DEFAULT_PRIORITY", &cfg.DefaultPriority)
	setBool("atomic_save", "SHELL_TODO_ATOMIC_SAVE", &cfg.AtomicSave)

	// https://no-color.org: any non-empty value disables color.
	if v := getenv("NO_COLOR"); v != "" {
		cfg.NoColor = true
		cfg.setSource("no_color", SourceEnv)
	}

	// Logging configuration
	setString("log_level", "SHELL_TODO_LOG_LEVEL", &cfg.LogLevel)
	setString("log_format", "SHELL_TODO_LOG_FORMAT", &cfg.LogFormat)
	setBool("log_timestamps", "SHELL_TODO_LOG_TIMESTAMPS", &cfg.LogTimestamps)
	setBool("log_caller", "SHELL_TODO_LOG_CALLER", &cfg.LogCaller)
	setString("log_file", "SHELL_TODO_LOG_FILE", &cfg.LogFile)

	return errors.Join(errs...)
}

// parseBool accepts strconv.ParseBool forms plus yes/no and on/off.
func parseBool(s string) (bool, error) {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "yes", "on":
		return true, nil
	case "no", "off":
		return false, nil
	default:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("invalid boolean %q", s)
		}
		return b, nil
	}
}
