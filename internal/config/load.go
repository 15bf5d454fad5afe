package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	"github.com/TitaniumBrain/shell-todo/internal/datadir"
	"github.com/TitaniumBrain/shell-todo/internal/logging"
	"github.com/TitaniumBrain/shell-todo/internal/todo"
)

// EnvConfigFile names the config file when --config is not given.
const EnvConfigFile = "SHELL_TODO_CONFIG"

// LoadOptions controls where Load looks for configuration.
type LoadOptions struct {
	// Flags holds parsed flags registered with RegisterFlags. May be nil.
	Flags *pflag.FlagSet
	// Getenv defaults to os.Getenv.
	Getenv func(string) string
	// Resolver locates the default config file.
	Resolver datadir.Resolver
}

func (o LoadOptions) getenv(key string) string {
	if o.Getenv != nil {
		return o.Getenv(key)
	}
	return os.Getenv(key)
}

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. Config file
// 3. Environment variables
// 4. CLI flags
func Load(opts LoadOptions) (*Config, error) {
	cfg := &Config{}

	// 1. Set defaults
	setDefaults(cfg)

	// 2. Config file
	path, required, err := findConfigFile(opts)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := loadConfigFile(cfg, path); err != nil {
			if !required && errors.Is(err, fs.ErrNotExist) {
				path = ""
			} else {
				return nil, fmt.Errorf("loading config file %s: %w", path, err)
			}
		}
		cfg.ConfigFile = path
	}

	// 3. Override from environment
	if err := loadFromEnv(cfg, opts.getenv); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}

	// 4. Flags override everything
	if err := applyFlags(cfg, opts.Flags); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	// 5. Compute derived values
	if err := finalizeConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// findConfigFile returns the config file path and whether it must exist.
// An unresolvable config directory yields no file.
func findConfigFile(opts LoadOptions) (string, bool, error) {
	if opts.Flags != nil && opts.Flags.Changed(flagConfig) {
		path, err := opts.Flags.GetString(flagConfig)
		if err != nil {
			return "", false, err
		}
		return expandPath(path), true, nil
	}
	if v := opts.getenv(EnvConfigFile); v != "" {
		return expandPath(v), true, nil
	}
	path, err := opts.Resolver.ConfigPath()
	if err != nil {
		return "", false, nil
	}
	return path, false, nil
}

// loadConfigFile loads TOML config from the given file. Unknown keys are
// rejected so typos do not go unnoticed.
func loadConfigFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	for _, key := range Keys() {
		if md.IsDefined(key) {
			cfg.setSource(key, SourceFile)
		}
	}
	return nil
}

// finalizeConfig expands paths and validates values.
func finalizeConfig(cfg *Config) error {
	cfg.DataFile = expandPath(cfg.DataFile)
	cfg.LogFile = expandPath(cfg.LogFile)

	priority, err := todo.ParsePriority(cfg.DefaultPriority)
	if err != nil {
		return fmt.Errorf("default_priority: %w", err)
	}
	cfg.priority = priority
	cfg.DefaultPriority = priority.String()

	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if _, err := logging.ParseFormatter(cfg.LogFormat); err != nil {
		return fmt.Errorf("log_format: %w", err)
	}
	return nil
}
