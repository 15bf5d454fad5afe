package config

import "github.com/spf13/pflag"

const (
	flagConfig    = "config"
	flagDataFile  = "data-file"
	flagNoColor   = "no-color"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
)

// RegisterFlags defines the global configuration flags on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(flagConfig, "", "Path to config file")
	fs.String(flagDataFile, "", "Path to task file (overrides the user data directory)")
	fs.Bool(flagNoColor, false, "Disable colored output")
	fs.String(flagLogLevel, "", "Log level (debug|info|warn|error)")
	fs.String(flagLogFormat, "", "Log format (text|json|logfmt)")
}

// applyFlags copies explicitly set flags into cfg.
func applyFlags(cfg *Config, fs *pflag.FlagSet) error {
	if fs == nil {
		return nil
	}

	stringFlags := []struct {
		flag   string
		key    string
		target *string
	}{
		{flagDataFile, "data_file", &cfg.DataFile},
		{flagLogLevel, "log_level", &cfg.LogLevel},
		{flagLogFormat, "log_format", &cfg.LogFormat},
	}
	for _, f := range stringFlags {
		if fs.Lookup(f.flag) == nil || !fs.Changed(f.flag) {
			continue
		}
		v, err := fs.GetString(f.flag)
		if err != nil {
			return err
		}
		*f.target = v
		cfg.setSource(f.key, SourceFlag)
	}

	if fs.Lookup(flagNoColor) != nil && fs.Changed(flagNoColor) {
		v, err := fs.GetBool(flagNoColor)
		if err != nil {
			return err
		}
		cfg.NoColor = v
		cfg.setSource("no_color", SourceFlag)
	}
	return nil
}
