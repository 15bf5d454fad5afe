// Package logging builds the leveled charmbracelet/log logger used across shell-todo.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultPrefix is the prefix printed on every log line.
const DefaultPrefix = "shell-todo"

// Options holds configuration for the logger.
type Options struct {
	Level           string
	Format          string
	ReportTimestamp bool
	ReportCaller    bool
	Prefix          string
	// File, when set, receives log output (appended) instead of the console writer.
	File string
}

// DefaultOptions returns quiet console logging: warnings and errors only.
func DefaultOptions() Options {
	return Options{
		Level:  "warn",
		Format: "text",
		Prefix: DefaultPrefix,
	}
}

// Logger wraps a charmbracelet/log logger and the file it may own.
type Logger struct {
	*log.Logger
	file *os.File
}

// New creates a logger writing to console, or to opts.File when set.
func New(console io.Writer, opts Options) (*Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	formatter, err := ParseFormatter(opts.Format)
	if err != nil {
		return nil, err
	}

	out := console
	var file *os.File
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		file, err = os.OpenFile(opts.File, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out = file
	}
	if out == nil {
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: opts.ReportTimestamp,
		ReportCaller:    opts.ReportCaller,
		Prefix:          opts.Prefix,
	})
	return &Logger{Logger: logger, file: file}, nil
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return &Logger{Logger: log.New(io.Discard)}
}

// ParseLevel parses a level name. The empty string means warn.
func ParseLevel(level string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel, nil
	case "info":
		return log.InfoLevel, nil
	case "", "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	case "fatal":
		return log.FatalLevel, nil
	default:
		return 0, fmt.Errorf("invalid log level %q, must be one of: debug, info, warn, error, fatal", level)
	}
}

// ParseFormatter parses a formatter name. The empty string means text.
func ParseFormatter(format string) (log.Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return log.TextFormatter, nil
	case "json":
		return log.JSONFormatter, nil
	case "logfmt":
		return log.LogfmtFormatter, nil
	default:
		return 0, fmt.Errorf("invalid log format %q, must be one of: text, json, logfmt", format)
	}
}
