// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file (TOML)
// 3. Environment variables (SHELL_TODO_*, NO_COLOR)
// 4. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
//
// Config file location, first match wins:
// - the --config flag
// - $SHELL_TODO_CONFIG
// - Windows: %APPDATA%\shell_todo\config.toml
// - macOS: ~/Library/Application Support/shell_todo/config.toml
// - Linux/BSD: $XDG_CONFIG_HOME/shell_todo/config.toml or ~/.config/shell_todo/config.toml
//
// An explicitly named config file must exist; the default location is
// optional.
package config
