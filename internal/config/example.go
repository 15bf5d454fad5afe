package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# shell-todo configuration file
# Values can be overridden by environment variables or CLI flags

# Task file location (supports ~ and $VAR expansion).
# Default: <user data dir>/shell_todo/tasks.json
# data_file = "~/Dropbox/tasks.json"

# Disable colored output (NO_COLOR and --no-color also work)
no_color = false

# Priority used by "add" when -p is not given: low, normal, high, urgent
default_priority = "normal"

# Write a temp file and rename it over the task file on save
atomic_save = true

# Logging: debug, info, warn, error
log_level = "warn"

# Log format: text, json, logfmt
log_format = "text"

log_timestamps = false
log_caller = false

# Append logs to a file instead of stderr
# log_file = "~/.local/state/shell_todo/shell-todo.log"
`
}
