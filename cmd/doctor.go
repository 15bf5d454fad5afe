package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/TitaniumBrain/shell-todo/internal/config"
	"github.com/TitaniumBrain/shell-todo/internal/todo"
)

func newDoctorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the configuration and the task file",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.doctor(a.stdout)
		},
	}
}

// doctor reports on the config and task file without creating anything.
func (a *app) doctor(w io.Writer) error {
	fmt.Fprintln(w, "shell-todo doctor")
	fmt.Fprintln(w, "=================")
	fmt.Fprintln(w)

	if a.cfg.ConfigFile == "" {
		fmt.Fprintln(w, "Config file: (none, using defaults)")
	} else {
		fmt.Fprintf(w, "Config file: %s\n", a.cfg.ConfigFile)
	}
	fmt.Fprintln(w, "  ✅ OK")
	fmt.Fprintln(w)

	allOK := true
	store, err := a.openStore()
	if err != nil {
		fmt.Fprintln(w, "Data file:")
		fmt.Fprintf(w, "  ❌ %v\n", err)
		allOK = false
	} else {
		allOK = checkDataFile(w, store.Path())
	}
	fmt.Fprintln(w)

	if allOK {
		fmt.Fprintln(w, "✅ All checks passed!")
		return nil
	}
	fmt.Fprintln(w, "⚠️  Some checks failed.")
	return errors.New("doctor checks failed")
}

func checkDataFile(w io.Writer, path string) bool {
	fmt.Fprintf(w, "Data file: %s\n", path)
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		fmt.Fprintln(w, "  ⚠️  Not found (created on first use)")
		return true
	case err != nil:
		fmt.Fprintf(w, "  ❌ Error: %v\n", err)
		return false
	case info.IsDir():
		fmt.Fprintln(w, "  ❌ Error: path is a directory")
		return false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(w, "  ❌ Error: %v\n", err)
		return false
	}
	tasks, err := todo.Parse(data)
	if err != nil {
		fmt.Fprintln(w, "  ❌ Validation failed:")
		fmt.Fprintf(w, "     - %v\n", err)
		return false
	}
	fmt.Fprintf(w, "  ✅ Valid (%d tasks)\n", len(tasks))
	for _, t := range tasks {
		if !t.Priority.Valid() {
			fmt.Fprintf(w, "  ⚠️  %q has unnamed priority %d\n", t.Description, t.Priority)
		}
	}
	return true
}

func newConfigCmd(a *app) *cobra.Command {
	var example bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration and where each value came from",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if example {
				_, err := io.WriteString(a.stdout, config.ExampleConfig())
				return err
			}
			printConfig(a.stdout, a.cfg)
			return nil
		},
	}
	cmd.Flags().BoolVar(&example, "example", false, "Print an example config file")
	return cmd
}

func printConfig(w io.Writer, cfg *config.Config) {
	if cfg.ConfigFile == "" {
		fmt.Fprintln(w, "# config file: (none)")
	} else {
		fmt.Fprintf(w, "# config file: %s\n", cfg.ConfigFile)
	}
	for _, key := range config.Keys() {
		value := cfg.Value(key)
		if s, ok := value.(string); ok {
			value = fmt.Sprintf("%q", s)
		}
		fmt.Fprintf(w, "%-16s = %v  # %s\n", key, value, cfg.Sources[key])
	}
}
