package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/TitaniumBrain/shell-todo/internal/todo"
)

func TestDoctor(t *testing.T) {
	t.Run("missing file passes without creating it", func(t *testing.T) {
		path := isolate(t)

		out := mustExecute(t, "doctor")
		if !strings.Contains(out, "Not found") || !strings.Contains(out, "All checks passed") {
			t.Fatalf("unexpected output:\n%s", out)
		}
		if _, err := os.Stat(path); err == nil {
			t.Fatal("doctor created the data file")
		}
	})

	t.Run("valid file reports task count", func(t *testing.T) {
		path := isolate(t)
		writeTasks(t, path, todo.List{
			{Description: "a", Priority: todo.PriorityLow},
			{Description: "b", Priority: 9},
		})

		out := mustExecute(t, "doctor")
		if !strings.Contains(out, "Valid (2 tasks)") {
			t.Fatalf("unexpected output:\n%s", out)
		}
		if !strings.Contains(out, `"b" has unnamed priority 9`) {
			t.Fatalf("expected unnamed priority warning:\n%s", out)
		}
	})

	t.Run("invalid file fails", func(t *testing.T) {
		path := isolate(t)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(`[{"description":"a","priority":1,"done":true}]`), 0644); err != nil {
			t.Fatal(err)
		}

		out, _, err := execute(t, "doctor")
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(out, "Validation failed") {
			t.Fatalf("unexpected output:\n%s", out)
		}
	})

	t.Run("unresolvable data directory fails", func(t *testing.T) {
		isolate(t)
		t.Setenv("HOME", "")
		t.Setenv("XDG_DATA_HOME", "")
		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("APPDATA", "")

		out, _, err := execute(t, "doctor")
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(out, "cannot determine user data directory") {
			t.Fatalf("unexpected output:\n%s", out)
		}
	})
}

func TestConfigCommand(t *testing.T) {
	t.Run("shows values and sources", func(t *testing.T) {
		isolate(t)
		t.Setenv("SHELL_TODO_DEFAULT_PRIORITY", "urgent")

		out := mustExecute(t, "config", "--no-color")
		for _, want := range []string{
			"# config file: (none)",
			`default_priority = "urgent"  # environment`,
			"no_color         = true  # flag",
			"atomic_save      = true  # default",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("reports the config file", func(t *testing.T) {
		isolate(t)
		cfgPath := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(cfgPath, []byte("atomic_save = false\n"), 0644); err != nil {
			t.Fatal(err)
		}
		t.Setenv("SHELL_TODO_CONFIG", cfgPath)

		out := mustExecute(t, "config")
		if !strings.Contains(out, "# config file: "+cfgPath) {
			t.Fatalf("output missing config path:\n%s", out)
		}
		if !strings.Contains(out, "atomic_save      = false  # file") {
			t.Fatalf("output missing file source:\n%s", out)
		}
	})

	t.Run("example", func(t *testing.T) {
		isolate(t)

		out := mustExecute(t, "config", "--example")
		if !strings.Contains(out, "default_priority") || !strings.HasPrefix(out, "# shell-todo configuration file") {
			t.Fatalf("unexpected example:\n%s", out)
		}
	})

	t.Run("bad config file", func(t *testing.T) {
		isolate(t)
		cfgPath := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(cfgPath, []byte("colour = true\n"), 0644); err != nil {
			t.Fatal(err)
		}

		_, _, err := execute(t, "--config", cfgPath, "list")
		if err == nil || !strings.Contains(err.Error(), "unknown keys") {
			t.Fatalf("error = %v", err)
		}
	})
}
