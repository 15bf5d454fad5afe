package cmd

import (
	"strings"
	"testing"
)

func TestCompletionCommandOutputsScripts(t *testing.T) {
	tests := []struct {
		name   string
		shell  string
		needle string
	}{
		{
			name:   "bash",
			shell:  "bash",
			needle: "shell-todo",
		},
		{
			name:   "zsh",
			shell:  "zsh",
			needle: "#compdef shell-todo",
		},
		{
			name:   "fish",
			shell:  "fish",
			needle: "complete -c shell-todo",
		},
		{
			name:   "powershell",
			shell:  "powershell",
			needle: "Register-ArgumentCompleter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			out, _, err := execute(t, "completion", tt.shell)
			if err != nil {
				t.Fatalf("completion %s error = %v", tt.shell, err)
			}
			if !strings.Contains(out, tt.needle) {
				t.Fatalf("output missing %q", tt.needle)
			}
		})
	}
}

func TestCompletionUnknownShellShowsHelp(t *testing.T) {
	isolate(t)

	out, _, err := execute(t, "completion", "tcsh")
	if err != nil {
		t.Fatalf("completion tcsh error = %v", err)
	}
	if !strings.HasPrefix(out, "Generate the autocompletion script") {
		t.Fatalf("expected completion help, got:\n%s", out)
	}
	for _, script := range []string{"#compdef", "complete -c"} {
		if strings.Contains(out, script) {
			t.Errorf("help output contains a %q script", script)
		}
	}
}

func TestPriorityFlagCompletion(t *testing.T) {
	isolate(t)

	out, _, err := execute(t, "__complete", "add", "x", "--priority", "")
	if err != nil {
		t.Fatalf("__complete error = %v", err)
	}
	for _, name := range []string{"low", "normal", "high", "urgent"} {
		if !strings.Contains(out, name+"\n") {
			t.Errorf("completions missing %q:\n%s", name, out)
		}
	}
}
