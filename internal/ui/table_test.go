package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/TitaniumBrain/shell-todo/internal/todo"
)

// tableRows returns the cells of each data row. Continuation lines of a
// wrapped description are folded into the row they belong to.
func tableRows(t *testing.T, out string) [][]string {
	t.Helper()
	var rows [][]string
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "│") {
			continue
		}
		parts := strings.Split(strings.Trim(line, "│"), "│")
		cells := make([]string, len(parts))
		for i, p := range parts {
			cells[i] = strings.TrimSpace(p)
		}
		if cells[0] == "" && len(rows) > 0 {
			last := rows[len(rows)-1]
			last[2] += cells[2]
			continue
		}
		rows = append(rows, cells)
	}
	return rows
}

func plainRenderer() *TableRenderer {
	return NewTableRenderer(&bytes.Buffer{}, true)
}

func TestRenderEmpty(t *testing.T) {
	if got := plainRenderer().Render(nil); got != "" {
		t.Fatalf("Render(nil) = %q, want empty", got)
	}
	if got := plainRenderer().Render(todo.List{}); got != "" {
		t.Fatalf("Render(empty) = %q, want empty", got)
	}
}

func TestRenderOrdersByPriority(t *testing.T) {
	tasks := todo.List{
		{Description: "buy milk", Priority: todo.PriorityNormal},
		{Description: "fix bug", Priority: todo.PriorityUrgent},
		{Description: "water plants", Priority: todo.PriorityLow},
		{Description: "pay rent", Priority: todo.PriorityNormal},
	}
	rows := tableRows(t, plainRenderer().Render(tasks))

	want := [][]string{
		{"0", "urgent", "fix bug"},
		{"1", "normal", "buy milk"},
		{"2", "normal", "pay rent"},
		{"3", "low", "water plants"},
	}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d: %v", len(rows), len(want), rows)
	}
	for i := range want {
		for j := range want[i] {
			if rows[i][j] != want[i][j] {
				t.Errorf("row %d col %d = %q, want %q", i, j, rows[i][j], want[i][j])
			}
		}
	}
}

func TestRenderFrame(t *testing.T) {
	out := plainRenderer().Render(todo.List{
		{Description: "a", Priority: todo.PriorityHigh},
		{Description: "b", Priority: todo.PriorityLow},
	})
	lines := strings.Split(out, "\n")
	if !strings.HasPrefix(lines[0], "┌") || !strings.HasPrefix(lines[len(lines)-1], "└") {
		t.Fatalf("table is not framed:\n%s", out)
	}
	if !strings.Contains(out, "├") {
		t.Fatalf("rows are not separated:\n%s", out)
	}
	width := lipgloss.Width(lines[0])
	for _, line := range lines {
		if w := lipgloss.Width(line); w != width {
			t.Fatalf("line width %d, want %d:\n%s", w, width, out)
		}
	}
}

func TestRenderNoColorHasNoEscapes(t *testing.T) {
	out := plainRenderer().Render(todo.List{
		{Description: "a", Priority: todo.PriorityLow},
		{Description: "b", Priority: todo.PriorityHigh},
		{Description: "c", Priority: todo.PriorityUrgent},
	})
	if strings.Contains(out, "\x1b") {
		t.Fatalf("no-color output contains escape sequences: %q", out)
	}
}

func TestRenderColorKeepsLayout(t *testing.T) {
	tasks := todo.List{
		{Description: "a", Priority: todo.PriorityLow},
		{Description: "b", Priority: todo.PriorityHigh},
		{Description: "c", Priority: todo.PriorityUrgent},
	}
	r := NewTableRenderer(&bytes.Buffer{}, false)
	r.SetColorProfile(termenv.ANSI)
	colored := r.Render(tasks)

	if !strings.Contains(colored, "\x1b[") {
		t.Fatalf("expected escape sequences in %q", colored)
	}
	if got, want := ansi.Strip(colored), plainRenderer().Render(tasks); got != want {
		t.Fatalf("stripped colored output differs:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderPriorityColumnWidth(t *testing.T) {
	out := plainRenderer().Render(todo.List{{Description: "a", Priority: todo.PriorityLow}})
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "│") {
			continue
		}
		cells := strings.Split(strings.Trim(line, "│"), "│")
		if w := lipgloss.Width(cells[priorityColumn]); w < PriorityWidth {
			t.Fatalf("priority cell %q is %d wide, want at least %d", cells[priorityColumn], w, PriorityWidth)
		}
	}
}

func TestRenderWrapsDescription(t *testing.T) {
	long := strings.Repeat("word ", 40)
	out := plainRenderer().Render(todo.List{{Description: long, Priority: todo.PriorityNormal}})

	var lines int
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "│") {
			continue
		}
		lines++
		cells := strings.Split(strings.Trim(line, "│"), "│")
		if w := lipgloss.Width(strings.TrimSpace(cells[2])); w > DescriptionWidth {
			t.Fatalf("description line %q is %d wide", cells[2], w)
		}
	}
	if lines < 2 {
		t.Fatalf("expected the description to wrap:\n%s", out)
	}
}

func TestRenderUnknownPriority(t *testing.T) {
	rows := tableRows(t, plainRenderer().Render(todo.List{{Description: "odd", Priority: 42}}))
	if len(rows) != 1 {
		t.Fatalf("got %d rows", len(rows))
	}
	if rows[0][1] != "" {
		t.Fatalf("priority cell = %q, want empty", rows[0][1])
	}
	if rows[0][2] != "odd" {
		t.Fatalf("description = %q", rows[0][2])
	}
}

func TestIsTTY(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Fatal("buffer reported as a terminal")
	}
}
