// Package ui renders tasks for the terminal: a framed table for list output
// and an interactive browser for the tui command.
package ui

import (
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/TitaniumBrain/shell-todo/internal/todo"
)

const (
	// PriorityWidth is the minimum content width of the priority column.
	PriorityWidth = 8
	// DescriptionWidth is the column at which descriptions are hard-wrapped.
	DescriptionWidth = 60

	cellPadding    = 1
	priorityColumn = 1
)

// TableRenderer draws task lists as a bordered table.
type TableRenderer struct {
	renderer *lipgloss.Renderer
	styles   map[todo.Priority]lipgloss.Style
}

// NewTableRenderer returns a renderer for out. When noColor is set every
// cell is written without escape sequences regardless of the terminal.
func NewTableRenderer(out io.Writer, noColor bool) *TableRenderer {
	r := &TableRenderer{renderer: lipgloss.NewRenderer(out)}
	if noColor {
		r.renderer.SetColorProfile(termenv.Ascii)
	}
	r.styles = priorityStyles(r.renderer)
	return r
}

// SetColorProfile overrides the detected color profile.
func (r *TableRenderer) SetColorProfile(p termenv.Profile) {
	r.renderer.SetColorProfile(p)
	r.styles = priorityStyles(r.renderer)
}

// Render returns the table for tasks, highest priority first. Rows are
// numbered from 0 in display order; an empty list renders as "".
func (r *TableRenderer) Render(tasks todo.List) string {
	if len(tasks) == 0 {
		return ""
	}

	sorted := tasks.SortedForDisplay()
	rows := make([][]string, 0, len(sorted))
	for i, task := range sorted {
		rows = append(rows, []string{
			strconv.Itoa(i),
			r.Label(task.Priority),
			ansi.Hardwrap(task.Description, DescriptionWidth, true),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(true).
		BorderStyle(r.renderer.NewStyle()).
		StyleFunc(func(_, col int) lipgloss.Style {
			style := r.renderer.NewStyle().Padding(0, cellPadding)
			if col == priorityColumn {
				style = style.Width(PriorityWidth + 2*cellPadding)
			}
			return style
		}).
		Rows(rows...)
	return t.Render()
}

// Label returns the styled priority name. Priorities outside the known
// range have no name and render as an empty cell.
func (r *TableRenderer) Label(p todo.Priority) string {
	style, ok := r.styles[p]
	if !ok {
		return ""
	}
	return style.Render(p.String())
}

func priorityStyles(re *lipgloss.Renderer) map[todo.Priority]lipgloss.Style {
	return map[todo.Priority]lipgloss.Style{
		todo.PriorityLow:    re.NewStyle().Faint(true),
		todo.PriorityNormal: re.NewStyle(),
		todo.PriorityHigh:   re.NewStyle().Foreground(lipgloss.Color("3")),
		todo.PriorityUrgent: re.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
}
