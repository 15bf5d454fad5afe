package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/TitaniumBrain/shell-todo/internal/todo"
)

// ErrNoTTY is returned by RunTUI when stdout is not a terminal.
var ErrNoTTY = errors.New("tui requires a TTY")

// TaskStore is the persistence the browser needs.
type TaskStore interface {
	Path() string
	Load() (todo.List, error)
	Save(todo.List) error
}

// TUIOption configures the TUI behavior.
type TUIOption func(*tuiConfig)

type tuiConfig struct {
	noColor bool
}

// WithNoColor disables styling in the browser.
func WithNoColor(enabled bool) TUIOption {
	return func(c *tuiConfig) {
		c.noColor = enabled
	}
}

// RunTUI starts an interactive browser over the tasks in store. Removals
// are saved as they happen.
func RunTUI(ctx context.Context, store TaskStore, opts ...TUIOption) error {
	c := &tuiConfig{}
	for _, opt := range opts {
		opt(c)
	}

	if !IsTTY(os.Stdout) {
		return ErrNoTTY
	}

	tasks, err := store.Load()
	if err != nil {
		return err
	}

	model := newTUIModel(store, tasks, NewTableRenderer(os.Stdout, c.noColor))
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := program.Run()
	if err != nil {
		return err
	}
	if m, ok := finalModel.(*tuiModel); ok && m.saveErr != nil {
		return m.saveErr
	}
	return nil
}

type tuiModel struct {
	store    TaskStore
	tasks    todo.List
	cursor   int
	renderer *TableRenderer
	cursorSt lipgloss.Style
	helpSt   lipgloss.Style
	saveErr  error
	status   string
}

func newTUIModel(store TaskStore, tasks todo.List, r *TableRenderer) *tuiModel {
	return &tuiModel{
		store:    store,
		tasks:    tasks,
		renderer: r,
		cursorSt: r.renderer.NewStyle().Bold(true),
		helpSt:   r.renderer.NewStyle().Faint(true),
	}
}

func (m *tuiModel) Init() tea.Cmd {
	return nil
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	case "d", "x":
		m.removeSelected()
		if m.saveErr != nil {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *tuiModel) removeSelected() {
	shown := m.tasks.SortedForDisplay()
	if m.cursor >= len(shown) {
		return
	}
	removed := shown[m.cursor]
	next, ok := m.tasks.RemoveDisplayed(m.cursor)
	if !ok {
		return
	}
	if err := m.store.Save(next); err != nil {
		m.saveErr = err
		return
	}
	m.tasks = next
	m.status = fmt.Sprintf("removed %q", removed.Description)
	if m.cursor >= len(m.tasks) && m.cursor > 0 {
		m.cursor--
	}
}

func (m *tuiModel) View() string {
	var b strings.Builder
	b.WriteString(m.cursorSt.Render("shell-todo") + "  " + m.store.Path() + "\n\n")

	if len(m.tasks) == 0 {
		b.WriteString("No tasks found.\n")
	}
	for i, task := range m.tasks.SortedForDisplay() {
		marker := "  "
		desc := task.Description
		if i == m.cursor {
			marker = "> "
			desc = m.cursorSt.Render(desc)
		}
		pad := strings.Repeat(" ", max(0, PriorityWidth-len(task.Priority.String())))
		fmt.Fprintf(&b, "%s%2d  %s%s %s\n", marker, i, m.renderer.Label(task.Priority), pad, desc)
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	b.WriteString("\n" + m.helpSt.Render("up/k down/j move | d/x remove | q quit") + "\n")
	return b.String()
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
