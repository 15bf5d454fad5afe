package cmd

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/TitaniumBrain/shell-todo/internal/todo"
	"github.com/TitaniumBrain/shell-todo/internal/ui"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show all tasks, most urgent first",
		Args:    cobra.NoArgs,
		RunE:    a.runList,
	}
}

func (a *app) runList(_ *cobra.Command, _ []string) error {
	store, err := a.openStore()
	if err != nil {
		return err
	}
	tasks, err := store.Load()
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		fmt.Fprintln(a.stdout, "No tasks found.")
		return nil
	}
	r := ui.NewTableRenderer(a.stdout, a.noColor())
	_, err = fmt.Fprintln(a.stdout, r.Render(tasks))
	return err
}

// priorityValue is a pflag.Value accepting priority names or numbers.
type priorityValue struct {
	p   todo.Priority
	set bool
}

func (v *priorityValue) String() string {
	if !v.set {
		return ""
	}
	return v.p.String()
}

func (v *priorityValue) Set(s string) error {
	p, err := todo.ParsePriority(s)
	if err != nil {
		return err
	}
	v.p = p
	v.set = true
	return nil
}

func (v *priorityValue) Type() string {
	return "priority"
}

func newAddCmd(a *app) *cobra.Command {
	var priority priorityValue
	cmd := &cobra.Command{
		Use:   "add <description>",
		Short: "Add a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			description := args[0]
			if strings.TrimSpace(description) == "" {
				return errors.New("description must not be empty")
			}
			p := a.cfg.Priority()
			if priority.set {
				p = priority.p
			}

			store, err := a.openStore()
			if err != nil {
				return err
			}
			tasks, err := store.Load()
			if err != nil {
				return err
			}
			tasks = tasks.Append(todo.Task{Description: description, Priority: p})
			a.logger.Debug("adding task", "priority", p, "count", len(tasks))
			return store.Save(tasks)
		},
	}
	cmd.Flags().VarP(&priority, "priority", "p",
		"Task priority: "+strings.Join(todo.PriorityNames(), ", ")+" (default from config, normally normal)")
	_ = cmd.RegisterFlagCompletionFunc("priority", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return todo.PriorityNames(), cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <position>",
		Aliases: []string{"rm"},
		Short:   "Remove the task shown at position in the list",
		Long: "Remove the task shown at the given zero-based position of the list output.\n" +
			"Positions past the end of the list are ignored.",
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			pos, err := parsePosition(args[0])
			if err != nil {
				return err
			}

			store, err := a.openStore()
			if err != nil {
				return err
			}
			tasks, err := store.Load()
			if err != nil {
				return err
			}
			if pos < uint64(len(tasks)) {
				tasks, _ = tasks.RemoveDisplayed(int(pos))
			} else {
				a.logger.Debug("position out of range", "position", args[0], "count", len(tasks))
			}
			return store.Save(tasks)
		},
	}
}

// parsePosition parses a non-negative list position. Values too large to
// represent are clamped, since they are out of range for any list.
func parsePosition(s string) (uint64, error) {
	pos, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return math.MaxUint64, nil
		}
		return 0, fmt.Errorf("invalid position %q: must be a non-negative integer", s)
	}
	return pos, nil
}

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse and remove tasks interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			return ui.RunTUI(cmd.Context(), store, ui.WithNoColor(a.cfg.NoColor))
		},
	}
}

func newPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the task file path",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.stdout, store.Path())
			return err
		},
	}
}
