// Package cmd implements the CLI command structure for shell-todo.
package cmd

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/TitaniumBrain/shell-todo/internal/config"
	"github.com/TitaniumBrain/shell-todo/internal/datadir"
	"github.com/TitaniumBrain/shell-todo/internal/logging"
	"github.com/TitaniumBrain/shell-todo/internal/todo"
	"github.com/TitaniumBrain/shell-todo/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the shell-todo CLI.
func Run(ctx context.Context, args []string) error {
	return run(ctx, os.Stdout, os.Stderr, args)
}

func run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	a := &app{stdout: stdout, stderr: stderr}
	defer a.close()

	if args == nil {
		args = []string{}
	}
	root := newRootCmd(a)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// app carries the state shared by every subcommand of one invocation.
type app struct {
	stdout   io.Writer
	stderr   io.Writer
	resolver datadir.Resolver

	cfg    *config.Config
	logger *logging.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "shell-todo",
		Short: "A todo list for the shell",
		Long: "shell-todo keeps a prioritized todo list in your user data directory.\n" +
			"Without a subcommand it lists the tasks.",
		Version:           Version,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.setup,
		RunE:              a.runList,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.SetVersionTemplate("shell-todo version {{.Version}}\n")

	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newListCmd(a),
		newAddCmd(a),
		newRemoveCmd(a),
		newTUICmd(a),
		newDoctorCmd(a),
		newPathCmd(a),
		newConfigCmd(a),
	)
	return root
}

// setup loads configuration and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(config.LoadOptions{
		Flags:    cmd.Flags(),
		Resolver: a.resolver,
	})
	if err != nil {
		return err
	}
	logger, err := logging.New(a.stderr, cfg.LoggingOptions())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	if cfg.ConfigFile != "" {
		logger.Debug("loaded config", "path", cfg.ConfigFile)
	}
	return nil
}

func (a *app) close() {
	if a.logger != nil {
		_ = a.logger.Close()
	}
}

// openStore returns the store for the configured data file, falling back
// to the user data directory.
func (a *app) openStore() (*todo.Store, error) {
	opts := []todo.StoreOption{
		todo.WithAtomicSave(a.cfg.AtomicSave),
		todo.WithLogger(a.logger.Logger),
	}
	if a.cfg.DataFile != "" {
		return todo.NewStore(a.cfg.DataFile, opts...), nil
	}
	return todo.OpenDefault(a.resolver, opts...)
}

// noColor reports whether styling must be suppressed on stdout.
func (a *app) noColor() bool {
	return a.cfg.NoColor || !ui.IsTTY(a.stdout)
}
