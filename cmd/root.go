// Package cmd assembles the kanban command tree.
package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/backup"
	"github.com/thenoetrevino/kanban/internal/cli/boards"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
	"github.com/thenoetrevino/kanban/internal/cli/task"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/launcher"
	"github.com/thenoetrevino/kanban/internal/logging"
)

// root holds the persistent flags and the application opened for this run
type root struct {
	configPath string
	ephemeral  bool
	opened     *app.App
}

// NewRootCmd builds the command tree. The returned func closes the
// application opened while running, if any.
func NewRootCmd() (*cobra.Command, func() error) {
	r := &root{}

	cmd := &cobra.Command{
		Use:   "kanban",
		Short: "Kanban - boards of tasks in the terminal",
		Long: `Kanban keeps named boards of tasks in three columns (To Do, In Progress, Done).
Run without arguments to open the board UI, or use the subcommands for scripting.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: r.open,
		RunE:              runTUI,
	}

	cmd.PersistentFlags().StringVar(&r.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/kanban/config.yaml)")
	cmd.PersistentFlags().BoolVar(&r.ephemeral, "ephemeral", false, "keep boards in memory only for this run")

	cmd.AddCommand(task.TaskCmd())
	cmd.AddCommand(boards.BoardCmd())
	cmd.AddCommand(backup.ExportCmd())
	cmd.AddCommand(backup.ImportCmd())
	cmd.AddCommand(tuiCmd())

	return cmd, r.close
}

// Execute runs the command tree against the real configuration
func Execute() error {
	cmd, closeApp := NewRootCmd()
	defer func() {
		if err := closeApp(); err != nil {
			slog.Error("failed to close application", "error", err)
		}
	}()
	return cmd.ExecuteContext(context.Background())
}

// open loads configuration and storage unless the context already carries an app
func (r *root) open(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := cli.AppFromContext(ctx); ok {
		return nil
	}

	cfg, err := r.loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if r.ephemeral {
		cfg.Storage.Backend = config.BackendMemory
	}

	if err := logging.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	styles.Init(cfg.ColorScheme)

	a, err := app.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	r.opened = a
	cmd.SetContext(cli.WithApp(ctx, a))
	return nil
}

func (r *root) loadConfig() (*config.Config, error) {
	if r.configPath != "" {
		return config.LoadFile(r.configPath)
	}
	return config.Load()
}

func (r *root) close() error {
	if r.opened == nil {
		return nil
	}
	err := r.opened.Close()
	r.opened = nil
	return err
}

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive board",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	c, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return err
	}
	return launcher.Launch(cmd.Context(), c.App)
}
