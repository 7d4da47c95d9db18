// Package launcher runs the board TUI over an opened application.
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/tui"
	"github.com/thenoetrevino/kanban/internal/tui/components"
)

// Launch starts the TUI application and blocks until it quits or ctx is cancelled
func Launch(ctx context.Context, a *app.App, opts ...tea.ProgramOption) error {
	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components.InitStyles(a.Config.ColorScheme)

	model := tui.InitialModel(ctx, a.Store, a.Config)
	defer model.Close()

	p := tea.NewProgram(model, append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)...)

	slog.Info("starting tui", "board", a.Store.CurrentBoard())
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			slog.Info("shutdown signal received")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
