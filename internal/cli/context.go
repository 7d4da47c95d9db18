package cli

import (
	"context"
	"errors"

	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/board"
)

type contextKey string

const appKey contextKey = "app"

// ErrNoApp is returned when a command runs without an application in its context
var ErrNoApp = errors.New("application not initialized")

// CLI represents the CLI application context
type CLI struct {
	App *app.App
}

// Store is a shortcut for the application's board store
func (c *CLI) Store() *board.Store {
	return c.App.Store
}

// WithApp returns a context carrying a for GetCLIFromContext
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// AppFromContext returns the application stored by WithApp, if any
func AppFromContext(ctx context.Context) (*app.App, bool) {
	if ctx == nil {
		return nil, false
	}
	a, ok := ctx.Value(appKey).(*app.App)
	return a, ok && a != nil
}

// GetCLIFromContext returns the CLI wrapping the application the root
// command (or a test) put in ctx.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	a, ok := AppFromContext(ctx)
	if !ok {
		return nil, ErrNoApp
	}
	return &CLI{App: a}, nil
}
