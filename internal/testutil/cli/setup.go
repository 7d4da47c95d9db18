package cli

import (
	"testing"

	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/board"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/testutil"
)

// SetupCLITest creates an app over in-memory storage for command tests.
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when the cli package itself imports testutil.
func SetupCLITest(t *testing.T, opts ...board.Option) *app.App {
	t.Helper()
	store, kv := testutil.NewTestStore(t, opts...)

	cfg := config.Default()
	cfg.Storage.Backend = config.BackendMemory

	appInstance := app.New(store, cfg, app.WithStorage(kv))
	t.Cleanup(func() { _ = appInstance.Close() })
	return appInstance
}
