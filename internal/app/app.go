package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/kanban/internal/board"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/storage"
)

// App holds the board store and its configuration for the front ends.
// This is the main application container that manages resource lifecycles.
type App struct {
	Config *config.Config
	Store  *board.Store

	kv          storage.KV
	logger      *slog.Logger
	unsubscribe func()
}

// New wraps an already loaded store. Closing the app closes kv when given.
func New(store *board.Store, cfg *config.Config, opts ...Option) *App {
	ac := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(ac)
	}
	if cfg == nil {
		cfg = config.Default()
	}

	a := &App{
		Config: cfg,
		Store:  store,
		kv:     ac.kv,
		logger: ac.logger,
	}
	a.unsubscribe = store.Subscribe(a.logEvent)
	return a
}

// Open opens the configured storage, builds the store and loads the document.
func Open(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	ac := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(ac)
	}

	kv := ac.kv
	if kv == nil {
		var err error
		kv, err = storage.Open(ctx, cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Backend, err)
		}
	}

	store := board.New(kv,
		board.WithKey(cfg.Storage.Key),
		board.WithLogger(ac.logger),
		board.WithSeedExamples(cfg.ShouldSeedExamples()),
	)
	store.Load(ctx)

	return New(store, cfg, append(opts, WithStorage(kv))...), nil
}

// logEvent records every committed change
func (a *App) logEvent(e events.Event) {
	a.logger.Info("board changed",
		"type", e.Type,
		"board", e.Board,
		"task", e.TaskID,
		"seq", e.SequenceID,
	)
}

// Close releases the storage backend.
func (a *App) Close() error {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	if a.kv == nil {
		return nil
	}
	return a.kv.Close()
}
