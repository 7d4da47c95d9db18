package app

import (
	"log/slog"

	"github.com/thenoetrevino/kanban/internal/storage"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	kv     storage.KV
	logger *slog.Logger
}

// WithStorage uses kv instead of opening the configured backend
func WithStorage(kv storage.KV) Option {
	return func(cfg *appConfig) {
		cfg.kv = kv
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
