package board

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/thenoetrevino/kanban/internal/config"
)

// Option configures a Store
type Option func(*Store)

// WithKey sets the storage key the document is kept under
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithClock replaces time.Now, used for CreatedAt stamps
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator replaces the uuid generator used for new task ids
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// WithLogger sets the logger for store diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSeedExamples makes Load insert the example tasks on first run
func WithSeedExamples(seed bool) Option {
	return func(s *Store) {
		s.seed = seed
	}
}

func defaultOptions(s *Store) {
	s.key = config.DefaultStorageKey
	s.now = time.Now
	s.newID = uuid.NewString
	s.logger = slog.Default()
}
