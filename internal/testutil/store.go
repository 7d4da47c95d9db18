package testutil

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/thenoetrevino/kanban/internal/board"
	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/storage"
)

// FixedTime is the clock of stores built by NewTestStore
var FixedTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// SequentialIDs yields task-1, task-2, ...
func SequentialIDs() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("task-%d", n)
	}
}

// NewTestStore creates a loaded store over in-memory storage with a fixed
// clock, predictable ids and no example tasks. opts are applied last.
func NewTestStore(t *testing.T, opts ...board.Option) (*board.Store, *storage.Memory) {
	t.Helper()
	kv := storage.NewMemory()
	base := []board.Option{
		board.WithClock(func() time.Time { return FixedTime }),
		board.WithIDGenerator(SequentialIDs()),
	}
	store := board.New(kv, append(base, opts...)...)
	store.Load(context.Background())
	return store, kv
}

// CreateTestTask adds a task with title to the current board
func CreateTestTask(t *testing.T, store *board.Store, title string, column models.Column) models.Task {
	t.Helper()
	task, err := store.CreateTask(context.Background(), models.TaskFields{Title: title, Column: column})
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	return task
}

// EventRecorder collects the events a store publishes
type EventRecorder struct {
	mu     sync.Mutex
	events []events.Event
}

// RecordEvents subscribes a recorder to store for the rest of the test
func RecordEvents(t *testing.T, store *board.Store) *EventRecorder {
	t.Helper()
	rec := &EventRecorder{}
	unsubscribe := store.Subscribe(func(e events.Event) {
		rec.mu.Lock()
		defer rec.mu.Unlock()
		rec.events = append(rec.events, e)
	})
	t.Cleanup(unsubscribe)
	return rec
}

// Types returns the recorded event types in order
func (r *EventRecorder) Types() []events.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]events.EventType, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}

// Events returns a copy of the recorded events
func (r *EventRecorder) Events() []events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]events.Event(nil), r.events...)
}
