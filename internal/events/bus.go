package events

import (
	"log/slog"
	"sync"
	"time"
)

// Bus fans events out to subscribers synchronously, in subscription order.
// The zero value is ready to use.
type Bus struct {
	mu       sync.RWMutex
	handlers map[int]Handler
	order    []int
	nextID   int
	sequence int64
	logger   *slog.Logger
}

// NewBus creates a bus that logs subscriber panics to logger (slog.Default when nil)
func NewBus(logger *slog.Logger) *Bus {
	return &Bus{logger: logger}
}

// Subscribe registers fn and returns a function that removes it
func (b *Bus) Subscribe(fn Handler) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.handlers == nil {
		b.handlers = make(map[int]Handler)
	}
	id := b.nextID
	b.nextID++
	b.handlers[id] = fn
	b.order = append(b.order, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.handlers, id)
			for i, v := range b.order {
				if v == id {
					b.order = append(b.order[:i], b.order[i+1:]...)
					break
				}
			}
		})
	}
}

// Publish stamps the event and delivers it to every subscriber.
// Handlers may subscribe or unsubscribe while being called.
func (b *Bus) Publish(event Event) {
	b.mu.Lock()
	b.sequence++
	event.SequenceID = b.sequence
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	handlers := make([]Handler, 0, len(b.order))
	for _, id := range b.order {
		handlers = append(handlers, b.handlers[id])
	}
	b.mu.Unlock()

	for _, fn := range handlers {
		b.deliver(fn, event)
	}
}

func (b *Bus) deliver(fn Handler, event Event) {
	defer func() {
		if r := recover(); r != nil {
			b.log().Error("event handler panicked", "type", event.Type, "panic", r)
		}
	}()
	fn(event)
}

func (b *Bus) log() *slog.Logger {
	if b.logger != nil {
		return b.logger
	}
	return slog.Default()
}
