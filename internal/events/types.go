// Package events is the in-process notification bus the board store publishes to
package events

import "time"

// EventType indicates what kind of change occurred
type EventType string

const (
	TaskCreated      EventType = "task_created"
	TaskUpdated      EventType = "task_updated"
	TaskDeleted      EventType = "task_deleted"
	TaskMoved        EventType = "task_moved"
	TasksReplaced    EventType = "tasks_replaced"
	BoardCreated     EventType = "board_created"
	BoardSwitched    EventType = "board_switched"
	DocumentImported EventType = "document_imported"
	DocumentLoaded   EventType = "document_loaded"
	DocumentReplaced EventType = "document_replaced"
)

// Event represents a committed change to the board document
type Event struct {
	Type       EventType
	Board      string    // board the change applies to
	TaskID     string    // empty for board and document events
	Timestamp  time.Time // when the change was persisted
	SequenceID int64     // monotonically increasing per bus
}

// Handler receives events after the change is persisted
type Handler func(Event)
