package tui

import (
	"fmt"

	"github.com/thenoetrevino/kanban/internal/events"
)

// describeEvent turns a store event into a status line message
func describeEvent(e events.Event) string {
	switch e.Type {
	case events.TaskCreated:
		return "Task created"
	case events.TaskUpdated:
		return "Task updated"
	case events.TaskDeleted:
		return "Task deleted"
	case events.TaskMoved:
		return "Task moved"
	case events.TasksReplaced:
		return fmt.Sprintf("Tasks of '%s' replaced", e.Board)
	case events.BoardCreated:
		return fmt.Sprintf("Board '%s' created", e.Board)
	case events.BoardSwitched:
		return fmt.Sprintf("Switched to '%s'", e.Board)
	case events.DocumentImported:
		return "Import successful"
	case events.DocumentLoaded:
		return "Board loaded"
	case events.DocumentReplaced:
		return "Boards replaced"
	}
	return string(e.Type)
}
