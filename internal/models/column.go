package models

import (
	"fmt"
	"strings"
)

// Column is one of the three fixed lanes of a board.
type Column string

const (
	ColumnTodo       Column = "todo"
	ColumnInProgress Column = "inprogress"
	ColumnDone       Column = "done"
)

// Columns returns the board lanes in display order.
func Columns() []Column {
	return []Column{ColumnTodo, ColumnInProgress, ColumnDone}
}

// Valid reports whether c is one of the known lanes.
func (c Column) Valid() bool {
	switch c {
	case ColumnTodo, ColumnInProgress, ColumnDone:
		return true
	}
	return false
}

// OrDefault returns c, or ColumnTodo when c is not a known lane.
// Imported documents are not validated task by task, so stray values land in todo.
func (c Column) OrDefault() Column {
	if c.Valid() {
		return c
	}
	return ColumnTodo
}

// Title returns the display name of the lane.
func (c Column) Title() string {
	switch c {
	case ColumnTodo:
		return "To Do"
	case ColumnInProgress:
		return "In Progress"
	case ColumnDone:
		return "Done"
	}
	return string(c)
}

// Index returns the position of c in Columns(), or -1.
func (c Column) Index() int {
	for i, col := range Columns() {
		if col == c {
			return i
		}
	}
	return -1
}

// ParseColumn maps user input to a Column.
func ParseColumn(s string) (Column, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer("-", "", "_", "", " ", "").Replace(normalized)

	switch normalized {
	case "todo":
		return ColumnTodo, nil
	case "inprogress", "doing":
		return ColumnInProgress, nil
	case "done":
		return ColumnDone, nil
	}
	return "", fmt.Errorf("%w '%s' (must be: todo, inprogress, done)", ErrInvalidColumn, s)
}
