package models

import "sort"

// DefaultBoardName is the board of a fresh document.
const DefaultBoardName = "Default"

// Document is the whole persisted state: every board and the active one.
type Document struct {
	Boards       map[string][]Task `json:"boards"`
	CurrentBoard string            `json:"currentBoard"`
}

// DefaultDocument returns {boards:{Default:[]}, currentBoard:"Default"}.
func DefaultDocument() Document {
	return Document{
		Boards:       map[string][]Task{DefaultBoardName: {}},
		CurrentBoard: DefaultBoardName,
	}
}

// Clone deep-copies the document so callers can mutate it freely.
func (d Document) Clone() Document {
	out := Document{
		Boards:       make(map[string][]Task, len(d.Boards)),
		CurrentBoard: d.CurrentBoard,
	}
	for name, tasks := range d.Boards {
		copied := make([]Task, len(tasks))
		copy(copied, tasks)
		out.Boards[name] = copied
	}
	return out
}

// BoardNames returns the board names in sorted order.
func (d Document) BoardNames() []string {
	names := make([]string, 0, len(d.Boards))
	for name := range d.Boards {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasBoard reports whether name is a key of Boards.
func (d Document) HasBoard(name string) bool {
	_, ok := d.Boards[name]
	return ok
}

// Normalize repairs the document invariants in place and reports whether
// anything changed: boards is never empty, currentBoard names an existing
// board (the first name in sorted order is chosen otherwise), and no board
// holds a nil list.
func (d *Document) Normalize() bool {
	changed := false
	if len(d.Boards) == 0 {
		d.Boards = map[string][]Task{DefaultBoardName: {}}
		changed = true
	}
	for name, tasks := range d.Boards {
		if tasks == nil {
			d.Boards[name] = []Task{}
			changed = true
		}
	}
	if !d.HasBoard(d.CurrentBoard) {
		d.CurrentBoard = d.BoardNames()[0]
		changed = true
	}
	return changed
}
