package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode        Mode = iota // Default navigation mode
	TaskFormMode                  // Creating or editing a task
	DeleteConfirmMode             // Confirming task deletion
	ViewTaskMode                  // Read-only task detail with rendered description
	SearchMode                    // Vim-style search mode (/)
	BoardFormMode                 // Naming a new board
	HelpMode                      // Displaying help screen
)

func (m Mode) String() string {
	switch m {
	case NormalMode:
		return "normal"
	case TaskFormMode:
		return "form"
	case DeleteConfirmMode:
		return "delete"
	case ViewTaskMode:
		return "view"
	case SearchMode:
		return "search"
	case BoardFormMode:
		return "board"
	case HelpMode:
		return "help"
	}
	return "unknown"
}
