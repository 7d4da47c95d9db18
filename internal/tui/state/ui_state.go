package state

// UIState manages the user interface state.
// This includes navigation (column/task selection), terminal dimensions,
// and the current interaction mode.
type UIState struct {
	// selectedColumn is the index of the currently selected column
	selectedColumn int

	// selectedTask is the index of the currently selected task within the selected column
	selectedTask int

	width  int
	height int

	mode Mode
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{mode: NormalMode}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index and resets the task cursor.
func (s *UIState) SetSelectedColumn(index int) {
	if index != s.selectedColumn {
		s.selectedTask = 0
	}
	s.selectedColumn = index
}

// SelectedTask returns the index of the currently selected task.
func (s *UIState) SelectedTask() int {
	return s.selectedTask
}

// SetSelectedTask updates the selected task index.
func (s *UIState) SetSelectedTask(index int) {
	s.selectedTask = max(index, 0)
}

// ClampSelectedTask keeps the task cursor inside a column of n tasks.
func (s *UIState) ClampSelectedTask(n int) {
	if s.selectedTask >= n {
		s.selectedTask = max(n-1, 0)
	}
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the available height for the columns.
// This is terminal height minus tab bar and status bar, ensuring a minimum of 5.
func (s *UIState) ContentHeight() int {
	const tabBarHeight = 3
	const statusBarHeight = 2
	return max(s.height-tabBarHeight-statusBarHeight, 5)
}

// ColumnWidth splits the terminal width between the three lanes.
func (s *UIState) ColumnWidth() int {
	const minWidth = 24
	if s.width == 0 {
		return minWidth
	}
	return max((s.width-2)/3, minWidth)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}
