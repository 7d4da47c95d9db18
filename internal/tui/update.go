package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/kanban/internal/tui/state"
)

// Update handles all messages and updates the model.
// This implements the "Update" part of the Model-View-Update pattern.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	select {
	case <-m.Ctx.Done():
		return m, tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetWidth(msg.Width)
		m.UiState.SetHeight(msg.Height)
		return m, nil

	case EventMsg:
		m.NotificationState.Add(state.LevelInfo, describeEvent(msg.Event))
		m.clampSelection()
		return m, m.listenForEvents()

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}

	// Forms need non-key messages such as cursor blinks
	switch m.UiState.Mode() {
	case state.TaskFormMode:
		if m.TaskForm != nil {
			var cmd tea.Cmd
			m.TaskForm, cmd = m.TaskForm.Update(msg)
			return m, cmd
		}
	case state.BoardFormMode:
		var cmd tea.Cmd
		m.BoardInput, cmd = m.BoardInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey dispatches a key press by mode
func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch m.UiState.Mode() {
	case state.TaskFormMode:
		return m.updateTaskForm(msg)
	case state.DeleteConfirmMode:
		return m.handleDeleteConfirm(msg)
	case state.ViewTaskMode:
		return m.handleViewTaskMode(msg)
	case state.SearchMode:
		return m.handleSearchMode(msg)
	case state.BoardFormMode:
		return m.updateBoardForm(msg)
	case state.HelpMode:
		return m.handleHelpMode(msg)
	default:
		return m.handleNormalMode(msg)
	}
}

// keyMatches compares a key press with a configured binding.
// Space is spelled " " in key_mappings.
func keyMatches(msg tea.KeyPressMsg, binding string) bool {
	key := msg.String()
	return key == binding || (binding == " " && key == "space")
}
