package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/kanban/internal/tui/state"
)

// ============================================================================
// SEARCH MODE HANDLERS
// ============================================================================

// handleSearchMode filters the board live while the query is typed.
func (m Model) handleSearchMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		// Keep the query as an active filter
		m.UiState.SetMode(state.NormalMode)
	case "esc":
		m.FilterState.ClearQuery()
		m.UiState.SetMode(state.NormalMode)
	case "backspace", "ctrl+h":
		m.FilterState.Backspace()
	default:
		text := msg.Key().Text
		if text == "" {
			return m, nil
		}
		for _, r := range text {
			if !m.FilterState.AppendChar(r) {
				break
			}
		}
	}
	m.UiState.SetSelectedTask(0)
	return m, nil
}
