package notifications

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/kanban/internal/tui/state"
)

// RenderInline renders a compact one-line notification for the tab bar
func RenderInline(severity Severity, message string) string {
	style := severity.style()
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Background(lipgloss.Color(style.background)).
		Bold(true).
		Padding(0, 1).
		Render(style.icon + " " + message)
}

// RenderFromState renders the newest notification, or nothing.
func RenderFromState(s *state.NotificationState) string {
	n, ok := s.Latest()
	if !ok {
		return ""
	}
	if n.Level == state.LevelError {
		return RenderInline(Error, n.Message)
	}
	return RenderInline(Info, n.Message)
}
