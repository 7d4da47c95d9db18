package forms

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/kanban/internal/tui/theme"
)

func titleStyle(focused bool) lipgloss.Style {
	color := theme.Subtle
	if focused {
		color = theme.Highlight
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color))
}
