package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/kanban/internal/tui/theme"
)

// StatusBarProps carries what the bottom line shows.
type StatusBarProps struct {
	Width int
	// Searching renders the query as an input prompt
	Searching bool
	Query     string
	// Filters summarizes the active selectors, e.g. "priority:High sort:dueDate_asc"
	Filters string
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: the search prompt or the active filters
// Right side: "press ? for help"
func RenderStatusBar(props StatusBarProps) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	var left string
	switch {
	case props.Searching:
		left = StatusBarSearchStyle.Render("/" + props.Query + "█")
	case props.Filters != "":
		left = style.Render("filters: " + props.Filters)
	default:
		left = style.Render("Kanban")
	}
	right := style.Render("press ? for help")

	gapWidth := max(props.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gapWidth), right)
}
