package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/tui/theme"
)

// ColumnProps describes one lane of the board.
type ColumnProps struct {
	Column   models.Column
	Tasks    []models.Task
	Selected bool
	// SelectedTask is the index of the selected card, -1 for none
	SelectedTask int
	Width        int
	// Height is the total box height, 0 for auto
	Height int
}

// RenderColumn renders a complete column with its title and tasks
//
// Layout:
//
//	{Column Title} ({count})
//	▲ (if scrolled down)
//	{Task 1}
//	{Task 2}
//	...
//	▼ (if more tasks below)
func RenderColumn(props ColumnProps) string {
	header := fmt.Sprintf("%s (%d)", props.Column.Title(), len(props.Tasks))
	content := TitleStyle.Render(header) + "\n"

	cardWidth := max(props.Width-4, 8)

	if len(props.Tasks) == 0 {
		content += SubtleStyle.Padding(1, 0).Render("No tasks")
	} else {
		// Header and top indicator take one line each
		available := props.Height - columnBorderOverhead - 2
		maxVisible := len(props.Tasks)
		if props.Height > 0 {
			maxVisible = max(available/TaskCardHeight, 1)
		}
		offset := scrollOffset(props.SelectedTask, maxVisible, len(props.Tasks))

		if offset > 0 {
			content += IndicatorStyle.Render("▲ more above") + "\n"
		} else {
			content += "\n"
		}

		end := min(offset+maxVisible, len(props.Tasks))
		cards := make([]string, 0, end-offset)
		for i := offset; i < end; i++ {
			cards = append(cards, RenderTask(props.Tasks[i], props.Selected && i == props.SelectedTask, cardWidth))
		}
		content += strings.Join(cards, "\n")

		if end < len(props.Tasks) {
			content += "\n" + IndicatorStyle.Render("▼ more below")
		}
	}

	style := ColumnStyle.Width(props.Width)
	if props.Selected {
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	if props.Height > 0 {
		// .Height() sets the content area, borders add two lines
		style = style.Height(props.Height - 2)
	}
	return style.Render(content)
}

// scrollOffset returns the first visible card so that selected stays on screen.
func scrollOffset(selected, visible, total int) int {
	if selected < visible || visible <= 0 {
		return 0
	}
	return min(selected-visible+1, max(total-visible, 0))
}
