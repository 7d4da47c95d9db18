package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/tui/theme"
)

// RenderTask renders a single task as a card
//
//	╭─────────────────────╮
//	│ {Task Title}        │
//	│ priority │ category │
//	│ due 2025-06-30      │
//	│ description preview │
//	╰─────────────────────╯
func RenderTask(task models.Task, selected bool, width int) string {
	inner := max(width-2, 4)

	title := lipgloss.NewStyle().Bold(true).Render(ansi.Truncate(task.Title, inner, "…"))
	lines := []string{
		title,
		renderTaskMetadata(task),
		renderDueDate(task.DueDate),
		renderPreview(task.Description, inner),
	}

	style := TaskStyle.Width(width)
	if selected {
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	return style.Render(strings.Join(lines, "\n"))
}

// renderTaskMetadata renders priority and category on the same line, separated by │
func renderTaskMetadata(task models.Task) string {
	priorityStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(PriorityColor(string(task.Priority)))).
		Bold(true)
	priority := "no priority"
	if task.Priority != "" {
		priority = string(task.Priority)
	}

	category := SubtleStyle.Render("no category")
	if task.Category != "" {
		category = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal)).Render(task.Category)
	}

	separator := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Render(" │ ")
	return priorityStyle.Render(priority) + separator + category
}

func renderDueDate(due string) string {
	if due == "" {
		return SubtleStyle.Render("no due date")
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal)).Render("due " + due)
}

// renderPreview shows the first line of the description.
func renderPreview(description string, width int) string {
	first, _, _ := strings.Cut(strings.TrimSpace(description), "\n")
	if first == "" {
		return SubtleStyle.Render("no description")
	}
	limit := min(width, descriptionPreview)
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Render(ansi.Truncate(first, limit, "…"))
}
