package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/kanban/internal/tui/components"
	"github.com/thenoetrevino/kanban/internal/tui/theme"
)

// viewHelp renders the key bindings from the active configuration
func (m Model) viewHelp() string {
	km := m.Config.KeyMappings
	sections := []struct {
		title string
		rows  [][2]string
	}{
		{"Navigation", [][2]string{
			{km.PrevColumn + " / " + km.NextColumn, "previous / next column"},
			{km.PrevTask + " / " + km.NextTask, "previous / next task"},
		}},
		{"Tasks", [][2]string{
			{km.AddTask, "new task in this column"},
			{km.EditTask, "edit task"},
			{km.DeleteTask, "delete task"},
			{displayKey(km.ViewTask), "view task"},
			{km.MoveTaskLeft + " / " + km.MoveTaskRight, "move task left / right"},
		}},
		{"Filters", [][2]string{
			{km.Search, "search"},
			{km.CyclePriority, "cycle priority filter"},
			{km.CycleCategory, "cycle category filter"},
			{km.CycleSort, "cycle sort order"},
			{km.ClearFilters, "clear filters"},
		}},
		{"Boards", [][2]string{
			{km.PrevBoard + " / " + km.NextBoard, "previous / next board"},
			{km.CreateBoard, "new board"},
		}},
		{"Other", [][2]string{
			{km.ShowHelp, "toggle help"},
			{km.Quit, "quit"},
		}},
	}

	heading := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Highlight))
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Title)).Width(12)

	var b strings.Builder
	b.WriteString(components.TitleStyle.Render("Keyboard Shortcuts"))
	for _, section := range sections {
		b.WriteString("\n\n" + heading.Render(section.title))
		for _, row := range section.rows {
			fmt.Fprintf(&b, "\n%s%s", keyStyle.Render(row[0]), row[1])
		}
	}
	return components.HelpBoxStyle.Render(b.String())
}

func displayKey(k string) string {
	if k == " " {
		return "space"
	}
	return k
}
