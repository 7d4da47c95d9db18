package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/tui/components"
	"github.com/thenoetrevino/kanban/internal/tui/notifications"
	"github.com/thenoetrevino/kanban/internal/tui/state"
	"github.com/thenoetrevino/kanban/internal/tui/theme"
)

// View renders the current state of the application.
// The board is always drawn; dialogs are layered on top of it.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	layers := []*lipgloss.Layer{lipgloss.NewLayer(m.viewKanbanBoard())}

	var modal string
	switch m.UiState.Mode() {
	case state.TaskFormMode:
		modal = m.viewTaskForm()
	case state.DeleteConfirmMode:
		modal = m.viewDeleteTaskConfirm()
	case state.ViewTaskMode:
		modal = m.viewTaskDetail()
	case state.BoardFormMode:
		modal = m.viewBoardForm()
	case state.HelpMode:
		modal = m.viewHelp()
	}
	if layer := createCenteredLayer(modal, m.UiState.Width(), m.UiState.Height()); layer != nil {
		layers = append(layers, layer)
	}

	view.Content = lipgloss.NewCanvas(layers...).Render()
	return view
}

// createCenteredLayer places content in the middle of the screen
func createCenteredLayer(content string, screenWidth, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x := max((screenWidth-lipgloss.Width(content))/2, 0)
	y := max((screenHeight-lipgloss.Height(content))/2, 0)
	return lipgloss.NewLayer(content).X(x).Y(y)
}

// viewKanbanBoard renders tabs, the three lanes and the status bar
func (m Model) viewKanbanBoard() string {
	boards := m.Store.Boards()
	current := 0
	for i, name := range boards {
		if name == m.Store.CurrentBoard() {
			current = i
		}
	}
	tabs := components.RenderTabs(boards, current, m.UiState.Width(), notifications.RenderFromState(m.NotificationState))

	grouped := m.visibleTasks()
	columns := make([]string, 0, len(models.Columns()))
	for i, col := range models.Columns() {
		selected := i == m.UiState.SelectedColumn()
		selectedTask := -1
		if selected {
			selectedTask = m.UiState.SelectedTask()
		}
		columns = append(columns, components.RenderColumn(components.ColumnProps{
			Column:       col,
			Tasks:        grouped[col],
			Selected:     selected,
			SelectedTask: selectedTask,
			Width:        m.UiState.ColumnWidth(),
			Height:       m.UiState.ContentHeight(),
		}))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, columns...)

	statusBar := components.RenderStatusBar(components.StatusBarProps{
		Width:     m.UiState.Width(),
		Searching: m.UiState.Mode() == state.SearchMode,
		Query:     m.FilterState.Query,
		Filters:   m.filterSummary(),
	})

	return lipgloss.JoinVertical(lipgloss.Left, tabs, row, "", statusBar)
}

// filterSummary lists the active selectors for the status bar
func (m Model) filterSummary() string {
	var parts []string
	if m.FilterState.Query != "" {
		parts = append(parts, fmt.Sprintf("search:%q", m.FilterState.Query))
	}
	if m.FilterState.Priority != "" {
		parts = append(parts, "priority:"+string(m.FilterState.Priority))
	}
	if m.FilterState.Category != "" {
		parts = append(parts, "category:"+m.FilterState.Category)
	}
	if m.FilterState.Sort != "" {
		parts = append(parts, "sort:"+string(m.FilterState.Sort))
	}
	return strings.Join(parts, " ")
}

// viewTaskForm renders the task editor
func (m Model) viewTaskForm() string {
	if m.TaskForm == nil {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Highlight))
	title := "Create New Task"
	if m.EditingTaskID != "" {
		title = "Edit Task"
	}

	parts := []string{titleStyle.Render(title), "", m.TaskForm.View()}
	if m.FormError != "" {
		parts = append(parts, "", lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ErrorFg)).Render(m.FormError))
	}
	parts = append(parts, "", components.SubtleStyle.Render(components.FormFooter))

	return components.FormBoxStyle.
		Width(m.dialogWidth()).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// viewDeleteTaskConfirm renders the task deletion confirmation dialog
func (m Model) viewDeleteTaskConfirm() string {
	task, ok := m.getCurrentTask()
	if !ok {
		return ""
	}
	return components.DeleteConfirmBoxStyle.
		Width(50).
		Render(fmt.Sprintf("Delete '%s'?\n\n[y]es  [n]o", task.Title))
}

// viewTaskDetail renders the selected task with its markdown description
func (m Model) viewTaskDetail() string {
	task, ok := m.getCurrentTask()
	if !ok {
		return ""
	}
	width := m.dialogWidth()
	label := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Highlight))

	due := task.DueDate
	if due == "" {
		due = "none"
	}
	meta := strings.Join([]string{
		label.Render("Column: ") + task.Column.OrDefault().Title(),
		label.Render("Priority: ") + lipgloss.NewStyle().Foreground(lipgloss.Color(components.PriorityColor(string(task.Priority)))).Render(string(task.Priority)),
		label.Render("Category: ") + task.Category,
		label.Render("Due: ") + due,
		label.Render("Created: ") + task.Created().Format("2006-01-02 15:04"),
	}, "\n")

	content := lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render(task.Title),
		"",
		meta,
		"",
		components.RenderDescription(task.Description, width-6),
		"",
		components.SubtleStyle.Render("e: edit  Esc: close"),
	)
	return components.FormBoxStyle.Width(width).Render(content)
}

// viewBoardForm renders the new board prompt
func (m Model) viewBoardForm() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Highlight))
	parts := []string{titleStyle.Render("New Board"), "", m.BoardInput.View()}
	if m.BoardError != "" {
		parts = append(parts, "", lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ErrorFg)).Render(m.BoardError))
	}
	parts = append(parts, "", components.SubtleStyle.Render(components.InputFooter))
	return components.FormBoxStyle.Width(50).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// dialogWidth is 80% of the screen, between 40 and 100 cells
func (m Model) dialogWidth() int {
	return min(max(m.UiState.Width()*4/5, 40), 100)
}
