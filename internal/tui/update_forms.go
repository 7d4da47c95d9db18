package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/kanban/internal/board"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/tui/forms"
	"github.com/thenoetrevino/kanban/internal/tui/state"
)

// Task editor field keys
const (
	fieldTitle       = "title"
	fieldDescription = "description"
	fieldPriority    = "priority"
	fieldCategory    = "category"
	fieldDueDate     = "due"
	fieldColumn      = "column"
)

// openTaskForm opens the editor prefilled from task. An empty ID creates.
func (m Model) openTaskForm(task models.Task) (tea.Model, tea.Cmd) {
	priorities := make([]string, 0, 3)
	for _, p := range models.Priorities() {
		priorities = append(priorities, string(p))
	}
	columns := make([]string, 0, 3)
	for _, c := range models.Columns() {
		columns = append(columns, string(c))
	}

	priority := task.Priority
	if priority == "" {
		priority = models.DefaultPriority
	}

	m.TaskForm = forms.NewForm(m.Config.KeyMappings.SaveForm,
		forms.NewTextInput(fieldTitle, "Title", "What needs doing?", task.Title, board.MaxTitleLength),
		forms.NewTextArea(fieldDescription, "Description", "Markdown supported", task.Description, 0),
		forms.NewChoice(fieldPriority, "Priority", priorities, string(priority)),
		forms.NewTextInput(fieldCategory, "Category", models.DefaultCategory, task.Category, 50),
		forms.NewTextInput(fieldDueDate, "Due date", "YYYY-MM-DD", task.DueDate, 10),
		forms.NewChoice(fieldColumn, "Column", columns, string(task.Column.OrDefault())),
	)
	m.EditingTaskID = task.ID
	m.FormError = ""
	m.UiState.SetMode(state.TaskFormMode)
	return m, m.TaskForm.Init()
}

// updateTaskForm forwards keys to the editor and saves or discards when it finishes
func (m Model) updateTaskForm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if m.TaskForm == nil {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	var cmd tea.Cmd
	m.TaskForm, cmd = m.TaskForm.Update(msg)

	switch m.TaskForm.State() {
	case forms.StateAborted:
		m.closeTaskForm()
	case forms.StateCompleted:
		return m.saveTaskForm()
	}
	return m, cmd
}

// saveTaskForm submits the editor through SaveTask. Rejected input keeps the form open.
func (m Model) saveTaskForm() (tea.Model, tea.Cmd) {
	fields := models.TaskFields{
		Column:      models.Column(m.TaskForm.Value(fieldColumn)),
		Title:       m.TaskForm.Value(fieldTitle),
		Description: m.TaskForm.Value(fieldDescription),
		Priority:    models.Priority(m.TaskForm.Value(fieldPriority)),
		Category:    m.TaskForm.Value(fieldCategory),
		DueDate:     m.TaskForm.Value(fieldDueDate),
	}

	task, err := m.Store.SaveTask(m.Ctx, m.EditingTaskID, fields)
	if err != nil {
		slog.Debug("task form rejected", "task_id", m.EditingTaskID, "error", err)
		m.FormError = err.Error()
		m.TaskForm.Reopen()
		return m, nil
	}

	m.closeTaskForm()
	m.selectTask(task.ID)
	return m, nil
}

func (m *Model) closeTaskForm() {
	m.TaskForm = nil
	m.EditingTaskID = ""
	m.FormError = ""
	m.UiState.SetMode(state.NormalMode)
}

func (m Model) openBoardForm() (tea.Model, tea.Cmd) {
	m.BoardInput.SetValue("")
	m.BoardError = ""
	m.UiState.SetMode(state.BoardFormMode)
	return m, m.BoardInput.Focus()
}

// updateBoardForm handles the new board prompt
func (m Model) updateBoardForm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.BoardInput.Blur()
		m.BoardError = ""
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	case "enter":
		return m.createBoard()
	}

	var cmd tea.Cmd
	m.BoardInput, cmd = m.BoardInput.Update(msg)
	return m, cmd
}

func (m Model) createBoard() (tea.Model, tea.Cmd) {
	name := m.BoardInput.Value()
	if err := m.Store.CreateBoard(m.Ctx, name); err != nil {
		switch {
		case errors.Is(err, board.ErrBoardExists):
			m.BoardError = fmt.Sprintf("Board '%s' already exists", name)
		case errors.Is(err, board.ErrEmptyBoardName):
			m.BoardError = "Board name cannot be empty"
		default:
			slog.Error("failed to create board", "board", name, "error", err)
			m.BoardError = err.Error()
		}
		m.NotificationState.Add(state.LevelError, m.BoardError)
		return m, nil
	}

	m.BoardInput.Blur()
	m.BoardError = ""
	m.FilterState.Category = ""
	m.UiState.SetSelectedColumn(0)
	m.UiState.SetSelectedTask(0)
	m.UiState.SetMode(state.NormalMode)
	return m, nil
}

// handleDeleteConfirm asks before removing the selected task
func (m Model) handleDeleteConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch strings.ToLower(msg.String()) {
	case "y":
		if task, ok := m.getCurrentTask(); ok {
			if err := m.Store.DeleteTask(m.Ctx, task.ID); err != nil {
				slog.Error("failed to delete task", "task_id", task.ID, "error", err)
				m.notifyError(err)
			}
		}
		m.UiState.SetMode(state.NormalMode)
		m.clampSelection()
	case "n", "esc", "q":
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// handleViewTaskMode handles the read-only task view
func (m Model) handleViewTaskMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	keys := m.Config.KeyMappings
	switch {
	case keyMatches(msg, keys.EditTask):
		if task, ok := m.getCurrentTask(); ok {
			return m.openTaskForm(task)
		}
		m.UiState.SetMode(state.NormalMode)
	case keyMatches(msg, keys.ViewTask), keyMatches(msg, keys.Quit), msg.String() == "esc", msg.String() == "enter":
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// handleHelpMode handles input in the help screen.
func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	keys := m.Config.KeyMappings
	switch {
	case keyMatches(msg, keys.ShowHelp), keyMatches(msg, keys.Quit), msg.String() == "esc", msg.String() == "enter":
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}
