package tui

import (
	"log/slog"
	"slices"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/kanban/internal/board"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/tui/state"
)

// handleNormalMode handles keys on the board
func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	keys := m.Config.KeyMappings

	switch {
	case keyMatches(msg, keys.Quit):
		return m, tea.Quit

	case keyMatches(msg, keys.PrevColumn), msg.String() == "left":
		m.moveColumnCursor(-1)
	case keyMatches(msg, keys.NextColumn), msg.String() == "right":
		m.moveColumnCursor(1)
	case keyMatches(msg, keys.PrevTask), msg.String() == "up":
		m.UiState.SetSelectedTask(m.UiState.SelectedTask() - 1)
	case keyMatches(msg, keys.NextTask), msg.String() == "down":
		if m.UiState.SelectedTask() < len(m.getCurrentTasks())-1 {
			m.UiState.SetSelectedTask(m.UiState.SelectedTask() + 1)
		}

	case keyMatches(msg, keys.MoveTaskLeft):
		m.moveTask(-1)
	case keyMatches(msg, keys.MoveTaskRight):
		m.moveTask(1)

	case keyMatches(msg, keys.AddTask):
		return m.openTaskForm(models.Task{Column: m.currentColumn(), Priority: models.DefaultPriority})
	case keyMatches(msg, keys.EditTask):
		if task, ok := m.getCurrentTask(); ok {
			return m.openTaskForm(task)
		}
	case keyMatches(msg, keys.DeleteTask):
		if _, ok := m.getCurrentTask(); ok {
			m.UiState.SetMode(state.DeleteConfirmMode)
		}
	case keyMatches(msg, keys.ViewTask), msg.String() == "enter":
		if _, ok := m.getCurrentTask(); ok {
			m.UiState.SetMode(state.ViewTaskMode)
		}

	case keyMatches(msg, keys.Search):
		m.FilterState.ClearQuery()
		m.UiState.SetMode(state.SearchMode)
	case keyMatches(msg, keys.CyclePriority):
		m.FilterState.CyclePriority()
		m.UiState.SetSelectedTask(0)
	case keyMatches(msg, keys.CycleCategory):
		m.FilterState.CycleCategory(board.Categories(m.Store.GetTasks()))
		m.UiState.SetSelectedTask(0)
	case keyMatches(msg, keys.CycleSort):
		m.FilterState.CycleSort()
		m.UiState.SetSelectedTask(0)
	case keyMatches(msg, keys.ClearFilters):
		m.FilterState.Reset()

	case keyMatches(msg, keys.NextBoard):
		m.switchBoard(1)
	case keyMatches(msg, keys.PrevBoard):
		m.switchBoard(-1)
	case keyMatches(msg, keys.CreateBoard):
		return m.openBoardForm()

	case keyMatches(msg, keys.ShowHelp):
		m.UiState.SetMode(state.HelpMode)
	}

	return m, nil
}

func (m Model) moveColumnCursor(delta int) {
	next := m.UiState.SelectedColumn() + delta
	if next < 0 || next >= len(models.Columns()) {
		return
	}
	m.UiState.SetSelectedColumn(next)
	m.clampSelection()
}

// moveTask sends the selected task to the neighbouring lane and follows it
func (m Model) moveTask(delta int) {
	task, ok := m.getCurrentTask()
	if !ok {
		return
	}
	target := m.UiState.SelectedColumn() + delta
	if target < 0 || target >= len(models.Columns()) {
		return
	}
	if err := m.Store.MoveTask(m.Ctx, task.ID, models.Columns()[target]); err != nil {
		slog.Error("failed to move task", "task_id", task.ID, "error", err)
		m.notifyError(err)
		return
	}
	m.selectTask(task.ID)
}

// switchBoard activates the board delta places away in sorted order, wrapping around
func (m Model) switchBoard(delta int) {
	boards := m.Store.Boards()
	if len(boards) < 2 {
		return
	}
	i := slices.Index(boards, m.Store.CurrentBoard())
	next := boards[(i+delta+len(boards))%len(boards)]
	if err := m.Store.SwitchBoard(m.Ctx, next); err != nil {
		slog.Error("failed to switch board", "board", next, "error", err)
		m.notifyError(err)
		return
	}
	m.FilterState.Category = ""
	m.UiState.SetSelectedColumn(0)
	m.UiState.SetSelectedTask(0)
}
