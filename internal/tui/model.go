package tui

import (
	"context"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/kanban/internal/board"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/tui/forms"
	"github.com/thenoetrevino/kanban/internal/tui/state"
)

// eventBuffer bounds the store events waiting for the program loop
const eventBuffer = 64

// EventMsg carries a store event into the update loop
type EventMsg struct {
	Event events.Event
}

// Model represents the application state for the TUI
type Model struct {
	Ctx    context.Context
	Store  *board.Store
	Config *config.Config

	UiState           *state.UIState
	FilterState       *state.FilterState
	NotificationState *state.NotificationState

	// TaskForm is the open editor, nil outside TaskFormMode
	TaskForm *forms.Form
	// EditingTaskID is the task being edited, "" when creating
	EditingTaskID string
	// FormError is the last rejected save, shown inside the editor
	FormError string

	BoardInput textinput.Model
	BoardError string

	EventChan   chan events.Event
	unsubscribe func()
}

// InitialModel creates the TUI model over a loaded store
func InitialModel(ctx context.Context, store *board.Store, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	ch := make(chan events.Event, eventBuffer)
	unsubscribe := store.Subscribe(func(e events.Event) {
		select {
		case ch <- e:
		default:
			// The status line only needs the latest events
		}
	})

	boardInput := textinput.New()
	boardInput.Placeholder = "Board name"
	boardInput.CharLimit = 100

	return Model{
		Ctx:               ctx,
		Store:             store,
		Config:            cfg,
		UiState:           state.NewUIState(),
		FilterState:       state.NewFilterState(),
		NotificationState: state.NewNotificationState(),
		BoardInput:        boardInput,
		EventChan:         ch,
		unsubscribe:       unsubscribe,
	}
}

// Init starts listening for store events
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return m.listenForEvents()
}

// Close detaches the model from the store
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// listenForEvents returns a command that waits for the next store event
func (m Model) listenForEvents() tea.Cmd {
	return func() tea.Msg {
		select {
		case e := <-m.EventChan:
			return EventMsg{Event: e}
		case <-m.Ctx.Done():
			return nil
		}
	}
}

// visibleTasks returns the filtered and sorted tasks of the current board, by lane
func (m Model) visibleTasks() map[models.Column][]models.Task {
	derived := board.Apply(m.Store.GetTasks(), m.FilterState.Filter(), m.FilterState.Sort)
	return board.GroupByColumn(derived)
}

// currentColumn returns the lane under the cursor
func (m Model) currentColumn() models.Column {
	return models.Columns()[m.UiState.SelectedColumn()]
}

// getCurrentTasks returns the visible tasks of the selected lane
func (m Model) getCurrentTasks() []models.Task {
	return m.visibleTasks()[m.currentColumn()]
}

// getCurrentTask returns the task under the cursor
func (m Model) getCurrentTask() (models.Task, bool) {
	tasks := m.getCurrentTasks()
	i := m.UiState.SelectedTask()
	if i < 0 || i >= len(tasks) {
		return models.Task{}, false
	}
	return tasks[i], true
}

// selectTask points the cursor at id, wherever it is visible
func (m Model) selectTask(id string) {
	for ci, col := range models.Columns() {
		for ti, t := range m.visibleTasks()[col] {
			if t.ID == id {
				m.UiState.SetSelectedColumn(ci)
				m.UiState.SetSelectedTask(ti)
				return
			}
		}
	}
}

// clampSelection keeps the cursor on an existing card
func (m Model) clampSelection() {
	m.UiState.ClampSelectedTask(len(m.getCurrentTasks()))
}

func (m Model) notifyError(err error) {
	m.NotificationState.Add(state.LevelError, err.Error())
}
