package forms

import (
	"strings"

	tea "charm.land/bubbletea/v2"
)

// FormState represents the state of the form
type FormState int

const (
	StateInProgress FormState = iota
	StateCompleted
	StateAborted
)

// Field is the interface that all form fields must implement
type Field interface {
	// Update handles messages and updates the field
	Update(tea.Msg) (Field, tea.Cmd)

	// View renders the field
	View() string

	// Focus focuses the field
	Focus() tea.Cmd

	// Blur removes focus from the field
	Blur()

	// Focused returns whether the field is focused
	Focused() bool

	// Key returns the field's key (used to retrieve values)
	Key() string

	// Value returns the current input
	Value() string

	// Multiline fields keep enter for themselves
	Multiline() bool
}

// Form manages a collection of fields
type Form struct {
	fields       []Field
	focusedIndex int
	state        FormState
	submitKey    string
}

// NewForm creates a new form with the given fields.
// submitKey completes the form from any field; enter does too outside multiline fields.
func NewForm(submitKey string, fields ...Field) *Form {
	return &Form{
		fields:    fields,
		state:     StateInProgress,
		submitKey: submitKey,
	}
}

// Init focuses the first field
func (f *Form) Init() tea.Cmd {
	if len(f.fields) > 0 {
		return f.fields[0].Focus()
	}
	return nil
}

// Update handles messages for the form
func (f *Form) Update(msg tea.Msg) (*Form, tea.Cmd) {
	if f.state != StateInProgress {
		return f, nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		key := keyMsg.String()
		switch {
		case key == "esc":
			f.state = StateAborted
			return f, nil
		case key == f.submitKey:
			f.state = StateCompleted
			return f, nil
		case key == "tab", key == "shift+tab":
			return f, f.handleTabNavigation(key == "shift+tab")
		case key == "enter":
			if f.focusedIndex >= len(f.fields) || !f.fields[f.focusedIndex].Multiline() {
				f.state = StateCompleted
				return f, nil
			}
		}
	}

	if f.focusedIndex < len(f.fields) {
		var cmd tea.Cmd
		f.fields[f.focusedIndex], cmd = f.fields[f.focusedIndex].Update(msg)
		return f, cmd
	}

	return f, nil
}

// handleTabNavigation moves focus between fields
func (f *Form) handleTabNavigation(reverse bool) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}

	f.fields[f.focusedIndex].Blur()

	if reverse {
		f.focusedIndex--
		if f.focusedIndex < 0 {
			f.focusedIndex = len(f.fields) - 1
		}
	} else {
		f.focusedIndex++
		if f.focusedIndex >= len(f.fields) {
			f.focusedIndex = 0
		}
	}

	return f.fields[f.focusedIndex].Focus()
}

// View renders the form
func (f *Form) View() string {
	views := make([]string, len(f.fields))
	for i, field := range f.fields {
		views[i] = field.View()
	}
	return strings.Join(views, "\n\n")
}

// State returns the current form state
func (f *Form) State() FormState {
	return f.state
}

// Reopen returns a completed form to editing, e.g. after a rejected save
func (f *Form) Reopen() {
	f.state = StateInProgress
}

// Focused returns the key of the focused field
func (f *Form) Focused() string {
	if f.focusedIndex < len(f.fields) {
		return f.fields[f.focusedIndex].Key()
	}
	return ""
}

// Get retrieves a field by key
func (f *Form) Get(key string) Field {
	for _, field := range f.fields {
		if field.Key() == key {
			return field
		}
	}
	return nil
}

// Value returns the value of the field with key, or "".
func (f *Form) Value(key string) string {
	if field := f.Get(key); field != nil {
		return field.Value()
	}
	return ""
}
