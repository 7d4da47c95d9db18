package tui

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/kanban/internal/board"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/testutil"
)

// setupTestModel creates a sized model over an empty in-memory store
func setupTestModel(t *testing.T) (Model, *board.Store) {
	t.Helper()
	store, _ := testutil.NewTestStore(t)
	m := InitialModel(context.Background(), store, config.Default())
	t.Cleanup(m.Close)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 150, Height: 50})
	return updated.(Model), store
}

// key builds a key press for a printable binding
func key(s string) tea.KeyPressMsg {
	r := []rune(s)
	return tea.KeyPressMsg(tea.Key{Text: s, Code: r[0]})
}

func special(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Code: code})
}

// press sends msgs in order and returns the resulting model
func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

// typeText types s one rune at a time
func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = press(t, m, key(string(r)))
	}
	return m
}
