package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Column Tests
// ============================================================================

func TestParseColumn(t *testing.T) {
	tests := []struct {
		input string
		want  Column
	}{
		{"todo", ColumnTodo},
		{"To Do", ColumnTodo},
		{"inprogress", ColumnInProgress},
		{"in-progress", ColumnInProgress},
		{"In Progress", ColumnInProgress},
		{"DONE", ColumnDone},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColumn(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseColumn("backlog")
	assert.True(t, errors.Is(err, ErrInvalidColumn))
}

func TestColumn_OrDefault(t *testing.T) {
	assert.Equal(t, ColumnDone, ColumnDone.OrDefault())
	assert.Equal(t, ColumnTodo, Column("archived").OrDefault())
	assert.Equal(t, ColumnTodo, Column("").OrDefault())
}

func TestColumn_Index(t *testing.T) {
	assert.Equal(t, 0, ColumnTodo.Index())
	assert.Equal(t, 2, ColumnDone.Index())
	assert.Equal(t, -1, Column("nope").Index())
}

// ============================================================================
// Priority Tests
// ============================================================================

func TestPriority_Rank(t *testing.T) {
	assert.Equal(t, 3, PriorityHigh.Rank())
	assert.Equal(t, 2, PriorityMedium.Rank())
	assert.Equal(t, 1, PriorityLow.Rank())
	assert.Equal(t, 0, Priority("Urgent").Rank())
	assert.Equal(t, 0, Priority("").Rank())
}

func TestParsePriority(t *testing.T) {
	p, err := ParsePriority("high")
	require.NoError(t, err)
	assert.Equal(t, PriorityHigh, p)

	_, err = ParsePriority("critical")
	assert.True(t, errors.Is(err, ErrInvalidPriority))
}

func TestPriority_NextCycles(t *testing.T) {
	p := PriorityLow
	p = p.Next()
	assert.Equal(t, PriorityMedium, p)
	p = p.Next()
	assert.Equal(t, PriorityHigh, p)
	p = p.Next()
	assert.Equal(t, PriorityLow, p)
}

// ============================================================================
// Task Tests
// ============================================================================

func TestTaskFields_NormalizeDefaults(t *testing.T) {
	f := TaskFields{Title: "  A  ", Category: "   "}.Normalize()

	assert.Equal(t, "A", f.Title)
	assert.Equal(t, DefaultCategory, f.Category)
	assert.Equal(t, DefaultPriority, f.Priority)
	assert.Equal(t, ColumnTodo, f.Column)
}

func TestValidateDueDate(t *testing.T) {
	assert.NoError(t, ValidateDueDate(""))
	assert.NoError(t, ValidateDueDate("2025-01-31"))

	err := ValidateDueDate("31/01/2025")
	assert.True(t, errors.Is(err, ErrInvalidDueDate))
}

// ============================================================================
// Document Tests
// ============================================================================

func TestDefaultDocument(t *testing.T) {
	doc := DefaultDocument()

	assert.Equal(t, DefaultBoardName, doc.CurrentBoard)
	require.Len(t, doc.Boards, 1)
	assert.Empty(t, doc.Boards[DefaultBoardName])
	assert.NotNil(t, doc.Boards[DefaultBoardName])
}

func TestDocument_CloneIsDeep(t *testing.T) {
	doc := DefaultDocument()
	doc.Boards[DefaultBoardName] = []Task{{ID: "a", Title: "original"}}

	clone := doc.Clone()
	clone.Boards[DefaultBoardName][0].Title = "changed"
	clone.Boards["Other"] = []Task{}

	assert.Equal(t, "original", doc.Boards[DefaultBoardName][0].Title)
	assert.False(t, doc.HasBoard("Other"))
}

func TestDocument_Normalize(t *testing.T) {
	t.Run("repairs dangling current board", func(t *testing.T) {
		doc := Document{
			Boards:       map[string][]Task{"Work": {}, "Home": {}},
			CurrentBoard: "Gone",
		}
		assert.True(t, doc.Normalize())
		assert.Equal(t, "Home", doc.CurrentBoard)
	})

	t.Run("empty boards gains default", func(t *testing.T) {
		doc := Document{CurrentBoard: "x"}
		assert.True(t, doc.Normalize())
		assert.Equal(t, DefaultBoardName, doc.CurrentBoard)
		assert.True(t, doc.HasBoard(DefaultBoardName))
	})

	t.Run("nil task list becomes empty", func(t *testing.T) {
		doc := Document{Boards: map[string][]Task{"A": nil}, CurrentBoard: "A"}
		assert.True(t, doc.Normalize())
		assert.NotNil(t, doc.Boards["A"])
	})

	t.Run("valid document untouched", func(t *testing.T) {
		doc := DefaultDocument()
		assert.False(t, doc.Normalize())
	})
}
