package state

import (
	"slices"

	"github.com/thenoetrevino/kanban/internal/board"
	"github.com/thenoetrevino/kanban/internal/models"
)

// FilterState holds the search query and the selector values narrowing the board.
type FilterState struct {
	// Query is the current search text entered by the user
	Query string

	Priority models.Priority
	Category string
	Sort     board.SortKey
}

// NewFilterState creates a FilterState that shows every task in board order.
func NewFilterState() *FilterState {
	return &FilterState{}
}

// AppendChar appends a character to the search query.
// Returns true if the character was added, false if query is at max length.
func (s *FilterState) AppendChar(c rune) bool {
	const maxQueryLength = 100

	if len([]rune(s.Query)) >= maxQueryLength {
		return false
	}

	s.Query += string(c)
	return true
}

// Backspace removes the last character from the search query.
// Returns true if a character was removed, false if query was already empty.
func (s *FilterState) Backspace() bool {
	if s.Query == "" {
		return false
	}

	r := []rune(s.Query)
	s.Query = string(r[:len(r)-1])
	return true
}

// ClearQuery resets the search query to empty string.
func (s *FilterState) ClearQuery() {
	s.Query = ""
}

// Reset clears the query and every selector.
func (s *FilterState) Reset() {
	*s = FilterState{}
}

// CyclePriority steps All -> Low -> Medium -> High -> All.
func (s *FilterState) CyclePriority() {
	if s.Priority == models.PriorityHigh {
		s.Priority = ""
		return
	}
	if s.Priority == "" {
		s.Priority = models.PriorityLow
		return
	}
	s.Priority = s.Priority.Next()
}

// CycleCategory steps through All followed by the given categories.
// A selection that no longer exists restarts at the first category.
func (s *FilterState) CycleCategory(categories []string) {
	if len(categories) == 0 {
		s.Category = ""
		return
	}
	if s.Category == "" {
		s.Category = categories[0]
		return
	}
	i := slices.Index(categories, s.Category)
	if i == len(categories)-1 {
		s.Category = ""
		return
	}
	s.Category = categories[i+1]
}

// CycleSort advances to the next sort key.
func (s *FilterState) CycleSort() {
	s.Sort = s.Sort.Next()
}

// Filter returns the board filter for the current selectors.
func (s *FilterState) Filter() board.Filter {
	return board.Filter{
		Query:    s.Query,
		Priority: s.Priority,
		Category: s.Category,
	}
}

// Active reports whether anything narrows or reorders the board.
func (s *FilterState) Active() bool {
	return !s.Filter().IsZero() || s.Sort != board.SortNone
}
