package board

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/thenoetrevino/kanban/internal/models"
)

// SortKey orders the derived task list. The zero value keeps board order.
type SortKey string

const (
	SortNone         SortKey = ""
	SortCreatedAsc   SortKey = "createdAt_asc"
	SortCreatedDesc  SortKey = "createdAt_desc"
	SortDueDateAsc   SortKey = "dueDate_asc"
	SortDueDateDesc  SortKey = "dueDate_desc"
	SortPriorityAsc  SortKey = "priority_asc"
	SortPriorityDesc SortKey = "priority_desc"
)

// SortKeys lists every key in the order the sort selector cycles through them
func SortKeys() []SortKey {
	return []SortKey{SortNone, SortCreatedAsc, SortCreatedDesc, SortDueDateAsc, SortDueDateDesc, SortPriorityAsc, SortPriorityDesc}
}

// ParseSortKey validates s
func ParseSortKey(s string) (SortKey, error) {
	key := SortKey(strings.TrimSpace(s))
	if slices.Contains(SortKeys(), key) {
		return key, nil
	}
	return SortNone, fmt.Errorf("invalid sort key '%s' (must be one of: createdAt_asc, createdAt_desc, dueDate_asc, dueDate_desc, priority_asc, priority_desc)", s)
}

// Next returns the key after k, wrapping to SortNone
func (k SortKey) Next() SortKey {
	keys := SortKeys()
	i := slices.Index(keys, k)
	return keys[(i+1)%len(keys)]
}

// Filter narrows the task list. Empty fields match everything.
type Filter struct {
	Query    string
	Priority models.Priority
	Category string
}

// IsZero reports whether f filters nothing
func (f Filter) IsZero() bool {
	return strings.TrimSpace(f.Query) == "" && f.Priority == "" && f.Category == ""
}

// Match reports whether t passes the filter
func (f Filter) Match(t models.Task) bool {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q != "" &&
		!strings.Contains(strings.ToLower(t.Title), q) &&
		!strings.Contains(strings.ToLower(t.Description), q) {
		return false
	}
	if f.Priority != "" && t.Priority != f.Priority {
		return false
	}
	if f.Category != "" && t.Category != f.Category {
		return false
	}
	return true
}

// Apply returns the tasks passing filter, ordered by key. The input is not
// modified; equal elements keep their relative order.
func Apply(tasks []models.Task, filter Filter, key SortKey) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if filter.Match(t) {
			out = append(out, t)
		}
	}

	var compare func(a, b models.Task) int
	switch key {
	case SortCreatedAsc:
		compare = func(a, b models.Task) int { return cmp.Compare(a.CreatedAt, b.CreatedAt) }
	case SortCreatedDesc:
		compare = func(a, b models.Task) int { return cmp.Compare(b.CreatedAt, a.CreatedAt) }
	case SortDueDateAsc:
		compare = func(a, b models.Task) int { return strings.Compare(a.DueDate, b.DueDate) }
	case SortDueDateDesc:
		compare = func(a, b models.Task) int { return strings.Compare(b.DueDate, a.DueDate) }
	case SortPriorityAsc:
		compare = func(a, b models.Task) int { return cmp.Compare(a.Priority.Rank(), b.Priority.Rank()) }
	case SortPriorityDesc:
		compare = func(a, b models.Task) int { return cmp.Compare(b.Priority.Rank(), a.Priority.Rank()) }
	}
	if compare != nil {
		slices.SortStableFunc(out, compare)
	}
	return out
}

// Categories returns the distinct categories of tasks, sorted
func Categories(tasks []models.Task) []string {
	seen := make(map[string]struct{}, len(tasks))
	var out []string
	for _, t := range tasks {
		if _, ok := seen[t.Category]; ok || t.Category == "" {
			continue
		}
		seen[t.Category] = struct{}{}
		out = append(out, t.Category)
	}
	slices.Sort(out)
	return out
}

// GroupByColumn buckets tasks into the board columns, keeping their order.
// Tasks with an unknown column land in todo.
func GroupByColumn(tasks []models.Task) map[models.Column][]models.Task {
	groups := make(map[models.Column][]models.Task, len(models.Columns()))
	for _, c := range models.Columns() {
		groups[c] = []models.Task{}
	}
	for _, t := range tasks {
		c := t.Column.OrDefault()
		groups[c] = append(groups[c], t)
	}
	return groups
}
