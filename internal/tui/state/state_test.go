package state

import (
	"testing"

	"github.com/thenoetrevino/kanban/internal/board"
	"github.com/thenoetrevino/kanban/internal/models"
)

// TestSetSelectedColumn_ResetsTask ensures moving to another lane starts at its first card.
func TestSetSelectedColumn_ResetsTask(t *testing.T) {
	s := NewUIState()
	s.SetSelectedTask(3)

	s.SetSelectedColumn(0)
	if s.SelectedTask() != 3 {
		t.Errorf("SelectedTask after reselecting same column = %d, want 3", s.SelectedTask())
	}

	s.SetSelectedColumn(1)
	if s.SelectedTask() != 0 {
		t.Errorf("SelectedTask after column change = %d, want 0", s.SelectedTask())
	}
}

// TestClampSelectedTask keeps the cursor on an existing card after removals.
func TestClampSelectedTask(t *testing.T) {
	s := NewUIState()
	s.SetSelectedTask(4)

	s.ClampSelectedTask(2)
	if s.SelectedTask() != 1 {
		t.Errorf("SelectedTask = %d, want 1", s.SelectedTask())
	}

	s.ClampSelectedTask(0)
	if s.SelectedTask() != 0 {
		t.Errorf("SelectedTask on empty column = %d, want 0", s.SelectedTask())
	}
}

func TestContentHeight_Minimum(t *testing.T) {
	s := NewUIState()
	s.SetHeight(3)
	if got := s.ContentHeight(); got != 5 {
		t.Errorf("ContentHeight() = %d, want 5", got)
	}
}

func TestColumnWidth(t *testing.T) {
	s := NewUIState()
	if got := s.ColumnWidth(); got != 24 {
		t.Errorf("ColumnWidth() before resize = %d, want 24", got)
	}
	s.SetWidth(152)
	if got := s.ColumnWidth(); got != 50 {
		t.Errorf("ColumnWidth() = %d, want 50", got)
	}
}

// TestFilterState_QueryEditing covers typing and deleting multi-byte characters.
func TestFilterState_QueryEditing(t *testing.T) {
	s := NewFilterState()
	for _, r := range "café" {
		s.AppendChar(r)
	}
	if s.Query != "café" {
		t.Fatalf("Query = %q, want %q", s.Query, "café")
	}

	if !s.Backspace() {
		t.Fatal("Backspace() = false, want true")
	}
	if s.Query != "caf" {
		t.Errorf("Query after backspace = %q, want %q", s.Query, "caf")
	}

	s.ClearQuery()
	if s.Backspace() {
		t.Error("Backspace() on empty query = true, want false")
	}
}

func TestFilterState_QueryMaxLength(t *testing.T) {
	s := NewFilterState()
	for range 100 {
		s.AppendChar('a')
	}
	if s.AppendChar('b') {
		t.Error("AppendChar past max length = true, want false")
	}
}

func TestFilterState_CyclePriority(t *testing.T) {
	s := NewFilterState()
	want := []models.Priority{models.PriorityLow, models.PriorityMedium, models.PriorityHigh, ""}
	for i, w := range want {
		s.CyclePriority()
		if s.Priority != w {
			t.Errorf("step %d: Priority = %q, want %q", i, s.Priority, w)
		}
	}
}

func TestFilterState_CycleCategory(t *testing.T) {
	s := NewFilterState()
	categories := []string{"Bug", "Feature"}

	s.CycleCategory(categories)
	if s.Category != "Bug" {
		t.Errorf("Category = %q, want Bug", s.Category)
	}
	s.CycleCategory(categories)
	if s.Category != "Feature" {
		t.Errorf("Category = %q, want Feature", s.Category)
	}
	s.CycleCategory(categories)
	if s.Category != "" {
		t.Errorf("Category = %q, want all", s.Category)
	}

	s.Category = "Gone"
	s.CycleCategory(categories)
	if s.Category != "Bug" {
		t.Errorf("Category after stale selection = %q, want Bug", s.Category)
	}

	s.CycleCategory(nil)
	if s.Category != "" {
		t.Errorf("Category with no categories = %q, want all", s.Category)
	}
}

func TestFilterState_FilterAndReset(t *testing.T) {
	s := NewFilterState()
	if s.Active() {
		t.Error("Active() on fresh state = true")
	}

	s.Query = "ui"
	s.Priority = models.PriorityHigh
	s.CycleSort()

	f := s.Filter()
	if f.Query != "ui" || f.Priority != models.PriorityHigh {
		t.Errorf("Filter() = %+v", f)
	}
	if s.Sort != board.SortCreatedAsc {
		t.Errorf("Sort = %q, want %q", s.Sort, board.SortCreatedAsc)
	}
	if !s.Active() {
		t.Error("Active() = false, want true")
	}

	s.Reset()
	if s.Active() {
		t.Error("Active() after Reset = true")
	}
}

func TestNotificationState_KeepsRecent(t *testing.T) {
	s := NewNotificationState()
	if _, ok := s.Latest(); ok {
		t.Fatal("Latest() on empty state reported a notification")
	}

	for i := range 7 {
		s.Add(LevelInfo, string(rune('a'+i)))
	}
	s.Add(LevelError, "boom")

	if len(s.All()) != maxNotifications {
		t.Errorf("len(All()) = %d, want %d", len(s.All()), maxNotifications)
	}
	latest, _ := s.Latest()
	if latest.Level != LevelError || latest.Message != "boom" {
		t.Errorf("Latest() = %+v", latest)
	}

	s.Clear()
	if len(s.All()) != 0 {
		t.Error("Clear() left notifications")
	}
}
