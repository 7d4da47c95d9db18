package board

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/storage"
)

var fixedNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

// sequentialIDs returns a generator yielding id-1, id-2, ...
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestStore(t *testing.T, opts ...Option) (*Store, *storage.Memory) {
	t.Helper()
	kv := storage.NewMemory()
	opts = append([]Option{
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(sequentialIDs()),
	}, opts...)
	s := New(kv, opts...)
	s.Load(context.Background())
	return s, kv
}

var errQuota = errors.New("quota exceeded")

// failingKV rejects writes once failWrites is set
type failingKV struct {
	*storage.Memory
	failWrites bool
}

func (f *failingKV) Set(ctx context.Context, key string, value []byte) error {
	if f.failWrites {
		return errQuota
	}
	return f.Memory.Set(ctx, key, value)
}

func TestLoadDefaults(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		s := New(storage.NewMemory())
		assert.Equal(t, models.DefaultDocument(), s.Load(ctx))
	})

	t.Run("malformed json", func(t *testing.T) {
		kv := storage.NewMemory()
		require.NoError(t, kv.Set(ctx, "kanbanBoards_v1", []byte("{not json")))
		s := New(kv)
		assert.Equal(t, models.DefaultDocument(), s.Load(ctx))
	})

	t.Run("missing boards", func(t *testing.T) {
		kv := storage.NewMemory()
		require.NoError(t, kv.Set(ctx, "kanbanBoards_v1", []byte(`{"currentBoard":"A"}`)))
		s := New(kv)
		assert.Equal(t, models.DefaultDocument(), s.Load(ctx))
	})

	t.Run("missing or empty currentBoard is repaired", func(t *testing.T) {
		stored := map[string]string{
			"missing": `{"boards":{"Work":[{"id":"w1","column":"todo","title":"Keep me","description":"","priority":"High","category":"General","dueDate":"","createdAt":1}]}}`,
			"empty":   `{"boards":{"Work":[{"id":"w1","column":"todo","title":"Keep me","description":"","priority":"High","category":"General","dueDate":"","createdAt":1}]},"currentBoard":""}`,
		}
		for name, blob := range stored {
			t.Run(name, func(t *testing.T) {
				kv := storage.NewMemory()
				require.NoError(t, kv.Set(ctx, "kanbanBoards_v1", []byte(blob)))
				s := New(kv, WithSeedExamples(true))

				doc := s.Load(ctx)
				assert.Equal(t, []string{"Work"}, doc.BoardNames())
				assert.Equal(t, "Work", doc.CurrentBoard)
				require.Len(t, doc.Boards["Work"], 1)
				assert.Equal(t, "Keep me", doc.Boards["Work"][0].Title)
			})
		}
	})

	t.Run("dangling currentBoard is repaired", func(t *testing.T) {
		kv := storage.NewMemory()
		require.NoError(t, kv.Set(ctx, "kanbanBoards_v1", []byte(`{"boards":{"B":[],"A":[]},"currentBoard":"Gone"}`)))
		s := New(kv)
		doc := s.Load(ctx)
		assert.Equal(t, "A", doc.CurrentBoard)
		assert.Equal(t, "A", s.CurrentBoard())
	})
}

func TestLoadSeedsExamplesOnFirstRun(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	s := New(kv, WithSeedExamples(true), WithClock(func() time.Time { return fixedNow }))

	doc := s.Load(ctx)
	tasks := doc.Boards[models.DefaultBoardName]
	require.Len(t, tasks, 3)
	assert.Equal(t, "Set project repo", tasks[0].Title)
	assert.Equal(t, models.ColumnInProgress, tasks[1].Column)
	assert.Equal(t, models.PriorityLow, tasks[2].Priority)
	assert.Less(t, tasks[0].CreatedAt, tasks[1].CreatedAt)

	// Persisted, and not seeded again once the board has been emptied
	require.NoError(t, s.SetTasks(ctx, nil))
	again := New(kv, WithSeedExamples(true))
	assert.Empty(t, again.Load(ctx).Boards[models.DefaultBoardName])
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t)

	doc := models.Document{
		Boards: map[string][]models.Task{
			"Work": {
				{ID: "a", Column: models.ColumnDone, Title: "Ship", Description: "v1", Priority: models.PriorityHigh, Category: "Release", DueDate: "2025-04-01", CreatedAt: 1},
			},
			"Home": {},
		},
		CurrentBoard: "Work",
	}
	require.NoError(t, s.Save(ctx, doc))

	reloaded := New(kv).Load(ctx)
	assert.Equal(t, doc, reloaded)
}

func TestCreateTask(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	task, err := s.CreateTask(ctx, models.TaskFields{Column: models.ColumnTodo, Title: "A", Priority: models.PriorityHigh})
	require.NoError(t, err)

	tasks := s.GetTasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, task, tasks[0])
	assert.Equal(t, models.DefaultCategory, task.Category)
	assert.Equal(t, models.ColumnTodo, task.Column)
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, fixedNow.UnixMilli(), task.CreatedAt)
}

func TestCreateTaskDefaultsAndValidation(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	task, err := s.CreateTask(ctx, models.TaskFields{Title: "  padded  "})
	require.NoError(t, err)
	assert.Equal(t, "padded", task.Title)
	assert.Equal(t, models.PriorityMedium, task.Priority)
	assert.Equal(t, models.ColumnTodo, task.Column)

	tests := []struct {
		name    string
		fields  models.TaskFields
		wantErr error
	}{
		{"empty title", models.TaskFields{Title: "   "}, ErrEmptyTitle},
		{"bad priority", models.TaskFields{Title: "x", Priority: "Urgent"}, ErrInvalidPriority},
		{"bad column", models.TaskFields{Title: "x", Column: "backlog"}, ErrInvalidColumn},
		{"bad due date", models.TaskFields{Title: "x", DueDate: "03/14/2025"}, ErrInvalidDueDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.CreateTask(ctx, tt.fields)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Len(t, s.GetTasks(), 1)
		})
	}
}

func TestCreateTaskRegeneratesClashingIDs(t *testing.T) {
	ctx := context.Background()
	ids := []string{"same", "same", "other"}
	s, _ := newTestStore(t, WithIDGenerator(func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}))

	first, err := s.CreateTask(ctx, models.TaskFields{Title: "one"})
	require.NoError(t, err)
	second, err := s.CreateTask(ctx, models.TaskFields{Title: "two"})
	require.NoError(t, err)

	assert.Equal(t, "same", first.ID)
	assert.Equal(t, "other", second.ID)
}

func TestUpdateTaskPreservesCreatedAt(t *testing.T) {
	ctx := context.Background()
	now := fixedNow
	s, _ := newTestStore(t, WithClock(func() time.Time { return now }))

	original, err := s.CreateTask(ctx, models.TaskFields{Title: "Draft"})
	require.NoError(t, err)

	now = now.Add(time.Hour)
	updated, err := s.UpdateTask(ctx, original.ID, models.TaskFields{
		Column:      models.ColumnDone,
		Title:       "Final",
		Description: "done",
		Priority:    models.PriorityLow,
		Category:    "Docs",
		DueDate:     "2025-12-31",
	})
	require.NoError(t, err)

	assert.Equal(t, original.ID, updated.ID)
	assert.Equal(t, original.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "Final", updated.Title)
	assert.Equal(t, models.ColumnDone, updated.Column)
	assert.Equal(t, []models.Task{updated}, s.GetTasks())
}

func TestUpdateTaskMissingID(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	_, err := s.UpdateTask(ctx, "nope", models.TaskFields{Title: "x"})
	assert.ErrorIs(t, err, ErrTaskNotFound)
	assert.Empty(t, s.GetTasks())
}

func TestSaveTask(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	created, err := s.SaveTask(ctx, "", models.TaskFields{Title: "new"})
	require.NoError(t, err)
	assert.Equal(t, "id-1", created.ID)

	updated, err := s.SaveTask(ctx, created.ID, models.TaskFields{Title: "renamed"})
	require.NoError(t, err)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	inserted, err := s.SaveTask(ctx, "stale", models.TaskFields{Title: "orphan"})
	require.NoError(t, err)
	assert.Equal(t, "stale", inserted.ID)

	tasks := s.GetTasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, "renamed", tasks[0].Title)
	assert.Equal(t, "orphan", tasks[1].Title)
}

func TestDeleteTask(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	var created []models.Task
	for _, title := range []string{"a", "b", "c"} {
		task, err := s.CreateTask(ctx, models.TaskFields{Title: title})
		require.NoError(t, err)
		created = append(created, task)
	}

	require.NoError(t, s.DeleteTask(ctx, created[1].ID))
	assert.Equal(t, []models.Task{created[0], created[2]}, s.GetTasks())

	require.NoError(t, s.DeleteTask(ctx, "missing"))
	assert.Len(t, s.GetTasks(), 2)
}

func TestMoveTask(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	task, err := s.CreateTask(ctx, models.TaskFields{Title: "move me"})
	require.NoError(t, err)

	require.NoError(t, s.MoveTask(ctx, task.ID, models.ColumnInProgress))
	assert.Equal(t, models.ColumnInProgress, s.GetTasks()[0].Column)

	assert.NoError(t, s.MoveTask(ctx, "missing", models.ColumnDone))
	assert.ErrorIs(t, s.MoveTask(ctx, task.ID, "archive"), ErrInvalidColumn)
}

func TestCreateBoard(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	require.NoError(t, s.CreateBoard(ctx, "Work"))
	assert.Equal(t, "Work", s.CurrentBoard())
	assert.Empty(t, s.GetTasks())
	assert.Equal(t, []string{"Default", "Work"}, s.Boards())

	require.NoError(t, s.SwitchBoard(ctx, "Default"))
	before := s.Document()

	err := s.CreateBoard(ctx, "Work")
	assert.ErrorIs(t, err, ErrBoardExists)
	assert.Equal(t, before, s.Document())

	// Case-sensitive comparison
	require.NoError(t, s.CreateBoard(ctx, "work"))

	assert.ErrorIs(t, s.CreateBoard(ctx, "  "), ErrEmptyBoardName)
}

func TestSwitchBoard(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t)

	require.NoError(t, s.CreateBoard(ctx, "Work"))
	require.NoError(t, s.SwitchBoard(ctx, "Default"))
	assert.Equal(t, "Default", New(kv).Load(ctx).CurrentBoard)

	err := s.SwitchBoard(ctx, "Nope")
	assert.ErrorIs(t, err, ErrBoardNotFound)
	assert.Equal(t, "Default", s.CurrentBoard())
}

func TestTasksAreScopedToCurrentBoard(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	_, err := s.CreateTask(ctx, models.TaskFields{Title: "default task"})
	require.NoError(t, err)
	require.NoError(t, s.CreateBoard(ctx, "Other"))
	assert.Empty(t, s.GetTasks())

	require.NoError(t, s.SwitchBoard(ctx, "Default"))
	assert.Len(t, s.GetTasks(), 1)
}

func TestExport(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	_, err := s.CreateTask(ctx, models.TaskFields{Title: "exported"})
	require.NoError(t, err)
	before := s.Document()

	data, err := s.Export()
	require.NoError(t, err)

	assert.Contains(t, string(data), "\n  \"boards\": {")
	assert.Equal(t, byte('\n'), data[len(data)-1])
	assert.Equal(t, before, s.Document())

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, before, decoded)
}

func TestExportKeepsMarkupCharacters(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t)
	_, err := s.CreateTask(ctx, models.TaskFields{Title: "drag & drop <b>"})
	require.NoError(t, err)

	data, err := s.Export()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"title": "drag & drop <b>"`)
	assert.NotContains(t, string(data), `\u0026`)

	stored, err := kv.Get(ctx, "kanbanBoards_v1")
	require.NoError(t, err)
	assert.Contains(t, string(stored), `"title":"drag & drop <b>"`)
	assert.NotEqual(t, byte('\n'), stored[len(stored)-1])
}

func TestImport(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces document", func(t *testing.T) {
		s, kv := newTestStore(t)
		_, err := s.CreateTask(ctx, models.TaskFields{Title: "old"})
		require.NoError(t, err)

		data := []byte(`{"boards":{"Imported":[{"id":"x1","column":"done","title":"T","description":"","priority":"Low","category":"General","dueDate":"","createdAt":5}]},"currentBoard":"Imported"}`)
		require.NoError(t, s.Import(ctx, data))

		assert.Equal(t, []string{"Imported"}, s.Boards())
		assert.Equal(t, "x1", s.GetTasks()[0].ID)
		assert.Equal(t, s.Document(), New(kv).Load(ctx))
	})

	t.Run("invalid content leaves document untouched", func(t *testing.T) {
		s, _ := newTestStore(t)
		_, err := s.CreateTask(ctx, models.TaskFields{Title: "keep"})
		require.NoError(t, err)
		before, err := s.Export()
		require.NoError(t, err)

		inputs := map[string]string{
			"missing currentBoard": `{"boards":{}}`,
			"missing boards":       `{"currentBoard":"Default"}`,
			"empty currentBoard":   `{"boards":{},"currentBoard":""}`,
			"boards not an object": `{"boards":[],"currentBoard":"Default"}`,
			"not json":             `boards`,
			"not an object":        `[1,2]`,
			"wrong task shape":     `{"boards":{"A":[{"title":7}]},"currentBoard":"A"}`,
		}
		for name, input := range inputs {
			t.Run(name, func(t *testing.T) {
				err := s.Import(ctx, []byte(input))
				assert.ErrorIs(t, err, ErrInvalidFormat)

				after, err := s.Export()
				require.NoError(t, err)
				assert.Equal(t, before, after)
			})
		}
	})

	t.Run("missing currentBoard names the field", func(t *testing.T) {
		s, _ := newTestStore(t)
		err := s.Import(ctx, []byte(`{"boards":{}}`))
		assert.ErrorContains(t, err, "currentBoard")
	})

	t.Run("dangling currentBoard is repaired", func(t *testing.T) {
		s, _ := newTestStore(t)
		require.NoError(t, s.Import(ctx, []byte(`{"boards":{"Z":[]},"currentBoard":"A"}`)))
		assert.Equal(t, "Z", s.CurrentBoard())
	})
}

func TestFailedSaveKeepsState(t *testing.T) {
	ctx := context.Background()
	kv := &failingKV{Memory: storage.NewMemory()}
	s := New(kv, WithIDGenerator(sequentialIDs()))
	s.Load(ctx)

	_, err := s.CreateTask(ctx, models.TaskFields{Title: "kept"})
	require.NoError(t, err)

	kv.failWrites = true
	_, err = s.CreateTask(ctx, models.TaskFields{Title: "lost"})
	assert.ErrorIs(t, err, errQuota)
	assert.ErrorIs(t, s.CreateBoard(ctx, "Other"), errQuota, "storage errors are surfaced")
	assert.Len(t, s.GetTasks(), 1)
	assert.Equal(t, []string{"Default"}, s.Boards())
}

func TestFailedSeedKeepsUnseededDocument(t *testing.T) {
	ctx := context.Background()
	kv := &failingKV{Memory: storage.NewMemory(), failWrites: true}
	s := New(kv, WithSeedExamples(true))

	doc := s.Load(ctx)
	assert.Equal(t, models.DefaultDocument(), doc)
	assert.Empty(t, s.GetTasks())

	_, err := kv.Get(ctx, "kanbanBoards_v1")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestResolveTaskID(t *testing.T) {
	ctx := context.Background()
	ids := []string{"abc123", "abd456", "xyz789"}
	s, _ := newTestStore(t, WithIDGenerator(func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}))
	for range 3 {
		_, err := s.CreateTask(ctx, models.TaskFields{Title: "t"})
		require.NoError(t, err)
	}

	id, err := s.ResolveTaskID("abc")
	require.NoError(t, err)
	assert.Equal(t, "abc123", id)

	id, err = s.ResolveTaskID("xyz789")
	require.NoError(t, err)
	assert.Equal(t, "xyz789", id)

	_, err = s.ResolveTaskID("ab")
	assert.ErrorIs(t, err, ErrAmbiguousID)

	_, err = s.ResolveTaskID("q")
	assert.ErrorIs(t, err, ErrTaskNotFound)

	_, err = s.ResolveTaskID("")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestSubscribeReceivesCommittedChanges(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	var seen []events.Event
	unsubscribe := s.Subscribe(func(e events.Event) {
		// Handlers may read the store without deadlocking
		_ = s.GetTasks()
		seen = append(seen, e)
	})

	task, err := s.CreateTask(ctx, models.TaskFields{Title: "observed"})
	require.NoError(t, err)
	require.NoError(t, s.MoveTask(ctx, task.ID, models.ColumnDone))
	require.NoError(t, s.DeleteTask(ctx, "missing"))
	assert.Error(t, s.SwitchBoard(ctx, "missing"))
	require.NoError(t, s.CreateBoard(ctx, "Next"))

	unsubscribe()
	require.NoError(t, s.SwitchBoard(ctx, "Default"))

	var types []events.EventType
	for _, e := range seen {
		types = append(types, e.Type)
	}
	assert.Equal(t, []events.EventType{events.TaskCreated, events.TaskMoved, events.BoardCreated}, types)
	assert.Equal(t, task.ID, seen[0].TaskID)
	assert.Equal(t, "Default", seen[0].Board)
}

func TestGetTasksReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	_, err := s.CreateTask(ctx, models.TaskFields{Title: "original"})
	require.NoError(t, err)

	tasks := s.GetTasks()
	tasks[0].Title = "mutated"

	assert.Equal(t, "original", s.GetTasks()[0].Title)
}
