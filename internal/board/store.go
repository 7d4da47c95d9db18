// Package board owns the kanban document: every board, its tasks, and which
// board is current. All reads and writes go through a Store, which persists
// the full document after each successful mutation.
package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/storage"
)

// MaxTitleLength is the longest accepted task title, in bytes
const MaxTitleLength = 255

// Store mediates all access to the document. It is safe for concurrent use.
type Store struct {
	kv     storage.KV
	key    string
	now    func() time.Time
	newID  func() string
	logger *slog.Logger
	seed   bool
	bus    *events.Bus

	mu  sync.Mutex
	doc models.Document
}

// New creates a store over kv holding the default document. Call Load to
// read the persisted one.
func New(kv storage.KV, opts ...Option) *Store {
	s := &Store{kv: kv, doc: models.DefaultDocument()}
	defaultOptions(s)
	for _, opt := range opts {
		opt(s)
	}
	s.bus = events.NewBus(s.logger)
	return s
}

// Subscribe registers fn for every committed change
func (s *Store) Subscribe(fn events.Handler) (unsubscribe func()) {
	return s.bus.Subscribe(fn)
}

// Load reads the persisted document and makes it current. A missing,
// unreadable or malformed value yields the default document; Load never
// fails. On first run with seeding enabled the example tasks are added and
// saved.
func (s *Store) Load(ctx context.Context) models.Document {
	s.mu.Lock()
	doc, firstRun := s.read(ctx)
	if doc.Normalize() {
		s.logger.Debug("repaired stored document", "currentBoard", doc.CurrentBoard)
	}
	if firstRun && s.seed && len(doc.Boards[doc.CurrentBoard]) == 0 {
		seeded := doc.Clone()
		seeded.Boards[seeded.CurrentBoard] = exampleTasks(s.now(), s.newID)
		if err := s.persist(ctx, seeded); err != nil {
			s.logger.Warn("failed to save example tasks", "error", err)
		} else {
			doc = seeded
		}
	}
	s.doc = doc
	out := doc.Clone()
	s.mu.Unlock()

	s.bus.Publish(events.Event{Type: events.DocumentLoaded, Board: out.CurrentBoard})
	return out
}

// read returns the stored document, or the default one and whether the key
// was simply absent.
func (s *Store) read(ctx context.Context) (models.Document, bool) {
	data, err := s.kv.Get(ctx, s.key)
	if errors.Is(err, storage.ErrNotFound) {
		return models.DefaultDocument(), true
	}
	if err != nil {
		s.logger.Warn("failed to read stored document, using default", "error", err)
		return models.DefaultDocument(), false
	}
	doc, err := decodeStored(data)
	if err != nil {
		s.logger.Warn("stored document is malformed, using default", "error", err)
		return models.DefaultDocument(), false
	}
	return doc, false
}

// Save persists doc, overwriting the stored value, and makes it current.
func (s *Store) Save(ctx context.Context, doc models.Document) error {
	return s.mutate(ctx, func(next *models.Document) (*events.Event, error) {
		*next = doc.Clone()
		next.Normalize()
		return &events.Event{Type: events.DocumentReplaced, Board: next.CurrentBoard}, nil
	})
}

// Document returns a copy of the in-memory document
func (s *Store) Document() models.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// CurrentBoard returns the name of the active board
func (s *Store) CurrentBoard() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.CurrentBoard
}

// Boards returns the board names, sorted
func (s *Store) Boards() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.BoardNames()
}

// GetTasks returns a copy of the current board's tasks in board order
func (s *Store) GetTasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.currentTasks(&s.doc))
}

// SetTasks replaces the current board's task list and persists
func (s *Store) SetTasks(ctx context.Context, tasks []models.Task) error {
	return s.mutate(ctx, func(doc *models.Document) (*events.Event, error) {
		replaced := slices.Clone(tasks)
		if replaced == nil {
			replaced = []models.Task{}
		}
		doc.Boards[doc.CurrentBoard] = replaced
		return &events.Event{Type: events.TasksReplaced, Board: doc.CurrentBoard}, nil
	})
}

// CreateTask appends a new task to the current board. The id is generated
// and CreatedAt stamped; blank category, priority and column get defaults.
func (s *Store) CreateTask(ctx context.Context, fields models.TaskFields) (models.Task, error) {
	fields, err := validateFields(fields)
	if err != nil {
		return models.Task{}, err
	}

	var created models.Task
	err = s.mutate(ctx, func(doc *models.Document) (*events.Event, error) {
		tasks := s.currentTasks(doc)
		created = newTask(s.uniqueID(tasks), fields, s.now())
		doc.Boards[doc.CurrentBoard] = append(tasks, created)
		return &events.Event{Type: events.TaskCreated, Board: doc.CurrentBoard, TaskID: created.ID}, nil
	})
	if err != nil {
		return models.Task{}, err
	}
	return created, nil
}

// UpdateTask replaces every editable field of an existing task, keeping its
// id and CreatedAt. A missing id fails with ErrTaskNotFound.
func (s *Store) UpdateTask(ctx context.Context, id string, fields models.TaskFields) (models.Task, error) {
	fields, err := validateFields(fields)
	if err != nil {
		return models.Task{}, err
	}

	var updated models.Task
	err = s.mutate(ctx, func(doc *models.Document) (*events.Event, error) {
		tasks := s.currentTasks(doc)
		i := indexOf(tasks, id)
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
		}
		updated = applyFields(tasks[i], fields)
		tasks[i] = updated
		return &events.Event{Type: events.TaskUpdated, Board: doc.CurrentBoard, TaskID: id}, nil
	})
	if err != nil {
		return models.Task{}, err
	}
	return updated, nil
}

// SaveTask stores the editor's submission: an empty id creates, a known id
// updates, and an unknown id inserts a new task under that id.
func (s *Store) SaveTask(ctx context.Context, id string, fields models.TaskFields) (models.Task, error) {
	if id == "" {
		return s.CreateTask(ctx, fields)
	}
	fields, err := validateFields(fields)
	if err != nil {
		return models.Task{}, err
	}

	var saved models.Task
	err = s.mutate(ctx, func(doc *models.Document) (*events.Event, error) {
		tasks := s.currentTasks(doc)
		if i := indexOf(tasks, id); i >= 0 {
			saved = applyFields(tasks[i], fields)
			tasks[i] = saved
			return &events.Event{Type: events.TaskUpdated, Board: doc.CurrentBoard, TaskID: id}, nil
		}
		saved = newTask(id, fields, s.now())
		doc.Boards[doc.CurrentBoard] = append(tasks, saved)
		return &events.Event{Type: events.TaskCreated, Board: doc.CurrentBoard, TaskID: id}, nil
	})
	if err != nil {
		return models.Task{}, err
	}
	return saved, nil
}

// DeleteTask removes the task with id from the current board. Deleting a
// missing id is not an error.
func (s *Store) DeleteTask(ctx context.Context, id string) error {
	return s.mutate(ctx, func(doc *models.Document) (*events.Event, error) {
		tasks := s.currentTasks(doc)
		i := indexOf(tasks, id)
		if i < 0 {
			return nil, nil
		}
		doc.Boards[doc.CurrentBoard] = slices.Delete(tasks, i, i+1)
		return &events.Event{Type: events.TaskDeleted, Board: doc.CurrentBoard, TaskID: id}, nil
	})
}

// MoveTask sets the column of the task with id. Moving a missing id is not
// an error.
func (s *Store) MoveTask(ctx context.Context, id string, column models.Column) error {
	if !column.Valid() {
		return fmt.Errorf("%w '%s' (must be: todo, inprogress, done)", ErrInvalidColumn, column)
	}
	return s.mutate(ctx, func(doc *models.Document) (*events.Event, error) {
		tasks := s.currentTasks(doc)
		i := indexOf(tasks, id)
		if i < 0 {
			return nil, nil
		}
		tasks[i].Column = column
		return &events.Event{Type: events.TaskMoved, Board: doc.CurrentBoard, TaskID: id}, nil
	})
}

// CreateBoard adds an empty board and makes it current. Names are compared
// exactly; a duplicate fails with ErrBoardExists and changes nothing.
func (s *Store) CreateBoard(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyBoardName
	}
	return s.mutate(ctx, func(doc *models.Document) (*events.Event, error) {
		if doc.HasBoard(name) {
			return nil, fmt.Errorf("%w: %s", ErrBoardExists, name)
		}
		doc.Boards[name] = []models.Task{}
		doc.CurrentBoard = name
		return &events.Event{Type: events.BoardCreated, Board: name}, nil
	})
}

// SwitchBoard makes name the current board
func (s *Store) SwitchBoard(ctx context.Context, name string) error {
	return s.mutate(ctx, func(doc *models.Document) (*events.Event, error) {
		if !doc.HasBoard(name) {
			return nil, fmt.Errorf("%w: %s", ErrBoardNotFound, name)
		}
		doc.CurrentBoard = name
		return &events.Event{Type: events.BoardSwitched, Board: name}, nil
	})
}

// Export returns the whole document in the exchange format
func (s *Store) Export() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return EncodePretty(s.doc)
}

// Import replaces the whole document with data. Invalid content fails with
// ErrInvalidFormat and leaves the current document untouched.
func (s *Store) Import(ctx context.Context, data []byte) error {
	doc, err := Decode(data)
	if err != nil {
		return err
	}
	doc.Normalize()
	return s.mutate(ctx, func(next *models.Document) (*events.Event, error) {
		*next = doc
		return &events.Event{Type: events.DocumentImported, Board: doc.CurrentBoard}, nil
	})
}

// ResolveTaskID expands an id or unique id prefix within the current board
func (s *Store) ResolveTaskID(prefix string) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", fmt.Errorf("%w: empty id", ErrTaskNotFound)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var matches []string
	for _, t := range s.currentTasks(&s.doc) {
		if t.ID == prefix {
			return t.ID, nil
		}
		if strings.HasPrefix(t.ID, prefix) {
			matches = append(matches, t.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrTaskNotFound, prefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %s (%d tasks)", ErrAmbiguousID, prefix, len(matches))
	}
}

// mutate applies change to a copy of the document, persists the copy and
// then swaps it in. If change or the save fails nothing is modified.
// A nil event persists without notifying subscribers.
func (s *Store) mutate(ctx context.Context, change func(doc *models.Document) (*events.Event, error)) error {
	s.mu.Lock()
	next := s.doc.Clone()
	event, err := change(&next)
	if err == nil {
		err = s.persist(ctx, next)
	}
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.doc = next
	s.mu.Unlock()

	if event != nil {
		s.logger.Debug("document changed", "type", event.Type, "board", event.Board, "task", event.TaskID)
		s.bus.Publish(*event)
	}
	return nil
}

func (s *Store) persist(ctx context.Context, doc models.Document) error {
	data, err := Encode(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	if err := s.kv.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

// currentTasks returns the live list of the current board, never nil
func (s *Store) currentTasks(doc *models.Document) []models.Task {
	if tasks, ok := doc.Boards[doc.CurrentBoard]; ok && tasks != nil {
		return tasks
	}
	return []models.Task{}
}

// uniqueID draws ids until one is unused on the board
func (s *Store) uniqueID(tasks []models.Task) string {
	for {
		id := s.newID()
		if indexOf(tasks, id) < 0 {
			return id
		}
	}
}

func indexOf(tasks []models.Task, id string) int {
	return slices.IndexFunc(tasks, func(t models.Task) bool { return t.ID == id })
}

func newTask(id string, fields models.TaskFields, now time.Time) models.Task {
	return applyFields(models.Task{ID: id, CreatedAt: now.UnixMilli()}, fields)
}

func applyFields(t models.Task, f models.TaskFields) models.Task {
	t.Column = f.Column
	t.Title = f.Title
	t.Description = f.Description
	t.Priority = f.Priority
	t.Category = f.Category
	t.DueDate = f.DueDate
	return t
}

// validateFields normalizes f and checks it can be stored
func validateFields(f models.TaskFields) (models.TaskFields, error) {
	f = f.Normalize()
	if f.Title == "" {
		return f, ErrEmptyTitle
	}
	if len(f.Title) > MaxTitleLength {
		return f, ErrTitleTooLong
	}
	if !f.Priority.Valid() {
		return f, fmt.Errorf("%w '%s' (must be: Low, Medium, High)", ErrInvalidPriority, f.Priority)
	}
	if !f.Column.Valid() {
		return f, fmt.Errorf("%w '%s' (must be: todo, inprogress, done)", ErrInvalidColumn, f.Column)
	}
	if err := models.ValidateDueDate(f.DueDate); err != nil {
		return f, err
	}
	return f, nil
}
