package board

import (
	"errors"

	"github.com/thenoetrevino/kanban/internal/models"
)

// Board-related errors
var (
	ErrBoardExists    = errors.New("board already exists")
	ErrBoardNotFound  = errors.New("board not found")
	ErrEmptyBoardName = errors.New("board name cannot be empty")
	ErrInvalidFormat  = errors.New("invalid file")
)

// Task-related errors
var (
	// Validation errors
	ErrEmptyTitle      = errors.New("task title cannot be empty")
	ErrTitleTooLong    = errors.New("task title cannot exceed 255 characters")
	ErrInvalidPriority = models.ErrInvalidPriority
	ErrInvalidColumn   = models.ErrInvalidColumn
	ErrInvalidDueDate  = models.ErrInvalidDueDate

	// Lookup errors
	ErrTaskNotFound = errors.New("task not found")
	ErrAmbiguousID  = errors.New("task id prefix matches more than one task")
)
