package models

import (
	"fmt"
	"strings"
	"time"
)

// DefaultCategory is used when a task is saved with a blank category.
const DefaultCategory = "General"

// DueDateLayout is the ISO date format of Task.DueDate.
const DueDateLayout = "2006-01-02"

// Task represents a single card on a board
type Task struct {
	ID          string   `json:"id"`
	Column      Column   `json:"column"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	Category    string   `json:"category"`
	DueDate     string   `json:"dueDate"`
	CreatedAt   int64    `json:"createdAt"` // epoch milliseconds, set once
}

// TaskFields is the editable part of a task, as submitted by the task editor
type TaskFields struct {
	Column      Column
	Title       string
	Description string
	Priority    Priority
	Category    string
	DueDate     string
}

// Fields returns the editable part of t.
func (t Task) Fields() TaskFields {
	return TaskFields{
		Column:      t.Column,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Category:    t.Category,
		DueDate:     t.DueDate,
	}
}

// Created returns CreatedAt as a time.
func (t Task) Created() time.Time {
	return time.UnixMilli(t.CreatedAt)
}

// Normalize trims text fields and applies the editor defaults:
// blank category becomes DefaultCategory, blank priority DefaultPriority,
// blank column ColumnTodo.
func (f TaskFields) Normalize() TaskFields {
	f.Title = strings.TrimSpace(f.Title)
	f.Description = strings.TrimSpace(f.Description)
	f.Category = strings.TrimSpace(f.Category)
	f.DueDate = strings.TrimSpace(f.DueDate)
	if f.Category == "" {
		f.Category = DefaultCategory
	}
	if f.Priority == "" {
		f.Priority = DefaultPriority
	}
	if f.Column == "" {
		f.Column = ColumnTodo
	}
	return f
}

// ValidateDueDate accepts an empty string or an ISO date.
func ValidateDueDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse(DueDateLayout, s); err != nil {
		return fmt.Errorf("%w: '%s' is not in YYYY-MM-DD format", ErrInvalidDueDate, s)
	}
	return nil
}
