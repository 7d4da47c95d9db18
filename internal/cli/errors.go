package cli

import (
	"errors"
	"log/slog"

	"github.com/thenoetrevino/kanban/internal/board"
)

// errorKind maps a store error to its JSON error code, exit code and hint
type errorKind struct {
	target     error
	code       string
	exit       int
	suggestion string
}

var errorKinds = []errorKind{
	{board.ErrTaskNotFound, "TASK_NOT_FOUND", ExitNotFound, "Use 'kanban task list' to see tasks on the current board"},
	{board.ErrAmbiguousID, "AMBIGUOUS_ID", ExitUsage, "Type more characters of the task id"},
	{board.ErrBoardNotFound, "BOARD_NOT_FOUND", ExitNotFound, "Use 'kanban board list' to see available boards"},
	{board.ErrBoardExists, "BOARD_EXISTS", ExitConflict, "Pick another name or switch to it with 'kanban board switch'"},
	{board.ErrEmptyBoardName, "EMPTY_BOARD_NAME", ExitValidation, ""},
	{board.ErrInvalidFormat, "INVALID_FORMAT", ExitDataErr, "The file must be a kanban export with boards and currentBoard"},
	{board.ErrEmptyTitle, "EMPTY_TITLE", ExitValidation, ""},
	{board.ErrTitleTooLong, "TITLE_TOO_LONG", ExitValidation, ""},
	{board.ErrInvalidPriority, "INVALID_PRIORITY", ExitValidation, "Valid priorities are: Low, Medium, High"},
	{board.ErrInvalidColumn, "INVALID_COLUMN", ExitValidation, "Valid columns are: todo, inprogress, done"},
	{board.ErrInvalidDueDate, "INVALID_DUE_DATE", ExitValidation, "Use the YYYY-MM-DD format"},
}

// Classify returns the error code, exit code and suggestion for err.
// fallbackCode names errors no store sentinel matches.
func Classify(err error, fallbackCode string) (code string, exit int, suggestion string) {
	for _, kind := range errorKinds {
		if errors.Is(err, kind.target) {
			return kind.code, kind.exit, kind.suggestion
		}
	}
	return fallbackCode, ExitGeneral, ""
}

// HandleError reports err through the formatter and returns it wrapped with
// the matching exit code.
func HandleError(formatter *OutputFormatter, fallbackCode string, err error) error {
	code, exit, suggestion := Classify(err, fallbackCode)
	return Report(formatter, code, exit, err.Error(), suggestion, err)
}

// Report prints message and returns err with the exit code attached
func Report(formatter *OutputFormatter, code string, exit int, message, suggestion string, err error) error {
	if fmtErr := formatter.ErrorWithSuggestion(code, message, suggestion); fmtErr != nil {
		slog.Error("failed to format error message", "error", fmtErr)
	}
	return Exit(exit, err)
}
