package cli

import (
	"errors"
	"fmt"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneral indicates a general error occurred.
	// Use for: storage errors, unexpected failures, or any error that
	// doesn't fit the specific categories below.
	ExitGeneral = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing required flags, ambiguous task id prefixes.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: task not found, board not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: import files that are not a kanban document.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: invalid priority, column or due date, empty title.
	ExitValidation = 5

	// ExitConflict indicates the resource already exists.
	// Use for: creating a board whose name is taken.
	ExitConflict = 6
)

// ExitError carries the process exit code for a failed command.
// The message has already been reported to the user.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit %d: %v", e.Code, e.Err)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Exit wraps err with an exit code
func Exit(code int, err error) error {
	return &ExitError{Code: code, Err: err}
}

// ExitCode returns the exit code for err: the code of an ExitError in its
// chain, ExitSuccess for nil, ExitGeneral otherwise.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitGeneral
}
