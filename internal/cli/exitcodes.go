package cli

import (
	"errors"

	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/storage/jsonfile"
	"github.com/thenoetrevino/kanban/internal/store"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: storage errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Board, column or task references that do not resolve.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Unreadable import files, unsupported storage versions.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty titles, invalid priorities, colors or dates,
	// moves past the first or last position.
	ExitValidation = 5
)

// ExitStatusError carries the process exit code for a failed command.
// The message has already been printed by the formatter.
type ExitStatusError struct {
	Code int
	Err  error
}

func (e *ExitStatusError) Error() string {
	return e.Err.Error()
}

func (e *ExitStatusError) Unwrap() error {
	return e.Err
}

// ErrUsage marks errors caused by how the command was invoked
var ErrUsage = errors.New("usage error")

// ErrDataFormat marks input that could not be parsed
var ErrDataFormat = errors.New("malformed data")

var validationErrors = []error{
	models.ErrEmptyTitle,
	models.ErrTitleTooLong,
	models.ErrInvalidColor,
	models.ErrInvalidPriority,
	models.ErrInvalidDueDate,
	models.ErrInvalidColumnOrder,
	models.ErrAlreadyFirstTask,
	models.ErrAlreadyLastTask,
	models.ErrAlreadyFirstColumn,
	models.ErrAlreadyLastColumn,
	store.ErrInvalidState,
}

// ExitCode maps an error to the process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitStatusError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrUsage), errors.Is(err, ErrAmbiguousRef):
		return ExitUsage
	case errors.Is(err, models.ErrBoardNotFound),
		errors.Is(err, models.ErrColumnNotFound),
		errors.Is(err, models.ErrTaskNotFound),
		errors.Is(err, ErrNoActiveBoard):
		return ExitNotFound
	case errors.Is(err, ErrDataFormat), errors.Is(err, jsonfile.ErrUnsupportedVersion):
		return ExitDataErr
	}
	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return ExitValidation
		}
	}
	return ExitError
}

// ErrorCode returns the machine readable code used in JSON error output
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, models.ErrBoardNotFound), errors.Is(err, ErrNoActiveBoard):
		return "BOARD_NOT_FOUND"
	case errors.Is(err, models.ErrColumnNotFound):
		return "COLUMN_NOT_FOUND"
	case errors.Is(err, models.ErrTaskNotFound):
		return "TASK_NOT_FOUND"
	case errors.Is(err, ErrAmbiguousRef):
		return "AMBIGUOUS_REFERENCE"
	case errors.Is(err, store.ErrPersist):
		return "STORAGE_ERROR"
	}

	switch ExitCode(err) {
	case ExitUsage:
		return "USAGE_ERROR"
	case ExitDataErr:
		return "DATA_ERROR"
	case ExitValidation:
		return "VALIDATION_ERROR"
	default:
		return "ERROR"
	}
}
