package models

import "errors"

// Lookup errors
var (
	ErrBoardNotFound  = errors.New("board not found")
	ErrColumnNotFound = errors.New("column not found")
	ErrTaskNotFound   = errors.New("task not found")
)

// Validation errors
var (
	ErrEmptyTitle         = errors.New("title is required")
	ErrTitleTooLong       = errors.New("title cannot exceed 100 characters")
	ErrInvalidColor       = errors.New("color must be in hex format #RRGGBB")
	ErrInvalidPriority    = errors.New("invalid priority")
	ErrInvalidDueDate     = errors.New("due date must be in format YYYY-MM-DD")
	ErrInvalidColumnOrder = errors.New("column order must list every column of the board exactly once")
)

// Domain-specific errors for move operations
var (
	// ErrAlreadyFirstTask indicates the task is already at the top of its column
	ErrAlreadyFirstTask = errors.New("task is already at the top of the column")

	// ErrAlreadyLastTask indicates the task is already at the bottom of its column
	ErrAlreadyLastTask = errors.New("task is already at the bottom of the column")

	// ErrAlreadyFirstColumn indicates an attempt to move left from the first column
	ErrAlreadyFirstColumn = errors.New("already at first column")

	// ErrAlreadyLastColumn indicates an attempt to move right from the last column
	ErrAlreadyLastColumn = errors.New("already at last column")
)
