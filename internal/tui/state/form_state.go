package state

import (
	"charm.land/huh/v2"

	"github.com/thenoetrevino/kanban/internal/models"
)

// FormState holds the open huh form and the values its fields are bound to.
// Only one form is open at a time; the mode says which kind it is.
type FormState struct {
	Form *huh.Form

	// EditingID is the board, column or task being edited ("" when creating)
	EditingID string
	// ColumnID is the column a task form adds to or edits in
	ColumnID string

	Title       string
	Description string
	Priority    models.Priority
	DueDate     string
	Tags        string
	Color       string
}

// NewFormState creates an empty FormState
func NewFormState() *FormState {
	return &FormState{}
}

// Reset drops the form and clears every bound value
func (s *FormState) Reset() {
	*s = FormState{}
}

// IsEditing reports whether the open form edits an existing entity
func (s *FormState) IsEditing() bool {
	return s.EditingID != ""
}

// LoadTask fills the bound values from an existing task
func (s *FormState) LoadTask(columnID string, task models.Task) {
	s.Reset()
	s.EditingID = task.ID
	s.ColumnID = columnID
	s.Title = task.Title
	s.Description = task.Description
	s.Priority = task.Priority
	s.DueDate = task.FormatDueDate()
	s.Tags = models.JoinTags(task.Tags)
}

// NewTask returns a blank task form bound to columnID
func (s *FormState) NewTask(columnID string) {
	s.Reset()
	s.ColumnID = columnID
	s.Priority = models.DefaultPriority
}
