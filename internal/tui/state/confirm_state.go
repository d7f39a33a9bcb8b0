package state

// ConfirmAction names what a confirmation dialog deletes
type ConfirmAction int

const (
	ConfirmNone ConfirmAction = iota
	ConfirmDeleteTask
	ConfirmDeleteColumn
	ConfirmDeleteBoard
)

// ConfirmState describes the open confirmation dialog
type ConfirmState struct {
	Action   ConfirmAction
	Message  string
	BoardID  string
	ColumnID string
	TaskID   string
}

// Set opens a dialog for action
func (s *ConfirmState) Set(action ConfirmAction, message, boardID, columnID, taskID string) {
	s.Action = action
	s.Message = message
	s.BoardID = boardID
	s.ColumnID = columnID
	s.TaskID = taskID
}

// Clear closes the dialog
func (s *ConfirmState) Clear() {
	*s = ConfirmState{}
}

// Active reports whether a dialog is open
func (s *ConfirmState) Active() bool {
	return s.Action != ConfirmNone
}
