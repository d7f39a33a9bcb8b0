package models

// Board is a named set of columns
type Board struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Columns []Column `json:"columns"`
}

// Clone returns a deep copy of the board
func (b Board) Clone() Board {
	cp := b
	cp.Columns = make([]Column, len(b.Columns))
	for i, c := range b.Columns {
		cp.Columns[i] = c.Clone()
	}
	return cp
}

// ColumnIndex returns the position of the column with the given ID, or -1
func (b *Board) ColumnIndex(columnID string) int {
	for i := range b.Columns {
		if b.Columns[i].ID == columnID {
			return i
		}
	}
	return -1
}

// Column returns the column with the given ID
func (b *Board) Column(columnID string) (*Column, bool) {
	if i := b.ColumnIndex(columnID); i >= 0 {
		return &b.Columns[i], true
	}
	return nil, false
}

// FindTask locates a task anywhere on the board.
// It returns the owning column and the task's index within it.
func (b *Board) FindTask(taskID string) (*Column, int, bool) {
	for i := range b.Columns {
		if idx := b.Columns[i].TaskIndex(taskID); idx >= 0 {
			return &b.Columns[i], idx, true
		}
	}
	return nil, -1, false
}

// TaskCount returns the number of tasks across all columns
func (b *Board) TaskCount() int {
	n := 0
	for i := range b.Columns {
		n += len(b.Columns[i].Tasks)
	}
	return n
}

// GetID returns the board ID
func (b Board) GetID() string { return b.ID }
