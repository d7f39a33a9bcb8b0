package models

import (
	"fmt"
	"regexp"
)

// DefaultColumnColor is the color offered for new columns
const DefaultColumnColor = "#3498db"

// DefaultColumns are seeded into every new board, in order
var DefaultColumns = []struct {
	Title string
	Color string
}{
	{"To Do", "#3498db"},
	{"In Progress", "#f39c12"},
	{"Done", "#2ecc71"},
}

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Column represents a kanban board column (e.g., "To Do", "In Progress", "Done").
// Task order is the slice order.
type Column struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Tasks []Task `json:"tasks"`
	Color string `json:"color,omitempty"`
}

// Clone returns a deep copy of the column
func (c Column) Clone() Column {
	cp := c
	cp.Tasks = make([]Task, len(c.Tasks))
	for i, t := range c.Tasks {
		cp.Tasks[i] = t.Clone()
	}
	return cp
}

// TaskIndex returns the position of the task with the given ID, or -1
func (c *Column) TaskIndex(taskID string) int {
	for i := range c.Tasks {
		if c.Tasks[i].ID == taskID {
			return i
		}
	}
	return -1
}

// Task returns the task with the given ID
func (c *Column) Task(taskID string) (*Task, bool) {
	if i := c.TaskIndex(taskID); i >= 0 {
		return &c.Tasks[i], true
	}
	return nil, false
}

// ValidateColor validates that a color string is in hex format #RRGGBB.
// The empty string is accepted and means "no color".
func ValidateColor(color string) error {
	if color == "" || hexColorPattern.MatchString(color) {
		return nil
	}
	return fmt.Errorf("%w (e.g., #FF0000), got: %s", ErrInvalidColor, color)
}

// GetID returns the column ID
func (c Column) GetID() string { return c.ID }
