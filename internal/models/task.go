package models

import (
	"fmt"
	"strings"
	"time"
)

// DueDateLayout is the layout accepted for due dates (same as an HTML date input)
const DueDateLayout = "2006-01-02"

// Task represents a single card on a column
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    Priority   `json:"priority"`
	CreatedAt   time.Time  `json:"createdAt"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Tags        []string   `json:"tags"`
}

// NewTask holds the user-supplied fields of a task that is about to be created.
// ID and CreatedAt are assigned by the store.
type NewTask struct {
	Title       string
	Description string
	Priority    Priority
	DueDate     *time.Time
	Tags        []string
}

// Clone returns a deep copy of the task
func (t Task) Clone() Task {
	c := t
	if t.DueDate != nil {
		d := *t.DueDate
		c.DueDate = &d
	}
	c.Tags = append([]string{}, t.Tags...)
	return c
}

// IsOverdue reports whether the due date lies before the day of now
func (t Task) IsOverdue(now time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, t.DueDate.Location())
	return t.DueDate.Before(today)
}

// FormatDueDate renders the due date as YYYY-MM-DD, or "" when unset
func (t Task) FormatDueDate() string {
	if t.DueDate == nil {
		return ""
	}
	return t.DueDate.Format(DueDateLayout)
}

// ParseTags splits a comma separated list, trimming blanks and dropping empty entries.
// The result is never nil.
func ParseTags(s string) []string {
	tags := []string{}
	for _, tag := range strings.Split(s, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// ParseDueDate parses a YYYY-MM-DD date. An empty string means no due date.
func ParseDueDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := time.ParseInLocation(DueDateLayout, s, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDueDate, s)
	}
	return &d, nil
}

// GetID returns the task ID
func (t Task) GetID() string { return t.ID }

// JoinTags is the inverse of ParseTags
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}
