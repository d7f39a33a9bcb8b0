package models

import (
	"errors"
	"testing"
	"time"
)

// ============================================================================
// Error Tests
// ============================================================================

func TestErrors_Messages(t *testing.T) {
	tests := []struct {
		err             error
		expectedMessage string
	}{
		{ErrAlreadyFirstTask, "task is already at the top of the column"},
		{ErrAlreadyLastTask, "task is already at the bottom of the column"},
		{ErrAlreadyFirstColumn, "already at first column"},
		{ErrAlreadyLastColumn, "already at last column"},
		{ErrEmptyTitle, "title is required"},
	}

	for _, tt := range tests {
		if tt.err.Error() != tt.expectedMessage {
			t.Errorf("Expected error message '%s', got '%s'", tt.expectedMessage, tt.err.Error())
		}
	}
}

func TestErrors_Unique(t *testing.T) {
	if errors.Is(ErrAlreadyFirstTask, ErrAlreadyLastTask) {
		t.Error("ErrAlreadyFirstTask should not equal ErrAlreadyLastTask")
	}
	if errors.Is(ErrBoardNotFound, ErrColumnNotFound) {
		t.Error("ErrBoardNotFound should not equal ErrColumnNotFound")
	}
}

// ============================================================================
// Priority Tests
// ============================================================================

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in      string
		want    Priority
		wantErr bool
	}{
		{"low", PriorityLow, false},
		{"Medium", PriorityMedium, false},
		{" HIGH ", PriorityHigh, false},
		{"", DefaultPriority, false},
		{"critical", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePriority(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidPriority) {
				t.Errorf("ParsePriority(%q) error = %v, want ErrInvalidPriority", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePriority(%q) unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParsePriority(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPriority_LabelAndValid(t *testing.T) {
	if PriorityHigh.Label() != "High" {
		t.Errorf("Label() = %q, want High", PriorityHigh.Label())
	}
	for _, p := range Priorities {
		if !p.Valid() {
			t.Errorf("%q should be valid", p)
		}
	}
	if Priority("urgent").Valid() {
		t.Error("unknown priority should not be valid")
	}
}

// ============================================================================
// Task Field Parsing
// ============================================================================

func TestParseTags(t *testing.T) {
	got := ParseTags(" feature, bug,, documentation ,")
	want := []string{"feature", "bug", "documentation"}
	if len(got) != len(want) {
		t.Fatalf("ParseTags() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ParseTags()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if empty := ParseTags(""); empty == nil || len(empty) != 0 {
		t.Errorf("ParseTags(\"\") = %#v, want empty non-nil slice", empty)
	}
}

func TestParseDueDate(t *testing.T) {
	d, err := ParseDueDate("2025-03-14")
	if err != nil {
		t.Fatalf("ParseDueDate() error: %v", err)
	}
	if d.Format(DueDateLayout) != "2025-03-14" {
		t.Errorf("ParseDueDate() = %v", d)
	}

	none, err := ParseDueDate("  ")
	if err != nil || none != nil {
		t.Errorf("blank due date should be nil, got %v, %v", none, err)
	}

	if _, err := ParseDueDate("14/03/2025"); !errors.Is(err, ErrInvalidDueDate) {
		t.Errorf("expected ErrInvalidDueDate, got %v", err)
	}
}

func TestTask_IsOverdue(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.Local)
	yesterday := time.Date(2025, 6, 9, 0, 0, 0, 0, time.Local)
	today := time.Date(2025, 6, 10, 0, 0, 0, 0, time.Local)

	if (Task{}).IsOverdue(now) {
		t.Error("task without due date is never overdue")
	}
	if !(Task{DueDate: &yesterday}).IsOverdue(now) {
		t.Error("task due yesterday should be overdue")
	}
	if (Task{DueDate: &today}).IsOverdue(now) {
		t.Error("task due today should not be overdue")
	}
}

func TestValidateColor(t *testing.T) {
	for _, ok := range []string{"", "#3498db", "#FFFFFF"} {
		if err := ValidateColor(ok); err != nil {
			t.Errorf("ValidateColor(%q) unexpected error: %v", ok, err)
		}
	}
	for _, bad := range []string{"red", "#FFF", "3498db", "#GGGGGG"} {
		if err := ValidateColor(bad); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ValidateColor(%q) = %v, want ErrInvalidColor", bad, err)
		}
	}
}

// ============================================================================
// State Tests
// ============================================================================

func TestState_CloneIsDeep(t *testing.T) {
	due := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	s := State{
		ActiveBoard: "b1",
		Boards: []Board{{
			ID:    "b1",
			Title: "Board",
			Columns: []Column{{
				ID:    "c1",
				Title: "To Do",
				Tasks: []Task{{ID: "t1", Title: "Task", DueDate: &due, Tags: []string{"x"}}},
			}},
		}},
	}

	cp := s.Clone()
	cp.Boards[0].Title = "Changed"
	cp.Boards[0].Columns[0].Tasks[0].Tags[0] = "y"
	*cp.Boards[0].Columns[0].Tasks[0].DueDate = due.AddDate(0, 0, 1)

	if s.Boards[0].Title != "Board" {
		t.Error("clone aliases board title")
	}
	if s.Boards[0].Columns[0].Tasks[0].Tags[0] != "x" {
		t.Error("clone aliases task tags")
	}
	if !s.Boards[0].Columns[0].Tasks[0].DueDate.Equal(due) {
		t.Error("clone aliases due date")
	}
}

func TestState_Normalize(t *testing.T) {
	s := State{
		ActiveBoard: "missing",
		Boards: []Board{{
			ID:      "b1",
			Columns: []Column{{ID: "c1", Tasks: []Task{{ID: "t1"}}}},
		}},
	}
	s.Normalize()

	if s.ActiveBoard != "" {
		t.Errorf("dangling active board should be cleared, got %q", s.ActiveBoard)
	}
	task := s.Boards[0].Columns[0].Tasks[0]
	if task.Tags == nil {
		t.Error("Tags should be non-nil after Normalize")
	}
	if task.Priority != DefaultPriority {
		t.Errorf("Priority = %q, want %q", task.Priority, DefaultPriority)
	}
}

func TestBoard_FindTask(t *testing.T) {
	b := Board{Columns: []Column{
		{ID: "c1", Tasks: []Task{{ID: "t1"}}},
		{ID: "c2", Tasks: []Task{{ID: "t2"}, {ID: "t3"}}},
	}}

	col, idx, ok := b.FindTask("t3")
	if !ok || col.ID != "c2" || idx != 1 {
		t.Errorf("FindTask(t3) = %v, %d, %v", col, idx, ok)
	}
	if _, _, ok := b.FindTask("nope"); ok {
		t.Error("FindTask should miss unknown task")
	}
	if b.TaskCount() != 3 {
		t.Errorf("TaskCount() = %d, want 3", b.TaskCount())
	}
}

func TestJoinTags(t *testing.T) {
	tags := []string{"feature", "bug"}
	if got := JoinTags(tags); got != "feature, bug" {
		t.Errorf("JoinTags() = %q", got)
	}
	if got := ParseTags(JoinTags(tags)); len(got) != 2 || got[1] != "bug" {
		t.Errorf("ParseTags(JoinTags()) = %v", got)
	}
}
