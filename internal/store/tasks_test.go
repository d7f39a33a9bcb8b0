package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanban/internal/models"
)

func taskTitles(t *testing.T, s *Store, boardID, columnID string) []string {
	t.Helper()
	b, ok := s.Board(boardID)
	require.True(t, ok)
	c, ok := b.Column(columnID)
	require.True(t, ok)
	titles := make([]string, len(c.Tasks))
	for i, task := range c.Tasks {
		titles[i] = task.Title
	}
	return titles
}

func addTasks(t *testing.T, s *Store, boardID, columnID string, titles ...string) []*models.Task {
	t.Helper()
	out := make([]*models.Task, 0, len(titles))
	for _, title := range titles {
		task, err := s.AddTask(context.Background(), boardID, columnID, models.NewTask{Title: title})
		require.NoError(t, err)
		out = append(out, task)
	}
	return out
}

func TestAddTask(t *testing.T) {
	s, b := newBoardStore(t)
	due := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	task, err := s.AddTask(context.Background(), b.ID, b.Columns[0].ID, models.NewTask{
		Title:       " Write docs ",
		Description: "**bold**",
		Priority:    "HIGH",
		DueDate:     &due,
		Tags:        []string{"docs", " ", " q2 "},
	})
	require.NoError(t, err)

	assert.Equal(t, "Write docs", task.Title)
	assert.Equal(t, models.PriorityHigh, task.Priority)
	assert.Equal(t, testNow, task.CreatedAt)
	assert.Equal(t, []string{"docs", "q2"}, task.Tags)
	require.NotNil(t, task.DueDate)
	assert.True(t, due.Equal(*task.DueDate))

	// Caller's due date must not alias stored state
	due = due.AddDate(1, 0, 0)
	got, _ := s.Board(b.ID)
	assert.Equal(t, 2024, got.Columns[0].Tasks[0].DueDate.Year())
}

func TestAddTask_Defaults(t *testing.T) {
	s, b := newBoardStore(t)

	task, err := s.AddTask(context.Background(), b.ID, b.Columns[0].ID, models.NewTask{Title: "Plain"})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultPriority, task.Priority)
	assert.NotNil(t, task.Tags)
	assert.Empty(t, task.Tags)
	assert.Nil(t, task.DueDate)
}

func TestAddTask_AppendsInOrder(t *testing.T) {
	s, b := newBoardStore(t)
	col := b.Columns[0].ID
	addTasks(t, s, b.ID, col, "one", "two", "three")

	assert.Equal(t, []string{"one", "two", "three"}, taskTitles(t, s, b.ID, col))
}

func TestAddTask_Validation(t *testing.T) {
	s, b := newBoardStore(t)
	ctx := context.Background()
	col := b.Columns[0].ID

	_, err := s.AddTask(ctx, b.ID, col, models.NewTask{Title: ""})
	assert.ErrorIs(t, err, models.ErrEmptyTitle)

	_, err = s.AddTask(ctx, b.ID, col, models.NewTask{Title: "x", Priority: "urgent"})
	assert.ErrorIs(t, err, models.ErrInvalidPriority)

	_, err = s.AddTask(ctx, b.ID, "ghost", models.NewTask{Title: "x"})
	assert.ErrorIs(t, err, models.ErrColumnNotFound)

	_, err = s.AddTask(ctx, "ghost", col, models.NewTask{Title: "x"})
	assert.ErrorIs(t, err, models.ErrBoardNotFound)
}

func TestUpdateTask(t *testing.T) {
	s, b := newBoardStore(t)
	ctx := context.Background()
	col := b.Columns[0].ID
	task := addTasks(t, s, b.ID, col, "old")[0]

	edited := *task
	edited.Title = "new"
	edited.Description = "details"
	edited.Priority = models.PriorityLow
	edited.CreatedAt = time.Time{}
	edited.Tags = []string{"x"}
	require.NoError(t, s.UpdateTask(ctx, b.ID, col, edited))

	got, _ := s.Board(b.ID)
	stored := got.Columns[0].Tasks[0]
	assert.Equal(t, "new", stored.Title)
	assert.Equal(t, "details", stored.Description)
	assert.Equal(t, models.PriorityLow, stored.Priority)
	assert.Equal(t, testNow, stored.CreatedAt, "zero CreatedAt keeps the original")
	assert.Equal(t, []string{"x"}, stored.Tags)
}

func TestUpdateTask_Errors(t *testing.T) {
	s, b := newBoardStore(t)
	ctx := context.Background()
	col := b.Columns[0].ID
	task := addTasks(t, s, b.ID, col, "keep")[0]

	missing := *task
	missing.ID = "ghost"
	assert.ErrorIs(t, s.UpdateTask(ctx, b.ID, col, missing), models.ErrTaskNotFound)

	// The task lives in column 0, not column 1
	assert.ErrorIs(t, s.UpdateTask(ctx, b.ID, b.Columns[1].ID, *task), models.ErrTaskNotFound)

	blank := *task
	blank.Title = " "
	assert.ErrorIs(t, s.UpdateTask(ctx, b.ID, col, blank), models.ErrEmptyTitle)
	assert.Equal(t, []string{"keep"}, taskTitles(t, s, b.ID, col))
}

func TestDeleteTask(t *testing.T) {
	s, b := newBoardStore(t)
	ctx := context.Background()
	col := b.Columns[0].ID
	tasks := addTasks(t, s, b.ID, col, "a", "b", "c")

	require.NoError(t, s.DeleteTask(ctx, b.ID, col, tasks[1].ID))
	assert.Equal(t, []string{"a", "c"}, taskTitles(t, s, b.ID, col))
	assert.ErrorIs(t, s.DeleteTask(ctx, b.ID, col, tasks[1].ID), models.ErrTaskNotFound)
}

func TestMoveTask(t *testing.T) {
	s, b := newBoardStore(t)
	ctx := context.Background()
	todo, doing := b.Columns[0].ID, b.Columns[1].ID
	tasks := addTasks(t, s, b.ID, todo, "a", "b")
	addTasks(t, s, b.ID, doing, "x")

	require.NoError(t, s.MoveTask(ctx, b.ID, todo, doing, tasks[0].ID))
	assert.Equal(t, []string{"b"}, taskTitles(t, s, b.ID, todo))
	assert.Equal(t, []string{"x", "a"}, taskTitles(t, s, b.ID, doing), "moved task is appended")
}

func TestMoveTask_SameColumnIsNoOp(t *testing.T) {
	s, backend := newTestStore(t)
	ctx := context.Background()
	b, err := s.CreateBoard(ctx, "Work")
	require.NoError(t, err)
	col := b.Columns[0].ID
	tasks := addTasks(t, s, b.ID, col, "a", "b")
	saves := backend.Saves()

	require.NoError(t, s.MoveTask(ctx, b.ID, col, col, tasks[0].ID))
	assert.Equal(t, []string{"a", "b"}, taskTitles(t, s, b.ID, col))
	assert.Equal(t, saves, backend.Saves())
}

func TestMoveTask_Errors(t *testing.T) {
	s, b := newBoardStore(t)
	ctx := context.Background()
	todo, doing := b.Columns[0].ID, b.Columns[1].ID
	task := addTasks(t, s, b.ID, todo, "a")[0]

	assert.ErrorIs(t, s.MoveTask(ctx, b.ID, todo, "ghost", task.ID), models.ErrColumnNotFound)
	assert.ErrorIs(t, s.MoveTask(ctx, b.ID, "ghost", doing, task.ID), models.ErrColumnNotFound)
	assert.ErrorIs(t, s.MoveTask(ctx, b.ID, doing, todo, task.ID), models.ErrTaskNotFound)
	assert.Equal(t, []string{"a"}, taskTitles(t, s, b.ID, todo), "failed move must not lose the task")
}

func TestReorderTask(t *testing.T) {
	s, b := newBoardStore(t)
	ctx := context.Background()
	col := b.Columns[0].ID
	tasks := addTasks(t, s, b.ID, col, "a", "b", "c")

	require.NoError(t, s.ReorderTask(ctx, b.ID, col, tasks[2].ID, 0))
	assert.Equal(t, []string{"c", "a", "b"}, taskTitles(t, s, b.ID, col))

	require.NoError(t, s.ReorderTask(ctx, b.ID, col, tasks[2].ID, 1))
	assert.Equal(t, []string{"a", "c", "b"}, taskTitles(t, s, b.ID, col))

	assert.ErrorIs(t, s.ReorderTask(ctx, b.ID, col, tasks[0].ID, -1), models.ErrAlreadyFirstTask)
	assert.ErrorIs(t, s.ReorderTask(ctx, b.ID, col, tasks[1].ID, 3), models.ErrAlreadyLastTask)
	assert.ErrorIs(t, s.ReorderTask(ctx, b.ID, col, "ghost", 0), models.ErrTaskNotFound)
}
