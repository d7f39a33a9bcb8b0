package store

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/kanban/internal/models"
)

// AddTask appends a new task to a column. ID and CreatedAt are assigned here.
func (s *Store) AddTask(ctx context.Context, boardID, columnID string, in models.NewTask) (*models.Task, error) {
	title, err := validateTitle(in.Title)
	if err != nil {
		return nil, err
	}
	priority, err := validatePriority(in.Priority)
	if err != nil {
		return nil, err
	}

	task := models.Task{
		ID:          s.newID(),
		Title:       title,
		Description: in.Description,
		Priority:    priority,
		CreatedAt:   s.now(),
		DueDate:     in.DueDate,
		Tags:        normalizeTags(in.Tags),
	}
	task = task.Clone()

	err = s.mutate(ctx, "add_task", boardID, func(state *models.State) error {
		_, c, err := lookupColumn(state, boardID, columnID)
		if err != nil {
			return err
		}
		c.Tasks = append(c.Tasks, task.Clone())
		return nil
	})
	if err != nil && !isPersistErr(err) {
		return nil, err
	}
	return &task, err
}

// UpdateTask replaces the task with the same ID inside the given column.
// A zero CreatedAt keeps the stored one.
func (s *Store) UpdateTask(ctx context.Context, boardID, columnID string, task models.Task) error {
	title, err := validateTitle(task.Title)
	if err != nil {
		return err
	}
	priority, err := validatePriority(task.Priority)
	if err != nil {
		return err
	}

	updated := task.Clone()
	updated.Title = title
	updated.Priority = priority
	updated.Tags = normalizeTags(updated.Tags)

	return s.mutate(ctx, "update_task", boardID, func(state *models.State) error {
		_, c, err := lookupColumn(state, boardID, columnID)
		if err != nil {
			return err
		}
		existing, ok := c.Task(task.ID)
		if !ok {
			return fmt.Errorf("%w: %s", models.ErrTaskNotFound, task.ID)
		}
		if updated.CreatedAt.IsZero() {
			updated.CreatedAt = existing.CreatedAt
		}
		*existing = updated
		return nil
	})
}

// DeleteTask removes a task from a column
func (s *Store) DeleteTask(ctx context.Context, boardID, columnID, taskID string) error {
	return s.mutate(ctx, "delete_task", boardID, func(state *models.State) error {
		_, c, err := lookupColumn(state, boardID, columnID)
		if err != nil {
			return err
		}
		i := c.TaskIndex(taskID)
		if i < 0 {
			return fmt.Errorf("%w: %s", models.ErrTaskNotFound, taskID)
		}
		c.Tasks = append(c.Tasks[:i], c.Tasks[i+1:]...)
		return nil
	})
}

// MoveTask moves a task to the end of another column of the same board.
// Moving within the same column is a no-op.
func (s *Store) MoveTask(ctx context.Context, boardID, sourceColumnID, destinationColumnID, taskID string) error {
	if sourceColumnID == destinationColumnID {
		return nil
	}
	return s.mutate(ctx, "move_task", boardID, func(state *models.State) error {
		b, src, err := lookupColumn(state, boardID, sourceColumnID)
		if err != nil {
			return err
		}
		dst, ok := b.Column(destinationColumnID)
		if !ok {
			return fmt.Errorf("%w: %s", models.ErrColumnNotFound, destinationColumnID)
		}
		i := src.TaskIndex(taskID)
		if i < 0 {
			return fmt.Errorf("%w: %s", models.ErrTaskNotFound, taskID)
		}

		task := src.Tasks[i]
		src.Tasks = append(src.Tasks[:i], src.Tasks[i+1:]...)
		dst.Tasks = append(dst.Tasks, task)
		return nil
	})
}

// ReorderTask moves a task to position toIndex within its column.
// Positions outside the column report ErrAlreadyFirstTask or ErrAlreadyLastTask.
func (s *Store) ReorderTask(ctx context.Context, boardID, columnID, taskID string, toIndex int) error {
	return s.mutate(ctx, "reorder_task", boardID, func(state *models.State) error {
		_, c, err := lookupColumn(state, boardID, columnID)
		if err != nil {
			return err
		}
		from := c.TaskIndex(taskID)
		if from < 0 {
			return fmt.Errorf("%w: %s", models.ErrTaskNotFound, taskID)
		}
		switch {
		case toIndex < 0:
			return models.ErrAlreadyFirstTask
		case toIndex >= len(c.Tasks):
			return models.ErrAlreadyLastTask
		}
		c.Tasks = arrayMove(c.Tasks, from, toIndex)
		return nil
	})
}
