package store

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/kanban/internal/models"
)

// AddColumn appends an empty column to a board
func (s *Store) AddColumn(ctx context.Context, boardID, title, color string) (*models.Column, error) {
	title, err := validateTitle(title)
	if err != nil {
		return nil, err
	}
	if err := models.ValidateColor(color); err != nil {
		return nil, err
	}

	col := models.Column{
		ID:    s.newID(),
		Title: title,
		Color: color,
		Tasks: []models.Task{},
	}
	err = s.mutate(ctx, "add_column", boardID, func(state *models.State) error {
		b, err := lookupBoard(state, boardID)
		if err != nil {
			return err
		}
		b.Columns = append(b.Columns, col.Clone())
		return nil
	})
	if err != nil && !isPersistErr(err) {
		return nil, err
	}
	return &col, err
}

// UpdateColumn renames a column. The color is only replaced when non-empty.
func (s *Store) UpdateColumn(ctx context.Context, boardID, columnID, title, color string) error {
	title, err := validateTitle(title)
	if err != nil {
		return err
	}
	if err := models.ValidateColor(color); err != nil {
		return err
	}
	return s.mutate(ctx, "update_column", boardID, func(state *models.State) error {
		_, c, err := lookupColumn(state, boardID, columnID)
		if err != nil {
			return err
		}
		c.Title = title
		if color != "" {
			c.Color = color
		}
		return nil
	})
}

// DeleteColumn removes a column together with its tasks
func (s *Store) DeleteColumn(ctx context.Context, boardID, columnID string) error {
	return s.mutate(ctx, "delete_column", boardID, func(state *models.State) error {
		b, err := lookupBoard(state, boardID)
		if err != nil {
			return err
		}
		i := b.ColumnIndex(columnID)
		if i < 0 {
			return fmt.Errorf("%w: %s", models.ErrColumnNotFound, columnID)
		}
		b.Columns = append(b.Columns[:i], b.Columns[i+1:]...)
		return nil
	})
}

// ReorderColumns replaces the column order of a board. columnIDs must name
// every column of the board exactly once.
func (s *Store) ReorderColumns(ctx context.Context, boardID string, columnIDs []string) error {
	return s.mutate(ctx, "reorder_columns", boardID, func(state *models.State) error {
		b, err := lookupBoard(state, boardID)
		if err != nil {
			return err
		}
		if len(columnIDs) != len(b.Columns) {
			return fmt.Errorf("%w: got %d ids for %d columns", models.ErrInvalidColumnOrder, len(columnIDs), len(b.Columns))
		}

		seen := make(map[string]bool, len(columnIDs))
		reordered := make([]models.Column, 0, len(columnIDs))
		for _, id := range columnIDs {
			i := b.ColumnIndex(id)
			if i < 0 {
				return fmt.Errorf("%w: unknown column %s", models.ErrInvalidColumnOrder, id)
			}
			if seen[id] {
				return fmt.Errorf("%w: duplicate column %s", models.ErrInvalidColumnOrder, id)
			}
			seen[id] = true
			reordered = append(reordered, b.Columns[i])
		}
		b.Columns = reordered
		return nil
	})
}

// MoveColumn moves the column at index from to index to, shifting the columns
// in between. Moving past either end reports ErrAlreadyFirstColumn or
// ErrAlreadyLastColumn.
func (s *Store) MoveColumn(ctx context.Context, boardID string, from, to int) error {
	b, ok := s.Board(boardID)
	if !ok {
		return fmt.Errorf("%w: %s", models.ErrBoardNotFound, boardID)
	}
	n := len(b.Columns)
	switch {
	case from < 0 || from >= n:
		return fmt.Errorf("%w: no column at index %d", models.ErrColumnNotFound, from)
	case to < 0:
		return models.ErrAlreadyFirstColumn
	case to >= n:
		return models.ErrAlreadyLastColumn
	case from == to:
		return nil
	}

	ids := make([]string, n)
	for i, c := range b.Columns {
		ids[i] = c.ID
	}
	return s.ReorderColumns(ctx, boardID, arrayMove(ids, from, to))
}

// arrayMove returns a copy of items with the element at from relocated to to
func arrayMove[T any](items []T, from, to int) []T {
	out := make([]T, 0, len(items))
	out = append(out, items[:from]...)
	out = append(out, items[from+1:]...)

	moved := items[from]
	out = append(out, moved)
	copy(out[to+1:], out[to:len(out)-1])
	out[to] = moved
	return out
}
