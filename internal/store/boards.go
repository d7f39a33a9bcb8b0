package store

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/kanban/internal/models"
)

// CreateBoard adds a board seeded with the default columns. It becomes the
// active board when none is active.
func (s *Store) CreateBoard(ctx context.Context, title string) (*models.Board, error) {
	title, err := validateTitle(title)
	if err != nil {
		return nil, err
	}

	board := models.Board{
		ID:      s.newID(),
		Title:   title,
		Columns: make([]models.Column, 0, len(models.DefaultColumns)),
	}
	for _, def := range models.DefaultColumns {
		board.Columns = append(board.Columns, models.Column{
			ID:    s.newID(),
			Title: def.Title,
			Color: def.Color,
			Tasks: []models.Task{},
		})
	}

	err = s.mutate(ctx, "create_board", board.ID, func(state *models.State) error {
		state.Boards = append(state.Boards, board.Clone())
		if state.ActiveBoard == "" {
			state.ActiveBoard = board.ID
		}
		return nil
	})
	if err != nil && !isPersistErr(err) {
		return nil, err
	}
	return &board, err
}

// UpdateBoard renames a board
func (s *Store) UpdateBoard(ctx context.Context, boardID, title string) error {
	title, err := validateTitle(title)
	if err != nil {
		return err
	}
	return s.mutate(ctx, "update_board", boardID, func(state *models.State) error {
		b, err := lookupBoard(state, boardID)
		if err != nil {
			return err
		}
		b.Title = title
		return nil
	})
}

// DeleteBoard removes a board. When it was active the first remaining board
// becomes active, or none.
func (s *Store) DeleteBoard(ctx context.Context, boardID string) error {
	return s.mutate(ctx, "delete_board", boardID, func(state *models.State) error {
		i := state.BoardIndex(boardID)
		if i < 0 {
			return fmt.Errorf("%w: %s", models.ErrBoardNotFound, boardID)
		}
		state.Boards = append(state.Boards[:i], state.Boards[i+1:]...)
		if state.ActiveBoard == boardID {
			state.ActiveBoard = ""
			if len(state.Boards) > 0 {
				state.ActiveBoard = state.Boards[0].ID
			}
		}
		return nil
	})
}

// SetActiveBoard selects the board shown by the UI and targeted by default in the CLI
func (s *Store) SetActiveBoard(ctx context.Context, boardID string) error {
	return s.mutate(ctx, "set_active_board", boardID, func(state *models.State) error {
		if _, err := lookupBoard(state, boardID); err != nil {
			return err
		}
		state.ActiveBoard = boardID
		return nil
	})
}

// EnsureBoard guarantees a usable active board: it creates one titled title
// when there are no boards and activates the first board when none is active.
// It returns a copy of the active board.
func (s *Store) EnsureBoard(ctx context.Context, title string) (*models.Board, error) {
	snap := s.Snapshot()
	if len(snap.Boards) == 0 {
		return s.CreateBoard(ctx, title)
	}

	var persistErr error
	if snap.ActiveBoard == "" {
		if err := s.SetActiveBoard(ctx, snap.Boards[0].ID); err != nil {
			if !isPersistErr(err) {
				return nil, err
			}
			persistErr = err
		}
	}

	b, ok := s.ActiveBoard()
	if !ok {
		return nil, models.ErrBoardNotFound
	}
	return b, persistErr
}
