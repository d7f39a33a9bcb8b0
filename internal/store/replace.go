package store

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/kanban/internal/models"
)

// ReplaceState swaps the whole state, as when importing a storage dump.
// Every ID must be unique within its kind.
func (s *Store) ReplaceState(ctx context.Context, next models.State) error {
	next = next.Clone()
	next.Normalize()
	if err := validateBoards(next.Boards); err != nil {
		return err
	}
	return s.mutate(ctx, "replace_state", "", func(state *models.State) error {
		*state = next
		return nil
	})
}

// MergeBoards appends boards whose IDs are not present yet and returns how many
// were added. The active board is kept, or taken from the import when none is set.
func (s *Store) MergeBoards(ctx context.Context, incoming models.State) (int, error) {
	incoming = incoming.Clone()
	incoming.Normalize()
	if err := validateBoards(incoming.Boards); err != nil {
		return 0, err
	}

	added := 0
	err := s.mutate(ctx, "merge_boards", "", func(state *models.State) error {
		merged := append([]models.Board{}, state.Boards...)
		var fresh []models.Board
		for _, b := range incoming.Boards {
			if state.BoardIndex(b.ID) < 0 {
				fresh = append(fresh, b)
			}
		}
		merged = append(merged, fresh...)
		if err := validateBoards(merged); err != nil {
			return err
		}

		state.Boards = merged
		added = len(fresh)
		if state.ActiveBoard == "" {
			state.ActiveBoard = incoming.ActiveBoard
			state.Normalize()
		}
		return nil
	})
	if err != nil && !isPersistErr(err) {
		return 0, err
	}
	return added, err
}

// validateIDs rejects empty or duplicated board, column and task IDs
func validateBoards(boards []models.Board) error {
	seen := make(map[string]string)
	check := func(kind, id string) error {
		if id == "" {
			return fmt.Errorf("%w: %s without id", ErrInvalidState, kind)
		}
		if prev, ok := seen[kind+":"+id]; ok {
			return fmt.Errorf("%w: duplicate %s id %s (%s)", ErrInvalidState, kind, id, prev)
		}
		seen[kind+":"+id] = kind
		return nil
	}

	for _, b := range boards {
		if err := check("board", b.ID); err != nil {
			return err
		}
		for _, c := range b.Columns {
			if err := check("column", c.ID); err != nil {
				return err
			}
			for _, t := range c.Tasks {
				if err := check("task", t.ID); err != nil {
					return err
				}
				if t.Priority != "" && !t.Priority.Valid() {
					return fmt.Errorf("%w: task %s has unknown priority %q", ErrInvalidState, t.ID, t.Priority)
				}
			}
		}
	}
	return nil
}
