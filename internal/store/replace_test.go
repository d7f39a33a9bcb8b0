package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanban/internal/models"
)

func importedState() models.State {
	return models.State{
		ActiveBoard: "imp",
		Boards: []models.Board{{
			ID: "imp", Title: "Imported",
			Columns: []models.Column{{ID: "ic", Title: "Todo", Tasks: []models.Task{{ID: "it", Title: "task"}}}},
		}},
	}
}

func TestReplaceState(t *testing.T) {
	s, backend := newTestStore(t)
	_, err := s.CreateBoard(context.Background(), "Old")
	require.NoError(t, err)

	require.NoError(t, s.ReplaceState(context.Background(), importedState()))

	snap := s.Snapshot()
	require.Len(t, snap.Boards, 1)
	assert.Equal(t, "Imported", snap.Boards[0].Title)
	assert.Equal(t, "imp", snap.ActiveBoard)
	assert.Equal(t, models.DefaultPriority, snap.Boards[0].Columns[0].Tasks[0].Priority)
	assert.Equal(t, 2, backend.Saves())
}

func TestReplaceState_RejectsDuplicateIDs(t *testing.T) {
	s, _ := newTestStore(t)
	bad := importedState()
	bad.Boards[0].Columns = append(bad.Boards[0].Columns, models.Column{ID: "ic", Title: "Again"})

	err := s.ReplaceState(context.Background(), bad)
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Empty(t, s.Snapshot().Boards)
}

func TestReplaceState_RejectsUnknownPriority(t *testing.T) {
	s, _ := newTestStore(t)
	bad := importedState()
	bad.Boards[0].Columns[0].Tasks[0].Priority = "urgent"

	err := s.ReplaceState(context.Background(), bad)
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Empty(t, s.Snapshot().Boards)

	_, err = s.MergeBoards(context.Background(), bad)
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Empty(t, s.Snapshot().Boards)
}

func TestMergeBoards(t *testing.T) {
	ctx := context.Background()
	s, existing := newBoardStore(t)

	added, err := s.MergeBoards(ctx, importedState())
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	snap := s.Snapshot()
	require.Len(t, snap.Boards, 2)
	assert.Equal(t, existing.ID, snap.ActiveBoard, "existing selection is kept")

	// Importing the same dump again adds nothing
	added, err = s.MergeBoards(ctx, importedState())
	require.NoError(t, err)
	assert.Equal(t, 0, added)
}

func TestMergeBoards_AdoptsActiveWhenNone(t *testing.T) {
	s, _ := newTestStore(t)
	added, err := s.MergeBoards(context.Background(), importedState())
	require.NoError(t, err)
	assert.Equal(t, 1, added)
	assert.Equal(t, "imp", s.Snapshot().ActiveBoard)
}
