package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanban/internal/models"
)

func fixtureState() models.State {
	return models.State{
		ActiveBoard: "3f2a9c1e-0000-4000-8000-000000000001",
		Boards: []models.Board{
			{
				ID:    "3f2a9c1e-0000-4000-8000-000000000001",
				Title: "Roadmap",
				Columns: []models.Column{
					{ID: "c-todo", Title: "To Do", Tasks: []models.Task{
						{ID: "t-100", Title: "Write docs"},
						{ID: "t-200", Title: "Fix bug"},
					}},
					{ID: "c-done", Title: "Done", Tasks: []models.Task{
						{ID: "t-300", Title: "fix BUG"},
					}},
				},
			},
			{ID: "7b11d0aa-0000-4000-8000-000000000002", Title: "Chores"},
		},
	}
}

func TestResolveBoard(t *testing.T) {
	state := fixtureState()

	tests := []struct {
		name    string
		ref     string
		wantID  string
		wantErr error
	}{
		{"Exact ID", "7b11d0aa-0000-4000-8000-000000000002", "7b11d0aa-0000-4000-8000-000000000002", nil},
		{"Title case-insensitive", "roadmap", "3f2a9c1e-0000-4000-8000-000000000001", nil},
		{"Unique prefix", "7b11", "7b11d0aa-0000-4000-8000-000000000002", nil},
		{"Unknown", "Groceries", "", models.ErrBoardNotFound},
		{"Empty", "  ", "", ErrUsage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := ResolveBoard(&state, tt.ref)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, b.ID)
		})
	}
}

func TestResolveBoard_PointsIntoState(t *testing.T) {
	state := fixtureState()
	b, err := ResolveBoard(&state, "Chores")
	require.NoError(t, err)
	b.Title = "Renamed"
	assert.Equal(t, "Renamed", state.Boards[1].Title)
}

func TestBoardOrActive(t *testing.T) {
	state := fixtureState()

	b, err := BoardOrActive(&state, "")
	require.NoError(t, err)
	assert.Equal(t, "Roadmap", b.Title)

	b, err = BoardOrActive(&state, "chores")
	require.NoError(t, err)
	assert.Equal(t, "Chores", b.Title)

	state.ActiveBoard = ""
	_, err = BoardOrActive(&state, "")
	assert.ErrorIs(t, err, ErrNoActiveBoard)
}

func TestResolveTask(t *testing.T) {
	state := fixtureState()
	board := &state.Boards[0]

	col, task, err := ResolveTask(board, "write DOCS")
	require.NoError(t, err)
	assert.Equal(t, "c-todo", col.ID)
	assert.Equal(t, "t-100", task.ID)

	col, task, err = ResolveTask(board, "t-3")
	require.NoError(t, err)
	assert.Equal(t, "c-done", col.ID)
	assert.Equal(t, "t-300", task.ID)

	t.Run("Duplicate titles are ambiguous", func(t *testing.T) {
		_, _, err := ResolveTask(board, "fix bug")
		assert.ErrorIs(t, err, ErrAmbiguousRef)
		assert.Equal(t, ExitUsage, ExitCode(err))
	})

	t.Run("Shared prefix is ambiguous", func(t *testing.T) {
		_, _, err := ResolveTask(board, "t-")
		assert.ErrorIs(t, err, ErrAmbiguousRef)
	})
}

func TestResolveColumn_Suggestion(t *testing.T) {
	state := fixtureState()
	board := &state.Boards[0]

	tests := []struct {
		ref  string
		want string
	}{
		{"Doen", "Done"},
		{"to-do", "To Do"},
		{"Archive", ""},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			_, err := ResolveColumn(board, tt.ref)
			var nf *NotFoundError
			require.True(t, errors.As(err, &nf))
			assert.ErrorIs(t, err, models.ErrColumnNotFound)
			assert.Equal(t, tt.want, nf.Suggestion)
			if tt.want == "" {
				assert.Empty(t, nf.Hint())
			} else {
				assert.Equal(t, fmt.Sprintf("did you mean %q?", tt.want), nf.Hint())
			}
		})
	}
}
