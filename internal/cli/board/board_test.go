package board

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kanbancli "github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/testutil/cli"
)

func TestCreateBoard(t *testing.T) {
	t.Run("Create board quiet prints ID", func(t *testing.T) {
		app := cli.SetupCLITest(t)

		output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{"Side project", "--quiet"})
		require.NoError(t, err)
		assert.Equal(t, "id-1", strings.TrimSpace(output))

		board, ok := app.Store.Board("id-1")
		require.True(t, ok)
		assert.Equal(t, "Side project", board.Title)
		assert.Len(t, board.Columns, 3)
	})

	t.Run("First board becomes active", func(t *testing.T) {
		app := cli.SetupCLITest(t)

		output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{"--title", "Main"})
		require.NoError(t, err)
		assert.Contains(t, output, "✓ Board 'Main' created successfully")
		assert.Contains(t, output, "Column: To Do")
		assert.Contains(t, output, "Active: yes")
		assert.Equal(t, "id-1", app.Store.Snapshot().ActiveBoard)
	})

	t.Run("Use flag switches the active board", func(t *testing.T) {
		app := cli.SetupCLITest(t)
		cli.CreateTestBoard(t, app, "First")

		output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{"Second", "--use", "--json"})
		require.NoError(t, err)

		result := cli.ParseJSON(t, output)
		assert.Equal(t, true, result["success"])
		board := result["board"].(map[string]any)
		assert.Equal(t, "Second", board["title"])
		assert.Equal(t, board["id"], app.Store.Snapshot().ActiveBoard)
	})

	t.Run("Empty title is a validation error", func(t *testing.T) {
		app := cli.SetupCLITest(t)

		_, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{"   "})
		require.Error(t, err)
		assert.Equal(t, kanbancli.ExitValidation, kanbancli.ExitCode(err))
		assert.Empty(t, app.Store.Snapshot().Boards)
	})
}

func TestListBoards(t *testing.T) {
	app := cli.SetupCLITest(t)

	t.Run("Empty", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), nil)
		require.NoError(t, err)
		assert.Contains(t, output, "No boards found")
	})

	first := cli.CreateTestBoard(t, app, "First")
	cli.CreateTestTask(t, app, first.ID, first.Columns[0].ID, "Task")
	cli.CreateTestBoard(t, app, "Second")

	t.Run("Human output marks active board", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), nil)
		require.NoError(t, err)
		assert.Contains(t, output, "Found 2 board(s)")
		assert.Contains(t, output, "* id-1  First (3 columns, 1 tasks)")
		assert.Contains(t, output, "  id-6  Second (3 columns, 0 tasks)")
	})

	t.Run("JSON", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--json"})
		require.NoError(t, err)
		result := cli.ParseJSON(t, output)
		boards := result["boards"].([]any)
		require.Len(t, boards, 2)
		assert.Equal(t, true, boards[0].(map[string]any)["active"])
		assert.Equal(t, float64(1), boards[0].(map[string]any)["tasks"])
	})

	t.Run("Quiet", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--quiet"})
		require.NoError(t, err)
		assert.Equal(t, []string{"id-1", "id-6"}, strings.Fields(output))
	})
}

func TestUpdateBoard(t *testing.T) {
	app := cli.SetupCLITest(t)
	cli.CreateTestBoard(t, app, "Side project")

	t.Run("Rename by title", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, UpdateCmd(), []string{"side PROJECT", "--title", "Weekend"})
		require.NoError(t, err)
		assert.Contains(t, output, "renamed to 'Weekend'")

		board, _ := app.Store.Board("id-1")
		assert.Equal(t, "Weekend", board.Title)
	})

	t.Run("Unknown board suggests closest title", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, UpdateCmd(), []string{"Weekned", "--title", "X"})
		require.Error(t, err)
		assert.Equal(t, kanbancli.ExitNotFound, kanbancli.ExitCode(err))

		var nf *kanbancli.NotFoundError
		require.True(t, errors.As(err, &nf))
		assert.Equal(t, "Weekend", nf.Suggestion)
	})
}

func TestDeleteBoard(t *testing.T) {
	app := cli.SetupCLITest(t)
	cli.CreateTestBoard(t, app, "First")
	cli.CreateTestBoard(t, app, "Second")

	output, err := cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"First", "--force"})
	require.NoError(t, err)
	assert.Contains(t, output, "✓ Board 'First' deleted successfully")
	assert.Contains(t, output, "Active board is now 'Second'")

	state := app.Store.Snapshot()
	require.Len(t, state.Boards, 1)
	assert.Equal(t, "id-5", state.ActiveBoard)

	t.Run("JSON reports deleted ID", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"id-5", "--json"})
		require.NoError(t, err)
		result := cli.ParseJSON(t, output)
		assert.Equal(t, "id-5", result["board_id"])
		assert.Empty(t, app.Store.Snapshot().ActiveBoard)
	})
}

func TestUseBoard(t *testing.T) {
	app := cli.SetupCLITest(t)
	cli.CreateTestBoard(t, app, "First")
	cli.CreateTestBoard(t, app, "Second")

	output, err := cli.ExecuteCLICommand(t, app, UseCmd(), []string{"Second"})
	require.NoError(t, err)
	assert.Contains(t, output, "Now using board 'Second'")
	assert.Equal(t, "id-5", app.Store.Snapshot().ActiveBoard)

	t.Run("ID prefix", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, UseCmd(), []string{"id-1", "--quiet"})
		require.NoError(t, err)
		assert.Equal(t, "id-1", app.Store.Snapshot().ActiveBoard)
	})

	t.Run("Ambiguous prefix is a usage error", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, UseCmd(), []string{"id-"})
		require.Error(t, err)
		assert.Equal(t, kanbancli.ExitUsage, kanbancli.ExitCode(err))
	})
}
