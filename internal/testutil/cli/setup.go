package cli

import (
	"context"
	"testing"

	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/logging"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/storage"
	"github.com/thenoetrevino/kanban/internal/store"
	"github.com/thenoetrevino/kanban/internal/testutil"
)

// SetupCLITest creates an App over an in-memory backend.
// IDs are sequential ("id-1", "id-2", ...) and the clock is fixed, so
// commands can be asserted against exact output. The app is closed on cleanup.
func SetupCLITest(t *testing.T) *app.App {
	t.Helper()

	cfg := config.Default()
	cfg.Storage.Backend = storage.BackendMemory
	cfg.Storage.DataDir = t.TempDir()
	cfg.Storage.Watch = false

	appInstance, err := app.New(context.Background(), cfg,
		app.WithBackend(storage.NewMemory()),
		app.WithLogger(logging.Logger),
		app.WithStoreOptions(
			store.WithIDGenerator(testutil.SequentialIDs()),
			store.WithClock(testutil.FixedClock),
		),
	)
	if err != nil {
		t.Fatalf("Failed to create test app: %v", err)
	}
	t.Cleanup(func() {
		_ = appInstance.Close()
	})

	return appInstance
}

// CreateTestBoard creates a board with the default columns and returns it
func CreateTestBoard(t *testing.T, a *app.App, title string) *models.Board {
	t.Helper()
	board, err := a.Store.CreateBoard(context.Background(), title)
	if err != nil {
		t.Fatalf("Failed to create test board: %v", err)
	}
	return board
}

// CreateTestColumn appends a column to the board and returns it
func CreateTestColumn(t *testing.T, a *app.App, boardID, title string) *models.Column {
	t.Helper()
	column, err := a.Store.AddColumn(context.Background(), boardID, title, models.DefaultColumnColor)
	if err != nil {
		t.Fatalf("Failed to create test column: %v", err)
	}
	return column
}

// CreateTestTask appends a medium priority task to the column and returns it
func CreateTestTask(t *testing.T, a *app.App, boardID, columnID, title string) *models.Task {
	t.Helper()
	task, err := a.Store.AddTask(context.Background(), boardID, columnID, models.NewTask{
		Title:    title,
		Priority: models.PriorityMedium,
	})
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	return task
}
