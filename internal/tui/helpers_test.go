package tui

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/logging"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/storage"
	"github.com/thenoetrevino/kanban/internal/store"
	"github.com/thenoetrevino/kanban/internal/testutil"
	testcli "github.com/thenoetrevino/kanban/internal/testutil/cli"
)

// special maps key names to the key events bubbletea produces for them
var special = map[string]tea.Key{
	"enter":       {Code: tea.KeyEnter},
	"esc":         {Code: tea.KeyEscape},
	"space":       {Code: tea.KeySpace, Text: " "},
	"left":        {Code: tea.KeyLeft},
	"right":       {Code: tea.KeyRight},
	"up":          {Code: tea.KeyUp},
	"down":        {Code: tea.KeyDown},
	"shift+right": {Code: tea.KeyRight, Mod: tea.ModShift},
	"ctrl+c":      {Code: 'c', Mod: tea.ModCtrl},
}

// keyPress builds a key press for a single character or a named key
func keyPress(k string) tea.KeyPressMsg {
	if key, ok := special[k]; ok {
		return tea.KeyPressMsg(key)
	}
	r := []rune(k)[0]
	return tea.KeyPressMsg(tea.Key{Text: k, Code: r})
}

// press sends each key to the model in order and returns the last command
func press(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(keyPress(k))
	}
	return cmd
}

// newTestModel builds a model over an in-memory app with a sized window
func newTestModel(t *testing.T) (*Model, *app.App) {
	t.Helper()
	a := testcli.SetupCLITest(t)
	return modelFor(t, a), a
}

func modelFor(t *testing.T, a *app.App) *Model {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	m := New(ctx, a, WithClock(testutil.FixedClock))
	m.Update(tea.WindowSizeMsg{Width: 160, Height: 40})
	return m
}

// newAppWithBackend builds an app over the given backend
func newAppWithBackend(t *testing.T, backend storage.Backend) *app.App {
	t.Helper()
	cfg := config.Default()
	cfg.Storage.Backend = storage.BackendMemory
	cfg.Storage.DataDir = t.TempDir()
	cfg.Storage.Watch = false

	a, err := app.New(context.Background(), cfg,
		app.WithBackend(backend),
		app.WithLogger(logging.Logger),
		app.WithStoreOptions(
			store.WithIDGenerator(testutil.SequentialIDs()),
			store.WithClock(testutil.FixedClock),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

// seedBoard creates "Work" (id-1) with To Do id-2, In Progress id-3 and
// Done id-4, and the given task titles in To Do.
func seedBoard(t *testing.T, a *app.App, titles ...string) *models.Board {
	t.Helper()
	board := testcli.CreateTestBoard(t, a, "Work")
	for _, title := range titles {
		testcli.CreateTestTask(t, a, board.ID, board.Columns[0].ID, title)
	}
	b, ok := a.Store.Board(board.ID)
	require.True(t, ok)
	return b
}

func activeBoard(t *testing.T, a *app.App) *models.Board {
	t.Helper()
	b, ok := a.Store.ActiveBoard()
	require.True(t, ok, "expected an active board")
	return b
}

func columnTitles(b *models.Board) []string {
	out := make([]string, 0, len(b.Columns))
	for _, c := range b.Columns {
		out = append(out, c.Title)
	}
	return out
}

func taskTitles(c models.Column) []string {
	out := make([]string, 0, len(c.Tasks))
	for _, task := range c.Tasks {
		out = append(out, task.Title)
	}
	return out
}

// failingBackend loads fine and fails every save
type failingBackend struct {
	storage.Backend
	err error
}

func (f failingBackend) Save(context.Context, models.State) error { return f.err }
