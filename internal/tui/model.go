// Package tui is the terminal front end: a bubbletea model that renders the
// active board from store snapshots and turns key presses into store mutations.
package tui

import (
	"context"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"

	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/store"
	"github.com/thenoetrevino/kanban/internal/tui/components"
	"github.com/thenoetrevino/kanban/internal/tui/huhforms"
	"github.com/thenoetrevino/kanban/internal/tui/state"
)

// mutationTimeout bounds a single store mutation (the save is blocking I/O)
const mutationTimeout = 5 * time.Second

// Model is the bubbletea model of the board view
type Model struct {
	ctx    context.Context
	app    *app.App
	store  *store.Store
	logger *slog.Logger
	keys   KeyMap
	now    func() time.Time

	formTheme huh.Theme

	// snapshot is the last state read from the store; the view only reads this
	snapshot models.State
	events   <-chan events.Event

	ui            *state.UIState
	forms         *state.FormState
	confirm       *state.ConfirmState
	notifications *state.NotificationState
}

// Option configures a Model
type Option func(*Model)

// WithClock overrides the clock used for overdue checks
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

// New creates the model and subscribes it to a.Events for the lifetime of ctx
func New(ctx context.Context, a *app.App, opts ...Option) *Model {
	components.InitStyles(a.Config.ColorScheme)

	m := &Model{
		ctx:           ctx,
		app:           a,
		store:         a.Store,
		logger:        a.Logger(),
		keys:          NewKeyMap(a.Config.KeyMappings),
		now:           time.Now,
		formTheme:     huhforms.CreateTheme(a.Config.ColorScheme),
		events:        a.Events.Listen(ctx),
		ui:            state.NewUIState(),
		forms:         state.NewFormState(),
		confirm:       &state.ConfirmState{},
		notifications: state.NewNotificationState(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.refresh()
	return m
}

// Init starts listening for change events
func (m *Model) Init() tea.Cmd {
	return m.waitForEvent()
}

// refresh re-reads the store and keeps the selection in range
func (m *Model) refresh() {
	m.snapshot = m.store.Snapshot()
	m.clampSelection()
}

// clampSelection keeps the selected column and task within the active board
func (m *Model) clampSelection() {
	board := m.activeBoard()
	if board == nil || len(board.Columns) == 0 {
		m.ui.SetSelectedColumn(0)
		m.ui.SetSelectedTask(0)
		m.ui.ClampViewport(0)
		return
	}

	col := min(m.ui.SelectedColumn(), len(board.Columns)-1)
	m.ui.SetSelectedColumn(col)

	tasks := len(board.Columns[col].Tasks)
	m.ui.SetSelectedTask(min(m.ui.SelectedTask(), max(tasks-1, 0)))

	m.ui.ClampViewport(len(board.Columns))
	m.ensureTaskVisible()
}

func (m *Model) ensureTaskVisible() {
	column := m.currentColumn()
	if column == nil {
		return
	}
	visible := components.VisibleTasks(m.ui.ContentHeight())
	m.ui.EnsureTaskVisible(column.ID, m.ui.SelectedTask(), visible)
}

// activeBoard returns the active board of the snapshot, or nil
func (m *Model) activeBoard() *models.Board {
	board, ok := m.snapshot.Active()
	if !ok {
		return nil
	}
	return board
}

// currentColumn returns the selected column, or nil
func (m *Model) currentColumn() *models.Column {
	board := m.activeBoard()
	if board == nil || len(board.Columns) == 0 {
		return nil
	}
	idx := m.ui.SelectedColumn()
	if idx >= len(board.Columns) {
		return nil
	}
	return &board.Columns[idx]
}

// currentTask returns the selected task, or nil
func (m *Model) currentTask() *models.Task {
	column := m.currentColumn()
	if column == nil || len(column.Tasks) == 0 {
		return nil
	}
	idx := m.ui.SelectedTask()
	if idx >= len(column.Tasks) {
		return nil
	}
	return &column.Tasks[idx]
}

// selectTask moves the cursor onto taskID wherever it lives on the active board
func (m *Model) selectTask(taskID string) {
	board := m.activeBoard()
	if board == nil {
		return
	}
	column, idx, ok := board.FindTask(taskID)
	if !ok {
		return
	}
	m.ui.SetSelectedColumn(board.ColumnIndex(column.ID))
	m.ui.SetSelectedTask(idx)
	m.ui.EnsureSelectionVisible(m.ui.SelectedColumn())
	m.ensureTaskVisible()
}

// selectColumn moves the cursor onto columnID on the active board
func (m *Model) selectColumn(columnID string) {
	board := m.activeBoard()
	if board == nil {
		return
	}
	if idx := board.ColumnIndex(columnID); idx >= 0 {
		m.ui.SetSelectedColumn(idx)
		m.ui.SetSelectedTask(0)
		m.ui.EnsureSelectionVisible(idx)
	}
}
