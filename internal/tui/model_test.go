package tui

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/storage"
	"github.com/thenoetrevino/kanban/internal/tui/state"
	testcli "github.com/thenoetrevino/kanban/internal/testutil/cli"
)

func latestMessage(m *Model) string {
	n, _ := m.notifications.Latest()
	return n.Message
}

func TestNew_NoBoards(t *testing.T) {
	m, _ := newTestModel(t)

	assert.Nil(t, m.activeBoard())
	assert.Contains(t, m.render(), "No boards yet")

	press(m, "a")
	assert.Equal(t, state.NormalMode, m.ui.Mode())
	assert.Contains(t, latestMessage(m), "No board yet")
}

func TestNavigation_Columns(t *testing.T) {
	a := testcli.SetupCLITest(t)
	seedBoard(t, a, "One")
	m := modelFor(t, a)

	press(m, "l")
	assert.Equal(t, 1, m.ui.SelectedColumn())
	assert.Equal(t, 0, m.ui.SelectedTask(), "empty column keeps task index at 0")

	press(m, "right", "right")
	assert.Equal(t, 2, m.ui.SelectedColumn())
	assert.Equal(t, "Already at the last column", latestMessage(m))

	press(m, "h", "left")
	assert.Equal(t, 0, m.ui.SelectedColumn())
	assert.False(t, m.notifications.HasAny(), "notifications clear on the next key press")

	press(m, "h")
	assert.Equal(t, "Already at the first column", latestMessage(m))
}

func TestNavigation_Tasks(t *testing.T) {
	a := testcli.SetupCLITest(t)
	seedBoard(t, a, "One", "Two", "Three")
	m := modelFor(t, a)

	press(m, "j", "j")
	assert.Equal(t, "Three", m.currentTask().Title)

	press(m, "j")
	assert.Equal(t, 2, m.ui.SelectedTask(), "stops at the last task")

	press(m, "k", "up")
	assert.Equal(t, "One", m.currentTask().Title)
}

func TestNavigation_TaskIndexClampsOnColumnChange(t *testing.T) {
	a := testcli.SetupCLITest(t)
	board := seedBoard(t, a, "One", "Two", "Three")
	testcli.CreateTestTask(t, a, board.ID, board.Columns[1].ID, "Only")
	m := modelFor(t, a)

	press(m, "j", "j", "l")
	assert.Equal(t, "Only", m.currentTask().Title)
}

func TestMoveTask_BetweenColumns(t *testing.T) {
	a := testcli.SetupCLITest(t)
	seedBoard(t, a, "One", "Two")
	m := modelFor(t, a)

	press(m, "j", "L")

	board := activeBoard(t, a)
	assert.Equal(t, []string{"One"}, taskTitles(board.Columns[0]))
	assert.Equal(t, []string{"Two"}, taskTitles(board.Columns[1]))
	assert.Equal(t, 1, m.ui.SelectedColumn(), "cursor follows the task")
	assert.Equal(t, "Two", m.currentTask().Title)

	press(m, "H")
	board = activeBoard(t, a)
	assert.Equal(t, []string{"One", "Two"}, taskTitles(board.Columns[0]))
	assert.Equal(t, 0, m.ui.SelectedColumn())
	assert.Equal(t, 1, m.ui.SelectedTask())

	press(m, "H")
	assert.Equal(t, "Already at the first column", latestMessage(m))
}

func TestMoveTask_ShiftArrow(t *testing.T) {
	a := testcli.SetupCLITest(t)
	seedBoard(t, a, "One")
	m := modelFor(t, a)

	press(m, "shift+right")

	board := activeBoard(t, a)
	assert.Empty(t, board.Columns[0].Tasks)
	assert.Equal(t, []string{"One"}, taskTitles(board.Columns[1]))
}

func TestMoveTask_NoTask(t *testing.T) {
	a := testcli.SetupCLITest(t)
	seedBoard(t, a)
	m := modelFor(t, a)

	press(m, "L")
	assert.Equal(t, "No task selected", latestMessage(m))
}

func TestReorderTask(t *testing.T) {
	a := testcli.SetupCLITest(t)
	seedBoard(t, a, "One", "Two", "Three")
	m := modelFor(t, a)

	press(m, "J")
	assert.Equal(t, []string{"Two", "One", "Three"}, taskTitles(activeBoard(t, a).Columns[0]))
	assert.Equal(t, 1, m.ui.SelectedTask(), "cursor follows the task")

	press(m, "J", "J")
	assert.Equal(t, []string{"Two", "Three", "One"}, taskTitles(activeBoard(t, a).Columns[0]))
	assert.Equal(t, "Already at the bottom of the column", latestMessage(m))

	press(m, "k", "k", "K")
	assert.Equal(t, "Already at the top of the column", latestMessage(m))
}

func TestMoveColumn(t *testing.T) {
	a := testcli.SetupCLITest(t)
	seedBoard(t, a, "One")
	m := modelFor(t, a)

	press(m, ">")
	assert.Equal(t, []string{"In Progress", "To Do", "Done"}, columnTitles(activeBoard(t, a)))
	assert.Equal(t, 1, m.ui.SelectedColumn(), "cursor follows the column")
	assert.Equal(t, "One", m.currentTask().Title)

	press(m, ">", ">")
	assert.Equal(t, []string{"In Progress", "Done", "To Do"}, columnTitles(activeBoard(t, a)))
	assert.Equal(t, "Already the last column", latestMessage(m))

	press(m, "<")
	assert.Equal(t, []string{"In Progress", "To Do", "Done"}, columnTitles(activeBoard(t, a)))
}

func TestSwitchBoard(t *testing.T) {
	a := testcli.SetupCLITest(t)
	seedBoard(t, a, "One")
	testcli.CreateTestBoard(t, a, "Home")
	m := modelFor(t, a)
	require.Equal(t, "Work", m.activeBoard().Title)

	press(m, "l", "}")
	assert.Equal(t, "Home", activeBoard(t, a).Title)
	assert.Equal(t, 0, m.ui.SelectedColumn(), "selection resets on board switch")

	press(m, "}")
	assert.Equal(t, "Work", activeBoard(t, a).Title, "wraps around")

	press(m, "{")
	assert.Equal(t, "Home", activeBoard(t, a).Title)
}

func TestSwitchBoard_SingleBoard(t *testing.T) {
	a := testcli.SetupCLITest(t)
	seedBoard(t, a)
	m := modelFor(t, a)

	press(m, "}")
	assert.Equal(t, "Only one board", latestMessage(m))
}

func TestDeleteTask_Confirm(t *testing.T) {
	a := testcli.SetupCLITest(t)
	seedBoard(t, a, "One", "Two")
	m := modelFor(t, a)

	press(m, "d")
	require.Equal(t, state.ConfirmMode, m.ui.Mode())
	assert.Contains(t, m.render(), "Delete task 'One'?")

	press(m, "x")
	assert.Equal(t, state.ConfirmMode, m.ui.Mode(), "unrelated keys keep the dialog open")

	press(m, "n")
	assert.Equal(t, state.NormalMode, m.ui.Mode())
	assert.Len(t, activeBoard(t, a).Columns[0].Tasks, 2)

	press(m, "d", "y")
	assert.Equal(t, state.NormalMode, m.ui.Mode())
	assert.Equal(t, []string{"Two"}, taskTitles(activeBoard(t, a).Columns[0]))
	assert.Equal(t, "Two", m.currentTask().Title)
}

func TestDeleteColumn_Confirm(t *testing.T) {
	a := testcli.SetupCLITest(t)
	seedBoard(t, a, "One")
	m := modelFor(t, a)

	press(m, "X")
	assert.Equal(t, "Delete column 'To Do' and its 1 task(s)?", m.confirm.Message)

	press(m, "esc")
	assert.Len(t, activeBoard(t, a).Columns, 3)

	press(m, "X", "y")
	assert.Equal(t, []string{"In Progress", "Done"}, columnTitles(activeBoard(t, a)))
}

func TestDeleteBoard_Confirm(t *testing.T) {
	a := testcli.SetupCLITest(t)
	seedBoard(t, a)
	testcli.CreateTestBoard(t, a, "Home")
	m := modelFor(t, a)

	press(m, "D")
	assert.Equal(t, "Delete board 'Work'?", m.confirm.Message)

	press(m, "Y")
	assert.Equal(t, "Home", activeBoard(t, a).Title)
	assert.Len(t, a.Store.Snapshot().Boards, 1)

	press(m, "D", "y")
	assert.Empty(t, a.Store.Snapshot().Boards)
	assert.Nil(t, m.activeBoard())
	assert.Contains(t, m.render(), "No boards yet")
}

func TestTaskView(t *testing.T) {
	a := testcli.SetupCLITest(t)
	seedBoard(t, a, "Write docs")
	m := modelFor(t, a)

	press(m, "space")
	require.Equal(t, state.TaskViewMode, m.ui.Mode())
	assert.Contains(t, m.render(), "No description")

	press(m, "esc")
	assert.Equal(t, state.NormalMode, m.ui.Mode())

	press(m, "space", "e")
	assert.Equal(t, state.TaskFormMode, m.ui.Mode())
	assert.Equal(t, "Write docs", m.forms.Title)
}

func TestTaskView_NoTask(t *testing.T) {
	a := testcli.SetupCLITest(t)
	seedBoard(t, a)
	m := modelFor(t, a)

	press(m, "space")
	assert.Equal(t, state.NormalMode, m.ui.Mode())
	assert.Equal(t, "No task selected", latestMessage(m))
}

func TestHelp(t *testing.T) {
	a := testcli.SetupCLITest(t)
	seedBoard(t, a)
	m := modelFor(t, a)

	press(m, "?")
	require.Equal(t, state.HelpMode, m.ui.Mode())
	assert.Contains(t, m.render(), "Keyboard shortcuts")

	press(m, "j")
	assert.Equal(t, state.NormalMode, m.ui.Mode())
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)

	for _, k := range []string{"q", "ctrl+c"} {
		cmd := press(m, k)
		require.NotNil(t, cmd, k)
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok, "%s should quit", k)
	}
}

func TestEvents_StateChangedRefreshesSnapshot(t *testing.T) {
	m, a := newTestModel(t)
	cmd := m.Init()
	require.NotNil(t, cmd)

	board := testcli.CreateTestBoard(t, a, "From CLI")

	msg := cmd()
	event, ok := msg.(eventMsg)
	require.True(t, ok, "expected an event, got %T", msg)
	assert.Equal(t, events.EventStateChanged, event.Type)

	_, next := m.Update(msg)
	assert.NotNil(t, next, "keeps listening")
	require.NotNil(t, m.activeBoard())
	assert.Equal(t, board.ID, m.activeBoard().ID)
}

func TestEvents_StorageChangedRehydrates(t *testing.T) {
	backend := storage.NewMemory()
	a := newAppWithBackend(t, backend)
	m := modelFor(t, a)

	external := models.State{
		Boards: []models.Board{{
			ID:    "b-ext",
			Title: "Edited elsewhere",
			Columns: []models.Column{
				{ID: "c-ext", Title: "Inbox", Tasks: []models.Task{}},
			},
		}},
		ActiveBoard: "b-ext",
	}
	require.NoError(t, backend.Save(context.Background(), external))

	_, cmd := m.Update(eventMsg(events.Event{Type: events.EventStorageChanged}))
	assert.NotNil(t, cmd)

	if diff := cmp.Diff(external, a.Store.Snapshot()); diff != "" {
		t.Errorf("store state mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "Edited elsewhere", m.activeBoard().Title)
	assert.Contains(t, m.render(), "Inbox")
}

func TestEvents_ClosedChannelStopsListening(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(eventsClosedMsg{})
	assert.Nil(t, cmd)
}

func TestMutation_PersistFailureKeepsChange(t *testing.T) {
	diskFull := errors.New("disk full")
	memory := storage.NewMemory()
	a := newAppWithBackend(t, failingBackend{Backend: memory, err: diskFull})
	_, err := a.Store.CreateBoard(context.Background(), "Work")
	require.Error(t, err)
	m := modelFor(t, a)
	require.NotNil(t, m.activeBoard(), "the board exists in memory")

	press(m, ">")

	assert.Equal(t, []string{"In Progress", "To Do", "Done"}, columnTitles(m.activeBoard()))
	n, ok := m.notifications.Latest()
	require.True(t, ok)
	assert.Equal(t, state.LevelError, n.Level)
	assert.Contains(t, n.Message, "Changes could not be saved")
	assert.Contains(t, m.render(), "disk full")
	assert.Equal(t, 1, m.ui.SelectedColumn(), "cursor follows the column")
}

func TestWindowResize_ClampsViewport(t *testing.T) {
	a := testcli.SetupCLITest(t)
	seedBoard(t, a)
	m := modelFor(t, a)

	press(m, "l", "l")
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 30})

	assert.Equal(t, 1, m.ui.ViewportSize())
	assert.Equal(t, 2, m.ui.ViewportOffset(), "selected column stays visible")
	assert.Contains(t, m.render(), "Done (0)")
	assert.NotContains(t, m.render(), "To Do (0)")
}
