package tui

import (
	"context"
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/kanban/internal/tui/state"
)

func (m *Model) confirmDeleteTask() {
	task := m.currentTask()
	if task == nil {
		m.notifyInfo("No task selected")
		return
	}
	m.openConfirm(state.ConfirmDeleteTask,
		fmt.Sprintf("Delete task '%s'?", task.Title),
		m.activeBoard().ID, m.currentColumn().ID, task.ID)
}

func (m *Model) confirmDeleteColumn() {
	column := m.currentColumn()
	if column == nil {
		m.notifyInfo("No column selected")
		return
	}
	msg := fmt.Sprintf("Delete column '%s'?", column.Title)
	if n := len(column.Tasks); n > 0 {
		msg = fmt.Sprintf("Delete column '%s' and its %d task(s)?", column.Title, n)
	}
	m.openConfirm(state.ConfirmDeleteColumn, msg, m.activeBoard().ID, column.ID, "")
}

func (m *Model) confirmDeleteBoard() {
	board := m.activeBoard()
	msg := fmt.Sprintf("Delete board '%s'?", board.Title)
	if n := board.TaskCount(); n > 0 {
		msg = fmt.Sprintf("Delete board '%s' and its %d task(s)?", board.Title, n)
	}
	m.openConfirm(state.ConfirmDeleteBoard, msg, board.ID, "", "")
}

func (m *Model) openConfirm(action state.ConfirmAction, message, boardID, columnID, taskID string) {
	m.confirm.Set(action, message, boardID, columnID, taskID)
	m.ui.SetMode(state.ConfirmMode)
}

// handleConfirm performs the pending deletion on y and drops it on n or esc.
// Other keys leave the dialog open.
func (m *Model) handleConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.performConfirmed()
	case key.Matches(msg, m.keys.Cancel):
	default:
		return m, nil
	}
	m.confirm.Clear()
	m.ui.SetMode(state.NormalMode)
	return m, nil
}

func (m *Model) performConfirmed() {
	c := *m.confirm
	switch c.Action {
	case state.ConfirmDeleteTask:
		m.mutate("delete_task", func(ctx context.Context) error {
			return m.store.DeleteTask(ctx, c.BoardID, c.ColumnID, c.TaskID)
		})
	case state.ConfirmDeleteColumn:
		if m.mutate("delete_column", func(ctx context.Context) error {
			return m.store.DeleteColumn(ctx, c.BoardID, c.ColumnID)
		}) {
			m.ui.SetSelectedTask(0)
			m.clampSelection()
		}
	case state.ConfirmDeleteBoard:
		if m.mutate("delete_board", func(ctx context.Context) error {
			return m.store.DeleteBoard(ctx, c.BoardID)
		}) {
			m.ui.ResetSelection()
			m.clampSelection()
		}
	}
}

// handleTaskView closes the detail popup or switches to editing the task
func (m *Model) handleTaskView(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.EditTask):
		m.ui.SetMode(state.NormalMode)
		return m, m.openTaskForm(true)
	case msg.String() == "esc", key.Matches(msg, m.keys.ViewTask), key.Matches(msg, m.keys.Quit):
		m.ui.SetMode(state.NormalMode)
	}
	return m, nil
}
