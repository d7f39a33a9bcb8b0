package tui

import (
	"context"
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/kanban/internal/tui/state"
)

// handleNormal dispatches key presses in normal mode
func (m *Model) handleNormal(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.ShowHelp):
		m.ui.SetMode(state.HelpMode)
		return m, nil
	case key.Matches(msg, k.CreateBoard):
		return m, m.openBoardForm(false)
	}

	if m.activeBoard() == nil {
		m.notifyWarning(fmt.Sprintf("No board yet. Press %s to create one", k.CreateBoard.Help().Key))
		return m, nil
	}

	switch {
	// Navigation
	case key.Matches(msg, k.PrevColumn):
		m.navigateColumn(-1)
	case key.Matches(msg, k.NextColumn):
		m.navigateColumn(1)
	case key.Matches(msg, k.PrevTask):
		m.navigateTask(-1)
	case key.Matches(msg, k.NextTask):
		m.navigateTask(1)

	// Tasks
	case key.Matches(msg, k.AddTask):
		return m, m.openTaskForm(false)
	case key.Matches(msg, k.EditTask):
		return m, m.openTaskForm(true)
	case key.Matches(msg, k.ViewTask):
		m.viewTask()
	case key.Matches(msg, k.DeleteTask):
		m.confirmDeleteTask()
	case key.Matches(msg, k.MoveTaskLeft):
		m.moveTask(-1)
	case key.Matches(msg, k.MoveTaskRight):
		m.moveTask(1)
	case key.Matches(msg, k.MoveTaskUp):
		m.reorderTask(-1)
	case key.Matches(msg, k.MoveTaskDown):
		m.reorderTask(1)

	// Columns
	case key.Matches(msg, k.CreateColumn):
		return m, m.openColumnForm(false)
	case key.Matches(msg, k.RenameColumn):
		return m, m.openColumnForm(true)
	case key.Matches(msg, k.DeleteColumn):
		m.confirmDeleteColumn()
	case key.Matches(msg, k.MoveColumnLeft):
		m.moveColumn(-1)
	case key.Matches(msg, k.MoveColumnRight):
		m.moveColumn(1)

	// Boards
	case key.Matches(msg, k.RenameBoard):
		return m, m.openBoardForm(true)
	case key.Matches(msg, k.DeleteBoard):
		m.confirmDeleteBoard()
	case key.Matches(msg, k.PrevBoard):
		m.switchBoard(-1)
	case key.Matches(msg, k.NextBoard):
		m.switchBoard(1)
	}

	return m, nil
}

func (m *Model) navigateColumn(delta int) {
	board := m.activeBoard()
	target := m.ui.SelectedColumn() + delta
	switch {
	case target < 0:
		m.notifyInfo("Already at the first column")
		return
	case target >= len(board.Columns):
		m.notifyInfo("Already at the last column")
		return
	}

	m.ui.SetSelectedColumn(target)
	tasks := len(board.Columns[target].Tasks)
	m.ui.SetSelectedTask(min(m.ui.SelectedTask(), max(tasks-1, 0)))
	m.ui.EnsureSelectionVisible(target)
	m.ensureTaskVisible()
}

func (m *Model) navigateTask(delta int) {
	column := m.currentColumn()
	if column == nil || len(column.Tasks) == 0 {
		return
	}
	target := m.ui.SelectedTask() + delta
	if target < 0 || target >= len(column.Tasks) {
		return
	}
	m.ui.SetSelectedTask(target)
	m.ensureTaskVisible()
}

func (m *Model) viewTask() {
	if m.currentTask() == nil {
		m.notifyInfo("No task selected")
		return
	}
	m.ui.SetMode(state.TaskViewMode)
}

// moveTask moves the selected task to the neighbouring column; the cursor follows it
func (m *Model) moveTask(delta int) {
	board := m.activeBoard()
	task := m.currentTask()
	if task == nil {
		m.notifyInfo("No task selected")
		return
	}

	from := m.ui.SelectedColumn()
	to := from + delta
	switch {
	case to < 0:
		m.notifyInfo("Already at the first column")
		return
	case to >= len(board.Columns):
		m.notifyInfo("Already at the last column")
		return
	}

	boardID, taskID := board.ID, task.ID
	sourceID, destID := board.Columns[from].ID, board.Columns[to].ID
	if m.mutate("move_task", func(ctx context.Context) error {
		return m.store.MoveTask(ctx, boardID, sourceID, destID, taskID)
	}) {
		m.selectTask(taskID)
	}
}

// reorderTask moves the selected task up or down within its column
func (m *Model) reorderTask(delta int) {
	board := m.activeBoard()
	column := m.currentColumn()
	task := m.currentTask()
	if task == nil {
		m.notifyInfo("No task selected")
		return
	}

	boardID, columnID, taskID := board.ID, column.ID, task.ID
	to := m.ui.SelectedTask() + delta
	if m.mutate("reorder_task", func(ctx context.Context) error {
		return m.store.ReorderTask(ctx, boardID, columnID, taskID, to)
	}) {
		m.selectTask(taskID)
	}
}

// moveColumn shifts the selected column left or right; the cursor follows it
func (m *Model) moveColumn(delta int) {
	board := m.activeBoard()
	column := m.currentColumn()
	if column == nil {
		m.notifyInfo("No column selected")
		return
	}

	boardID, columnID := board.ID, column.ID
	from := m.ui.SelectedColumn()
	if m.mutate("move_column", func(ctx context.Context) error {
		return m.store.MoveColumn(ctx, boardID, from, from+delta)
	}) {
		task := m.ui.SelectedTask()
		m.selectColumn(columnID)
		m.ui.SetSelectedTask(task)
		m.clampSelection()
	}
}

// switchBoard activates the previous or next board, wrapping around
func (m *Model) switchBoard(delta int) {
	boards := m.snapshot.Boards
	if len(boards) < 2 {
		m.notifyInfo("Only one board")
		return
	}

	current := m.snapshot.BoardIndex(m.snapshot.ActiveBoard)
	next := (current + delta + len(boards)) % len(boards)
	boardID := boards[next].ID

	if m.mutate("set_active_board", func(ctx context.Context) error {
		return m.store.SetActiveBoard(ctx, boardID)
	}) {
		m.ui.ResetSelection()
		m.clampSelection()
	}
}
