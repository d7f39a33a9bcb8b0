package tui

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"

	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/tui/huhforms"
	"github.com/thenoetrevino/kanban/internal/tui/state"
)

// openTaskForm opens the task form on the selected column, prefilled with the
// selected task when editing
func (m *Model) openTaskForm(edit bool) tea.Cmd {
	column := m.currentColumn()
	if column == nil {
		m.notifyWarning(fmt.Sprintf("Add a column first (%s)", m.keys.CreateColumn.Help().Key))
		return nil
	}

	if edit {
		task := m.currentTask()
		if task == nil {
			m.notifyInfo("No task selected")
			return nil
		}
		m.forms.LoadTask(column.ID, *task)
	} else {
		m.forms.NewTask(column.ID)
	}

	f := m.forms
	form := huhforms.CreateTaskForm(huhforms.TaskFormValues{
		Title:       &f.Title,
		Description: &f.Description,
		Priority:    &f.Priority,
		DueDate:     &f.DueDate,
		Tags:        &f.Tags,
	})
	return m.startForm(form, state.TaskFormMode)
}

// openColumnForm opens the column form, prefilled with the selected column when editing
func (m *Model) openColumnForm(edit bool) tea.Cmd {
	m.forms.Reset()
	if edit {
		column := m.currentColumn()
		if column == nil {
			m.notifyInfo("No column selected")
			return nil
		}
		m.forms.EditingID = column.ID
		m.forms.Title = column.Title
		m.forms.Color = column.Color
	} else {
		m.forms.Color = models.DefaultColumnColor
	}

	form := huhforms.CreateColumnForm(&m.forms.Title, &m.forms.Color)
	return m.startForm(form, state.ColumnFormMode)
}

// openBoardForm opens the board form, prefilled with the active board when editing
func (m *Model) openBoardForm(edit bool) tea.Cmd {
	m.forms.Reset()
	if edit {
		board := m.activeBoard()
		if board == nil {
			m.notifyInfo("No board selected")
			return nil
		}
		m.forms.EditingID = board.ID
		m.forms.Title = board.Title
	}

	form := huhforms.CreateBoardForm(&m.forms.Title)
	return m.startForm(form, state.BoardFormMode)
}

func (m *Model) startForm(form *huh.Form, mode state.Mode) tea.Cmd {
	form = form.WithTheme(m.formTheme)
	if w := m.formWidth(); w > 0 {
		form = form.WithWidth(w)
	}
	m.forms.Form = form
	m.ui.SetMode(mode)
	return form.Init()
}

// formWidth is the width of the form inside its box
func (m *Model) formWidth() int {
	if m.ui.Width() == 0 {
		return 0
	}
	return min(m.ui.Width()*2/3, 80)
}

// updateForm forwards messages to the open form. Esc cancels; completing the
// form submits it.
func (m *Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && keyMsg.String() == "esc" {
		m.closeForm()
		return m, nil
	}

	model, cmd := m.forms.Form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.forms.Form = f
	}

	switch m.forms.Form.State {
	case huh.StateCompleted:
		m.submitForm()
		return m, nil
	case huh.StateAborted:
		m.closeForm()
		return m, nil
	}
	return m, cmd
}

func (m *Model) closeForm() {
	m.forms.Reset()
	m.ui.SetMode(state.NormalMode)
}

// submitForm applies the completed form to the store and closes it
func (m *Model) submitForm() {
	switch m.ui.Mode() {
	case state.TaskFormMode:
		m.submitTaskForm()
	case state.ColumnFormMode:
		m.submitColumnForm()
	case state.BoardFormMode:
		m.submitBoardForm()
	}
	m.closeForm()
}

func (m *Model) submitTaskForm() {
	board := m.activeBoard()
	if board == nil {
		return
	}
	f := m.forms
	due, err := models.ParseDueDate(f.DueDate)
	if err != nil {
		m.notifyError(err.Error())
		return
	}
	tags := models.ParseTags(f.Tags)
	boardID, columnID := board.ID, f.ColumnID

	if !f.IsEditing() {
		var created *models.Task
		if m.mutate("add_task", func(ctx context.Context) error {
			var err error
			created, err = m.store.AddTask(ctx, boardID, columnID, models.NewTask{
				Title:       f.Title,
				Description: f.Description,
				Priority:    f.Priority,
				DueDate:     due,
				Tags:        tags,
			})
			return err
		}) && created != nil {
			m.selectTask(created.ID)
		}
		return
	}

	column, ok := board.Column(columnID)
	if !ok {
		m.notifyError("Column no longer exists")
		return
	}
	idx := column.TaskIndex(f.EditingID)
	if idx < 0 {
		m.notifyError("Task no longer exists")
		return
	}
	task := column.Tasks[idx].Clone()
	task.Title = f.Title
	task.Description = f.Description
	task.Priority = f.Priority
	task.DueDate = due
	task.Tags = tags

	m.mutate("update_task", func(ctx context.Context) error {
		return m.store.UpdateTask(ctx, boardID, columnID, task)
	})
}

func (m *Model) submitColumnForm() {
	board := m.activeBoard()
	if board == nil {
		return
	}
	f := m.forms
	boardID := board.ID
	color := strings.TrimSpace(f.Color)

	if f.IsEditing() {
		columnID := f.EditingID
		m.mutate("update_column", func(ctx context.Context) error {
			return m.store.UpdateColumn(ctx, boardID, columnID, f.Title, color)
		})
		return
	}

	if color == "" {
		color = models.DefaultColumnColor
	}
	var created *models.Column
	if m.mutate("add_column", func(ctx context.Context) error {
		var err error
		created, err = m.store.AddColumn(ctx, boardID, f.Title, color)
		return err
	}) && created != nil {
		m.selectColumn(created.ID)
	}
}

func (m *Model) submitBoardForm() {
	f := m.forms
	if f.IsEditing() {
		boardID := f.EditingID
		m.mutate("update_board", func(ctx context.Context) error {
			return m.store.UpdateBoard(ctx, boardID, f.Title)
		})
		return
	}

	var created *models.Board
	if !m.mutate("create_board", func(ctx context.Context) error {
		var err error
		created, err = m.store.CreateBoard(ctx, f.Title)
		return err
	}) || created == nil {
		return
	}

	boardID := created.ID
	if m.mutate("set_active_board", func(ctx context.Context) error {
		return m.store.SetActiveBoard(ctx, boardID)
	}) {
		m.ui.ResetSelection()
		m.clampSelection()
		m.notifyInfo(fmt.Sprintf("Created board '%s'", created.Title))
	}
}
