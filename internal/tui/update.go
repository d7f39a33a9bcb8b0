package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/tui/state"
)

// Update routes messages by type, then key presses by mode
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui.SetWidth(msg.Width)
		m.ui.SetHeight(msg.Height)
		m.clampSelection()
		if m.isFormMode() {
			return m.updateForm(msg)
		}
		return m, nil
	case eventMsg:
		return m, m.handleEvent(events.Event(msg))
	case eventsClosedMsg:
		return m, nil
	}

	if m.isFormMode() {
		return m.updateForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	// notifications last until the next key press
	m.notifications.Clear()

	switch m.ui.Mode() {
	case state.ConfirmMode:
		return m.handleConfirm(keyMsg)
	case state.TaskViewMode:
		return m.handleTaskView(keyMsg)
	case state.HelpMode:
		m.ui.SetMode(state.NormalMode)
		return m, nil
	default:
		return m.handleNormal(keyMsg)
	}
}

func (m *Model) isFormMode() bool {
	switch m.ui.Mode() {
	case state.TaskFormMode, state.ColumnFormMode, state.BoardFormMode:
		return true
	}
	return false
}
