package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/kanban/internal/tui/components"
	"github.com/thenoetrevino/kanban/internal/tui/layers"
	"github.com/thenoetrevino/kanban/internal/tui/notifications"
	"github.com/thenoetrevino/kanban/internal/tui/state"
	"github.com/thenoetrevino/kanban/internal/tui/theme"
)

// View renders the board with any open form, dialog or popup layered on top
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.BackgroundColor = lipgloss.Color(theme.Background)
	view.Content = m.render()
	return view
}

func (m *Model) render() string {
	if m.ui.Width() == 0 {
		return "Loading..."
	}

	base := lipgloss.JoinVertical(lipgloss.Left,
		m.renderTabs(),
		m.renderBoard(),
		m.renderStatusBar(),
	)

	width, height := m.ui.Width(), m.ui.Height()
	return layers.Compose(base,
		layers.CreateCenteredLayer(m.renderOverlay(), width, height),
		layers.CreateTopRightLayer(m.renderErrorBanner(), width),
	)
}

func (m *Model) renderTabs() string {
	titles := make([]string, 0, len(m.snapshot.Boards))
	for _, b := range m.snapshot.Boards {
		titles = append(titles, b.Title)
	}
	if len(titles) == 0 {
		titles = append(titles, "no boards")
	}

	inline := ""
	if n, ok := m.notifications.Latest(); ok && n.Level != state.LevelError {
		inline = notifications.RenderInlineFromState(n)
	}

	selected := m.snapshot.BoardIndex(m.snapshot.ActiveBoard)
	return components.RenderTabs(titles, selected, m.ui.Width(), inline)
}

func (m *Model) renderBoard() string {
	height := m.ui.ContentHeight()
	board := m.activeBoard()
	if board == nil {
		return components.RenderPlaceholder(height, "No boards yet",
			"Press "+m.keys.CreateBoard.Help().Key+" to create a board")
	}
	if len(board.Columns) == 0 {
		return components.RenderPlaceholder(height, "No columns yet",
			"Press "+m.keys.CreateColumn.Help().Key+" to add a column")
	}

	offset := m.ui.ViewportOffset()
	end := min(offset+m.ui.ViewportSize(), len(board.Columns))
	now := m.now()

	rendered := make([]string, 0, end-offset+2)
	rendered = append(rendered, scrollArrow(offset > 0, "◀", height))
	for i := offset; i < end; i++ {
		column := &board.Columns[i]
		selected := i == m.ui.SelectedColumn()
		rendered = append(rendered, components.RenderColumn(components.ColumnProps{
			Column:       column,
			Selected:     selected,
			SelectedTask: m.ui.SelectedTask(),
			Height:       height,
			ScrollOffset: m.ui.TaskScrollOffset(column.ID),
			Now:          now,
		}), " ")
	}
	rendered = append(rendered, scrollArrow(end < len(board.Columns), "▶", height))

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// scrollArrow marks hidden columns on either side of the viewport
func scrollArrow(show bool, arrow string, height int) string {
	if !show {
		return " "
	}
	pad := strings.Repeat("\n", max(height/2, 0))
	return components.IndicatorStyle.Render(pad + arrow)
}

func (m *Model) renderStatusBar() string {
	props := components.StatusBarProps{
		Width:   m.ui.Width(),
		HelpKey: m.keys.ShowHelp.Help().Key,
		Backend: m.app.Config.Storage.Backend,
	}
	if board := m.activeBoard(); board != nil {
		props.BoardTitle = board.Title
		props.TaskCount = board.TaskCount()
	}
	return components.RenderStatusBar(props)
}

// renderOverlay renders the popup of the current mode, or "" in normal mode
func (m *Model) renderOverlay() string {
	switch m.ui.Mode() {
	case state.TaskFormMode:
		return m.renderForm("New Task", "Edit Task")
	case state.ColumnFormMode:
		return m.renderForm("New Column", "Edit Column")
	case state.BoardFormMode:
		return m.renderForm("New Board", "Rename Board")
	case state.ConfirmMode:
		return components.RenderConfirm(m.confirm.Message)
	case state.HelpMode:
		return components.RenderHelp(m.keys.HelpSections())
	case state.TaskViewMode:
		return m.renderTaskView()
	}
	return ""
}

func (m *Model) renderForm(createHeading, editHeading string) string {
	if m.forms.Form == nil {
		return ""
	}
	heading := createHeading
	if m.forms.IsEditing() {
		heading = editHeading
	}
	return components.RenderFormBox(heading, m.forms.Form.View(), m.forms.IsEditing())
}

func (m *Model) renderTaskView() string {
	task := m.currentTask()
	if task == nil {
		return ""
	}
	return components.RenderTaskView(components.TaskViewProps{
		Task:        *task,
		BoardTitle:  m.activeBoard().Title,
		ColumnTitle: m.currentColumn().Title,
		PopupWidth:  min(max(m.ui.Width()*3/4, 60), 120),
		PopupHeight: max(m.ui.Height()-4, 10),
		Now:         m.now(),
	})
}

// renderErrorBanner renders the latest error as a floating banner
func (m *Model) renderErrorBanner() string {
	n, ok := m.notifications.Latest()
	if !ok || n.Level != state.LevelError {
		return ""
	}
	return notifications.Render(notifications.Error, n.Message)
}
