package components

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/kanban/internal/tui/theme"
)

// RenderConfirm renders a deletion confirmation dialog
//
//	╭──────────────────────────────╮
//	│ Delete task 'Fix bug'?       │
//	│                              │
//	│ [y] confirm  [n/Esc] cancel  │
//	╰──────────────────────────────╯
func RenderConfirm(message string) string {
	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Render(ConfirmFooter)

	body := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Delete)).
		Render(message)

	return DeleteConfirmBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, body, "", footer))
}

// RenderFormBox frames a rendered huh form with a heading and the form footer.
// Edit forms get the edit border, new ones the create border.
func RenderFormBox(heading, form string, editing bool) string {
	style := CreateInputBoxStyle
	if editing {
		style = EditInputBoxStyle
	}

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Render(FormFooter)

	return style.Render(lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render(heading), "", form, "", footer))
}
