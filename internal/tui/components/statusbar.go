package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// StatusBarProps are the inputs of RenderStatusBar
type StatusBarProps struct {
	Width      int
	BoardTitle string
	TaskCount  int
	HelpKey    string
	// Backend names the storage the board is persisted to
	Backend string
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: "kanban · {board} · {n} tasks"
// Right side: "{backend} · press ? for help"
func RenderStatusBar(props StatusBarProps) string {
	left := "kanban"
	if props.BoardTitle != "" {
		left += fmt.Sprintf(" · %s · %d tasks", props.BoardTitle, props.TaskCount)
	}

	right := fmt.Sprintf("press %s for help", props.HelpKey)
	if props.Backend != "" {
		right = props.Backend + " · " + right
	}

	leftRendered := StatusBarStyle.Render(" " + left)
	rightRendered := StatusBarStyle.Render(right + " ")

	gapWidth := max(props.Width-lipgloss.Width(leftRendered)-lipgloss.Width(rightRendered), 1)
	gap := StatusBarStyle.Render(strings.Repeat(" ", gapWidth))

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}
