package components

import (
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/kanban/internal/markdown"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/tui/theme"
)

// TaskViewProps are the inputs of RenderTaskView
type TaskViewProps struct {
	Task        models.Task
	BoardTitle  string
	ColumnTitle string
	PopupWidth  int
	PopupHeight int
	Now         time.Time
}

// RenderTaskView renders the task detail popup: the title and the markdown
// description on the left, metadata on the right.
func RenderTaskView(props TaskViewProps) string {
	task := props.Task

	contentWidth := max(props.PopupWidth-8, 2*markdown.MinWidth)
	leftWidth := (contentWidth * 70) / 100
	rightWidth := contentWidth - leftWidth - 1

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Highlight))

	leftParts := []string{
		titleStyle.Render(markdown.Wrap(task.Title, leftWidth-2)),
		"",
		renderDescription(task.Description, leftWidth-2),
		"",
		SubtleStyle.Render("[e] edit  [Esc/Space] close"),
	}

	left := lipgloss.NewStyle().
		Width(leftWidth).
		Padding(0, 1).
		Render(strings.Join(leftParts, "\n"))

	right := renderMetadata(props, rightWidth)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Padding(1, 2).
		Width(props.PopupWidth)
	if props.PopupHeight > 0 {
		box = box.MaxHeight(props.PopupHeight)
	}

	return box.Render(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
}

func renderDescription(description string, width int) string {
	if strings.TrimSpace(description) == "" {
		return SubtleStyle.Render("No description")
	}
	return markdown.Render(description, width)
}

func renderMetadata(props TaskViewProps, width int) string {
	task := props.Task

	label := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Bold(true)
	value := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))

	priority := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.PriorityColor(string(task.Priority)))).
		Bold(true).
		Render(task.Priority.Label())

	due := SubtleStyle.Render("none")
	if task.DueDate != nil {
		due = value.Render(task.FormatDueDate())
		if task.IsOverdue(props.Now) {
			due = lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.Overdue)).
				Bold(true).
				Render(task.FormatDueDate() + " (overdue)")
		}
	}

	tags := SubtleStyle.Render("none")
	if len(task.Tags) > 0 {
		tags = value.Render(models.JoinTags(task.Tags))
	}

	fields := []string{
		label.Render("Board"), value.Render(props.BoardTitle), "",
		label.Render("Column"), value.Render(props.ColumnTitle), "",
		label.Render("Priority"), priority, "",
		label.Render("Created"), value.Render(task.CreatedAt.Local().Format("2006-01-02 15:04")), "",
		label.Render("Due"), due, "",
		label.Render("Tags"), tags,
	}

	return lipgloss.NewStyle().
		Width(width).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(lipgloss.Color(theme.Subtle)).
		PaddingLeft(1).
		Render(strings.Join(fields, "\n"))
}
