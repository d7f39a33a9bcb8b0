package components

import (
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/thenoetrevino/kanban/internal/markdown"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/tui/theme"
)

// RenderTask renders a single task as a card
//
//	┏━━━━━━━━━━━━━━━━━━━━━━━━┓
//	┃ ● {Task Title}         ┃
//	┃ High │ due 2024-05-02  ┃
//	┃ #tag1 #tag2            ┃
//	┃ first description line ┃
//	┗━━━━━━━━━━━━━━━━━━━━━━━━┛
//
// This has a fixed width and height
func RenderTask(task models.Task, selected bool, now time.Time) string {
	bg := theme.TaskBg
	if selected {
		bg = theme.SelectedBg
	}

	lines := []string{
		renderTaskTitle(task, bg),
		renderTaskMetadata(task, bg, now),
		renderTaskTags(task.Tags, bg),
		renderTaskExcerpt(task.Description, bg),
	}

	style := TaskStyle.
		BorderBackground(lipgloss.Color(bg)).
		Background(lipgloss.Color(bg))
	if selected {
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}

	return style.Render(strings.Join(lines, "\n"))
}

func renderTaskTitle(task models.Task, bg string) string {
	dot := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.PriorityColor(string(task.Priority)))).
		Background(lipgloss.Color(bg)).
		Render("●")

	title := ansi.Truncate(task.Title, taskTextWidth-2, "…")

	return " " + dot + " " + lipgloss.NewStyle().
		Bold(true).
		Background(lipgloss.Color(bg)).
		Render(title)
}

// renderTaskMetadata renders the priority badge and the due date separated by │
func renderTaskMetadata(task models.Task, bg string, now time.Time) string {
	badge := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.PriorityColor(string(task.Priority)))).
		Background(lipgloss.Color(bg)).
		Render(task.Priority.Label())

	line := " " + badge
	if task.DueDate != nil {
		separator := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Background(lipgloss.Color(bg)).
			Render(" │ ")
		line += separator + renderDueDate(task, bg, now)
	}
	return line
}

func renderDueDate(task models.Task, bg string, now time.Time) string {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Background(lipgloss.Color(bg))
	text := "due " + task.FormatDueDate()
	if task.IsOverdue(now) {
		style = style.Foreground(lipgloss.Color(theme.Overdue)).Bold(true)
		text = "overdue " + task.FormatDueDate()
	}
	return style.Render(text)
}

// renderTaskTags renders tags as #chips that fit on one line
func renderTaskTags(tags []string, bg string) string {
	if len(tags) == 0 {
		return " " + SubtleStyle.Background(lipgloss.Color(bg)).Render("no tags")
	}

	chips := make([]string, 0, len(tags))
	for _, tag := range tags {
		chips = append(chips, "#"+tag)
	}
	text := ansi.Truncate(strings.Join(chips, " "), taskTextWidth, "…")

	return " " + lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Highlight)).
		Background(lipgloss.Color(bg)).
		Render(text)
}

func renderTaskExcerpt(description string, bg string) string {
	excerpt := markdown.Excerpt(description, taskTextWidth)
	if excerpt == "" {
		return ""
	}
	return " " + lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Background(lipgloss.Color(bg)).
		Render(excerpt)
}
