// Package styles renders the human-readable CLI output with the configured colors
package styles

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/markdown"
	"github.com/thenoetrevino/kanban/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// MarkdownStyle renders task descriptions. Fixed so piped output is styled the same.
	MarkdownStyle = markdown.StyleDark

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Priority:", "Due:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Description"

	// Status styles
	OverdueStyle lipgloss.Style
	SuccessStyle lipgloss.Style
	WarningStyle lipgloss.Style

	priorityColors = map[models.Priority]string{}
)

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true).
		MarginTop(1)

	OverdueStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Overdue))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Create))

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.WarningFg)).
		Background(lipgloss.Color(colors.WarningBg)).
		Padding(0, 1)

	priorityColors = map[models.Priority]string{
		models.PriorityLow:    colors.PriorityLow,
		models.PriorityMedium: colors.PriorityMedium,
		models.PriorityHigh:   colors.PriorityHigh,
	}
}

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	if hexColor == "" {
		return text
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// PriorityBadge renders "● High" in the priority's color
func PriorityBadge(p models.Priority) string {
	return ColoredText("● "+p.Label(), priorityColors[p])
}

// RenderTags renders tags as "#a #b"
func RenderTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return SubtitleStyle.Render("#" + strings.Join(tags, " #"))
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}
