package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/kanban/internal/tui/theme"
)

// HelpEntry is one key binding line of the help screen
type HelpEntry struct {
	Keys        string
	Description string
}

// HelpSection groups help entries under a heading
type HelpSection struct {
	Title   string
	Entries []HelpEntry
}

// RenderHelp renders the help screen with one block per section
func RenderHelp(sections []HelpSection) string {
	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Highlight)).
		Bold(true).
		Width(18)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))

	blocks := make([]string, 0, len(sections)+2)
	blocks = append(blocks, TitleStyle.Render("Keyboard shortcuts"))
	for _, section := range sections {
		lines := []string{"", TitleStyle.Render(section.Title)}
		for _, entry := range section.Entries {
			lines = append(lines, keyStyle.Render(entry.Keys)+descStyle.Render(entry.Description))
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	blocks = append(blocks, "\n"+SubtleStyle.Render("Press any key to close"))

	return HelpBoxStyle.Render(strings.Join(blocks, "\n"))
}
