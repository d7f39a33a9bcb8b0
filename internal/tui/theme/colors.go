// Package theme holds the colors the TUI draws with, initialized once from
// the configured color scheme.
package theme

import "github.com/thenoetrevino/kanban/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Background     string
	Subtle         string
	Normal         string
	Title          string
	Create         string
	Edit           string
	Delete         string
	ColumnBorder   string
	SelectedBorder string
	SelectedBg     string
	TaskBg         string
	PriorityLow    string
	PriorityMedium string
	PriorityHigh   string
	Overdue        string
	InfoFg         string
	InfoBg         string
	WarningFg      string
	WarningBg      string
	ErrorFg        string
	ErrorBg        string
	StatusBarBg    string
	StatusBarText  string
)

// Init initializes the theme colors from the given color scheme
func Init(scheme colors.ColorScheme) {
	Highlight = scheme.Accent
	Background = scheme.Background
	Subtle = scheme.Subtle
	Normal = scheme.Normal
	Title = scheme.Title
	Create = scheme.Create
	Edit = scheme.Edit
	Delete = scheme.Delete
	ColumnBorder = scheme.ColumnBorder
	SelectedBorder = scheme.SelectedBorder
	SelectedBg = scheme.SelectedBg
	TaskBg = scheme.TaskBackground
	PriorityLow = scheme.PriorityLow
	PriorityMedium = scheme.PriorityMedium
	PriorityHigh = scheme.PriorityHigh
	Overdue = scheme.Overdue
	InfoFg = scheme.InfoFg
	InfoBg = scheme.InfoBg
	WarningFg = scheme.WarningFg
	WarningBg = scheme.WarningBg
	ErrorFg = scheme.ErrorFg
	ErrorBg = scheme.ErrorBg
	StatusBarBg = scheme.StatusBarBg
	StatusBarText = scheme.StatusBarText
}

// PriorityColor returns the badge color for a priority name
// ("low", "medium" or "high"). Unknown names get the subtle color.
func PriorityColor(priority string) string {
	switch priority {
	case "low":
		return PriorityLow
	case "medium":
		return PriorityMedium
	case "high":
		return PriorityHigh
	default:
		return Subtle
	}
}
