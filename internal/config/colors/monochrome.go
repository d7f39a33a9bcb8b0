package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: PresetMonochrome,

		Accent: "#FFFFFF",

		Background:       "#121212",
		ColumnBackground: "#1C1C1C",

		Create: "#FFFFFF",
		Edit:   "#FFFFFF",
		Delete: "#FFFFFF",

		ColumnBorder:   "#FFFFFF",
		TaskBorder:     "#585858",
		TaskBackground: "#1C1C1C",
		SelectedBorder: "#FFFFFF",
		SelectedBg:     "#3A3A3A",

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Priority is told apart by the badge text, not the color
		PriorityLow:    "#8A8A8A",
		PriorityMedium: "#BCBCBC",
		PriorityHigh:   "#FFFFFF",
		Overdue:        "#FFFFFF",

		InfoFg:    "#FFFFFF",
		InfoBg:    "#1C1C1C",
		WarningFg: "#FFFFFF",
		WarningBg: "#3A3A3A",
		ErrorFg:   "#FFFFFF",
		ErrorBg:   "#585858",

		StatusBarBg:   "#FFFFFF",
		StatusBarText: "#121212",
	}
}
