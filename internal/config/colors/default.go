package colors

// Default returns the default color scheme, using the column colors of a new board
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: PresetDefault,

		// Primary
		Accent: "#3498db",

		// Background
		Background:       "#1C1C1C",
		ColumnBackground: "#262626",

		// Semantic
		Create: "#2ecc71",
		Edit:   "#3498db",
		Delete: "#e74c3c",

		// UI elements
		ColumnBorder:   "#3498db",
		TaskBorder:     "#585858",
		TaskBackground: "#262626",
		SelectedBorder: "#f39c12",
		SelectedBg:     "#3A3A3A",

		// Text
		Title:  "#ecf0f1",
		Subtle: "#7f8c8d",
		Normal: "#D0D0D0",

		// Priority
		PriorityLow:    "#2ecc71",
		PriorityMedium: "#f39c12",
		PriorityHigh:   "#e74c3c",
		Overdue:        "#e74c3c",

		// Notifications
		InfoFg:    "#00AFFF",
		InfoBg:    "#00005F",
		WarningFg: "#FFD700",
		WarningBg: "#875F00",
		ErrorFg:   "#FF0000",
		ErrorBg:   "#5F0000",

		// Status bar
		StatusBarBg:   "#3498db", // Matches accent
		StatusBarText: "#1C1C1C",
	}
}
