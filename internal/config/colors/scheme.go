// Package colors holds the color scheme presets the TUI is drawn with
package colors

// Preset names
const (
	PresetDefault    = "default"
	PresetMonochrome = "monochrome"
)

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset" mapstructure:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent" mapstructure:"accent"`

	Background       string `yaml:"background" mapstructure:"background"`
	ColumnBackground string `yaml:"column_background" mapstructure:"column_background"`

	// Semantic colors
	Create string `yaml:"create" mapstructure:"create"` // creation dialogs
	Edit   string `yaml:"edit" mapstructure:"edit"`     // edit dialogs
	Delete string `yaml:"delete" mapstructure:"delete"` // delete confirmations

	// UI element colors
	ColumnBorder   string `yaml:"column_border" mapstructure:"column_border"`
	TaskBorder     string `yaml:"task_border" mapstructure:"task_border"`
	TaskBackground string `yaml:"task_background" mapstructure:"task_background"`
	SelectedBorder string `yaml:"selected_border" mapstructure:"selected_border"`
	SelectedBg     string `yaml:"selected_bg" mapstructure:"selected_bg"`

	// Text colors
	Title  string `yaml:"title" mapstructure:"title"`
	Subtle string `yaml:"subtle" mapstructure:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal" mapstructure:"normal"`

	// Task priority badges
	PriorityLow    string `yaml:"priority_low" mapstructure:"priority_low"`
	PriorityMedium string `yaml:"priority_medium" mapstructure:"priority_medium"`
	PriorityHigh   string `yaml:"priority_high" mapstructure:"priority_high"`
	Overdue        string `yaml:"overdue" mapstructure:"overdue"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg" mapstructure:"info_fg"`
	InfoBg    string `yaml:"info_bg" mapstructure:"info_bg"`
	WarningFg string `yaml:"warning_fg" mapstructure:"warning_fg"`
	WarningBg string `yaml:"warning_bg" mapstructure:"warning_bg"`
	ErrorFg   string `yaml:"error_fg" mapstructure:"error_fg"`
	ErrorBg   string `yaml:"error_bg" mapstructure:"error_bg"`

	StatusBarBg   string `yaml:"status_bar_bg" mapstructure:"status_bar_bg"`
	StatusBarText string `yaml:"status_bar_text" mapstructure:"status_bar_text"`
}

// GetPreset returns a preset color scheme by name. Unknown names get the default.
func GetPreset(name string) *ColorScheme {
	switch name {
	case PresetMonochrome:
		return Monochrome()
	default:
		return Default()
	}
}

// fields lists every color slot, excluding Preset, in declaration order
func (c *ColorScheme) fields() []*string {
	return []*string{
		&c.Accent, &c.Background, &c.ColumnBackground,
		&c.Create, &c.Edit, &c.Delete,
		&c.ColumnBorder, &c.TaskBorder, &c.TaskBackground, &c.SelectedBorder, &c.SelectedBg,
		&c.Title, &c.Subtle, &c.Normal,
		&c.PriorityLow, &c.PriorityMedium, &c.PriorityHigh, &c.Overdue,
		&c.InfoFg, &c.InfoBg, &c.WarningFg, &c.WarningBg, &c.ErrorFg, &c.ErrorBg,
		&c.StatusBarBg, &c.StatusBarText,
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	dst, src := c.fields(), preset.fields()
	for i := range dst {
		if *dst[i] == "" {
			*dst[i] = *src[i]
		}
	}
}

// MergeFrom overrides c with every non-empty value of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}

	dst, src := c.fields(), other.fields()
	for i := range dst {
		if *src[i] != "" {
			*dst[i] = *src[i]
		}
	}
}
