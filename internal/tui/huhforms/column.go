package huhforms

import "charm.land/huh/v2"

// CreateColumnForm creates a huh form for adding or editing a column.
// No confirmation field is used; the form saves on completion.
func CreateColumnForm(title *string, color *string) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("title").
			Title("Title").
			Placeholder("Enter column title...").
			Validate(ValidateTitle).
			Value(title),

		huh.NewInput().
			Key("color").
			Title("Color").
			Description("Hex color shown next to the column title").
			Placeholder("#3498db").
			Validate(ValidateColor).
			Value(color),
	}

	return huh.NewForm(huh.NewGroup(fields...)).
		WithKeyMap(CreateKeyMap()).
		WithShowHelp(false)
}
