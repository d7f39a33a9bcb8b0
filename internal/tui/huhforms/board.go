package huhforms

import "charm.land/huh/v2"

// CreateBoardForm creates a huh form for creating or renaming a board
func CreateBoardForm(title *string) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Key("title").
			Title("Title").
			Placeholder("Enter board title...").
			Validate(ValidateTitle).
			Value(title),
	)).
		WithKeyMap(CreateKeyMap()).
		WithShowHelp(false)
}
