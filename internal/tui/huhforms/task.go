package huhforms

import (
	"charm.land/huh/v2"

	"github.com/thenoetrevino/kanban/internal/models"
)

// DescriptionLines is the height of the description text area
const DescriptionLines = 6

// TaskFormValues are the fields a task form writes to
type TaskFormValues struct {
	Title       *string
	Description *string
	Priority    *models.Priority
	DueDate     *string
	Tags        *string
}

// CreateTaskForm creates a huh form for adding or editing a task.
// The form writes through the pointers in values.
func CreateTaskForm(values TaskFormValues) *huh.Form {
	priorities := make([]huh.Option[models.Priority], 0, len(models.Priorities))
	for _, p := range models.Priorities {
		priorities = append(priorities, huh.NewOption(p.Label(), p))
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("title").
			Title("Title").
			Placeholder("Enter task title...").
			Validate(ValidateTitle).
			Value(values.Title),

		huh.NewText().
			Key("description").
			Title("Description").
			Description("Markdown is supported").
			Placeholder("Enter task description...").
			CharLimit(5000).
			Lines(DescriptionLines).
			Value(values.Description),

		huh.NewSelect[models.Priority]().
			Key("priority").
			Title("Priority").
			Options(priorities...).
			Inline(true).
			Value(values.Priority),

		huh.NewInput().
			Key("due").
			Title("Due date").
			Placeholder("YYYY-MM-DD (optional)").
			Validate(ValidateDueDate).
			Value(values.DueDate),

		huh.NewInput().
			Key("tags").
			Title("Tags").
			Placeholder("comma separated, e.g. bug, ui").
			Value(values.Tags),
	}

	return huh.NewForm(huh.NewGroup(fields...)).
		WithKeyMap(CreateKeyMap()).
		WithShowHelp(false)
}
