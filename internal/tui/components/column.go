package components

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/tui/theme"
)

// ColumnProps are the inputs of RenderColumn
type ColumnProps struct {
	Column *models.Column
	// Selected marks the column holding the cursor
	Selected bool
	// SelectedTask is the index of the selected task (ignored unless Selected)
	SelectedTask int
	// Height is the total box height (0 for auto)
	Height int
	// ScrollOffset is the index of the first visible task
	ScrollOffset int
	Now          time.Time
}

// VisibleTasks returns how many task cards fit in a column of the given height
func VisibleTasks(height int) int {
	return max((height-columnOverhead)/TaskCardHeight, 1)
}

// RenderColumn renders a complete column with its title and tasks
//
// Layout:
//
//	● {Column Title} ({count})
//	▲ more above (if scrolled down)
//	{Task 1}
//	{Task 2}
//	...
//	▼ more below (if more tasks below)
func RenderColumn(props ColumnProps) string {
	column := props.Column
	tasks := column.Tasks

	header := fmt.Sprintf("%s (%d)", column.Title, len(tasks))
	content := renderColumnMarker(column.Color) + " " + TitleStyle.Render(header) + "\n"

	if len(tasks) == 0 {
		content += SubtleStyle.Padding(1, 0).Render("No tasks")
	} else {
		maxVisible := VisibleTasks(props.Height)
		offset := min(max(props.ScrollOffset, 0), len(tasks)-1)

		if offset > 0 {
			content += IndicatorStyle.Render("▲ more above") + "\n"
		} else {
			content += "\n"
		}

		end := min(offset+maxVisible, len(tasks))
		for i, task := range tasks[offset:end] {
			isSelected := props.Selected && offset+i == props.SelectedTask
			content += RenderTask(task, isSelected, props.Now)
			if i < end-offset-1 {
				content += "\n"
			}
		}

		// pad so the bottom indicator sits on the last content line
		usedLines := 2 + (end-offset)*TaskCardHeight
		hasMore := end < len(tasks)
		indicatorLines := 0
		if hasMore {
			indicatorLines = 1
		}
		if props.Height > 0 {
			remaining := props.Height - 2 - usedLines - indicatorLines
			if remaining > 0 {
				content += strings.Repeat("\n", remaining)
			}
		}
		if hasMore {
			content += "\n" + IndicatorStyle.Render("▼ more below")
		}
	}

	style := ColumnStyle
	if props.Selected {
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	if props.Height > 0 {
		// Height includes the borders
		style = style.Height(props.Height)
	}

	return style.Render(content)
}

func renderColumnMarker(color string) string {
	if color == "" {
		color = models.DefaultColumnColor
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("●")
}

// RenderPlaceholder is drawn in place of columns when there is nothing to show
func RenderPlaceholder(height int, title, hint string) string {
	style := ColumnStyle
	if height > 0 {
		style = style.Height(height)
	}
	return style.Render(TitleStyle.Render(title) + "\n\n" + SubtleStyle.Render(hint))
}
