package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/models"
)

// AddCmd returns the task add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task to a column",
		Long: `Add a task to the end of a column.

Examples:
  # Simple task in the first column of the active board
  kanban task add --title="Fix bug"

  # JSON output for agents
  kanban task add --title="Fix bug" --json

  # Quiet mode for bash capture
  TASK_ID=$(kanban task add --title="Fix bug" --quiet)

  # Full example with all options
  kanban task add \
    --title="Add authentication" \
    --description="Implement **JWT** auth" \
    --priority=high \
    --due=2025-01-31 \
    --tags="backend, security" \
    --column="In Progress"
`,
		Args: cobra.NoArgs,
		RunE: runAdd,
	}

	cmd.Flags().String("title", "", "Task title (required)")
	_ = cmd.MarkFlagRequired("title")
	cmd.Flags().String("description", "", "Task description in markdown (use - for stdin)")
	cmd.Flags().String("priority", string(models.PriorityMedium), "Priority: low, medium, high")
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().String("tags", "", "Comma separated tags")
	cmd.Flags().String("column", "", "Column ID, ID prefix or title (defaults to first column)")
	cli.AddBoardFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	descriptionFlag, _ := cmd.Flags().GetString("description")
	priorityFlag, _ := cmd.Flags().GetString("priority")
	dueFlag, _ := cmd.Flags().GetString("due")
	tagsFlag, _ := cmd.Flags().GetString("tags")
	columnRef, _ := cmd.Flags().GetString("column")
	boardRef, _ := cmd.Flags().GetString("board")

	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		priority, err := cli.ParsePriority(priorityFlag)
		if err != nil {
			return err
		}
		due, err := cli.ParseDueDate(dueFlag)
		if err != nil {
			return err
		}
		description, err := readDescription(cmd, descriptionFlag)
		if err != nil {
			return err
		}

		state := c.App.Store.Snapshot()
		board, err := cli.BoardOrActive(&state, boardRef)
		if err != nil {
			return err
		}
		var column *models.Column
		if columnRef == "" {
			if len(board.Columns) == 0 {
				return fmt.Errorf("%w: board '%s' has no columns", models.ErrColumnNotFound, board.Title)
			}
			column = &board.Columns[0]
		} else if column, err = cli.ResolveColumn(board, columnRef); err != nil {
			return err
		}

		task, err := c.App.Store.AddTask(c.Ctx, board.ID, column.ID, models.NewTask{
			Title:       title,
			Description: description,
			Priority:    priority,
			DueDate:     due,
			Tags:        models.ParseTags(tagsFlag),
		})
		if err != nil {
			return err
		}

		if handled, err := f.Success("task", task); handled {
			return err
		}

		fmt.Printf("✓ Task '%s' created successfully (ID: %s)\n", task.Title, task.ID)
		fmt.Printf("  Board: %s\n", board.Title)
		fmt.Printf("  Column: %s\n", column.Title)
		fmt.Printf("  Priority: %s\n", task.Priority.Label())
		if task.DueDate != nil {
			fmt.Printf("  Due: %s\n", task.FormatDueDate())
		}
		if len(task.Tags) > 0 {
			fmt.Printf("  Tags: %s\n", models.JoinTags(task.Tags))
		}
		return nil
	})
}
