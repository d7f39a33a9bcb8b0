package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/models"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <task>",
		Short: "Update a task",
		Long: `Update the fields of a task. Only the flags that are given change.

Examples:
  kanban task update "Fix bug" --priority=high
  kanban task update 3f2a --due=""          # clear the due date
  kanban task update 3f2a --tags="ui, bug"  # replace tags
`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description in markdown (use - for stdin)")
	cmd.Flags().String("priority", "", "New priority: low, medium, high")
	cmd.Flags().String("due", "", "New due date (YYYY-MM-DD, empty clears it)")
	cmd.Flags().String("tags", "", "Replace tags (comma separated, empty clears them)")
	cli.AddBoardFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	boardRef, _ := flags.GetString("board")

	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		changed := false
		for _, name := range []string{"title", "description", "priority", "due", "tags"} {
			changed = changed || flags.Changed(name)
		}
		if !changed {
			return fmt.Errorf("%w: nothing to update (pass --title, --description, --priority, --due or --tags)", cli.ErrUsage)
		}

		state := c.App.Store.Snapshot()
		board, err := cli.BoardOrActive(&state, boardRef)
		if err != nil {
			return err
		}
		column, current, err := cli.ResolveTask(board, args[0])
		if err != nil {
			return err
		}

		task := current.Clone()
		if flags.Changed("title") {
			task.Title, _ = flags.GetString("title")
		}
		if flags.Changed("description") {
			value, _ := flags.GetString("description")
			if task.Description, err = readDescription(cmd, value); err != nil {
				return err
			}
		}
		if flags.Changed("priority") {
			value, _ := flags.GetString("priority")
			if task.Priority, err = cli.ParsePriority(value); err != nil {
				return err
			}
		}
		if flags.Changed("due") {
			value, _ := flags.GetString("due")
			if task.DueDate, err = cli.ParseDueDate(value); err != nil {
				return err
			}
		}
		if flags.Changed("tags") {
			value, _ := flags.GetString("tags")
			task.Tags = models.ParseTags(value)
		}

		if err := c.App.Store.UpdateTask(c.Ctx, board.ID, column.ID, task); err != nil {
			return err
		}

		updated, _ := c.App.Store.Board(board.ID)
		col, _ := updated.Column(column.ID)
		saved, _ := col.Task(task.ID)
		if handled, err := f.Success("task", newTaskView(updated, col, saved)); handled {
			return err
		}

		fmt.Printf("✓ Task '%s' updated successfully\n", saved.Title)
		return nil
	})
}
