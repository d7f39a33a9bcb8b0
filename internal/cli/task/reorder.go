package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
)

// ReorderCmd returns the task reorder subcommand
func ReorderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reorder <task>",
		Short: "Change the position of a task within its column",
		Long: `Change the position of a task within its column.

Examples:
  kanban task reorder "Fix bug" --position=1
  kanban task reorder "Fix bug" --down
`,
		Args: cobra.ExactArgs(1),
		RunE: runReorder,
	}

	cmd.Flags().Int("position", 0, "Target position (1-based)")
	cmd.Flags().Bool("up", false, "Move one position up")
	cmd.Flags().Bool("down", false, "Move one position down")
	cmd.MarkFlagsMutuallyExclusive("position", "up", "down")
	cmd.MarkFlagsOneRequired("position", "up", "down")
	cli.AddBoardFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runReorder(cmd *cobra.Command, args []string) error {
	position, _ := cmd.Flags().GetInt("position")
	up, _ := cmd.Flags().GetBool("up")
	down, _ := cmd.Flags().GetBool("down")
	boardRef, _ := cmd.Flags().GetString("board")

	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		state := c.App.Store.Snapshot()
		board, err := cli.BoardOrActive(&state, boardRef)
		if err != nil {
			return err
		}
		column, task, err := cli.ResolveTask(board, args[0])
		if err != nil {
			return err
		}

		from := column.TaskIndex(task.ID)
		var to int
		switch {
		case up:
			to = from - 1
		case down:
			to = from + 1
		default:
			if position < 1 || position > len(column.Tasks) {
				return fmt.Errorf("%w: --position must be between 1 and %d", cli.ErrUsage, len(column.Tasks))
			}
			to = position - 1
		}

		if err := c.App.Store.ReorderTask(c.Ctx, board.ID, column.ID, task.ID, to); err != nil {
			return err
		}

		updated, _ := c.App.Store.Board(board.ID)
		col, _ := updated.Column(column.ID)
		moved, _ := col.Task(task.ID)
		if handled, err := f.Success("task", newTaskView(updated, col, moved)); handled {
			return err
		}

		fmt.Printf("✓ Task '%s' is now at position %d of %d in '%s'\n", task.Title, to+1, len(column.Tasks), column.Title)
		return nil
	})
}
