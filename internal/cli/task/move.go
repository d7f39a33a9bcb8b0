package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
)

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <task>",
		Short: "Move a task to another column",
		Long: `Move a task to the end of another column on the same board.

Examples:
  kanban task move "Fix bug" --to=Done
`,
		Args: cobra.ExactArgs(1),
		RunE: runMove,
	}

	cmd.Flags().String("to", "", "Destination column ID, ID prefix or title (required)")
	_ = cmd.MarkFlagRequired("to")
	cli.AddBoardFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	to, _ := cmd.Flags().GetString("to")
	boardRef, _ := cmd.Flags().GetString("board")

	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		state := c.App.Store.Snapshot()
		board, err := cli.BoardOrActive(&state, boardRef)
		if err != nil {
			return err
		}
		source, task, err := cli.ResolveTask(board, args[0])
		if err != nil {
			return err
		}
		destination, err := cli.ResolveColumn(board, to)
		if err != nil {
			return err
		}

		if err := c.App.Store.MoveTask(c.Ctx, board.ID, source.ID, destination.ID, task.ID); err != nil {
			return err
		}

		updated, _ := c.App.Store.Board(board.ID)
		col, _ := updated.Column(destination.ID)
		moved, _ := col.Task(task.ID)
		if handled, err := f.Success("task", newTaskView(updated, col, moved)); handled {
			return err
		}

		if source.ID == destination.ID {
			fmt.Printf("Task '%s' is already in '%s'\n", task.Title, destination.Title)
			return nil
		}
		fmt.Printf("✓ Task '%s' moved from '%s' to '%s'\n", task.Title, source.Title, destination.Title)
		return nil
	})
}
