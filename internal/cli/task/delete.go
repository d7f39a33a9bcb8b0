package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <task>",
		Short: "Delete a task",
		Long:  "Delete a task (requires confirmation unless --force, --quiet or --json).",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddBoardFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
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

		if !force && !f.Quiet && !f.JSON {
			if !cli.Confirm(fmt.Sprintf("Delete task '%s'?", task.Title)) {
				fmt.Println("Cancelled")
				return nil
			}
		}

		if err := c.App.Store.DeleteTask(c.Ctx, board.ID, column.ID, task.ID); err != nil {
			return err
		}

		if f.Quiet {
			return nil
		}
		if handled, err := f.Success("task_id", task.ID); handled {
			return err
		}

		fmt.Printf("✓ Task '%s' deleted successfully\n", task.Title)
		return nil
	})
}
