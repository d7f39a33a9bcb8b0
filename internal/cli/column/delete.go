package column

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
)

// DeleteCmd returns the column delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <column>",
		Short: "Delete a column and its tasks",
		Long:  "Delete a column together with its tasks (requires confirmation unless --force, --quiet or --json).",
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
		column, err := cli.ResolveColumn(board, args[0])
		if err != nil {
			return err
		}

		if !force && !f.Quiet && !f.JSON {
			prompt := fmt.Sprintf("Delete column '%s' and its %d task(s)?", column.Title, len(column.Tasks))
			if !cli.Confirm(prompt) {
				fmt.Println("Cancelled")
				return nil
			}
		}

		if err := c.App.Store.DeleteColumn(c.Ctx, board.ID, column.ID); err != nil {
			return err
		}

		if f.Quiet {
			return nil
		}
		if handled, err := f.Success("column_id", column.ID); handled {
			return err
		}

		fmt.Printf("✓ Column '%s' deleted successfully\n", column.Title)
		return nil
	})
}
