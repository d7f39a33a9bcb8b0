package board

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
)

// DeleteCmd returns the board delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <board>",
		Short: "Delete a board",
		Long:  "Delete a board with all of its columns and tasks (requires confirmation unless --force, --quiet or --json).",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		state := c.App.Store.Snapshot()
		board, err := cli.ResolveBoard(&state, args[0])
		if err != nil {
			return err
		}

		if !force && !f.Quiet && !f.JSON {
			prompt := fmt.Sprintf("Delete board '%s' and its %d task(s)?", board.Title, board.TaskCount())
			if !cli.Confirm(prompt) {
				fmt.Println("Cancelled")
				return nil
			}
		}

		if err := c.App.Store.DeleteBoard(c.Ctx, board.ID); err != nil {
			return err
		}

		if f.Quiet {
			return nil
		}
		if handled, err := f.Success("board_id", board.ID); handled {
			return err
		}

		fmt.Printf("✓ Board '%s' deleted successfully\n", board.Title)
		if active, ok := c.App.Store.ActiveBoard(); ok {
			fmt.Printf("  Active board is now '%s'\n", active.Title)
		}
		return nil
	})
}
