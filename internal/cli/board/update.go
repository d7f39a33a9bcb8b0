package board

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
)

// UpdateCmd returns the board update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <board>",
		Short: "Rename a board",
		Long: `Rename a board referenced by ID, ID prefix or title.

Examples:
  kanban board update "Side project" --title="Weekend project"
`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("title", "", "New board title (required)")
	_ = cmd.MarkFlagRequired("title")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")

	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		state := c.App.Store.Snapshot()
		board, err := cli.ResolveBoard(&state, args[0])
		if err != nil {
			return err
		}
		if err := c.App.Store.UpdateBoard(c.Ctx, board.ID, title); err != nil {
			return err
		}

		updated, _ := c.App.Store.Board(board.ID)
		if handled, err := f.Success("board", updated); handled {
			return err
		}

		fmt.Printf("✓ Board '%s' renamed to '%s'\n", board.Title, updated.Title)
		return nil
	})
}
