package column

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/models"
)

// AddCmd returns the column add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a column to a board",
		Long: `Append a column to the end of a board.

Examples:
  kanban column add --title="Review"
  kanban column add --title="Blocked" --color="#e74c3c" --board="Side project"
`,
		Args: cobra.NoArgs,
		RunE: runAdd,
	}

	cmd.Flags().String("title", "", "Column title (required)")
	_ = cmd.MarkFlagRequired("title")
	cmd.Flags().String("color", models.DefaultColumnColor, "Column color in #RRGGBB format")
	cli.AddBoardFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	color, _ := cmd.Flags().GetString("color")
	boardRef, _ := cmd.Flags().GetString("board")

	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		state := c.App.Store.Snapshot()
		board, err := cli.BoardOrActive(&state, boardRef)
		if err != nil {
			return err
		}

		column, err := c.App.Store.AddColumn(c.Ctx, board.ID, title, color)
		if err != nil {
			return err
		}

		if handled, err := f.Success("column", column); handled {
			return err
		}

		fmt.Printf("✓ Column '%s' added to board '%s' (ID: %s)\n", column.Title, board.Title, column.ID)
		fmt.Printf("  Position: %d\n", len(board.Columns)+1)
		return nil
	})
}
