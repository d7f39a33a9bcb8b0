package column

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
)

// MoveCmd returns the column move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <column>",
		Short: "Move a column to another position",
		Long: `Move a column to another position on its board.

Examples:
  # Move to the first position
  kanban column move Done --position=1

  # Swap with the neighbour
  kanban column move "In Progress" --right
`,
		Args: cobra.ExactArgs(1),
		RunE: runMove,
	}

	cmd.Flags().Int("position", 0, "Target position (1-based)")
	cmd.Flags().Bool("left", false, "Move one position to the left")
	cmd.Flags().Bool("right", false, "Move one position to the right")
	cmd.MarkFlagsMutuallyExclusive("position", "left", "right")
	cmd.MarkFlagsOneRequired("position", "left", "right")
	cli.AddBoardFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	position, _ := cmd.Flags().GetInt("position")
	left, _ := cmd.Flags().GetBool("left")
	right, _ := cmd.Flags().GetBool("right")
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

		from := board.ColumnIndex(column.ID)
		var to int
		switch {
		case left:
			to = from - 1
		case right:
			to = from + 1
		default:
			if position < 1 || position > len(board.Columns) {
				return fmt.Errorf("%w: --position must be between 1 and %d", cli.ErrUsage, len(board.Columns))
			}
			to = position - 1
		}

		if err := c.App.Store.MoveColumn(c.Ctx, board.ID, from, to); err != nil {
			return err
		}

		if handled, err := f.Success("column", moved{ID: column.ID, Title: column.Title, Position: to + 1}); handled {
			return err
		}

		fmt.Printf("✓ Column '%s' moved to position %d\n", column.Title, to+1)
		return nil
	})
}

type moved struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Position int    `json:"position"`
}

func (m moved) GetID() string { return m.ID }
