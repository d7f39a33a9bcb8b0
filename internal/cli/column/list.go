package column

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
)

type columnSummary struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Color    string `json:"color,omitempty"`
	Position int    `json:"position"`
	Tasks    int    `json:"tasks"`
}

// ListCmd returns the column list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the columns of a board",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	cli.AddBoardFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	boardRef, _ := cmd.Flags().GetString("board")

	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		state := c.App.Store.Snapshot()
		board, err := cli.BoardOrActive(&state, boardRef)
		if err != nil {
			return err
		}

		columns := make([]columnSummary, len(board.Columns))
		for i, col := range board.Columns {
			columns[i] = columnSummary{
				ID:       col.ID,
				Title:    col.Title,
				Color:    col.Color,
				Position: i + 1,
				Tasks:    len(col.Tasks),
			}
		}

		if f.Quiet {
			for _, col := range columns {
				fmt.Println(col.ID)
			}
			return nil
		}
		if handled, err := f.Success("columns", columns); handled {
			return err
		}

		if len(columns) == 0 {
			fmt.Printf("Board '%s' has no columns\n", board.Title)
			return nil
		}
		fmt.Printf("Columns on '%s':\n\n", board.Title)
		for _, col := range columns {
			fmt.Printf("  %d. %s  %s (%d tasks)\n",
				col.Position, cli.ShortID(col.ID), styles.ColoredText(col.Title, col.Color), col.Tasks)
		}
		return nil
	})
}
