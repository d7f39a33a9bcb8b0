package column

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
)

// UpdateCmd returns the column update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <column>",
		Short: "Rename or recolor a column",
		Long: `Rename or recolor a column. Flags that are not given keep their value.

Examples:
  kanban column update "To Do" --title="Backlog"
  kanban column update Done --color="#27ae60"
`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("title", "", "New column title")
	cmd.Flags().String("color", "", "New column color in #RRGGBB format")
	cli.AddBoardFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	color, _ := cmd.Flags().GetString("color")
	boardRef, _ := cmd.Flags().GetString("board")
	titleChanged := cmd.Flags().Changed("title")
	colorChanged := cmd.Flags().Changed("color")

	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		if !titleChanged && !colorChanged {
			return fmt.Errorf("%w: at least one of --title or --color is required", cli.ErrUsage)
		}

		state := c.App.Store.Snapshot()
		board, err := cli.BoardOrActive(&state, boardRef)
		if err != nil {
			return err
		}
		column, err := cli.ResolveColumn(board, args[0])
		if err != nil {
			return err
		}

		if !titleChanged {
			title = column.Title
		}
		if err := c.App.Store.UpdateColumn(c.Ctx, board.ID, column.ID, title, color); err != nil {
			return err
		}

		updated, ok := c.App.Store.Board(board.ID)
		if !ok {
			return errors.New("board disappeared during update")
		}
		col, _ := updated.Column(column.ID)
		if handled, err := f.Success("column", col); handled {
			return err
		}

		fmt.Printf("✓ Column '%s' updated successfully\n", col.Title)
		if colorChanged {
			fmt.Printf("  Color: %s\n", col.Color)
		}
		return nil
	})
}
