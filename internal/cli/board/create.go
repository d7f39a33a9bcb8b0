package board

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
)

// CreateCmd returns the board create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [title]",
		Short: "Create a new board",
		Long: `Create a new board with the default columns (To Do, In Progress, Done).

Examples:
  # Simple board (human-readable output)
  kanban board create "Side project"

  # Create and switch to it
  kanban board create --title="Release 2.0" --use

  # Quiet mode for bash capture
  BOARD_ID=$(kanban board create "Chores" --quiet)
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCreate,
	}

	cmd.Flags().String("title", "", "Board title (or pass it as the argument)")
	cmd.Flags().Bool("use", false, "Make the new board active")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	if len(args) == 1 {
		title = args[0]
	}
	use, _ := cmd.Flags().GetBool("use")

	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		board, err := c.App.Store.CreateBoard(c.Ctx, title)
		if err != nil {
			return err
		}
		if use {
			if err := c.App.Store.SetActiveBoard(c.Ctx, board.ID); err != nil {
				return err
			}
		}

		if handled, err := f.Success("board", board); handled {
			return err
		}

		fmt.Printf("✓ Board '%s' created successfully (ID: %s)\n", board.Title, board.ID)
		for _, col := range board.Columns {
			fmt.Printf("  Column: %s\n", col.Title)
		}
		if active, ok := c.App.Store.ActiveBoard(); ok && active.ID == board.ID {
			fmt.Println("  Active: yes")
		}
		return nil
	})
}
