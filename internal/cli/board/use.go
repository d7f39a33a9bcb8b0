package board

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
)

// UseCmd returns the board use subcommand
func UseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "use <board>",
		Short: "Set the active board",
		Long: `Set the active board. Board-scoped commands use it when --board is not given,
and the terminal UI opens on it.`,
		Args: cobra.ExactArgs(1),
		RunE: runUse,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runUse(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		state := c.App.Store.Snapshot()
		board, err := cli.ResolveBoard(&state, args[0])
		if err != nil {
			return err
		}
		if err := c.App.Store.SetActiveBoard(c.Ctx, board.ID); err != nil {
			return err
		}

		if handled, err := f.Success("board", board); handled {
			return err
		}

		fmt.Printf("✓ Now using board '%s'\n", board.Title)
		return nil
	})
}
