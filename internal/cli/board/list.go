package board

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/models"
)

// boardSummary is the list entry for one board
type boardSummary struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Columns int    `json:"columns"`
	Tasks   int    `json:"tasks"`
	Active  bool   `json:"active"`
}

// ListCmd returns the board list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all boards",
		Long:  "List all boards. The active board is marked with *.",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func summarize(state models.State) []boardSummary {
	out := make([]boardSummary, 0, len(state.Boards))
	for i := range state.Boards {
		b := &state.Boards[i]
		out = append(out, boardSummary{
			ID:      b.ID,
			Title:   b.Title,
			Columns: len(b.Columns),
			Tasks:   b.TaskCount(),
			Active:  b.ID == state.ActiveBoard,
		})
	}
	return out
}

func runList(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		boards := summarize(c.App.Store.Snapshot())

		if f.Quiet {
			for _, b := range boards {
				fmt.Println(b.ID)
			}
			return nil
		}
		if handled, err := f.Success("boards", boards); handled {
			return err
		}

		if len(boards) == 0 {
			fmt.Println("No boards found")
			return nil
		}
		fmt.Printf("Found %d board(s):\n\n", len(boards))
		for _, b := range boards {
			marker := " "
			if b.Active {
				marker = "*"
			}
			fmt.Printf("%s %s  %s (%d columns, %d tasks)\n", marker, cli.ShortID(b.ID), b.Title, b.Columns, b.Tasks)
		}
		return nil
	})
}
