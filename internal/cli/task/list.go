package task

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
	"github.com/thenoetrevino/kanban/internal/models"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the tasks of a board",
		Long: `List tasks grouped by column.

Examples:
  kanban task list
  kanban task list --column="In Progress" --json
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().String("column", "", "Only list tasks of this column")
	cli.AddBoardFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	columnRef, _ := cmd.Flags().GetString("column")
	boardRef, _ := cmd.Flags().GetString("board")

	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		state := c.App.Store.Snapshot()
		board, err := cli.BoardOrActive(&state, boardRef)
		if err != nil {
			return err
		}

		columns := board.Columns
		if columnRef != "" {
			column, err := cli.ResolveColumn(board, columnRef)
			if err != nil {
				return err
			}
			columns = []models.Column{*column}
		}

		tasks := []taskView{}
		for i := range columns {
			for j := range columns[i].Tasks {
				tasks = append(tasks, newTaskView(board, &columns[i], &columns[i].Tasks[j]))
			}
		}

		if f.Quiet {
			for _, t := range tasks {
				fmt.Println(t.ID)
			}
			return nil
		}
		if handled, err := f.Success("tasks", tasks); handled {
			return err
		}

		if len(tasks) == 0 {
			fmt.Println("No tasks found")
			return nil
		}

		now := time.Now()
		fmt.Printf("Found %d task(s) on '%s':\n", len(tasks), board.Title)
		for _, col := range columns {
			fmt.Printf("\n%s\n", styles.ColoredText(col.Title, col.Color))
			if len(col.Tasks) == 0 {
				fmt.Println("  (empty)")
			}
			for _, t := range col.Tasks {
				line := fmt.Sprintf("  %s  %s  %s", cli.ShortID(t.ID), styles.PriorityBadge(t.Priority), t.Title)
				if t.DueDate != nil {
					due := "due " + t.FormatDueDate()
					if t.IsOverdue(now) {
						due = styles.OverdueStyle.Render("overdue " + t.FormatDueDate())
					}
					line += "  " + due
				}
				if tags := styles.RenderTags(t.Tags); tags != "" {
					line += "  " + tags
				}
				fmt.Println(line)
			}
		}
		return nil
	})
}
