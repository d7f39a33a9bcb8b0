package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
	"github.com/thenoetrevino/kanban/internal/markdown"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <task>",
		Short: "Show a task with its rendered description",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	cli.AddBoardFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	boardRef, _ := cmd.Flags().GetString("board")

	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		state := c.App.Store.Snapshot()
		board, err := cli.BoardOrActive(&state, boardRef)
		if err != nil {
			return err
		}
		column, task, err := cli.ResolveTask(board, args[0])
		if err != nil {
			return err
		}

		view := newTaskView(board, column, task)
		if handled, err := f.Success("task", view); handled {
			return err
		}

		var b strings.Builder
		b.WriteString(styles.TitleStyle.Render(task.Title))
		b.WriteString("\n")
		b.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("%s · %s / %s", task.ID, board.Title, column.Title)))
		b.WriteString("\n\n")

		field := func(label, value string) {
			b.WriteString(styles.LabelStyle.Render(label))
			b.WriteString(" ")
			b.WriteString(value)
			b.WriteString("\n")
		}
		field("Priority:", styles.PriorityBadge(task.Priority))
		field("Created:", styles.ValueStyle.Render(task.CreatedAt.Local().Format("2006-01-02 15:04")))
		if task.DueDate != nil {
			due := styles.ValueStyle.Render(task.FormatDueDate())
			if task.IsOverdue(time.Now()) {
				due = styles.OverdueStyle.Render(task.FormatDueDate() + " (overdue)")
			}
			field("Due:", due)
		}
		if len(task.Tags) > 0 {
			field("Tags:", styles.RenderTags(task.Tags))
		}

		b.WriteString(styles.SectionStyle.Render("Description"))
		b.WriteString("\n")
		if rendered := markdown.RenderStyle(task.Description, styles.CardWidth-8, styles.MarkdownStyle); rendered != "" {
			b.WriteString(rendered)
		} else {
			b.WriteString(styles.SubtitleStyle.Italic(true).Render("No description"))
		}

		fmt.Println(styles.RenderCard(b.String()))
		return nil
	})
}
