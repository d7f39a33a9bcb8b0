package task

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/models"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(ReorderCmd())

	return cmd
}

// taskView is the JSON shape of a task together with where it lives
type taskView struct {
	models.Task
	BoardID  string `json:"boardId"`
	ColumnID string `json:"columnId"`
	Column   string `json:"column"`
	Position int    `json:"position"`
}

func newTaskView(board *models.Board, column *models.Column, task *models.Task) taskView {
	return taskView{
		Task:     task.Clone(),
		BoardID:  board.ID,
		ColumnID: column.ID,
		Column:   column.Title,
		Position: column.TaskIndex(task.ID) + 1,
	}
}

// readDescription returns the flag value, or stdin when it is "-"
func readDescription(cmd *cobra.Command, value string) (string, error) {
	if value != "-" {
		return value, nil
	}
	in := cmd.InOrStdin()
	if in == nil {
		in = os.Stdin
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read description from stdin: %w", err)
	}
	return string(data), nil
}
