package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/models"
)

// AddOutputFlags registers the agent-friendly --json and --quiet flags
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")
}

// AddBoardFlag registers --board on board-scoped commands
func AddBoardFlag(cmd *cobra.Command) {
	cmd.Flags().String("board", "", "Board ID, ID prefix or title (default: active board)")
}

// Formatter builds the output formatter from the command's flags
func Formatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// ParsePriority validates a --priority value
func ParsePriority(priority string) (models.Priority, error) {
	return models.ParsePriority(priority)
}

// ParseDueDate validates a --due value; empty means no due date
func ParseDueDate(s string) (*time.Time, error) {
	return models.ParseDueDate(s)
}

// Confirm asks a yes/no question on stdin; anything but y/yes is a no
func Confirm(prompt string) bool {
	fmt.Printf("%s (y/N): ", prompt)
	var response string
	if _, err := fmt.Scanln(&response); err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}

// ShortID shortens a uuid for human output
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
