package cli

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"
)

// Run opens the CLI for cmd and calls fn with it. An error returned by fn is
// printed in the command's output mode and comes back as *ExitStatusError.
func Run(cmd *cobra.Command, fn func(c *CLI, f *OutputFormatter) error) error {
	formatter := Formatter(cmd)

	cliInstance, err := NewCLI(cmd.Context())
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	if err := fn(cliInstance, formatter); err != nil {
		var exitErr *ExitStatusError
		if errors.As(err, &exitErr) {
			return err
		}
		slog.Warn("command failed", "command", cmd.CommandPath(), "error", err)
		return formatter.Fail(err)
	}
	return nil
}
