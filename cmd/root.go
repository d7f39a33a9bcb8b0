package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/board"
	"github.com/thenoetrevino/kanban/internal/cli/column"
	"github.com/thenoetrevino/kanban/internal/cli/task"
	"github.com/thenoetrevino/kanban/internal/cli/transfer"
	"github.com/thenoetrevino/kanban/internal/store"
	"github.com/thenoetrevino/kanban/internal/tui"
)

// NewRootCmd builds the kanban command tree. Without a subcommand it starts the TUI.
func NewRootCmd() *cobra.Command {
	var overrides cli.Overrides

	rootCmd := &cobra.Command{
		Use:   "kanban",
		Short: "kanban - a terminal-based kanban board",
		Long: `kanban is a terminal-based kanban board for managing boards, columns and tasks.

Run it without arguments to open the board, or use the subcommands to script it.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SetContext(cli.WithOverrides(cmd.Context(), overrides))
			return nil
		},
		RunE: runTUI,
	}

	rootCmd.PersistentFlags().StringVar(&overrides.Backend, "storage", "", "storage backend (json, sqlite, memory)")
	rootCmd.PersistentFlags().StringVar(&overrides.DataDir, "data-dir", "", "directory holding the board data")
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	})

	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(column.ColumnCmd())
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(transfer.ExportCmd())
	rootCmd.AddCommand(transfer.ImportCmd())

	markUsageErrors(rootCmd)
	return rootCmd
}

// Execute runs the command tree with ctx
func Execute(ctx context.Context) error {
	return execute(ctx, NewRootCmd())
}

// execute runs rootCmd and tags failures that cobra raised itself (required
// flags, flag groups) as usage errors. Command failures come back from cli.Run
// as *cli.ExitStatusError and pass through unchanged.
func execute(ctx context.Context, rootCmd *cobra.Command) error {
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return nil
	}
	var exitErr *cli.ExitStatusError
	if errors.As(err, &exitErr) || errors.Is(err, cli.ErrUsage) {
		return err
	}
	return fmt.Errorf("%w: %w", cli.ErrUsage, err)
}

// markUsageErrors tags argument validation failures so they exit with ExitUsage
func markUsageErrors(cmd *cobra.Command) {
	if validate := cmd.Args; validate != nil {
		cmd.Args = func(c *cobra.Command, args []string) error {
			if err := validate(c, args); err != nil {
				return fmt.Errorf("%w: %w", cli.ErrUsage, err)
			}
			return nil
		}
	}
	for _, sub := range cmd.Commands() {
		markUsageErrors(sub)
	}
}

func runTUI(cmd *cobra.Command, _ []string) error {
	return cli.Run(cmd, func(c *cli.CLI, _ *cli.OutputFormatter) error {
		ctx := cmd.Context()
		if _, err := c.App.Store.EnsureBoard(ctx, c.App.Config.DefaultBoardTitle); err != nil {
			if !errors.Is(err, store.ErrPersist) {
				return fmt.Errorf("failed to create default board: %w", err)
			}
			slog.Warn("default board not saved", "error", err)
		}

		if err := c.App.StartWatcher(ctx); err != nil {
			slog.Warn("storage watcher not started", "error", err)
		}

		return tui.Run(ctx, c.App)
	})
}
