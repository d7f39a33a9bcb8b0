package tui

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/kanban/internal/app"
)

// Run starts the TUI on the active board and blocks until the user quits or
// ctx is cancelled.
func Run(ctx context.Context, a *app.App, opts ...Option) error {
	m := New(ctx, a, opts...)
	p := tea.NewProgram(m, tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			a.Logger().Info("shutdown signal received, TUI closed")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
