package tui

import (
	"context"
	"errors"

	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/store"
	"github.com/thenoetrevino/kanban/internal/tui/state"
)

// edgeMessages are shown as info instead of errors: the user hit the end of a list
var edgeMessages = map[error]string{
	models.ErrAlreadyFirstTask:   "Already at the top of the column",
	models.ErrAlreadyLastTask:    "Already at the bottom of the column",
	models.ErrAlreadyFirstColumn: "Already the first column",
	models.ErrAlreadyLastColumn:  "Already the last column",
}

// mutate runs one store mutation under a timeout and refreshes the snapshot.
// It reports whether the change was applied; a failed save still applies it
// in memory, so that case reports true after showing the error.
func (m *Model) mutate(op string, fn func(ctx context.Context) error) bool {
	ctx, cancel := context.WithTimeout(m.ctx, mutationTimeout)
	defer cancel()

	err := fn(ctx)
	m.refresh()
	if err == nil {
		m.logger.Debug("tui mutation", "op", op)
		return true
	}

	for edge, msg := range edgeMessages {
		if errors.Is(err, edge) {
			m.notifyInfo(msg)
			return false
		}
	}

	m.logger.Error("tui mutation failed", "op", op, "error", err)
	if errors.Is(err, store.ErrPersist) {
		m.notifyError("Changes could not be saved: " + err.Error())
		return true
	}
	m.notifyError(err.Error())
	return false
}

func (m *Model) notifyInfo(msg string) {
	m.notifications.Add(state.LevelInfo, msg)
}

func (m *Model) notifyWarning(msg string) {
	m.notifications.Add(state.LevelWarning, msg)
}

func (m *Model) notifyError(msg string) {
	m.notifications.Add(state.LevelError, msg)
}
