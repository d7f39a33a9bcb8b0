package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/kanban/internal/events"
)

// eventMsg carries a change event into Update
type eventMsg events.Event

// eventsClosedMsg is sent once the event channel closes
type eventsClosedMsg struct{}

// waitForEvent returns a command that blocks until the next change event
func (m *Model) waitForEvent() tea.Cmd {
	ch := m.events
	return func() tea.Msg {
		event, ok := <-ch
		if !ok {
			return eventsClosedMsg{}
		}
		return eventMsg(event)
	}
}

// handleEvent reloads after another process rewrote storage and re-reads the
// snapshot after any store change, then waits for the next event.
func (m *Model) handleEvent(event events.Event) tea.Cmd {
	switch event.Type {
	case events.EventStorageChanged:
		ctx, cancel := context.WithTimeout(m.ctx, mutationTimeout)
		err := m.store.Rehydrate(ctx)
		cancel()
		if err != nil {
			m.logger.Error("reload after storage change failed", "error", err)
			m.notifyError("Reload failed: " + err.Error())
		} else {
			m.logger.Debug("reloaded after storage change", "sequence_id", event.SequenceID)
		}
		m.refresh()
	case events.EventStateChanged:
		m.refresh()
	}
	return m.waitForEvent()
}
