// Package events carries change notifications between the store, the storage
// file watcher and the TUI.
package events

import "time"

// EventType indicates what kind of change occurred
type EventType string

const (
	// EventStateChanged is published after the in-process store changed
	EventStateChanged EventType = "state_changed"
	// EventStorageChanged is published when another process rewrote the storage medium
	EventStorageChanged EventType = "storage_changed"
)

// Event represents a state change notification
type Event struct {
	Type       EventType
	BoardID    string    // Board that was modified, empty when unknown or global
	Timestamp  time.Time // When the event occurred
	SequenceID int64     // Monotonically increasing sequence number for ordering
}

// Publisher accepts events for delivery
type Publisher interface {
	Publish(event Event)
}

// PublisherFunc adapts a function to Publisher
type PublisherFunc func(Event)

// Publish calls f(event)
func (f PublisherFunc) Publish(event Event) {
	f(event)
}
