package events

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// listenerBuffer is the per-listener channel capacity. A listener that falls
// further behind loses events; every event means "reload", so one pending is enough.
const listenerBuffer = 16

// Bus fans events out to in-process listeners
type Bus struct {
	mu        sync.Mutex
	listeners map[int]chan Event
	nextID    int
	sequence  int64
	closed    bool
	done      chan struct{}
	now       func() time.Time
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[int]chan Event),
		done:      make(chan struct{}),
		now:       time.Now,
	}
}

// Publish stamps the event with a sequence number (and timestamp when unset)
// and delivers it to every listener without blocking.
func (b *Bus) Publish(event Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	b.sequence++
	event.SequenceID = b.sequence
	if event.Timestamp.IsZero() {
		event.Timestamp = b.now()
	}

	for id, ch := range b.listeners {
		select {
		case ch <- event:
		default:
			slog.Debug("event dropped for slow listener",
				"listener", id,
				"event_type", event.Type,
				"sequence_id", event.SequenceID)
		}
	}
}

// Listen returns a channel receiving every event published after the call.
// The channel is closed when ctx is done or the bus is closed.
func (b *Bus) Listen(ctx context.Context) <-chan Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, listenerBuffer)
	if b.closed {
		close(ch)
		return ch
	}

	id := b.nextID
	b.nextID++
	b.listeners[id] = ch

	go func() {
		select {
		case <-ctx.Done():
			b.remove(id)
		case <-b.done:
		}
	}()

	return ch
}

func (b *Bus) remove(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.listeners[id]; ok {
		delete(b.listeners, id)
		close(ch)
	}
}

// Close closes every listener channel. Later publishes are ignored.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	close(b.done)
	for id, ch := range b.listeners {
		delete(b.listeners, id)
		close(ch)
	}
}
