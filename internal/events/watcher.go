package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed is returned by Start after Stop
var ErrWatcherClosed = errors.New("storage watcher is closed")

// DefaultDebounce is how long the storage file must stay quiet before a change is reported
const DefaultDebounce = 150 * time.Millisecond

// Watcher reports rewrites of a storage file made by other processes.
// It watches the parent directory, because atomic saves replace the file
// through a rename and a watch on the file itself would be lost.
type Watcher struct {
	mu          sync.Mutex
	watcher     *fsnotify.Watcher
	dir         string
	base        string
	publisher   Publisher
	debounceDur time.Duration
	lastChange  time.Time
	pending     bool
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool
	closeOnce   sync.Once
}

// WatcherOption configures a Watcher
type WatcherOption func(*Watcher)

// WithDebounce overrides DefaultDebounce
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.debounceDur = d
	}
}

// NewWatcher creates a watcher for the file at path that publishes
// EventStorageChanged events to pub.
func NewWatcher(path string, pub Publisher, opts ...WatcherOption) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &Watcher{
		watcher:     fsw,
		dir:         filepath.Dir(path),
		base:        filepath.Base(path),
		publisher:   pub,
		debounceDur: DefaultDebounce,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Start begins watching. It is non-blocking and a no-op when already running.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}
	if w.watcher == nil {
		return ErrWatcherClosed
	}
	if err := w.watcher.Add(w.dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}
	w.running = true

	slog.Debug("storage watcher started", "dir", w.dir, "file", w.base)
	go w.run(ctx)
	return nil
}

// Stop stops the watcher, waits for its goroutine and releases the OS handle.
// It is safe to call more than once, and without a prior Start.
func (w *Watcher) Stop() {
	w.mu.Lock()
	wasRunning := w.running
	w.running = false
	w.mu.Unlock()

	if wasRunning {
		w.closeOnce.Do(func() { close(w.stopCh) })
		<-w.doneCh
	}

	if err := w.close(); err != nil {
		slog.Error("error closing storage watcher", "error", err)
	}
}

func (w *Watcher) close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	var err error
	w.closeOnce.Do(func() { close(w.stopCh) })
	if w.watcher != nil {
		err = w.watcher.Close()
		w.watcher = nil
	}
	return err
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	tick := w.debounceDur / 3
	if tick <= 0 {
		tick = time.Millisecond
	}
	debounceTicker := time.NewTicker(tick)
	defer debounceTicker.Stop()

	events := w.watcher.Events
	errs := w.watcher.Errors

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.stopCh:
			return

		case event, ok := <-events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-errs:
			if !ok {
				return
			}
			slog.Warn("storage watcher error", "error", err)

		case <-debounceTicker.C:
			w.flush()
		}
	}
}

// relevant reports whether name is the storage file or one of its
// companions (sqlite -wal/-shm files).
func (w *Watcher) relevant(name string) bool {
	return strings.HasPrefix(filepath.Base(name), w.base)
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !w.relevant(event.Name) {
		return
	}
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return
	}

	w.mu.Lock()
	w.lastChange = time.Now()
	w.pending = true
	w.mu.Unlock()
}

func (w *Watcher) flush() {
	w.mu.Lock()
	if !w.pending || time.Since(w.lastChange) < w.debounceDur {
		w.mu.Unlock()
		return
	}
	w.pending = false
	w.mu.Unlock()

	slog.Debug("storage file changed", "file", filepath.Join(w.dir, w.base))
	if w.publisher != nil {
		w.publisher.Publish(Event{Type: EventStorageChanged, Timestamp: time.Now()})
	}
}
