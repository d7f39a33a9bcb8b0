package events

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

const testDebounce = 30 * time.Millisecond

func setupWatcher(t *testing.T) (string, *Watcher, <-chan Event, context.CancelFunc) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "kanban-storage.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	bus := NewBus()
	ctx, cancel := context.WithCancel(context.Background())
	ch := bus.Listen(ctx)

	w, err := NewWatcher(path, bus, WithDebounce(testDebounce))
	require.NoError(t, err)
	require.NoError(t, w.Start(ctx))

	return path, w, ch, func() {
		w.Stop()
		cancel()
		bus.Close()
	}
}

func waitForEvent(t *testing.T, ch <-chan Event, timeout time.Duration) (Event, bool) {
	t.Helper()
	select {
	case e, ok := <-ch:
		return e, ok
	case <-time.After(timeout):
		return Event{}, false
	}
}

func TestWatcher_ReportsRewrite(t *testing.T) {
	defer goleak.VerifyNone(t)
	path, _, ch, cleanup := setupWatcher(t)
	defer cleanup()

	require.NoError(t, os.WriteFile(path, []byte(`{"state":{}}`), 0o644))

	e, ok := waitForEvent(t, ch, 2*time.Second)
	require.True(t, ok, "expected a storage_changed event")
	assert.Equal(t, EventStorageChanged, e.Type)
	assert.Positive(t, e.SequenceID)
}

func TestWatcher_ReportsAtomicReplace(t *testing.T) {
	defer goleak.VerifyNone(t)
	path, _, ch, cleanup := setupWatcher(t)
	defer cleanup()

	tmp := filepath.Join(filepath.Dir(path), ".tmp-replace")
	require.NoError(t, os.WriteFile(tmp, []byte(`{"state":{}}`), 0o644))
	require.NoError(t, os.Rename(tmp, path))

	_, ok := waitForEvent(t, ch, 2*time.Second)
	assert.True(t, ok, "rename onto the storage file should be reported")
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	defer goleak.VerifyNone(t)
	path, _, ch, cleanup := setupWatcher(t)
	defer cleanup()

	other := filepath.Join(filepath.Dir(path), "notes.txt")
	require.NoError(t, os.WriteFile(other, []byte("hello"), 0o644))

	_, ok := waitForEvent(t, ch, 10*testDebounce)
	assert.False(t, ok, "unrelated files must not trigger events")
}

func TestWatcher_DebouncesBursts(t *testing.T) {
	defer goleak.VerifyNone(t)
	path, _, ch, cleanup := setupWatcher(t)
	defer cleanup()

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte{byte('a' + i)}, 0o644))
	}

	_, ok := waitForEvent(t, ch, 2*time.Second)
	require.True(t, ok)
	_, again := waitForEvent(t, ch, 10*testDebounce)
	assert.False(t, again, "a burst of writes should produce a single event")
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	defer goleak.VerifyNone(t)

	w, err := NewWatcher(filepath.Join(t.TempDir(), "kanban.db"), nil)
	require.NoError(t, err)

	// Stop without Start releases the OS watcher
	w.Stop()
	w.Stop()

	assert.ErrorIs(t, w.Start(context.Background()), ErrWatcherClosed)
}

func TestWatcher_StopsOnContextCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	w, err := NewWatcher(filepath.Join(dir, "kanban.db"), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx))
	require.NoError(t, w.Start(ctx), "second Start is a no-op")
	cancel()

	select {
	case <-w.doneCh:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher loop did not exit on cancel")
	}
	w.Stop()
}

func TestWatcher_RelevantIncludesSQLiteCompanions(t *testing.T) {
	w := &Watcher{base: "kanban.db"}
	assert.True(t, w.relevant("/data/kanban.db"))
	assert.True(t, w.relevant("/data/kanban.db-wal"))
	assert.False(t, w.relevant("/data/other.db"))
}
