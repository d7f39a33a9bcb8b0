// Package store holds the board state in memory and mirrors every change to a
// storage backend.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/storage"
)

// Listener receives a private snapshot after every change
type Listener func(models.State)

// Store is the single mutable state container.
// Mutations apply in memory, save a snapshot, then notify listeners.
type Store struct {
	mu      sync.RWMutex
	state   models.State
	backend storage.Backend
	closed  bool

	now       func() time.Time
	newID     func() string
	logger    *slog.Logger
	publisher events.Publisher

	subMu     sync.Mutex
	listeners map[int]Listener
	nextSub   int
}

// Option configures a Store
type Option func(*Store)

// WithClock overrides time.Now for task timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator overrides uuid.NewString for new entities
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		s.newID = newID
	}
}

// WithLogger sets the logger used for mutation and persistence logs
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithPublisher publishes an EventStateChanged after every mutation
func WithPublisher(pub events.Publisher) Option {
	return func(s *Store) {
		s.publisher = pub
	}
}

// New creates an empty store backed by backend. A nil backend keeps state in memory only.
func New(backend storage.Backend, opts ...Option) *Store {
	s := &Store{
		state:     models.NewState(),
		backend:   backend,
		now:       time.Now,
		newID:     uuid.NewString,
		logger:    slog.Default(),
		listeners: make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open creates a store and rehydrates it from backend
func Open(ctx context.Context, backend storage.Backend, opts ...Option) (*Store, error) {
	s := New(backend, opts...)
	if err := s.Rehydrate(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the backend. Later mutations fail with ErrClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	if s.backend == nil {
		return nil
	}
	return s.backend.Close()
}

// mutate runs fn against the live state under the write lock. fn must leave the
// state untouched when it returns an error.
func (s *Store) mutate(ctx context.Context, op, boardID string, fn func(*models.State) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if err := fn(&s.state); err != nil {
		s.mu.Unlock()
		s.logger.Debug("mutation rejected", "op", op, "board_id", boardID, "error", err)
		return err
	}
	snapshot := s.state.Clone()

	var saveErr error
	if s.backend != nil {
		// Saving under the lock keeps the medium in mutation order
		saveErr = s.backend.Save(ctx, snapshot)
	}
	s.mu.Unlock()

	if saveErr != nil {
		s.logger.Error("failed to persist state", "op", op, "board_id", boardID, "error", saveErr)
		saveErr = fmt.Errorf("%w: %w", ErrPersist, saveErr)
	} else {
		s.logger.Debug("state changed", "op", op, "board_id", boardID)
	}

	s.notify(snapshot, boardID)
	return saveErr
}

func (s *Store) notify(snapshot models.State, boardID string) {
	s.subMu.Lock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.subMu.Unlock()

	for _, l := range listeners {
		l(snapshot.Clone())
	}

	if s.publisher != nil {
		s.publisher.Publish(events.Event{
			Type:      events.EventStateChanged,
			BoardID:   boardID,
			Timestamp: s.now(),
		})
	}
}

// Subscribe registers fn for change notifications and returns a function that
// removes it. Listeners run synchronously on the mutating goroutine.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.listeners[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.listeners, id)
			s.subMu.Unlock()
		})
	}
}

// Rehydrate replaces the in-memory state with what the backend holds and
// notifies listeners. Nothing is saved.
func (s *Store) Rehydrate(ctx context.Context) error {
	if s.backend == nil {
		return nil
	}

	s.mu.Lock()
	loaded, err := s.backend.Load(ctx)
	if err != nil {
		s.mu.Unlock()
		s.logger.Error("failed to load state", "error", err)
		return fmt.Errorf("failed to load state: %w", err)
	}
	loaded.Normalize()
	s.state = loaded.Clone()
	snapshot := s.state.Clone()
	s.mu.Unlock()

	s.logger.Debug("state rehydrated", "boards", len(snapshot.Boards), "active_board", snapshot.ActiveBoard)
	s.notify(snapshot, "")
	return nil
}

// Snapshot returns a deep copy of the current state
func (s *Store) Snapshot() models.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// ActiveBoard returns a copy of the active board
func (s *Store) ActiveBoard() (*models.Board, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.state.Active()
	if !ok {
		return nil, false
	}
	cp := b.Clone()
	return &cp, true
}

// Board returns a copy of the board with the given ID
func (s *Store) Board(boardID string) (*models.Board, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.state.Board(boardID)
	if !ok {
		return nil, false
	}
	cp := b.Clone()
	return &cp, true
}
