// Package storage defines the persistence adapters the board store mirrors its state to
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/thenoetrevino/kanban/internal/models"
)

// Backend names accepted by Open
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name
var ErrUnknownBackend = errors.New("unknown storage backend")

// Backend persists whole snapshots of the board state.
// Load on an empty medium returns an empty state, never an error.
type Backend interface {
	Load(ctx context.Context) (*models.State, error)
	Save(ctx context.Context, state models.State) error
	Close() error
}

// Pather is implemented by backends that live in a single file.
type Pather interface {
	Path() string
}

// Options selects and configures a backend
type Options struct {
	Backend string
	DataDir string
}

// Opener creates a backend for the given data directory
type Opener func(ctx context.Context, dataDir string) (Backend, error)

var openers = map[string]Opener{
	BackendMemory: func(context.Context, string) (Backend, error) { return NewMemory(), nil },
}

// Register makes a backend available to Open. Backend packages call it from init.
func Register(name string, open Opener) {
	openers[name] = open
}

// Open returns the backend named in opts
func Open(ctx context.Context, opts Options) (Backend, error) {
	name := strings.ToLower(strings.TrimSpace(opts.Backend))
	if name == "" {
		name = BackendJSON
	}
	open, ok := openers[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (must be: json, sqlite, memory)", ErrUnknownBackend, opts.Backend)
	}
	return open(ctx, opts.DataDir)
}
