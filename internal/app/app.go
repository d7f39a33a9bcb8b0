// Package app wires configuration, storage, the store and change events together.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/storage"
	"github.com/thenoetrevino/kanban/internal/store"

	// Storage backends register themselves with storage.Open
	_ "github.com/thenoetrevino/kanban/internal/storage/jsonfile"
	_ "github.com/thenoetrevino/kanban/internal/storage/sqlite"
)

// App holds the application services and provides dependency injection.
// This is the main application container that manages their lifecycles.
type App struct {
	Config *config.Config
	Store  *store.Store
	Events *events.Bus

	backend storage.Backend
	watcher *events.Watcher
	logger  *slog.Logger
}

// New opens the configured backend and rehydrates a store from it.
// This is the single entry point for creating the application container.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	o := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}
	if cfg == nil {
		cfg = config.Default()
	}

	backend := o.backend
	if backend == nil {
		var err error
		backend, err = storage.Open(ctx, storage.Options{
			Backend: cfg.Storage.Backend,
			DataDir: cfg.Storage.DataDir,
		})
		if err != nil {
			return nil, fmt.Errorf("open storage: %w", err)
		}
	}

	bus := events.NewBus()
	storeOpts := append([]store.Option{
		store.WithPublisher(bus),
		store.WithLogger(o.logger),
	}, o.storeOptions...)

	st, err := store.Open(ctx, backend, storeOpts...)
	if err != nil {
		bus.Close()
		if closeErr := backend.Close(); closeErr != nil {
			o.logger.Error("failed to close storage", "error", closeErr)
		}
		return nil, err
	}

	o.logger.Info("application started",
		"backend", cfg.Storage.Backend,
		"data_dir", cfg.Storage.DataDir,
		"boards", len(st.Snapshot().Boards))

	return &App{
		Config:  cfg,
		Store:   st,
		Events:  bus,
		backend: backend,
		logger:  o.logger,
	}, nil
}

// Logger returns the logger the app was built with
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// StoragePath returns the file the backend writes, when it writes a single file
func (a *App) StoragePath() (string, bool) {
	p, ok := a.backend.(storage.Pather)
	if !ok {
		return "", false
	}
	return p.Path(), true
}

// StartWatcher publishes EventStorageChanged on a.Events whenever another
// process rewrites the storage file. It is a no-op when watching is disabled
// or the backend is not file based.
func (a *App) StartWatcher(ctx context.Context) error {
	if !a.Config.Storage.Watch || a.watcher != nil {
		return nil
	}
	path, ok := a.StoragePath()
	if !ok {
		return nil
	}

	w, err := events.NewWatcher(path, a.Events)
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		w.Stop()
		return err
	}
	a.watcher = w
	return nil
}

// Close stops the watcher, closes listener channels and the backend
func (a *App) Close() error {
	if a.watcher != nil {
		a.watcher.Stop()
		a.watcher = nil
	}
	a.Events.Close()

	var errs []error
	if err := a.Store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close storage: %w", err))
	}
	return errors.Join(errs...)
}
