package app

import (
	"log/slog"

	"github.com/thenoetrevino/kanban/internal/storage"
	"github.com/thenoetrevino/kanban/internal/store"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	backend      storage.Backend
	logger       *slog.Logger
	storeOptions []store.Option
}

// WithBackend uses backend instead of the one named in the config
func WithBackend(backend storage.Backend) Option {
	return func(cfg *appConfig) {
		cfg.backend = backend
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithStoreOptions passes extra options to the store
func WithStoreOptions(opts ...store.Option) Option {
	return func(cfg *appConfig) {
		cfg.storeOptions = append(cfg.storeOptions, opts...)
	}
}
