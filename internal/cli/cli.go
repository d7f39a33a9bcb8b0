// Package cli holds the shared plumbing of the kanban subcommands: application
// setup, reference resolution, output formatting and exit codes.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/logging"
)

type contextKey int

const (
	appKey contextKey = iota
	overridesKey
)

// Overrides are the root persistent flags that take precedence over the config file
type Overrides struct {
	Backend string
	DataDir string
}

// WithApp returns ctx carrying a ready application. NewCLI uses it instead of
// opening storage, which lets tests run commands against an in-memory store.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// WithOverrides returns ctx carrying flag overrides for NewCLI
func WithOverrides(ctx context.Context, o Overrides) context.Context {
	return context.WithValue(ctx, overridesKey, o)
}

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with the store
	Ctx context.Context

	owned   bool
	logFile io.Closer
}

// NewCLI loads the config, starts file logging and opens the application.
// An application already present in ctx is reused and left open on Close.
func NewCLI(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		styles.Init(a.Config.ColorScheme)
		return &CLI{App: a, Ctx: ctx}, nil
	}

	cfg, err := LoadConfig(ctx)
	if err != nil {
		return nil, err
	}

	logFile, err := logging.Init(cfg.LogDir(), cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	a, err := app.New(ctx, cfg, app.WithLogger(slog.Default()))
	if err != nil {
		_ = logFile.Close()
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	styles.Init(cfg.ColorScheme)
	return &CLI{App: a, Ctx: ctx, owned: true, logFile: logFile}, nil
}

// LoadConfig reads the config file and applies flag overrides from ctx
func LoadConfig(ctx context.Context) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if o, ok := ctx.Value(overridesKey).(Overrides); ok {
		if o.Backend != "" {
			cfg.Storage.Backend = o.Backend
		}
		if o.DataDir != "" {
			cfg.Storage.DataDir = o.DataDir
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	err := c.App.Close()
	if c.logFile != nil {
		if closeErr := c.logFile.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}
	return err
}
