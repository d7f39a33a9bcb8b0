// Package jsonfile stores the board state as a single JSON document on disk,
// the terminal counterpart of the browser's local storage entry
package jsonfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/storage"
)

// FileName is the name of the state file inside the data directory
const FileName = StorageKey + ".json"

func init() {
	storage.Register(storage.BackendJSON, func(ctx context.Context, dataDir string) (storage.Backend, error) {
		return Open(filepath.Join(dataDir, FileName))
	})
}

// File is a storage.Backend backed by one JSON file
type File struct {
	mu   sync.Mutex
	path string
}

var (
	_ storage.Backend = (*File)(nil)
	_ storage.Pather  = (*File)(nil)
)

// Open prepares a File backend at path, creating the parent directory
func Open(path string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &File{path: path}, nil
}

// Path returns the location of the state file
func (f *File) Path() string {
	return f.path
}

// Load reads the state file. A missing file is an empty state.
func (f *File) Load(ctx context.Context) (*models.State, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		s := models.NewState()
		return &s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", f.path, err)
	}

	state, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", f.path, err)
	}
	return state, nil
}

// Save writes the state atomically: a temp file in the same directory is renamed over
// the previous one, so readers never see a partial document
func (f *File) Save(ctx context.Context, state models.State) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := Encode(&buf, state); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	tmp, err := os.CreateTemp(filepath.Dir(f.path), "."+FileName+".*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			if rmErr := os.Remove(tmpName); rmErr != nil {
				slog.Error("failed to remove temp file", "path", tmpName, "error", rmErr)
			}
		}
	}()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("replacing %s: %w", f.path, err)
	}
	return nil
}

// Close is a no-op; the file is not held open between calls
func (f *File) Close() error {
	return nil
}
