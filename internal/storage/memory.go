package storage

import (
	"context"
	"sync"

	"github.com/thenoetrevino/kanban/internal/models"
)

// Memory keeps the last saved snapshot in process memory
type Memory struct {
	mu    sync.Mutex
	state *models.State
	saves int
}

// NewMemory creates an empty in-memory backend
func NewMemory() *Memory {
	return &Memory{}
}

// NewMemoryWith creates an in-memory backend pre-loaded with state
func NewMemoryWith(state models.State) *Memory {
	cp := state.Clone()
	return &Memory{state: &cp}
}

// Load returns a copy of the last saved state
func (m *Memory) Load(ctx context.Context) (*models.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == nil {
		s := models.NewState()
		return &s, nil
	}
	cp := m.state.Clone()
	return &cp, nil
}

// Save stores a copy of state
func (m *Memory) Save(ctx context.Context, state models.State) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := state.Clone()
	m.state = &cp
	m.saves++
	return nil
}

// Saves returns how many times Save succeeded
func (m *Memory) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// Close is a no-op
func (m *Memory) Close() error {
	return nil
}
