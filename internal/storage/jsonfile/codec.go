package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/thenoetrevino/kanban/internal/models"
)

// StorageKey is the name the state is stored under, shared with the browser build
const StorageKey = "kanban-storage"

// Version is the envelope version this package writes
const Version = 0

// ErrUnsupportedVersion is returned when the stored envelope is newer than Version
var ErrUnsupportedVersion = errors.New("unsupported storage version")

// envelope mirrors the persist middleware layout: {"state": {...}, "version": 0}
type envelope struct {
	State   persistedState `json:"state"`
	Version int            `json:"version"`
}

type persistedState struct {
	Boards      []models.Board `json:"boards"`
	ActiveBoard *string        `json:"activeBoard"`
}

// Encode writes state as an indented envelope
func Encode(w io.Writer, state models.State) error {
	state = state.Clone()
	state.Normalize()

	env := envelope{
		State:   persistedState{Boards: state.Boards},
		Version: Version,
	}
	if state.ActiveBoard != "" {
		active := state.ActiveBoard
		env.State.ActiveBoard = &active
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(env); err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}
	return nil
}

// Decode reads an envelope. An empty input decodes to an empty state.
func Decode(r io.Reader) (*models.State, error) {
	var env envelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		if errors.Is(err, io.EOF) {
			s := models.NewState()
			return &s, nil
		}
		return nil, fmt.Errorf("decoding state: %w", err)
	}
	if env.Version > Version {
		return nil, fmt.Errorf("%w: %d (newest known is %d)", ErrUnsupportedVersion, env.Version, Version)
	}

	state := models.State{Boards: env.State.Boards}
	if env.State.ActiveBoard != nil {
		state.ActiveBoard = *env.State.ActiveBoard
	}
	state.Normalize()
	return &state, nil
}
