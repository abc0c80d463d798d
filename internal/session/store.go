package session

import (
	"encoding/json"
	"fmt"
	"os"
)

// Store persists session state between runs. It is the equivalent of the
// browser's key-value storage in the original dashboard.
type Store interface {
	// Load returns the persisted state, or nil if nothing is persisted
	Load() (*State, error)

	// Save persists the state
	Save(state State) error

	// Clear removes any persisted state
	Clear() error
}

type fileStore struct {
	path string
}

// NewFileStore persists session state as a JSON file at the given path
func NewFileStore(path string) Store {
	return &fileStore{path: path}
}

func (f *fileStore) Load() (*State, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("parse session file: %w", err)
	}

	return &state, nil
}

func (f *fileStore) Save(state State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	// The token is a credential; keep the file owner-only.
	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}

	return nil
}

func (f *fileStore) Clear() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
