package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/quickopen/quickopen/internal/atomicfile"
)

// persistedState is the on-disk shape. Unknown fields in an existing file
// are ignored on load; a missing file loads as the empty default.
type persistedState struct {
	Commands []*Command `json:"commands"`
}

// Store persists the ordered shortcut list.
type Store interface {
	Load() ([]*Command, error)
	Save(commands []*Command) error
}

// FileStore keeps the shortcut list as JSON under the vault's quickopen
// state directory.
type FileStore struct {
	path string
}

// StatePath returns the shortcuts file path for a vault.
func StatePath(vaultPath string) string {
	return filepath.Join(vaultPath, ".quickopen", "commands.json")
}

// NewFileStore creates a store writing to the vault's commands.json.
func NewFileStore(vaultPath string) *FileStore {
	return &FileStore{path: StatePath(vaultPath)}
}

// Load reads the persisted shortcut list. A missing file is an empty list.
func (s *FileStore) Load() ([]*Command, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read shortcuts %s: %w", s.path, err)
	}

	var state persistedState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse shortcuts %s: %w", s.path, err)
	}
	return state.Commands, nil
}

// Save writes the shortcut list atomically, creating the state directory
// as needed.
func (s *FileStore) Save(commands []*Command) error {
	if commands == nil {
		commands = []*Command{}
	}

	data, err := json.MarshalIndent(persistedState{Commands: commands}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal shortcuts: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	if err := atomicfile.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write shortcuts %s: %w", s.path, err)
	}

	return nil
}
