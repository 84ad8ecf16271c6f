package pet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// Store reads and writes game snapshots
type Store interface {
	// Load returns the saved snapshot, or nil when nothing has been saved yet
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snap Snapshot) error
	Close() error
}

// DefaultStateDir returns ~/.config/candygalaxy
func DefaultStateDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "candygalaxy"), nil
}

// DecodeSnapshot parses saved JSON on top of the defaults, so fields missing
// from older saves keep their initial values.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	snap := DefaultSnapshot()
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}

// EncodeSnapshot renders a snapshot as indented JSON
func EncodeSnapshot(snap Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// FileStore keeps the snapshot in a single JSON file
type FileStore struct {
	path string
}

// NewFileStore returns a store writing to path, creating its directory
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create state directory: %w", err)
	}
	return &FileStore{path: path}, nil
}

// Path returns the file the store writes to
func (s *FileStore) Path() string {
	return s.path
}

// Load implements Store
func (s *FileStore) Load(ctx context.Context) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}
	return DecodeSnapshot(data)
}

// Save implements Store. The file is replaced atomically.
func (s *FileStore) Save(ctx context.Context, snap Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := EncodeSnapshot(snap)
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}

// Close implements Store
func (s *FileStore) Close() error {
	return nil
}

// LoadState restores the game from store. Offline decay is left to the caller.
// A missing or unreadable save starts a fresh game.
func LoadState(ctx context.Context, store Store) *State {
	snap, err := store.Load(ctx)
	if err != nil {
		log.Printf("Error loading state: %v. Starting new game.", err)
		return NewState()
	}
	if snap == nil {
		log.Printf("No saved game found. Starting new game.")
		return NewState()
	}
	log.Printf("last activity: %s", snap.LastActivityTime.UTC())
	return FromSnapshot(snap)
}

// SaveState writes the engine's state to store, logging failures
func SaveState(ctx context.Context, store Store, s *State) {
	if err := store.Save(ctx, s.Snapshot()); err != nil {
		log.Printf("Error saving state: %v", err)
	}
}
