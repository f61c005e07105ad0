package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go

const FileName = "shell_preferences.json"

// Store loads and saves Preferences.
type Store interface {
	// Load returns the saved preferences, or the zero Preferences when
	// nothing usable is on disk. It never fails.
	Load() Preferences
	Save(p Preferences) error
	Path() string
}

// FileStore keeps preferences in a single JSON file.
type FileStore struct {
	path string
}

// DefaultPath returns <user config dir>/<appID>/shell_preferences.json,
// falling back to the working directory when there is no config dir.
func DefaultPath(appID string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, appID, FileName)
}

// NewFileStore returns a store for appID's default path.
func NewFileStore(appID string) *FileStore {
	return &FileStore{path: DefaultPath(appID)}
}

// NewFileStoreAt returns a store for an explicit file path.
func NewFileStoreAt(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Load() Preferences {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("warning: read preferences %s: %v", s.path, err)
		}
		return Preferences{}
	}

	var p Preferences
	if err := json.Unmarshal(data, &p); err != nil {
		log.Printf("warning: parse preferences %s: %v", s.path, err)
		return Preferences{}
	}
	return p
}

// Encode renders p the way it is stored on disk.
func Encode(p Preferences) ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal preferences: %w", err)
	}
	return append(data, '\n'), nil
}

// Save writes p atomically: a temp file next to the target, then rename.
func (s *FileStore) Save(p Preferences) error {
	data, err := Encode(p)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create preferences dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp preferences file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename preferences file: %w", err)
	}
	return nil
}

func (s *FileStore) Remove() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove preferences file: %w", err)
	}
	return nil
}
