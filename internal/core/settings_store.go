package core

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"cobbler/internal/state"
)

// SettingsStore abstracts settings persistence for testability.
type SettingsStore interface {
	Load() (state.Settings, error)
	Save(state.Settings) error
}

// DefaultSettingsPath returns the settings file under the user config dir.
func DefaultSettingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("no user config directory: %w", err)
	}
	return filepath.Join(dir, "cobbler", "settings.toml"), nil
}

// FileSettingsStore implements SettingsStore using a TOML file.
type FileSettingsStore struct {
	File string
}

func NewFileSettingsStore(file string) *FileSettingsStore {
	return &FileSettingsStore{File: file}
}

func (fs *FileSettingsStore) Load() (state.Settings, error) {
	s, err := state.LoadFromFile(fs.File)
	if err != nil {
		return state.Default(), err
	}
	return *s, nil
}

func (fs *FileSettingsStore) Save(s state.Settings) error {
	s.Normalize()
	return s.SaveToFile(fs.File)
}

// InMemorySettingsStore implements SettingsStore for testing (no disk I/O).
type InMemorySettingsStore struct {
	mu       sync.Mutex
	settings state.Settings
}

func NewInMemorySettingsStore() *InMemorySettingsStore {
	return &InMemorySettingsStore{settings: state.Default()}
}

func (ms *InMemorySettingsStore) Load() (state.Settings, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return copySettings(ms.settings), nil
}

func (ms *InMemorySettingsStore) Save(s state.Settings) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	s.Normalize()
	ms.settings = copySettings(s)
	return nil
}

// copySettings keeps callers from mutating the stored recent files slice.
func copySettings(s state.Settings) state.Settings {
	if s.RecentFiles != nil {
		s.RecentFiles = append([]string(nil), s.RecentFiles...)
	}
	return s
}

// RememberFile records path at the front of the recent files list.
func RememberFile(store SettingsStore, path string) error {
	s, err := store.Load()
	if err != nil {
		return err
	}
	s.AddRecentFile(path)
	return store.Save(s)
}
