// Package settings stores the user's boolean preferences, such as dark mode.
//
// The ledger never reads settings: presentation layers receive a Store explicitly.
package settings

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Well-known preference keys.
const (
	DarkMode      = "isDarkMode"
	NumbersHidden = "isNumbersHidden"
)

// Defaults are the values of preferences never written.
var Defaults = map[string]bool{
	DarkMode:      false,
	NumbersHidden: false,
}

// Store is a key/value store of boolean preferences.
type Store interface {
	Bool(key string) (bool, error)
	SetBool(key string, value bool) error
}

// Toggle flips a preference and returns its new value.
func Toggle(s Store, key string) (bool, error) {
	v, err := s.Bool(key)
	if err != nil {
		return false, err
	}
	if err := s.SetBool(key, !v); err != nil {
		return false, err
	}
	return !v, nil
}

// MemoryStore keeps preferences in memory. Its zero value is ready to use.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]bool
}

func (m *MemoryStore) Bool(key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.values[key]; ok {
		return v, nil
	}
	return Defaults[key], nil
}

func (m *MemoryStore) SetBool(key string, value bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = make(map[string]bool)
	}
	m.values[key] = value
	return nil
}

// FileStore persists preferences in a YAML file.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// DefaultPath returns the settings file in the user's configuration directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "networth", "settings.yaml")
}

// Open returns a FileStore on path, seeding the file with Defaults when it does not exist.
func Open(path string) (*FileStore, error) {
	s := &FileStore{path: path}
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("create-settings-file name=%q", path)
		if err := s.write(Defaults); err != nil {
			return nil, err
		}
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open settings %q: %w", path, err)
	}
	return s, nil
}

// Path returns the file backing the store.
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Bool(key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	values, err := s.read()
	if err != nil {
		return false, err
	}
	if v, ok := values[key]; ok {
		return v, nil
	}
	return Defaults[key], nil
}

func (s *FileStore) SetBool(key string, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	values, err := s.read()
	if err != nil {
		return err
	}
	values[key] = value
	log.Printf("set-setting key=%s value=%t", key, value)
	return s.write(values)
}

func (s *FileStore) read() (map[string]bool, error) {
	values := make(map[string]bool)
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return values, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read settings %q: %w", s.path, err)
	}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("invalid settings file %q: %w", s.path, err)
	}
	return values, nil
}

func (s *FileStore) write(values map[string]bool) error {
	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("cannot encode settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("cannot create settings folder: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write settings %q: %w", s.path, err)
	}
	return nil
}
