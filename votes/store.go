package votes

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	appName   = "northlight"
	storeFile = "votes.yaml"
)

// Store is the scoped persistence collaborator the ledger reads and writes
// through: string lists addressed by a fixed key. Host applications backed
// by platform preference systems (UserDefaults, SharedPreferences, a
// database) implement this; FileStore is the default for plain Go hosts.
type Store interface {
	// Load returns the list stored under key, or nil when nothing is stored
	Load(key string) ([]string, error)
	// Save replaces the list stored under key
	Save(key string, values []string) error
}

// storeDocument is the on-disk shape of a FileStore
type storeDocument struct {
	Version int                 `yaml:"version"`
	Entries map[string][]string `yaml:"entries,omitempty"`
}

// FileStore persists string lists in a YAML file in the OS config directory.
// Writes are atomic (temp file + rename) so a crash mid-write can never
// corrupt the stored set.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a file store at the given path. An empty path uses
// the platform default: <user config dir>/northlight/votes.yaml.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("cannot determine config directory: %w", err)
		}
		path = filepath.Join(base, appName, storeFile)
	}
	return &FileStore{path: path}, nil
}

// Path returns the file the store persists to
func (s *FileStore) Path() string {
	return s.path
}

// Load returns the list stored under key. A missing file is not an error;
// it means nothing has been stored yet.
func (s *FileStore) Load(key string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return doc.Entries[key], nil
}

// Save replaces the list stored under key, preserving other keys
func (s *FileStore) Save(key string, values []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	if doc.Entries == nil {
		doc.Entries = make(map[string][]string)
	}
	doc.Entries[key] = values

	return s.write(doc)
}

func (s *FileStore) read() (*storeDocument, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return &storeDocument{Version: 1}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read vote store: %w", err)
	}

	var doc storeDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse vote store: %w", err)
	}
	if doc.Version != 0 && doc.Version != 1 {
		return nil, fmt.Errorf("unsupported vote store version: %d (expected 1)", doc.Version)
	}
	doc.Version = 1
	return &doc, nil
}

func (s *FileStore) write(doc *storeDocument) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal vote store: %w", err)
	}

	// Write to temporary file first, then rename (atomic on all platforms)
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary store file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save vote store: %w", err)
	}
	return nil
}
