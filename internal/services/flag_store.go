package services

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"termfolio/internal/logger"
)

// Flag keys persisted between sessions.
const (
	FlagTheme = "theme"
)

// FlagStore keeps small local flags, such as the chosen theme, in a YAML
// file. An empty path keeps the flags in memory only.
type FlagStore struct {
	initialized bool
	path        string
	mu          sync.RWMutex
	flags       map[string]string
}

type flagFile struct {
	Flags map[string]string `yaml:"flags"`
}

// NewFlagStore creates a store backed by path.
func NewFlagStore(path string) *FlagStore {
	return &FlagStore{
		path:  path,
		flags: make(map[string]string),
	}
}

// Name returns the service name "flags" for registration.
func (s *FlagStore) Name() string {
	return "flags"
}

// Initialize loads the flag file. A missing file is not an error.
func (s *FlagStore) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	if s.path == "" {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug("No flag file yet", "path", s.path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read flag file: %w", err)
	}

	var file flagFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse flag file %s: %w", s.path, err)
	}
	for k, v := range file.Flags {
		s.flags[k] = v
	}
	logger.Debug("Flags loaded", "path", s.path, "count", len(s.flags))
	return nil
}

// Get returns the value of key.
func (s *FlagStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.flags[key]
	return value, ok
}

// Set stores key and writes the flag file.
func (s *FlagStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return ErrNotInitialized
	}
	s.flags[key] = value
	return s.save()
}

func (s *FlagStore) save() error {
	if s.path == "" {
		return nil
	}
	data, err := yaml.Marshal(flagFile{Flags: s.flags})
	if err != nil {
		return fmt.Errorf("failed to encode flags: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write flag file: %w", err)
	}
	return nil
}
