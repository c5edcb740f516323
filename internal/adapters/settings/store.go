// Package settings persists the per-user vtrg settings as JSON.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/vtrg/internal/core/domain"
	"go.trai.ch/vtrg/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Store implements ports.SettingsStore backed by a JSON file.
// The file is read on first access and merged over domain.DefaultSettings.
type Store struct {
	path   string
	logger ports.Logger

	mu     sync.Mutex
	loaded bool
	data   map[string]any
}

// NewStore creates a Store for the settings file at path.
func NewStore(path string, logger ports.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Path returns the settings file location.
func (s *Store) Path() string {
	return s.path
}

// Get returns the value at a dot-separated key.
func (s *Store) Get(key string) (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadLocked()

	var current any = s.data
	for _, part := range strings.Split(key, ".") {
		section, ok := current.(map[string]any)
		if !ok {
			return nil, zerr.With(domain.Fail(domain.ErrSettingNotFound, nil), "key", key)
		}
		current, ok = section[part]
		if !ok {
			return nil, zerr.With(domain.Fail(domain.ErrSettingNotFound, nil), "key", key)
		}
	}
	return current, nil
}

// Set stores value at key and writes the file.
// Intermediate sections are created as needed; whole sections cannot be replaced.
func (s *Store) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadLocked()

	parts := strings.Split(key, ".")
	section := s.data
	for _, part := range parts[:len(parts)-1] {
		next, exists := section[part]
		if !exists {
			created := map[string]any{}
			section[part] = created
			section = created
			continue
		}
		nested, ok := next.(map[string]any)
		if !ok {
			return zerr.With(domain.Fail(domain.ErrInvalidSettingKey, nil), "key", key)
		}
		section = nested
	}

	last := parts[len(parts)-1]
	if last == "" {
		return zerr.With(domain.Fail(domain.ErrInvalidSettingKey, nil), "key", key)
	}
	if _, isSection := section[last].(map[string]any); isSection {
		return zerr.With(domain.Fail(domain.ErrInvalidSettingKey, nil), "key", key)
	}
	section[last] = value

	return s.saveLocked()
}

// Reset restores the defaults and writes the file.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = domain.DefaultSettings()
	s.loaded = true
	return s.saveLocked()
}

// All returns a deep copy of the merged settings.
func (s *Store) All() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadLocked()

	return deepCopy(s.data)
}

func (s *Store) loadLocked() {
	if s.loaded {
		return
	}
	s.loaded = true
	s.data = domain.DefaultSettings()

	//nolint:gosec // the settings path is fixed below the user's home directory
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn(fmt.Sprintf("could not read settings %s, using defaults: %v", s.path, err))
		}
		return
	}

	var user map[string]any
	if err := json.Unmarshal(raw, &user); err != nil {
		s.logger.Warn(fmt.Sprintf("settings %s are malformed, using defaults: %v", s.path, err))
		return
	}

	merge(s.data, user)
}

func (s *Store) saveLocked() error {
	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return domain.Fail(domain.ErrSettingsWriteFailed, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return zerr.With(domain.Fail(domain.ErrSettingsWriteFailed, err), "path", s.path)
	}

	if err := os.WriteFile(s.path, append(data, '\n'), domain.FilePerm); err != nil {
		return zerr.With(domain.Fail(domain.ErrSettingsWriteFailed, err), "path", s.path)
	}
	return nil
}

// merge copies src over dst, recursing where both sides hold a section.
// Keys only present in src are kept so newer files survive older binaries.
func merge(dst, src map[string]any) {
	for k, v := range src {
		srcSection, srcIsMap := v.(map[string]any)
		dstSection, dstIsMap := dst[k].(map[string]any)
		if srcIsMap && dstIsMap {
			merge(dstSection, srcSection)
			continue
		}
		dst[k] = v
	}
}

func deepCopy(src map[string]any) map[string]any {
	dst := maps.Clone(src)
	for k, v := range dst {
		if section, ok := v.(map[string]any); ok {
			dst[k] = deepCopy(section)
		}
	}
	return dst
}

// ParseValue converts a command-line value into a typed setting.
// It accepts YAML scalars and flow sequences, so "true", "4" and "[cpp, h]"
// become a bool, an int and a list. Anything unparsable stays a string.
func ParseValue(raw string) any {
	var value any
	if err := yaml.Unmarshal([]byte(raw), &value); err != nil || value == nil {
		return raw
	}
	if _, isMap := value.(map[string]any); isMap {
		return raw
	}
	return value
}

var _ ports.SettingsStore = (*Store)(nil)
