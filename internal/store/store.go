// Package store persists entry collections as a single JSON document on
// disk. The file is the source of truth; computed results are never stored.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/reellab/setcarbon/internal/engine"
)

// Repository loads and saves the full entry set for one production.
type Repository interface {
	// Load reads the current collections. A missing backing file yields
	// empty collections, not an error.
	Load() (engine.Collections, error)

	// Save replaces the persisted collections.
	Save(c engine.Collections) error
}

// JSONStore is a Repository backed by a single JSON file. Writes go through a
// temp file and rename so a crash mid-save never corrupts the document.
type JSONStore struct {
	path   string
	logger zerolog.Logger
	mu     sync.Mutex
}

// NewJSONStore creates a store backed by the JSON file at path. The file does
// not need to exist yet.
func NewJSONStore(path string, logger zerolog.Logger) *JSONStore {
	return &JSONStore{path: path, logger: logger}
}

// Load reads and decodes the backing file. Duplicate entry IDs within a
// category are dropped on load, keeping the last occurrence.
func (s *JSONStore) Load() (engine.Collections, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var c engine.Collections

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Debug().Str("path", s.path).Msg("store file absent, starting empty")
			return c, nil
		}
		return c, fmt.Errorf("reading store file %s: %w", s.path, err)
	}

	if err := json.Unmarshal(data, &c); err != nil {
		return engine.Collections{}, fmt.Errorf("decoding store file %s: %w", s.path, err)
	}

	c.Deduplicate()
	return c, nil
}

// Save encodes the collections and atomically replaces the backing file.
func (s *JSONStore) Save(c engine.Collections) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding store file: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating store directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp store file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp store file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing store file %s: %w", s.path, err)
	}

	s.logger.Debug().Str("path", s.path).Int("bytes", len(data)).Msg("store saved")
	return nil
}

// NewEntryID returns a fresh unique entry identifier.
func NewEntryID() string {
	return uuid.NewString()
}
