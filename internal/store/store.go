// Package store persists the logical document stores (blocks by date,
// recurring templates, habit data, settings) as JSON blobs behind a
// key-value backend with last-write-wins semantics. The core never cares
// whether the backend is a filesystem document store or a SQLite file.
package store

import (
	"encoding/json"
	"fmt"
)

// Logical store keys. Each is debounced and written independently.
const (
	KeyBlocks    = "blocks"
	KeyTemplates = "templates"
	KeyHabits    = "habits"
	KeyCheckIns  = "checkins"
	KeySettings  = "settings"
)

// Backend is an async key-value JSON blob store. Load returns (nil, nil)
// when the key has never been written.
type Backend interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
	Close() error
}

// LoadJSON loads and decodes a logical store. Returns false without error
// when the key is absent, leaving v untouched.
func LoadJSON(b Backend, key string, v any) (bool, error) {
	data, err := b.Load(key)
	if err != nil {
		return false, fmt.Errorf("loading %s: %w", key, err)
	}
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decoding %s: %w", key, err)
	}
	return true, nil
}

// SaveJSON encodes and writes a logical store immediately, bypassing any
// debounce. Used for explicit flushes and one-shot CLI commands.
func SaveJSON(b Backend, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := b.Save(key, data); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}
