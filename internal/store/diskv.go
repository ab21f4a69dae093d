package store

import (
	"fmt"

	"github.com/peterbourgon/diskv/v3"
)

// Diskv is a filesystem-backed document store: one JSON file per logical
// store under the base path. This is the default local backend.
type Diskv struct {
	d *diskv.Diskv
}

// NewDiskv creates a Diskv backend rooted at basePath.
func NewDiskv(basePath string) *Diskv {
	return &Diskv{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return nil },
		CacheSizeMax: 1024 * 1024, // 1MB
	})}
}

// Load reads a logical store blob; absent keys return (nil, nil).
func (s *Diskv) Load(key string) ([]byte, error) {
	if !s.d.Has(key) {
		return nil, nil
	}
	data, err := s.d.Read(key)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", key, err)
	}
	return data, nil
}

// Save writes a logical store blob, replacing any previous value.
func (s *Diskv) Save(key string, data []byte) error {
	if err := s.d.Write(key, data); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

// Close is a no-op for the filesystem backend.
func (s *Diskv) Close() error {
	return nil
}
