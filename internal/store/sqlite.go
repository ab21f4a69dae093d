package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver
)

// SQLite is a single-file document store: one row per logical store in a
// kv table, last write wins. Useful when the data directory should be a
// single portable file instead of a tree of JSON blobs.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database at path and runs migrations.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS documents (
			store      TEXT PRIMARY KEY,
			body       BLOB NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating documents table: %w", err)
	}
	return nil
}

// Load reads a logical store blob; absent keys return (nil, nil).
func (s *SQLite) Load(key string) ([]byte, error) {
	var body []byte
	err := s.db.QueryRow(`SELECT body FROM documents WHERE store = ?`, key).Scan(&body)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", key, err)
	}
	return body, nil
}

// Save upserts a logical store blob.
func (s *SQLite) Save(key string, data []byte) error {
	query := `
		INSERT INTO documents (store, body, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(store) DO UPDATE SET
			body = excluded.body,
			updated_at = CURRENT_TIMESTAMP
	`
	if _, err := s.db.Exec(query, key, data); err != nil {
		return fmt.Errorf("upserting %s: %w", key, err)
	}
	return nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}
