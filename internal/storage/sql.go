package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// DocumentStore persists JSON documents in a single relational table.
// It works against SQLite (the default) or PostgreSQL when DATABASE_URL
// is set, mirroring how the rest of the configuration is env-driven.
type DocumentStore struct {
	db *sqlx.DB
}

// Open connects to the database selected by the environment
func Open() (*DocumentStore, error) {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return OpenPostgres(url)
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %v", err)
	}
	return OpenSQLite(filepath.Join(dataDir, "vocabtrainer.db"))
}

// OpenSQLite opens a file-backed SQLite store
func OpenSQLite(path string) (*DocumentStore, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	// SQLite doesn't support multiple writers
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	s := &DocumentStore{db: db}
	if err := s.initializeSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// OpenPostgres opens a PostgreSQL-backed store
func OpenPostgres(url string) (*DocumentStore, error) {
	db, err := sqlx.Connect("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	s := &DocumentStore{db: db}
	if err := s.initializeSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection
func (s *DocumentStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// initializeSchema creates the documents table if it doesn't exist
func (s *DocumentStore) initializeSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS documents (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create documents table: %v", err)
	}
	return nil
}

// Get implements Store
func (s *DocumentStore) Get(key string, out interface{}) (bool, error) {
	var raw string
	query := s.db.Rebind("SELECT value FROM documents WHERE key = ?")
	err := s.db.Get(&raw, query, key)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read document %q: %v", key, err)
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return true, fmt.Errorf("failed to decode document %q: %v", key, err)
	}
	return true, nil
}

// Set implements Store
func (s *DocumentStore) Set(key string, doc interface{}) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document %q: %v", key, err)
	}

	query := s.db.Rebind(`
		INSERT INTO documents (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`)
	if _, err := s.db.Exec(query, key, string(raw)); err != nil {
		return fmt.Errorf("failed to write document %q: %v", key, err)
	}
	return nil
}

// Delete implements Store
func (s *DocumentStore) Delete(key string) error {
	query := s.db.Rebind("DELETE FROM documents WHERE key = ?")
	if _, err := s.db.Exec(query, key); err != nil {
		return fmt.Errorf("failed to delete document %q: %v", key, err)
	}
	return nil
}

// IsQuotaError reports whether err looks like a storage-full condition
func IsQuotaError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "database or disk is full") ||
		strings.Contains(msg, "disk full") ||
		strings.Contains(msg, "out of memory")
}
