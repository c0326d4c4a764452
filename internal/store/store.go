// Package store provides key/value access to the app's state.vscdb file.
//
// The database is owned by Antigravity; this package only reads and writes
// rows of the existing ItemTable and never creates or migrates schema.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// Store wraps a single connection to one state.vscdb replica.
type Store struct {
	db   *sql.DB
	path string
}

// Open connects to an existing database file. One attempt, no retries; the
// caller must Close on every exit path.
func Open(path string) (*Store, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("database file does not exist: %s", path)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("database path is a directory: %s", path)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, path: path}, nil
}

// Path returns the database file this store is connected to.
func (s *Store) Path() string {
	return s.path
}

// Get reads one key from ItemTable. The second result is false when the key
// is absent.
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM ItemTable WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Upsert writes one key with insert-or-replace semantics. Each statement
// commits on its own; a failing write in a batch leaves earlier writes in
// place.
func (s *Store) Upsert(key, value string) error {
	_, err := s.db.Exec("INSERT OR REPLACE INTO ItemTable (key, value) VALUES (?, ?)", key, value)
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}

// IsLocked reports whether err indicates the database file is held by
// another process, i.e. the app is still running.
func IsLocked(err error) bool {
	if err == nil {
		return false
	}
	var serr sqlite3.Error
	if errors.As(err, &serr) {
		return serr.Code == sqlite3.ErrBusy || serr.Code == sqlite3.ErrLocked
	}
	return strings.Contains(strings.ToLower(err.Error()), "locked")
}
