// Package account backs up and restores the Antigravity auth-related keys.
//
// A backup is a small JSON document holding the canonical keys read from the
// app's state.vscdb plus two metadata fields. The app must be fully closed
// around both operations; this package surfaces a locked database but does
// not enforce mutual exclusion itself.
package account

import (
	"encoding/json"
	"os"
	"time"

	"github.com/agtools/agswitch/internal/logging"
	"github.com/agtools/agswitch/internal/paths"
	"github.com/agtools/agswitch/internal/store"
)

// Metadata fields added to every backup document.
const (
	MetaAccountEmail = "account_email"
	MetaBackupTime   = "backup_time"
)

// DefaultKeys returns the canonical list of keys eligible for backup.
func DefaultKeys() []string {
	return []string{
		"antigravityAuthStatus",
		"jetskiStateSync.agentManagerInitState",
	}
}

// Engine performs backup and restore against the databases the provider
// resolves. The key list is fixed at construction.
type Engine struct {
	keys     []string
	provider paths.Provider
}

func NewEngine(keys []string, provider paths.Provider) *Engine {
	return &Engine{keys: keys, provider: provider}
}

// Backup reads the canonical keys from the primary database and writes them,
// with metadata, to destPath. Absent keys are skipped silently. Returns true
// only when the document was fully written; every failure cause is logged.
func (e *Engine) Backup(email, destPath string) bool {
	dbPaths := e.provider.DatabasePaths()
	if len(dbPaths) == 0 {
		logging.Error("Antigravity database path not found")
		return false
	}

	dbPath := dbPaths[0]
	if _, err := os.Stat(dbPath); err != nil {
		logging.Error("Database file does not exist: %s", dbPath)
		return false
	}

	logging.Info("Backing up data from database: %s", dbPath)
	s, err := e.openStore(dbPath)
	if err != nil {
		return false
	}
	defer func() { _ = s.Close() }()

	doc := make(map[string]string, len(e.keys)+2)
	for _, key := range e.keys {
		value, found, err := s.Get(key)
		if err != nil {
			logging.Error("Database query error: %v", err)
			return false
		}
		if !found {
			logging.Debug("Key not present, skipping: %s", key)
			continue
		}
		doc[key] = value
		logging.Debug("Backed up key: %s", key)
	}

	doc[MetaAccountEmail] = email
	doc[MetaBackupTime] = time.Now().Format(time.RFC3339)

	if err := writeDocument(destPath, doc); err != nil {
		logging.Error("Failed to write backup file: %v", err)
		return false
	}

	logging.Info("Backup successful: %s", destPath)
	return true
}

// Restore loads a backup document and writes its canonical keys into every
// existing database replica (primary plus .backup sibling). Replica failures
// are independent; true means at least one replica was updated.
func (e *Engine) Restore(srcPath string) bool {
	data, err := os.ReadFile(srcPath)
	if err != nil {
		logging.Error("Failed to read backup file: %v", err)
		return false
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		logging.Error("Backup file is not a valid backup document: %v", err)
		return false
	}

	dbPaths := e.provider.DatabasePaths()
	if len(dbPaths) == 0 {
		logging.Error("Antigravity database path not found")
		return false
	}

	restored := 0
	for _, dbPath := range paths.WithReplicas(dbPaths) {
		if _, err := os.Stat(dbPath); err != nil {
			continue
		}
		if e.restoreSingle(dbPath, doc) {
			restored++
		}
	}
	if restored == 0 {
		logging.Error("No database replica could be restored")
		return false
	}
	return true
}

func (e *Engine) restoreSingle(dbPath string, doc map[string]any) bool {
	logging.Info("Restoring database: %s", dbPath)
	s, err := e.openStore(dbPath)
	if err != nil {
		return false
	}
	defer func() { _ = s.Close() }()

	for _, key := range e.keys {
		raw, ok := doc[key]
		if !ok {
			continue
		}
		value, ok := raw.(string)
		if !ok {
			// The store is string-valued only; re-serialize structures.
			encoded, err := json.Marshal(raw)
			if err != nil {
				logging.Warning("Cannot serialize value for key %s: %v", key, err)
				continue
			}
			value = string(encoded)
		}
		if err := s.Upsert(key, value); err != nil {
			logging.Error("Database write error: %v", err)
			return false
		}
		logging.Debug("Restored key: %s", key)
	}

	logging.Info("Database restore completed: %s", dbPath)
	return true
}

// openStore opens one replica, translating the locked-file case into the
// operator-facing diagnostic.
func (e *Engine) openStore(dbPath string) (*store.Store, error) {
	s, err := store.Open(dbPath)
	if err != nil {
		if store.IsLocked(err) {
			logging.Error("Database is locked: %v", err)
			logging.Error("Tip: please make sure Antigravity is completely closed, then retry")
		} else {
			logging.Error("Failed to connect to database: %v", err)
		}
		return nil, err
	}
	return s, nil
}

// writeDocument writes the backup as human-readable JSON: UTF-8, two-space
// indentation, non-ASCII characters kept verbatim.
func writeDocument(path string, doc map[string]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
