package account

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/agtools/agswitch/internal/logging"
)

// BackupInfo describes one snapshot file in the backup directory.
type BackupInfo struct {
	Path  string
	Email string
	Time  string
}

// ListBackups enumerates the JSON snapshots under dir. Files that do not
// parse as backup documents are skipped.
func ListBackups(dir string) ([]BackupInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var out []BackupInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		data, err := os.ReadFile(path)
		if err != nil {
			logging.Debug("Skipping unreadable backup file %s: %v", path, err)
			continue
		}
		var doc map[string]any
		if err := json.Unmarshal(data, &doc); err != nil {
			logging.Debug("Skipping non-backup file %s: %v", path, err)
			continue
		}

		info := BackupInfo{Path: path}
		if email, ok := doc[MetaAccountEmail].(string); ok {
			info.Email = email
		}
		if ts, ok := doc[MetaBackupTime].(string); ok {
			info.Time = ts
		}
		out = append(out, info)
	}
	return out, nil
}

// DefaultBackupPath builds a fresh snapshot filename under dir, creating the
// directory when needed.
func DefaultBackupPath(dir, email string) (string, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", err
	}
	name := fmt.Sprintf("antigravity-%s-%s.json", sanitizeEmail(email), uuid.NewString()[:8])
	return filepath.Join(dir, name), nil
}

func sanitizeEmail(email string) string {
	if email == "" {
		return "account"
	}
	r := strings.NewReplacer("@", "_at_", "/", "_", "\\", "_", ":", "_")
	return r.Replace(email)
}
