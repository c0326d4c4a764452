package account_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agtools/agswitch/internal/account"
)

func TestListBackups(t *testing.T) {
	dir := t.TempDir()

	good := `{"antigravityAuthStatus": "v", "account_email": "a@b.com", "backup_time": "2026-08-23T10:00:00"}`
	if err := os.WriteFile(filepath.Join(dir, "one.json"), []byte(good), 0600); err != nil {
		t.Fatalf("failed to write snapshot: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "junk.json"), []byte("not json"), 0600); err != nil {
		t.Fatalf("failed to write junk: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0600); err != nil {
		t.Fatalf("failed to write notes: %v", err)
	}

	backups, err := account.ListBackups(dir)
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("expected one snapshot, got %v", backups)
	}
	if backups[0].Email != "a@b.com" {
		t.Errorf("expected email metadata, got %q", backups[0].Email)
	}
	if backups[0].Time != "2026-08-23T10:00:00" {
		t.Errorf("expected time metadata, got %q", backups[0].Time)
	}
}

func TestDefaultBackupPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "backups")

	path, err := account.DefaultBackupPath(dir, "a@b.com")
	if err != nil {
		t.Fatalf("DefaultBackupPath failed: %v", err)
	}

	if filepath.Dir(path) != dir {
		t.Errorf("expected path under %s, got %s", dir, path)
	}
	base := filepath.Base(path)
	if !strings.HasPrefix(base, "antigravity-a_at_b.com-") || !strings.HasSuffix(base, ".json") {
		t.Errorf("unexpected snapshot filename %q", base)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("expected backup dir to be created: %v", err)
	}

	other, err := account.DefaultBackupPath(dir, "a@b.com")
	if err != nil {
		t.Fatalf("DefaultBackupPath failed: %v", err)
	}
	if other == path {
		t.Error("expected unique snapshot filenames")
	}
}
