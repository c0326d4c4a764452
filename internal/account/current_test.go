package account_test

import (
	"testing"

	"github.com/agtools/agswitch/internal/account"
)

func TestCurrentAccount_FromAuthStatus(t *testing.T) {
	dir := t.TempDir()
	dbPath := createStateDB(t, dir, "state.vscdb", map[string]string{
		"antigravityAuthStatus": `{"Email":"a@b.com","token":"x"}`,
	})

	engine := account.NewEngine(account.DefaultKeys(), stubProvider{dbPaths: []string{dbPath}})

	email, ok := engine.CurrentAccount()
	if !ok {
		t.Fatal("expected an account email")
	}
	if email != "a@b.com" {
		t.Errorf("expected 'a@b.com', got %q", email)
	}
}

func TestCurrentAccount_FallbackKeys(t *testing.T) {
	dir := t.TempDir()
	dbPath := createStateDB(t, dir, "state.vscdb", map[string]string{
		"antigravityAuthStatus": `"not an object"`,
		"google.antigravity":    `{"email":"fallback@b.com"}`,
	})

	engine := account.NewEngine(account.DefaultKeys(), stubProvider{dbPaths: []string{dbPath}})

	email, ok := engine.CurrentAccount()
	if !ok || email != "fallback@b.com" {
		t.Errorf("expected fallback email, got %q (ok=%v)", email, ok)
	}
}

func TestCurrentAccount_NoneFound(t *testing.T) {
	dir := t.TempDir()
	dbPath := createStateDB(t, dir, "state.vscdb", nil)

	engine := account.NewEngine(account.DefaultKeys(), stubProvider{dbPaths: []string{dbPath}})

	if _, ok := engine.CurrentAccount(); ok {
		t.Error("expected no account on an empty database")
	}
}

func TestCurrentAccount_NoDatabase(t *testing.T) {
	engine := account.NewEngine(account.DefaultKeys(), stubProvider{})

	if _, ok := engine.CurrentAccount(); ok {
		t.Error("expected no account without a database")
	}
}
