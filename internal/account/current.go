package account

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/agtools/agswitch/internal/logging"
)

// Keys probed, in order, when extracting the signed-in account.
var accountInfoKeys = []string{
	"antigravityAuthStatus",
	"google.antigravity",
	"antigravityUserSettings.allUserSettings",
}

// CurrentAccount extracts the signed-in account email from the primary
// database. The second result is false when no email can be found (no
// database, locked, or not signed in).
func (e *Engine) CurrentAccount() (string, bool) {
	dbPaths := e.provider.DatabasePaths()
	if len(dbPaths) == 0 {
		return "", false
	}

	dbPath := dbPaths[0]
	if _, err := os.Stat(dbPath); err != nil {
		return "", false
	}

	s, err := e.openStore(dbPath)
	if err != nil {
		return "", false
	}
	defer func() { _ = s.Close() }()

	for _, key := range accountInfoKeys {
		value, found, err := s.Get(key)
		if err != nil {
			logging.Error("Error extracting account info: %v", err)
			return "", false
		}
		if !found {
			continue
		}
		if email, ok := emailFromJSON(value); ok {
			return email, true
		}
	}
	return "", false
}

// emailFromJSON pulls an "email" field out of a JSON object value. The key
// match is case-insensitive since the auth status payload has varied its
// casing across app versions.
func emailFromJSON(value string) (string, bool) {
	var payload map[string]any
	if err := json.Unmarshal([]byte(value), &payload); err != nil {
		return "", false
	}

	if email, ok := payload["email"].(string); ok && email != "" {
		return email, true
	}
	for k, v := range payload {
		if strings.EqualFold(k, "email") {
			if email, ok := v.(string); ok && email != "" {
				return email, true
			}
		}
	}
	return "", false
}
