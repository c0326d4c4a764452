// Package paths locates the Antigravity install on the current machine.
package paths

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Provider resolves the target app's database and executable locations.
type Provider interface {
	// DatabasePaths returns candidate state.vscdb paths in preference order.
	// Paths are candidates only; callers check existence.
	DatabasePaths() []string

	// ExecutablePath returns the app executable, or "" when unknown.
	ExecutablePath() string
}

// OSProvider resolves paths for the running operating system, with optional
// overrides from configuration.
type OSProvider struct {
	goos         string
	databasePath string
	execPath     string
}

// New returns a provider for the current OS. Non-empty overrides win over
// discovery.
func New(databasePath, execPath string) *OSProvider {
	return &OSProvider{
		goos:         runtime.GOOS,
		databasePath: databasePath,
		execPath:     execPath,
	}
}

// NewForGOOS is like New but resolves for an explicit GOOS value.
func NewForGOOS(goos, databasePath, execPath string) *OSProvider {
	return &OSProvider{
		goos:         goos,
		databasePath: databasePath,
		execPath:     execPath,
	}
}

func (p *OSProvider) DatabasePaths() []string {
	if p.databasePath != "" {
		return []string{p.databasePath}
	}

	var base string
	switch p.goos {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		base = filepath.Join(home, "Library", "Application Support", "Antigravity")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			return nil
		}
		base = filepath.Join(appData, "Antigravity")
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		base = filepath.Join(home, ".config", "Antigravity")
	}

	return []string{filepath.Join(base, "User", "globalStorage", "state.vscdb")}
}

func (p *OSProvider) ExecutablePath() string {
	if p.execPath != "" {
		return p.execPath
	}

	switch p.goos {
	case "darwin":
		path := "/Applications/Antigravity.app/Contents/MacOS/Electron"
		if fileExists(path) {
			return path
		}
	case "windows":
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			path := filepath.Join(localAppData, "Programs", "Antigravity", "Antigravity.exe")
			if fileExists(path) {
				return path
			}
		}
	default:
		if path, err := exec.LookPath("antigravity"); err == nil {
			return path
		}
		for _, path := range []string{
			"/usr/share/antigravity/antigravity",
			"/opt/antigravity/antigravity",
		} {
			if fileExists(path) {
				return path
			}
		}
	}
	return ""
}

// WithReplicas expands each primary path with its ".backup" sibling when that
// sibling exists on disk. The app keeps state.vscdb.backup next to the
// primary store.
func WithReplicas(primaries []string) []string {
	var out []string
	for _, primary := range primaries {
		out = append(out, primary)
		replica := primary + ".backup"
		if fileExists(replica) {
			out = append(out, replica)
		}
	}
	return out
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
