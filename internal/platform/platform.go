// Package platform holds the per-OS capabilities for locating, quitting and
// launching Antigravity. One Strategy is selected at startup; the rest of
// the code never branches on GOOS.
package platform

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// gracefulTimeout bounds the platform quit-request subprocess.
const gracefulTimeout = 3 * time.Second

// Strategy is the per-OS capability set: the process match predicate, the
// pre-signal graceful quit request, and the direct-launch fallback.
type Strategy interface {
	Name() string

	// Match reports whether a process with the given name and executable
	// path belongs to Antigravity. Inputs may be in any case.
	Match(name, exe string) bool

	// ExcludeFromTermination reports whether a matched process must still be
	// left out of a termination set (companion tools).
	ExcludeFromTermination(name string) bool

	// GracefulQuit sends the platform's application-level quit request.
	// requested is false when the platform has no such mechanism. Failures
	// are best-effort; callers log and move on to signaling.
	GracefulQuit() (requested bool, err error)

	// Launch starts the app directly from its executable path.
	Launch(exePath string) error
}

// ForGOOS returns the strategy for the given GOOS value. Unknown systems get
// the Linux behavior, matching the signal-based lowest common denominator.
func ForGOOS(goos string) Strategy {
	switch goos {
	case "darwin":
		return darwinStrategy{}
	case "windows":
		return windowsStrategy{}
	default:
		return linuxStrategy{}
	}
}

type darwinStrategy struct{}

func (darwinStrategy) Name() string { return "darwin" }

func (darwinStrategy) Match(name, exe string) bool {
	return strings.Contains(strings.ToLower(exe), "antigravity.app")
}

func (darwinStrategy) ExcludeFromTermination(name string) bool { return false }

func (darwinStrategy) GracefulQuit() (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), gracefulTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "osascript", "-e", `tell application "Antigravity" to quit`)
	if output, err := cmd.CombinedOutput(); err != nil {
		return true, fmt.Errorf("osascript quit failed: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return true, nil
}

func (darwinStrategy) Launch(exePath string) error {
	// open -a resolves the bundle itself, no executable path needed.
	return exec.Command("open", "-a", "Antigravity").Start()
}

type windowsStrategy struct{}

func (windowsStrategy) Name() string { return "windows" }

func (windowsStrategy) Match(name, exe string) bool {
	name = strings.ToLower(name)
	exe = strings.ToLower(exe)
	if name == "antigravity.exe" || name == "antigravity" {
		return true
	}
	return exe != "" && strings.Contains(exe, "antigravity")
}

// Antigravity Manager.exe is a companion tool, never the target.
func (windowsStrategy) ExcludeFromTermination(name string) bool {
	return strings.Contains(strings.ToLower(name), "manager")
}

func (windowsStrategy) GracefulQuit() (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), gracefulTimeout)
	defer cancel()

	// No /F: taskkill asks the process tree to exit instead of killing it.
	cmd := exec.CommandContext(ctx, "taskkill", "/IM", "Antigravity.exe", "/T")
	if output, err := cmd.CombinedOutput(); err != nil {
		return true, fmt.Errorf("taskkill quit failed: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return true, nil
}

func (windowsStrategy) Launch(exePath string) error {
	if exePath == "" {
		return fmt.Errorf("no Antigravity executable found")
	}
	return exec.Command(exePath).Start()
}

type linuxStrategy struct{}

func (linuxStrategy) Name() string { return "linux" }

func (linuxStrategy) Match(name, exe string) bool {
	name = strings.ToLower(name)
	exe = strings.ToLower(exe)
	if name == "antigravity" {
		return true
	}
	// Path segment or suffix only; a bare substring would match unrelated
	// paths like /home/user/antigravity-notes/editor.
	return strings.Contains(exe, "/antigravity/") || strings.HasSuffix(exe, "/antigravity")
}

func (linuxStrategy) ExcludeFromTermination(name string) bool { return false }

// Linux has no application-level quit channel; the terminate signal phase
// covers it.
func (linuxStrategy) GracefulQuit() (bool, error) { return false, nil }

func (linuxStrategy) Launch(exePath string) error {
	if exePath != "" {
		return exec.Command(exePath).Start()
	}
	// Last resort: rely on PATH.
	return exec.Command("antigravity").Start()
}
