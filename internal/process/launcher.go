package process

import (
	"github.com/agtools/agswitch/internal/logging"
	"github.com/agtools/agswitch/internal/paths"
	"github.com/agtools/agswitch/internal/platform"
	"github.com/agtools/agswitch/internal/uri"
)

// LaunchURI is the custom scheme registered by the Antigravity installer.
// Opening it is the most reliable launch path since it needs no executable
// discovery.
const LaunchURI = "antigravity://oauth-success"

// Launcher starts the app, preferring the URI scheme with a direct-launch
// fallback.
type Launcher struct {
	strategy platform.Strategy
	provider paths.Provider
	openURI  func(string) bool
}

func NewLauncher(strategy platform.Strategy, provider paths.Provider) *Launcher {
	return &Launcher{
		strategy: strategy,
		provider: provider,
		openURI:  uri.Open,
	}
}

// Start dispatches a launch command and returns once one is sent; it does
// not wait for the app to become ready. The attempt order is fixed: with
// preferURI the URI comes first and the direct path is the fallback, without
// it the order flips, so the URI is still retried exactly once.
func (l *Launcher) Start(preferURI bool) bool {
	logging.Info("Starting Antigravity...")

	type attempt struct {
		name string
		run  func() bool
	}

	viaURI := attempt{"uri", func() bool {
		logging.Info("Starting via URI protocol...")
		if !l.openURI(LaunchURI) {
			logging.Warning("URI start failed")
			return false
		}
		return true
	}}
	viaPath := attempt{"direct", func() bool {
		logging.Info("Starting via executable path...")
		if err := l.strategy.Launch(l.provider.ExecutablePath()); err != nil {
			logging.Warning("Direct launch failed: %v", err)
			return false
		}
		return true
	}}

	attempts := []attempt{viaURI, viaPath}
	if !preferURI {
		attempts = []attempt{viaPath, viaURI}
	}

	for _, a := range attempts {
		if a.run() {
			logging.Info("Antigravity start command sent (%s)", a.name)
			return true
		}
	}

	logging.Error("Cannot find a way to launch Antigravity")
	return false
}
