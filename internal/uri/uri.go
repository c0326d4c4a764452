// Package uri opens custom URI schemes with the OS default handler.
package uri

import (
	"os/exec"
	"runtime"

	"github.com/agtools/agswitch/internal/logging"
)

// Open dispatches uri to the OS URI handler. Fire-and-forget: a true result
// means the open command started, not that the handler succeeded.
func Open(uri string) bool {
	return openFor(runtime.GOOS, uri)
}

func openFor(goos, uri string) bool {
	var cmd *exec.Cmd
	switch goos {
	case "darwin":
		cmd = exec.Command("open", uri)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", uri)
	default:
		cmd = exec.Command("xdg-open", uri)
	}

	if err := cmd.Start(); err != nil {
		logging.Warning("failed to open URI %s: %v", uri, err)
		return false
	}
	return true
}
