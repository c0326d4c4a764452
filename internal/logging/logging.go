// Package logging provides the leveled logging sink used across the tool.
package logging

import "log"

var debugEnabled bool

// SetDebug enables or disables debug-level output.
func SetDebug(enabled bool) {
	debugEnabled = enabled
}

// Info logs an informational message.
func Info(format string, v ...any) {
	log.Printf("[INFO] "+format, v...)
}

// Warning logs a non-fatal problem.
func Warning(format string, v ...any) {
	log.Printf("[WARN] "+format, v...)
}

// Error logs a failure.
func Error(format string, v ...any) {
	log.Printf("[ERROR] "+format, v...)
}

// Debug logs a message only when debug output is enabled.
func Debug(format string, v ...any) {
	if debugEnabled {
		log.Printf("[DEBUG] "+format, v...)
	}
}
