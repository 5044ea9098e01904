// Package util provides logging helpers and file system path lookups shared
// across the application.
package util

import "log"

// LogError logs an error with context if it is non-nil. The TUI cannot print
// to stderr while running, so non-fatal failures are logged and surfaced in
// the status line instead.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}

// MustSucceed logs and exits on error. Startup only.
func MustSucceed(context string, err error) {
	if err != nil {
		log.Fatalf("%s: %v", context, err)
	}
}
