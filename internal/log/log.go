// Package log layers a process-wide verbosity gate over the standard
// library's log package.
package log

import (
	"log"
	"sync/atomic"
)

var verbose atomic.Bool

// EnableVerbose turns on the printing of verbose logs for the rest of the
// process lifetime.
func EnableVerbose() {
	verbose.Store(true)
}

// Verbose reports whether verbose logging is enabled.
func Verbose() bool {
	return verbose.Load()
}

// Printf prints to the standard logger unconditionally.
func Printf(format string, v ...any) {
	log.Printf(format, v...)
}

// Verbosef prints to the standard logger only when verbose logging is
// enabled.
func Verbosef(format string, v ...any) {
	if verbose.Load() {
		log.Printf(format, v...)
	}
}
