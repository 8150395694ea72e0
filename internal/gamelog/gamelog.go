// Package gamelog is the ambient logging helper for the gameplay runtime.
// The teacher logs directly through the standard library (see
// ruleset.go's log.Println calls building its end-of-play results
// table); this package keeps that idiom but adds the leveled helpers the
// spec's §7 error-handling policy needs for LogicInvariantViolated
// conditions, which must be logged rather than panicked.
package gamelog

import (
	"log"
	"os"
)

var std = log.New(os.Stderr, "", log.LstdFlags)

// SetOutput lets a host application redirect gameplay-runtime log lines.
func SetOutput(l *log.Logger) {
	std = l
}

// Info logs a routine event (e.g. phase transitions).
func Info(format string, args ...interface{}) {
	std.Printf("[INFO] "+format, args...)
}

// Warn logs a LogicInvariantViolated condition or other recoverable
// anomaly; per spec.md §7 the offending frame/action is dropped, never
// panicked.
func Warn(format string, args ...interface{}) {
	std.Printf("[WARN] "+format, args...)
}

// Debug logs verbose per-tick detail, off by default in a release build
// (callers gate calls behind their own verbosity flag; this package does
// not filter).
func Debug(format string, args ...interface{}) {
	std.Printf("[DEBUG] "+format, args...)
}
