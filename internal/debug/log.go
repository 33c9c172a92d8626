// Package debug provides an opt-in debug logger for the SDK. The SDK is
// silent by default; setting PASSAGEFLEX_DEBUG to a non-empty value
// routes request/response traces to the standard logger.
package debug

import (
	"fmt"
	"log"
	"os"
	"sync"
)

// Logger is the debug logging interface used at the transport boundary.
type Logger interface {
	// Debugf logs a formatted debug message
	Debugf(format string, args ...any)
	// Debug logs debug arguments
	Debug(args ...any)
}

// nopLogger does nothing (used when debug mode is disabled).
type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Debug(...any)          {}

// stdLogger logs to the standard logger with a [DEBUG] prefix.
type stdLogger struct{}

func (stdLogger) Debugf(format string, args ...any) {
	log.Printf("[DEBUG] "+format, args...)
}

func (stdLogger) Debug(args ...any) {
	log.Printf("[DEBUG] %v", fmt.Sprint(args...))
}

var (
	// l is the private global debug logger (use GetLogger() to access)
	l    Logger = nopLogger{}
	once sync.Once
)

// GetLogger returns the configured debug logger. Always use this
// function instead of storing a reference; the logger is selected on
// first use.
func GetLogger() Logger {
	once.Do(func() {
		if os.Getenv("PASSAGEFLEX_DEBUG") != "" {
			l = stdLogger{}
			l.Debug("debug logging enabled")
		}
	})
	return l
}
