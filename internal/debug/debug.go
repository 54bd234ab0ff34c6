// Package debug provides conditional trace logging.
//
// Tracing is enabled by setting BUCKET_DEBUG:
//
//	BUCKET_DEBUG=1 bucket ls
//
// When disabled (default) every function is a no-op.
package debug

import (
	"io"
	"log"
	"os"
	"time"
)

var (
	enabled bool
	logger  *log.Logger
)

func init() {
	if os.Getenv("BUCKET_DEBUG") != "" {
		enabled = true
		logger = log.New(os.Stderr, "[BUCKET_DEBUG] ", log.Ltime|log.Lmicroseconds)
	}
}

func Enabled() bool {
	return enabled
}

// SetOutput redirects trace output, e.g. to a file while the TUI owns the
// terminal.
func SetOutput(w io.Writer) {
	if logger == nil {
		logger = log.New(w, "[BUCKET_DEBUG] ", log.Ltime|log.Lmicroseconds)
		return
	}
	logger.SetOutput(w)
}

// SetEnabled allows programmatic control, mainly for tests.
func SetEnabled(e bool) {
	enabled = e
	if e && logger == nil {
		logger = log.New(os.Stderr, "[BUCKET_DEBUG] ", log.Ltime|log.Lmicroseconds)
	}
}

// Log writes a printf-style message when tracing is enabled.
func Log(format string, args ...any) {
	if !enabled {
		return
	}
	logger.Printf(format, args...)
}

// LogTiming writes how long name took when tracing is enabled.
func LogTiming(name string, d time.Duration) {
	if !enabled {
		return
	}
	logger.Printf("%s took %v", name, d)
}
