// Package logging provides structured logging configuration using zerolog.
package logging

import (
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogLevel represents the logging level.
type LogLevel string

const (
	// LevelDebug logs debug messages and above.
	LevelDebug LogLevel = "debug"

	// LevelInfo logs info messages and above.
	LevelInfo LogLevel = "info"

	// LevelWarn logs warning messages and above.
	LevelWarn LogLevel = "warn"

	// LevelError logs error messages only.
	LevelError LogLevel = "error"
)

// Config holds logger configuration.
type Config struct {
	// Level is the minimum log level to output.
	Level LogLevel

	// Pretty enables human-readable console output (default: false for JSON).
	Pretty bool

	// Output is the writer to output logs to (default: os.Stderr).
	Output io.Writer
}

// DefaultConfig returns a default logger configuration.
func DefaultConfig() Config {
	return Config{
		Level:  LevelInfo,
		Pretty: false,
		Output: os.Stderr,
	}
}

// LibraryLevel is the minimum level of loggers created by NewLogger before
// Setup has been called.
const LibraryLevel = zerolog.WarnLevel

var configured atomic.Bool

// Setup configures the global zerolog logger.
func Setup(cfg Config) zerolog.Logger {
	// Set global log level
	level := ParseLevel(string(cfg.Level))
	zerolog.SetGlobalLevel(level)

	// Configure output
	var output io.Writer = cfg.Output
	if output == nil {
		output = os.Stderr
	}
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{Out: output}
	}

	// Create logger with timestamp
	logger := zerolog.New(output).With().Timestamp().Logger()

	// Set as global logger
	log.Logger = logger
	configured.Store(true)

	return logger
}

// ParseLevel converts a level name to zerolog.Level. Unknown names map to
// Info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// NewLogger creates a new logger with the given component name. Until the
// application calls Setup, it only emits LibraryLevel and above.
func NewLogger(component string) zerolog.Logger {
	logger := log.With().Str("component", component).Logger()
	if !configured.Load() {
		logger = logger.Level(LibraryLevel)
	}
	return logger
}

// Log Level Guidelines:
//
// Debug: Detailed information for debugging
//   - Page construction (page, bottom, top, num_pages)
//   - Page numbers clamped by GetPage
//   - Redis list reads and pushes (key, start, end)
//   - Rate limit windows close to exhaustion
//
// Info: Normal operation events
//   - Requests served by the demo server
//   - Server startup/shutdown
//   - Seeding progress
//
// Warn: Warning conditions that don't prevent operation
//   - Pagination over an unordered collection
//   - Redis errors on fail-open paths (rate limiter, bound lists)
//   - Requests rejected by the rate limiter
//   - Views that returned an error
//
// Error: Error conditions requiring attention
//   - Views failing with a 500
//   - Redis unavailable at startup
//   - Configuration errors
//
// Context Fields:
//   - component: Package that produced the entry
//   - page: Validated page number
//   - num_pages: Total number of pages
//   - key: Redis key (list or rate limit counter)
//   - status_code: HTTP status code
//   - duration: Request duration
