// Package log provides structured logging for kermat's kernel computations.
//
// It defines a minimal, slog-compatible logging interface plus standard
// attribute keys for kernel-method operations (Gramian assembly, Nyström
// approximation, centering), so that the numeric engine can emit consistent,
// analyzable logs without binding callers to a particular backend.
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// The interface supports method chaining through With, allowing creation of
// contextual loggers with pre-populated fields.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	//
	// Example:
	//
	//	logger.Debug("assembling Gramian",
	//	    log.SamplesKey, 1000,
	//	    log.FeaturesKey, 16,
	//	)
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional structured fields.
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	//
	// Example:
	//
	//	kl := logger.With(log.KernelNameKey, "GammaExponential")
	//	kl.Info("kernel matrix built") // includes kernel.name
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given level,
	// so callers can skip expensive attribute construction.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, value-compatible with slog.Level.
type Level int

// Standard logging levels.
const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
