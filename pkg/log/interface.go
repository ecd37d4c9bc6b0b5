// Package log provides a structured logging interface for the optimizer core.
//
// This package defines a minimal, slog-compatible logging interface that allows
// for flexible implementation switching while providing ML-specific structured
// logging capabilities. The interface is designed to integrate seamlessly with
// Go's standard log/slog package and popular logging libraries like zerolog.
//
// Key features:
//   - slog-compatible interface for future-proofing
//   - ML-specific structured attributes (operation types, data shapes, hyperparameters)
//   - Context-aware logging with field chaining
//   - Test-friendly with configurable output destinations
//
// Example usage:
//
//	logger := log.GetLoggerWithName("optimizers.sr3")
//	logger.Info("Fit started",
//	    log.OperationKey, log.OperationFit,
//	    log.SamplesKey, 1000,
//	    log.FeaturesKey, 5,
//	)
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// The interface is implementation-agnostic, enabling switching between
// different logging backends while maintaining a consistent API. It supports
// method chaining through With, allowing creation of contextual loggers with
// pre-populated fields.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	// Debug logs carry detailed diagnostic information such as per-iteration
	// convergence criteria and are usually disabled in production.
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	// Info logs describe the general operational flow, e.g. the start and
	// completion of a fit.
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	// Warnings indicate potentially problematic situations that do not stop
	// the computation, such as a fit that exhausted its iteration budget.
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional structured fields.
	// If an error value is provided as a field, stack trace information may
	// be automatically included by the configured handler.
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	// All subsequent log messages emitted by the returned logger include
	// these fields.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits log records at the given
	// level. This can be used to avoid expensive attribute construction for
	// records that would be discarded.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4 // Detailed diagnostic information
	LevelInfo  Level = 0  // General operational information
	LevelWarn  Level = 4  // Warning conditions
	LevelError Level = 8  // Error conditions
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

// LoggerProvider defines an interface for creating and configuring loggers.
// It allows for dependency injection and testing with different logger
// implementations.
type LoggerProvider interface {
	// GetLogger returns the default logger instance.
	GetLogger() Logger

	// GetLoggerWithName returns a logger with a specific name/component identifier.
	GetLoggerWithName(name string) Logger

	// SetLevel sets the minimum log level for all loggers created by this provider.
	SetLevel(level Level)
}
