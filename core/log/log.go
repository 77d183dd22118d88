// Package log defines the structured logging interface used across propgen.
//
// Overview:
//   - Responsibility: Stable logging contract between generator components and logx
//   - Key Types: Logger interface with structured key-value logging
//   - Concurrency Model: Implementations must be safe for concurrent use
//   - Error Semantics: Error accepts the error as first parameter
//   - Performance Notes: Key-value pairs are passed through without formatting
//
// Usage:
//
//	logger.Info("unit written", log.Str("unit", "conf.Config"), log.Int("accessors", 12))
package log

// Logger defines a structured logging interface compatible with slog concepts.
// Implementations must be safe for concurrent use.
type Logger interface {
	// With returns a Logger with the given key-value pairs attached to every record.
	With(kv ...any) Logger

	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, kv ...any)

	// Info logs an informational message with optional key-value pairs.
	Info(msg string, kv ...any)

	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, kv ...any)

	// Error logs an error message with the error and optional key-value pairs.
	Error(err error, msg string, kv ...any)
}

// Str creates a string key-value pair.
func Str(k, v string) any {
	return []any{k, v}
}

// Int creates an integer key-value pair.
func Int(k string, v int) any {
	return []any{k, v}
}

// Strs creates a string-slice key-value pair, e.g. a resource list.
func Strs(k string, v []string) any {
	return []any{k, v}
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (n nopLogger) With(kv ...any) Logger { return n }
func (nopLogger) Debug(msg string, kv ...any) {}
func (nopLogger) Info(msg string, kv ...any) {}
func (nopLogger) Warn(msg string, kv ...any) {}
func (nopLogger) Error(err error, msg string, kv ...any) {}
