// Package logx provides the slog-backed implementation of core/log.Logger.
//
// Overview:
//   - Responsibility: Structured logging for the propgen CLI and generator
//   - Key Types: Logger, Options, Format
//   - Concurrency Model: All loggers are safe for concurrent use
//   - Error Semantics: No errors returned; write failures are dropped
//   - Performance Notes: Fields are sorted once per record for stable output
//
// Usage:
//
//	logger := logx.New(logx.WithFormat(logx.FormatLogfmt), logx.WithLevel(slog.LevelDebug))
//	logger.Info("unit written", log.Str("unit", "conf.Config"))
package logx

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"go.eggybyte.com/egg/propgen/core/log"
	"go.eggybyte.com/egg/propgen/logx/internal"
)

// Format specifies the output format for logs.
type Format string

const (
	// FormatLogfmt outputs logs in logfmt format (key=value pairs).
	FormatLogfmt Format = "logfmt"
	// FormatJSON outputs one JSON object per record.
	FormatJSON Format = "json"
)

// Options configures the logger behavior.
type Options struct {
	Format           Format     // Output format: logfmt or json
	Level            slog.Level // Minimum log level
	Color            bool       // Colorize the level field only
	Writer           io.Writer  // Output writer (default: os.Stderr)
	DisableTimestamp bool       // Omit the time field
}

// Option configures logger behavior.
type Option func(*Options)

// Logger implements core/log.Logger on top of internal.Handler.
type Logger struct {
	handler *internal.Handler
	attrs   []slog.Attr
}

// New creates a new Logger with the given options.
func New(opts ...Option) log.Logger {
	options := Options{
		Format:           FormatLogfmt,
		Level:            slog.LevelInfo,
		Writer:           os.Stderr,
		DisableTimestamp: true,
	}

	for _, opt := range opts {
		opt(&options)
	}

	if options.Writer == nil {
		options.Writer = os.Stderr
	}

	handler := internal.NewHandler(internal.Options{
		Format:           string(options.Format),
		Level:            options.Level,
		Color:            options.Color,
		DisableTimestamp: options.DisableTimestamp,
	}, options.Writer)

	return &Logger{handler: handler}
}

// WithFormat sets the output format.
func WithFormat(format Format) Option {
	return func(o *Options) {
		o.Format = format
	}
}

// WithLevel sets the minimum log level.
func WithLevel(level slog.Level) Option {
	return func(o *Options) {
		o.Level = level
	}
}

// WithColor enables colorization for the level field only.
func WithColor(enabled bool) Option {
	return func(o *Options) {
		o.Color = enabled
	}
}

// WithWriter sets the output writer.
func WithWriter(w io.Writer) Option {
	return func(o *Options) {
		o.Writer = w
	}
}

// WithTimestamp enables the time field.
func WithTimestamp(enabled bool) Option {
	return func(o *Options) {
		o.DisableTimestamp = !enabled
	}
}

// ParseLevel converts debug|info|warn|error into a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// With returns a new Logger with the given key-value pairs attached.
func (l *Logger) With(kv ...any) log.Logger {
	newAttrs := append([]slog.Attr{}, l.attrs...)
	newAttrs = append(newAttrs, internal.KVToAttrs(kv)...)

	return &Logger{
		handler: l.handler,
		attrs:   newAttrs,
	}
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, kv ...any) {
	l.log(slog.LevelDebug, msg, internal.KVToAttrs(kv))
}

// Info logs an informational message.
func (l *Logger) Info(msg string, kv ...any) {
	l.log(slog.LevelInfo, msg, internal.KVToAttrs(kv))
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, kv ...any) {
	l.log(slog.LevelWarn, msg, internal.KVToAttrs(kv))
}

// Error logs an error message.
func (l *Logger) Error(err error, msg string, kv ...any) {
	attrs := internal.KVToAttrs(kv)
	if err != nil {
		attrs = append([]slog.Attr{slog.String("error", err.Error())}, attrs...)
	}
	l.log(slog.LevelError, msg, attrs)
}

func (l *Logger) log(level slog.Level, msg string, attrs []slog.Attr) {
	all := append([]slog.Attr{}, l.attrs...)
	all = append(all, attrs...)
	l.handler.LogRecord(level, msg, all)
}
