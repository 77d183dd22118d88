// Package testingx provides testing helpers and fakes for propgen packages.
//
// Overview:
//   - Responsibility: Mock logger, in-memory output sink, diagnostics recorder, error assertions
//   - Key Types: MockLogger, MemorySink, Diagnostics
//   - Concurrency Model: All fakes are safe for concurrent use
//   - Error Semantics: Test failures via testing.T
//   - Performance Notes: Everything is kept in memory
//
// Usage:
//
//	logger := testingx.NewMockLogger(t)
//	sink := testingx.NewMemorySink()
//	diags := testingx.NewDiagnostics()
//	gen := generator.New(generator.Options{Logger: logger, Sink: sink, Diagnostics: diags})
package testingx

import (
	"sync"
	"testing"

	"go.eggybyte.com/egg/propgen/core/errors"
	"go.eggybyte.com/egg/propgen/core/log"
)

// MockLogger is a mock logger for testing.
type MockLogger struct {
	t      *testing.T
	store  *entryStore
	fields []any
}

type entryStore struct {
	mu      sync.Mutex
	entries []LogEntry
}

// LogEntry represents a single log entry.
type LogEntry struct {
	Level   string
	Message string
	Fields  []any
	Error   error
}

// NewMockLogger creates a new mock logger.
func NewMockLogger(t *testing.T) *MockLogger {
	return &MockLogger{
		t:     t,
		store: &entryStore{entries: make([]LogEntry, 0)},
	}
}

// With returns a logger that records kv before the fields of every entry.
// It shares entries with its parent.
func (m *MockLogger) With(kv ...any) log.Logger {
	fields := append(append([]any{}, m.fields...), kv...)
	return &MockLogger{t: m.t, store: m.store, fields: fields}
}

// Debug logs a debug message.
func (m *MockLogger) Debug(msg string, kv ...any) {
	m.log("DEBUG", msg, nil, kv)
}

// Info logs an info message.
func (m *MockLogger) Info(msg string, kv ...any) {
	m.log("INFO", msg, nil, kv)
}

// Warn logs a warning message.
func (m *MockLogger) Warn(msg string, kv ...any) {
	m.log("WARN", msg, nil, kv)
}

// Error logs an error message.
func (m *MockLogger) Error(err error, msg string, kv ...any) {
	m.log("ERROR", msg, err, kv)
}

func (m *MockLogger) log(level, msg string, err error, kv []any) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	m.store.entries = append(m.store.entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  append(append([]any{}, m.fields...), kv...),
		Error:   err,
	})
}

// Entries returns all log entries.
func (m *MockLogger) Entries() []LogEntry {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	entries := make([]LogEntry, len(m.store.entries))
	copy(entries, m.store.entries)
	return entries
}

// Count returns how many entries have the given level and message.
func (m *MockLogger) Count(level, msg string) int {
	n := 0
	for _, entry := range m.Entries() {
		if entry.Level == level && entry.Message == msg {
			n++
		}
	}
	return n
}

// AssertLogged asserts that a message was logged.
func (m *MockLogger) AssertLogged(level, msg string) {
	m.t.Helper()
	if m.Count(level, msg) == 0 {
		m.t.Errorf("Expected log message not found: level=%s msg=%q", level, msg)
	}
}

// AssertNotLogged asserts that a message was never logged.
func (m *MockLogger) AssertNotLogged(level, msg string) {
	m.t.Helper()
	if m.Count(level, msg) != 0 {
		m.t.Errorf("Unexpected log message: level=%s msg=%q", level, msg)
	}
}

// Clear clears all log entries.
func (m *MockLogger) Clear() {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	m.store.entries = nil
}

// AssertError asserts that an error has the expected code.
func AssertError(t *testing.T, err error, expectedCode errors.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected error with code %s, got nil", expectedCode)
	}

	code := errors.CodeOf(err)
	if code != expectedCode {
		t.Errorf("Expected error code %s, got %s (%v)", expectedCode, code, err)
	}
}

// AssertNoError asserts that no error occurred.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
}
