// Package ui provides unified output formatting for the propgen CLI.
//
// Overview:
//   - Responsibility: Leveled user-facing output, JSON mode, step indication
//   - Key Types: OutputLevel, Message, Diagnostics
//   - Concurrency Model: Thread-safe output operations
//   - Error Semantics: Errors go to stderr; encoding failures are reported, never returned
//   - Performance Notes: One write per message
//
// Usage:
//
//	ui.Info("Generating %d units", n)
//	ui.Error("Failed to generate %s: %v", unit, err)
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	verbose    bool
	jsonOutput bool
	stdout     io.Writer = os.Stdout
	stderr     io.Writer = os.Stderr
	mu         sync.RWMutex
)

// OutputLevel represents the severity level of a message.
type OutputLevel string

const (
	LevelDebug   OutputLevel = "debug"
	LevelInfo    OutputLevel = "info"
	LevelWarning OutputLevel = "warning"
	LevelError   OutputLevel = "error"
	LevelSuccess OutputLevel = "success"
)

// Message represents a structured output message.
//
// Parameters:
//   - Level: Message severity level
//   - Text: Human-readable message content
//   - Data: Optional structured data for JSON output
//   - Timestamp: When the message was created
type Message struct {
	Level     OutputLevel `json:"level"`
	Text      string      `json:"text"`
	Data      any         `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// SetVerbose enables or disables debug output.
func SetVerbose(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = enabled
}

// SetJSONOutput enables JSON-formatted output.
func SetJSONOutput(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	jsonOutput = enabled
}

// SetOutput redirects standard and error output.
//
// Parameters:
//   - out: Writer for non-error messages
//   - errOut: Writer for error messages
func SetOutput(out, errOut io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	stdout = out
	stderr = errOut
}

// output writes a message to the appropriate output stream.
//
// Parameters:
//   - level: Message severity level
//   - data: Structured data, only rendered in JSON mode
//   - format: Printf-style format string
//   - args: Format arguments
//
// Concurrency:
//   - Thread-safe
func output(level OutputLevel, data any, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()

	if level == LevelDebug && !verbose {
		return
	}

	writer := stdout
	if level == LevelError {
		writer = stderr
	}

	text := fmt.Sprintf(format, args...)
	if jsonOutput {
		message := Message{
			Level:     level,
			Text:      text,
			Data:      data,
			Timestamp: time.Now(),
		}
		if err := json.NewEncoder(writer).Encode(message); err != nil {
			fmt.Fprintf(stderr, "Failed to encode JSON output: %v\n", err)
		}
		return
	}

	var prefix string
	switch level {
	case LevelDebug:
		prefix = "DEBUG:"
	case LevelInfo:
		prefix = "INFO:"
	case LevelWarning:
		prefix = "WARN:"
	case LevelError:
		prefix = "ERROR:"
	case LevelSuccess:
		prefix = "OK:"
	}

	fmt.Fprintf(writer, "%s %s\n", prefix, text)
}

// Debug outputs a debug message, shown only in verbose mode.
func Debug(format string, args ...any) {
	output(LevelDebug, nil, format, args...)
}

// Info outputs an informational message.
func Info(format string, args ...any) {
	output(LevelInfo, nil, format, args...)
}

// Warning outputs a warning message.
func Warning(format string, args ...any) {
	output(LevelWarning, nil, format, args...)
}

// Error outputs an error message to stderr.
func Error(format string, args ...any) {
	output(LevelError, nil, format, args...)
}

// Success outputs a success message.
func Success(format string, args ...any) {
	output(LevelSuccess, nil, format, args...)
}

// SuccessData outputs a success message carrying structured data for JSON mode.
//
// Parameters:
//   - data: Value encoded under "data" in JSON mode
//   - format: Printf-style format string
//   - args: Format arguments
func SuccessData(data any, format string, args ...any) {
	output(LevelSuccess, data, format, args...)
}

// Step outputs a step indicator with message.
//
// Parameters:
//   - step: Step number
//   - total: Total number of steps
//   - format: Printf-style format string
//   - args: Format arguments
func Step(step, total int, format string, args ...any) {
	mu.RLock()
	useJSON := jsonOutput
	writer := stdout
	mu.RUnlock()

	if useJSON {
		Info(format, args...)
		return
	}

	fmt.Fprintf(writer, "  [%d/%d] %s\n", step, total, fmt.Sprintf(format, args...))
}

// Diagnostics forwards generator diagnostics to Error output.
type Diagnostics struct{}

// Error implements generator.Diagnostics.
func (Diagnostics) Error(msg string) {
	Error("%s", msg)
}
