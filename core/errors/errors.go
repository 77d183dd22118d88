// Package errors provides structured, code-classified errors for propgen.
//
// Overview:
//   - Responsibility: Classify generation failures and wrap their causes
//   - Key Types: Code for classification, E for structured errors
//   - Concurrency Model: All functions are safe for concurrent use
//   - Error Semantics: Compatible with standard library wrapping (errors.Is/As/Unwrap)
//   - Performance Notes: One allocation per error
//
// Usage:
//
//	err := errors.New(errors.CodeInvalidArgument, "class name is required")
//	wrapped := errors.Wrap(errors.CodeResourceLoad, "generator.load", originalErr)
//	if errors.IsCode(err, errors.CodeValidation) { ... }
package errors

import (
	"errors"
	"fmt"
)

// Code represents an error classification code.
type Code string

// Generation error codes.
const (
	// CodeInvalidArgument marks a malformed generation request or manifest.
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	// CodeResourceLoad marks a resource that could not be opened or parsed.
	CodeResourceLoad Code = "RESOURCE_LOAD"
	// CodeValidation marks properties whose values do not match their inferred type.
	CodeValidation Code = "VALIDATION_FAILED"
	// CodeIO marks an output sink that could not be created or written.
	CodeIO Code = "IO"
	// CodeInternal marks template or formatting failures inside the generator.
	CodeInternal Code = "INTERNAL"
)

// E represents a structured error with code, operation, message, and details.
type E struct {
	Code    Code   // Error classification code
	Op      string // Operation that failed
	Err     error  // Underlying error (may be nil)
	Msg     string // Human-readable message
	Details []any  // Additional structured details (e.g. validation errors)
}

// Error implements the error interface.
func (e *E) Error() string {
	msg := e.Msg
	if msg == "" && e.Op != "" {
		msg = e.Op
	}
	switch {
	case e.Err != nil && msg != "":
		return fmt.Sprintf("%s: %s: %v", e.Code, msg, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Code, msg)
	}
}

// Unwrap returns the underlying error for error unwrapping.
func (e *E) Unwrap() error {
	return e.Err
}

// New creates a new structured error with the given code and message.
func New(code Code, msg string) error {
	return &E{
		Code: code,
		Msg:  msg,
	}
}

// Wrap creates a new structured error wrapping an existing error.
// The operation name helps identify where the error occurred.
func Wrap(code Code, op string, err error) error {
	return &E{
		Code: code,
		Op:   op,
		Err:  err,
	}
}

// Wrapf creates a new structured error wrapping an existing error with formatted message.
func Wrapf(code Code, op string, err error, format string, args ...any) error {
	return &E{
		Code: code,
		Op:   op,
		Err:  err,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// CodeOf extracts the error code from an error.
// Returns empty string if the error doesn't carry a code.
func CodeOf(err error) Code {
	var e *E
	if err != nil && errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// DetailsOf returns the details attached to the outermost *E in the chain.
func DetailsOf(err error) []any {
	var e *E
	if err != nil && errors.As(err, &e) {
		return e.Details
	}
	return nil
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}

// As is a convenience wrapper around the standard library's errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Is is a convenience wrapper around the standard library's errors.Is.
func Is(err error, target error) bool {
	return errors.Is(err, target)
}

// Builder provides a fluent interface for constructing errors.
type Builder struct {
	code    Code
	op      string
	err     error
	msg     string
	details []any
}

// Build starts a new error with the given code.
func Build(code Code) *Builder {
	return &Builder{code: code}
}

// WithOp sets the operation that failed.
func (b *Builder) WithOp(op string) *Builder {
	b.op = op
	return b
}

// WithErr wraps an underlying error.
func (b *Builder) WithErr(err error) *Builder {
	b.err = err
	return b
}

// WithMsg sets a human-readable message.
func (b *Builder) WithMsg(msg string) *Builder {
	b.msg = msg
	return b
}

// WithMsgf sets a formatted human-readable message.
func (b *Builder) WithMsgf(format string, args ...any) *Builder {
	b.msg = fmt.Sprintf(format, args...)
	return b
}

// WithDetails adds structured details to the error.
func (b *Builder) WithDetails(details ...any) *Builder {
	b.details = append(b.details, details...)
	return b
}

// Err builds and returns the error.
func (b *Builder) Err() error {
	return &E{
		Code:    b.code,
		Op:      b.op,
		Err:     b.err,
		Msg:     b.msg,
		Details: b.details,
	}
}
