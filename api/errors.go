// File: api/errors.go
// Package api defines common error types and error handling utilities.
// License: Apache-2.0

package api

import "fmt"

// Common errors used across the library.
var (
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrSchedulerClosed = fmt.Errorf("scheduler is closed")
	ErrTickerClosed    = fmt.Errorf("tick source is closed")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeExecutionFailure
	ErrCodeSchedulerClosed
	ErrCodeInternal
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap maps structured errors onto their sentinel for errors.Is checks.
func (e *Error) Unwrap() error {
	switch e.Code {
	case ErrCodeInvalidArgument:
		return ErrInvalidArgument
	case ErrCodeSchedulerClosed:
		return ErrSchedulerClosed
	default:
		return nil
	}
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// InvalidArgument builds an ErrCodeInvalidArgument error for a named input.
func InvalidArgument(name, reason string) *Error {
	return NewError(ErrCodeInvalidArgument, "invalid argument").
		WithContext("argument", name).
		WithContext("reason", reason)
}
