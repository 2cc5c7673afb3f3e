// File: api/result.go
// Package api defines result and outcome types.
// License: Apache-2.0

package api

// SpawnResult is the first outcome of a spawned callback.
// Exactly one of Values or Err is meaningful, selected by OK.
type SpawnResult struct {
	OK     bool  // true if the callback returned normally
	Values []any // return values on success
	Err    error // diagnostic with stack trace on failure
}

// Result wraps any payload or error.
type Result[T any] struct {
	Value T
	Err   error
}
