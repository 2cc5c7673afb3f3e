// File: api/executor.go
// Package api defines the supervised execution contract.
// License: Apache-2.0

package api

// Spawner runs callbacks on independent goroutines with failure isolation.
type Spawner interface {
	// Spawn begins executing fn immediately on a fresh goroutine and
	// returns its first outcome. A panic inside fn is captured, reported
	// to the observability sink, and returned as a failed result; it never
	// terminates the caller. The error is non-nil only when validation
	// fails before any goroutine is created.
	Spawn(fn any, args ...any) (SpawnResult, error)

	// SpawnDelayed begins executing fn on the next tick boundary. No
	// result is delivered back; failures are captured and reported.
	SpawnDelayed(fn any, args ...any) error
}
