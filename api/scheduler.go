// File: api/scheduler.go
// Package api defines the timed-action scheduling contract.
// License: Apache-2.0

package api

import "time"

// Scheduler arranges one-shot callbacks against the tick clock.
type Scheduler interface {
	Clock

	// Delay invokes fn with the argument snapshot exactly once, no earlier
	// than d after the call. The snapshot is taken at call time.
	Delay(d time.Duration, fn any, args ...any) (Cancelable, error)

	// Pending returns the number of actions not yet fired or cancelled.
	Pending() int
}

// Cancelable is a one-shot cancellation handle for a pending action.
type Cancelable interface {
	// Cancel detaches the pending action. Idempotent: cancelling after the
	// action fired, or a second time, is a no-op.
	Cancel() error

	// Done signals that the action fired or was cancelled.
	Done() <-chan struct{}
}
