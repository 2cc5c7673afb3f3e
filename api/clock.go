// File: api/clock.go
// Package api defines the tick source and clock contracts.
// License: Apache-2.0

package api

import "time"

// TickHandler receives the elapsed time since the previous tick.
type TickHandler func(delta time.Duration)

// TickSource delivers one callback per render/simulation frame.
// Implementations must deliver ticks from a single goroutine; handlers for
// a given tick run synchronously, in registration order.
type TickSource interface {
	// Subscribe registers a handler for every future tick.
	Subscribe(h TickHandler) (Cancelable, error)

	// Close stops tick delivery and releases resources.
	Close() error
}

// Clock exposes the monotonic tick-time reading.
// The reading advances only when a tick delta is applied; it never moves
// backward.
type Clock interface {
	// Now returns elapsed monotonic time since the clock started.
	Now() time.Duration
}
