// File: internal/clock/clock.go
// Package clock implements the delta-accumulating monotonic tick clock.
// License: Apache-2.0

package clock

import (
	"sync/atomic"
	"time"
)

// TickClock is the process-wide monotonic time value for tick-driven
// scheduling. It advances only through Advance, once per delivered tick,
// and never moves backward. Readers see it through Now.
type TickClock struct {
	now atomic.Int64 // nanoseconds since the clock started
}

// NewTickClock returns a clock at zero.
func NewTickClock() *TickClock {
	return &TickClock{}
}

// Now returns elapsed monotonic time since the clock started.
func (c *TickClock) Now() time.Duration {
	return time.Duration(c.now.Load())
}

// Advance applies one tick's elapsed-time delta and returns the new
// reading. Negative deltas are clamped to zero so the clock stays
// monotonic regardless of what the tick source reports.
func (c *TickClock) Advance(delta time.Duration) time.Duration {
	if delta < 0 {
		delta = 0
	}
	return time.Duration(c.now.Add(int64(delta)))
}
