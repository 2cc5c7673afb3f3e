// File: internal/clock/monotonic.go
// Shared fallback for monotonic readings.
// License: Apache-2.0

package clock

import "time"

// processStart anchors the fallback reading. time.Since uses Go's own
// monotonic component, so the result never jumps with the wall clock.
var processStart = time.Now()

func fallbackMonotonic() time.Duration {
	return time.Since(processStart)
}
