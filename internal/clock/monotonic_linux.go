//go:build linux
// +build linux

// File: internal/clock/monotonic_linux.go
// Linux monotonic clock reading via clock_gettime(CLOCK_MONOTONIC).
// License: Apache-2.0

package clock

import (
	"time"

	"golang.org/x/sys/unix"
)

// Monotonic returns the OS monotonic clock reading. Used by real tick
// sources to measure frame deltas unaffected by wall-clock adjustments.
func Monotonic() time.Duration {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return fallbackMonotonic()
	}
	return time.Duration(ts.Nano())
}
