//go:build !linux
// +build !linux

// File: internal/clock/monotonic_other.go
// Portable monotonic reading for platforms without a direct syscall path.
// License: Apache-2.0

package clock

import "time"

// Monotonic returns the OS monotonic clock reading.
func Monotonic() time.Duration {
	return fallbackMonotonic()
}
