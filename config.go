// File: config.go
// Configuration for the scheduling facade.
// License: Apache-2.0

package ticksched

import "time"

// Defaults shared by the facade and the runtime ticker.
const (
	// DefaultTickInterval approximates a 30 Hz frame loop.
	DefaultTickInterval = 33 * time.Millisecond

	// DefaultWaitDuration is used by Wait when no duration is given.
	DefaultWaitDuration = 30 * time.Millisecond

	// DefaultLifetime is used by AddItem when no lifetime is given.
	DefaultLifetime = 10 * time.Second
)

// Config holds parameters immutable per run.
type Config struct {
	TickInterval    time.Duration // frame interval of the owned runtime ticker
	DefaultWait     time.Duration // Wait() duration when absent
	DefaultLifetime time.Duration // AddItem lifetime when absent
	LogLevel        string        // zerolog level name
	LogOutput       string        // log file path; empty means stdout
}

// DefaultConfig returns default configuration values.
func DefaultConfig() *Config {
	return &Config{
		TickInterval:    DefaultTickInterval,
		DefaultWait:     DefaultWaitDuration,
		DefaultLifetime: DefaultLifetime,
		LogLevel:        "info",
		LogOutput:       "",
	}
}
