// File: options.go
// Functional options for the scheduling facade.
// License: Apache-2.0

package ticksched

import (
	"time"

	"github.com/framewell/ticksched/api"
	"github.com/framewell/ticksched/log"
)

// Option customizes facade initialization.
type Option func(*Sched)

// WithTickSource drives the scheduler from an external tick source instead
// of an owned runtime ticker. The caller keeps ownership of src.
func WithTickSource(src api.TickSource) Option {
	return func(s *Sched) {
		s.source = src
	}
}

// WithLogger replaces the logger built from Config.LogLevel/LogOutput.
func WithLogger(l log.Logger) Option {
	return func(s *Sched) {
		s.log = l
	}
}

// WithDefaultWait overrides the duration used by Wait when absent.
func WithDefaultWait(d time.Duration) Option {
	return func(s *Sched) {
		s.cfg.DefaultWait = d
	}
}

// WithDefaultLifetime overrides the lifetime used by AddItem when absent.
func WithDefaultLifetime(d time.Duration) Option {
	return func(s *Sched) {
		s.cfg.DefaultLifetime = d
	}
}
