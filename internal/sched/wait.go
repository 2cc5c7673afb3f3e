// File: internal/sched/wait.go
// Blocking wait measured by accumulated tick deltas.
// License: Apache-2.0

package sched

import "time"

// waiter tracks one blocked caller. remaining starts at the requested
// duration and is decremented by each tick's delta; the caller resumes
// once it reaches zero or below.
type waiter struct {
	remaining time.Duration
	ch        chan time.Duration
}

// Wait suspends the calling goroutine until at least d of simulated time
// has been delivered by ticks, then returns the actual elapsed duration,
// which is >= d by up to one tick of overshoot. Negative d is clamped to
// zero. Only the caller blocks; tick delivery and other scheduled work
// continue.
//
// A zero duration still suspends until the next tick boundary.
func (r *Registry) Wait(d time.Duration) time.Duration {
	if d < 0 {
		d = 0
	}
	w := &waiter{remaining: d, ch: make(chan time.Duration, 1)}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return 0
	}
	r.waiters = append(r.waiters, w)
	r.mu.Unlock()

	remaining := <-w.ch
	return d - remaining
}

// advanceWaiters subtracts delta from every blocked caller and returns
// those whose remaining time is exhausted. Called under r.mu; the resume
// signals are sent by Tick after the mutex is released.
func (r *Registry) advanceWaiters(delta time.Duration) []*waiter {
	if len(r.waiters) == 0 {
		return nil
	}
	var resumed []*waiter
	old := r.waiters
	kept := old[:0]
	for _, w := range old {
		w.remaining -= delta
		if w.remaining <= 0 {
			resumed = append(resumed, w)
		} else {
			kept = append(kept, w)
		}
	}
	for i := len(kept); i < len(old); i++ {
		old[i] = nil
	}
	r.waiters = kept
	return resumed
}
