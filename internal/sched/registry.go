// File: internal/sched/registry.go
// Package sched implements the tick-driven timer registry: the shared
// bookkeeping for every pending delayed action and disposal.
// License: Apache-2.0

package sched

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/eapache/queue"

	"github.com/framewell/ticksched/api"
	"github.com/framewell/ticksched/internal/clock"
	"github.com/framewell/ticksched/internal/spawn"
	"github.com/framewell/ticksched/log"
)

// entry states. Transitions are guarded by the registry mutex and happen
// exactly once: pending -> fired or pending -> cancelled.
const (
	statePending int32 = iota
	stateFired
	stateCancelled
)

// entry is one Pending Action: a target completion time against the tick
// clock and the supervised fire function.
type entry struct {
	seq    uint64
	target time.Duration
	fire   func()
	state  int32
	done   chan struct{}
	reg    *Registry
}

// Handle is the opaque cancellation token handed back to callers.
type Handle struct {
	e *entry
}

// Cancel detaches the pending action. Safe to call from any goroutine and
// any number of times; cancelling after the action fired is a no-op.
func (h *Handle) Cancel() error {
	r := h.e.reg
	r.mu.Lock()
	defer r.mu.Unlock()
	if h.e.state != statePending {
		return nil
	}
	h.e.state = stateCancelled
	delete(r.index, h.e.seq)
	close(h.e.done)
	r.cancelled.Add(1)
	return nil
}

// Done is closed once the action fired or was cancelled.
func (h *Handle) Done() <-chan struct{} {
	return h.e.done
}

// Registry maps pending actions to their target times and drives firing
// from the tick event. All mutation happens either inside Tick or inside
// the scheduling/cancelling calls, under one mutex, so tick delivery and
// callers may live on different goroutines.
type Registry struct {
	mu      sync.Mutex
	clk     *clock.TickClock
	invoker *spawn.Invoker
	log     log.Logger

	entries []*entry          // subscription order
	index   map[uint64]*entry // seq -> live entry, O(1) cancel
	nextSeq uint64
	posted  *queue.Queue // run queue drained at the next tick boundary
	waiters []*waiter
	closed  bool

	scheduled atomic.Uint64
	fired     atomic.Uint64
	cancelled atomic.Uint64
	ticks     atomic.Uint64
}

// NewRegistry builds an empty registry against clk.
func NewRegistry(clk *clock.TickClock, invoker *spawn.Invoker, logger log.Logger) *Registry {
	return &Registry{
		clk:     clk,
		invoker: invoker,
		log:     logger.Component("registry"),
		index:   make(map[uint64]*entry),
		posted:  queue.New(),
	}
}

// Now returns the current tick-clock reading.
func (r *Registry) Now() time.Duration {
	return r.clk.Now()
}

// Delay arranges for fn to be invoked with the argument snapshot exactly
// once, no earlier than d after this call, without suspending the caller.
func (r *Registry) Delay(d time.Duration, fn any, args ...any) (api.Cancelable, error) {
	if d < 0 {
		return nil, api.InvalidArgument("duration", "must be non-negative")
	}
	if err := spawn.ValidateCallback(fn, args); err != nil {
		return nil, err
	}
	snapshot := make([]any, len(args))
	copy(snapshot, args)
	return r.Schedule(r.clk.Now()+d, func() {
		r.invoker.Fire(fn, snapshot)
	})
}

// Schedule registers a raw one-shot fire at the given target elapsed time.
// The disposal scheduler builds on this with its own fire function.
func (r *Registry) Schedule(target time.Duration, fireFn func()) (api.Cancelable, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil, api.NewError(api.ErrCodeSchedulerClosed, "scheduler is closed")
	}
	r.nextSeq++
	e := &entry{
		seq:    r.nextSeq,
		target: target,
		fire:   fireFn,
		done:   make(chan struct{}),
		reg:    r,
	}
	r.entries = append(r.entries, e)
	r.index[e.seq] = e
	r.scheduled.Add(1)
	return &Handle{e: e}, nil
}

// PostNextTick enqueues fireFn to run at the next tick boundary, before
// any timer checks for that tick.
func (r *Registry) PostNextTick(fireFn func()) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return api.NewError(api.ErrCodeSchedulerClosed, "scheduler is closed")
	}
	r.posted.Add(fireFn)
	return nil
}

// Tick is the registry's TickHandler. It advances the clock by delta,
// drains the next-tick run queue, resumes expired waiters and fires every
// due pending action in subscription order. One failing action never
// prevents later actions in the same tick or future ticks.
func (r *Registry) Tick(delta time.Duration) {
	now := r.clk.Advance(delta)
	r.ticks.Add(1)

	r.mu.Lock()

	var runs []func()
	for r.posted.Length() > 0 {
		runs = append(runs, r.posted.Remove().(func()))
	}

	resumed := r.advanceWaiters(delta)

	var due []*entry
	if len(r.entries) > 0 {
		old := r.entries
		kept := old[:0]
		for _, e := range old {
			switch {
			case e.state == stateCancelled:
				// detached by a handle; drop during this sweep
			case e.target <= now:
				e.state = stateFired
				delete(r.index, e.seq)
				close(e.done)
				due = append(due, e)
			default:
				kept = append(kept, e)
			}
		}
		for i := len(kept); i < len(old); i++ {
			old[i] = nil
		}
		r.entries = kept
	}

	r.mu.Unlock()

	for _, run := range runs {
		r.runProtected(run)
	}
	for _, w := range resumed {
		w.ch <- w.remaining
	}
	for _, e := range due {
		r.runProtected(e.fire)
		r.fired.Add(1)
	}
}

// runProtected keeps the tick loop alive across a misbehaving fire
// function. Callback-level supervision lives in the spawn invoker; this is
// the registry's own last line.
func (r *Registry) runProtected(fn func()) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Warn().Interface("panic", rec).Msg("pending action failed")
		}
	}()
	fn()
}

// Pending returns the number of actions not yet fired or cancelled.
func (r *Registry) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.index)
}

// Stats returns registry counters for the control surface.
func (r *Registry) Stats() map[string]any {
	r.mu.Lock()
	pending := len(r.index)
	waiting := len(r.waiters)
	r.mu.Unlock()
	return map[string]any{
		"scheduled": r.scheduled.Load(),
		"fired":     r.fired.Load(),
		"cancelled": r.cancelled.Load(),
		"ticks":     r.ticks.Load(),
		"pending":   pending,
		"waiting":   waiting,
	}
}

// Close cancels all pending actions, releases blocked waiters and rejects
// further scheduling. Idempotent.
func (r *Registry) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	for _, e := range r.entries {
		if e.state == statePending {
			e.state = stateCancelled
			delete(r.index, e.seq)
			close(e.done)
		}
	}
	r.entries = nil
	for r.posted.Length() > 0 {
		r.posted.Remove()
	}
	released := r.waiters
	r.waiters = nil
	r.mu.Unlock()

	for _, w := range released {
		w.ch <- w.remaining
	}
	return nil
}
