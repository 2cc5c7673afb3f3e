// File: ticksched.go
// Unified facade for the tick-driven scheduling library.
// License: Apache-2.0
//
// Sched aggregates the tick source, the timer registry, the supervised
// invoker and the control surfaces behind one type. It exposes the four
// scheduling primitives (blocking wait, delayed execution, fire-and-forget
// spawn, deferred disposal) plus lifecycle and introspection methods.

package ticksched

import (
	"sync"
	"time"

	"github.com/framewell/ticksched/api"
	"github.com/framewell/ticksched/control"
	"github.com/framewell/ticksched/internal/clock"
	"github.com/framewell/ticksched/internal/dispose"
	"github.com/framewell/ticksched/internal/sched"
	"github.com/framewell/ticksched/internal/spawn"
	"github.com/framewell/ticksched/log"
)

// Sched is the main facade type.
type Sched struct {
	cfg     *Config
	log     log.Logger
	source  api.TickSource
	owned   *RuntimeTicker // non-nil when the facade created the source
	clk     *clock.TickClock
	invoker *spawn.Invoker
	reg     *sched.Registry
	metrics *control.MetricsRegistry
	probes  *control.DebugProbes

	mu      sync.Mutex
	sub     api.Cancelable
	started bool
	closed  bool
}

// Interface compliance.
var (
	_ api.Scheduler = (*Sched)(nil)
	_ api.Spawner   = (*Sched)(nil)
	_ api.Control   = (*Sched)(nil)
)

// New builds a stopped scheduler. Without WithTickSource the facade owns a
// RuntimeTicker at cfg.TickInterval and starts/stops it with Start/Close.
func New(cfg *Config, opts ...Option) (*Sched, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	s := &Sched{
		cfg: cfg,
		log: log.NewLogger(cfg.LogLevel, cfg.LogOutput),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.cfg.DefaultWait < 0 {
		return nil, api.InvalidArgument("DefaultWait", "must be non-negative")
	}
	if s.cfg.DefaultLifetime < 0 {
		return nil, api.InvalidArgument("DefaultLifetime", "must be non-negative")
	}
	if s.source == nil {
		rt := NewRuntimeTicker(s.cfg.TickInterval)
		s.source = rt
		s.owned = rt
	}

	s.clk = clock.NewTickClock()
	s.invoker = spawn.NewInvoker(s.log)
	s.reg = sched.NewRegistry(s.clk, s.invoker, s.log)
	s.metrics = control.NewMetricsRegistry()
	s.probes = control.NewDebugProbes()
	control.RegisterPlatformProbes(s.probes)
	s.probes.RegisterProbe("scheduler.pending", func() any {
		return s.reg.Pending()
	})
	return s, nil
}

// Start subscribes the timer registry to the tick source and, when the
// source is owned, begins the frame loop. Idempotent.
func (s *Sched) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return api.ErrSchedulerClosed
	}
	if s.started {
		return nil
	}
	sub, err := s.source.Subscribe(s.reg.Tick)
	if err != nil {
		return err
	}
	s.sub = sub
	if s.owned != nil {
		if err := s.owned.Start(); err != nil {
			_ = sub.Cancel()
			s.sub = nil
			return err
		}
	}
	s.started = true
	s.log.Info().Dur("tick_interval", s.cfg.TickInterval).Msg("scheduler started")
	return nil
}

// Close detaches from the tick source, stops an owned ticker, cancels all
// pending actions and releases blocked waiters. Idempotent.
func (s *Sched) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	sub := s.sub
	s.sub = nil
	s.mu.Unlock()

	if sub != nil {
		_ = sub.Cancel()
	}
	if s.owned != nil {
		_ = s.owned.Close()
	}
	err := s.reg.Close()
	s.log.Info().Msg("scheduler closed")
	return err
}

// Now returns the current tick-clock reading.
func (s *Sched) Now() time.Duration {
	return s.reg.Now()
}

// Wait suspends the calling goroutine until at least the requested
// duration of simulated time has elapsed, measured by delivered tick
// deltas, and returns the actual elapsed duration (>= requested). With no
// argument the configured default (~30ms) is used; a negative duration is
// clamped to zero. Only the caller blocks. Must not be called from inside
// a scheduled callback: that would suspend the tick loop itself.
func (s *Sched) Wait(d ...time.Duration) (time.Duration, error) {
	if len(d) > 1 {
		return 0, api.InvalidArgument("duration", "at most one duration may be given")
	}
	dur := s.cfg.DefaultWait
	if len(d) == 1 {
		dur = d[0]
	}
	return s.reg.Wait(dur), nil
}

// Delay arranges for fn to be invoked with the argument snapshot exactly
// once, no earlier than d after this call, without suspending the caller.
// The returned handle cancels the invocation if used strictly before
// firing; cancelling later is a no-op. A panic inside fn is captured and
// reported, never propagated to the tick loop.
func (s *Sched) Delay(d time.Duration, fn any, args ...any) (api.Cancelable, error) {
	return s.reg.Delay(d, fn, args...)
}

// Spawn begins executing fn with the argument snapshot immediately on a
// fresh goroutine and returns its first outcome: (OK, return values) or
// (failed, diagnostic with stack trace). The error is non-nil only when
// validation fails, before any goroutine is created.
func (s *Sched) Spawn(fn any, args ...any) (api.SpawnResult, error) {
	if err := spawn.ValidateCallback(fn, args); err != nil {
		return api.SpawnResult{}, err
	}
	snapshot := make([]any, len(args))
	copy(snapshot, args)
	return s.invoker.Go(fn, snapshot), nil
}

// SpawnDelayed begins executing fn on the next tick boundary instead of
// synchronously. No handle or result is delivered back; failures follow
// the same capture-and-report policy as Spawn.
func (s *Sched) SpawnDelayed(fn any, args ...any) error {
	if err := spawn.ValidateCallback(fn, args); err != nil {
		return err
	}
	snapshot := make([]any, len(args))
	copy(snapshot, args)
	return s.reg.PostNextTick(func() {
		s.invoker.Fire(fn, snapshot)
	})
}

// AddItem arranges a best-effort teardown of ref exactly once after at
// least the given lifetime (default ~10s). At fire time the reference's
// capability set is probed in fixed priority order (Destroy, destroy,
// Disconnect, disconnect) and the first available method is invoked;
// teardown errors are swallowed. A reference with no capability fires as a
// silent no-op.
func (s *Sched) AddItem(ref any, lifetime ...time.Duration) (api.Cancelable, error) {
	if len(lifetime) > 1 {
		return nil, api.InvalidArgument("lifetime", "at most one lifetime may be given")
	}
	life := s.cfg.DefaultLifetime
	if len(lifetime) == 1 {
		life = lifetime[0]
	}
	if life < 0 {
		return nil, api.InvalidArgument("lifetime", "must be non-negative")
	}
	if !dispose.ValidShape(ref) {
		return nil, api.InvalidArgument("reference",
			"must be a pointer, struct, map record or subscription handle")
	}
	return s.reg.Schedule(s.reg.Now()+life, func() {
		_ = dispose.ForValue(ref).Teardown()
	})
}

// Pending returns the number of actions not yet fired or cancelled.
func (s *Sched) Pending() int {
	return s.reg.Pending()
}

// Stats returns a snapshot of scheduler counters.
func (s *Sched) Stats() map[string]any {
	s.metrics.SetAll(s.reg.Stats())
	return s.metrics.GetSnapshot()
}

// RegisterDebugProbe inserts a named debug hook into the control surface.
func (s *Sched) RegisterDebugProbe(name string, fn func() any) {
	s.probes.RegisterProbe(name, fn)
}

// DumpState returns the output of all registered debug probes.
func (s *Sched) DumpState() map[string]any {
	return s.probes.DumpState()
}
