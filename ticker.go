// File: ticker.go
// RuntimeTicker: a wall-frame tick source driven by time.Ticker, with
// deltas measured against the OS monotonic clock.
// License: Apache-2.0

package ticksched

import (
	"sync"
	"time"

	"github.com/framewell/ticksched/api"
	"github.com/framewell/ticksched/internal/clock"
)

// RuntimeTicker emits one tick per frame interval from its own goroutine.
// Deltas are measured with the monotonic clock, not assumed equal to the
// interval, so slow frames report their real elapsed time.
type RuntimeTicker struct {
	interval time.Duration

	mu      sync.Mutex
	subs    []*runtimeSub
	nextID  uint64
	started bool
	closed  bool
	stopCh  chan struct{}
	stopped chan struct{}
}

// NewRuntimeTicker returns a stopped ticker at the given frame interval.
func NewRuntimeTicker(interval time.Duration) *RuntimeTicker {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &RuntimeTicker{
		interval: interval,
		stopCh:   make(chan struct{}),
		stopped:  make(chan struct{}),
	}
}

// Start launches the frame loop. Idempotent; returns an error after Close.
func (t *RuntimeTicker) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return api.ErrTickerClosed
	}
	if t.started {
		return nil
	}
	t.started = true
	go t.run()
	return nil
}

func (t *RuntimeTicker) run() {
	defer close(t.stopped)
	tk := time.NewTicker(t.interval)
	defer tk.Stop()
	last := clock.Monotonic()
	for {
		select {
		case <-tk.C:
			now := clock.Monotonic()
			delta := now - last
			last = now
			t.deliver(delta)
		case <-t.stopCh:
			return
		}
	}
}

func (t *RuntimeTicker) deliver(delta time.Duration) {
	t.mu.Lock()
	snapshot := make([]*runtimeSub, len(t.subs))
	copy(snapshot, t.subs)
	t.mu.Unlock()

	for _, s := range snapshot {
		s.h(delta)
	}
}

// Subscribe registers h for every future frame.
func (t *RuntimeTicker) Subscribe(h api.TickHandler) (api.Cancelable, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil, api.ErrTickerClosed
	}
	t.nextID++
	s := &runtimeSub{id: t.nextID, h: h, t: t, done: make(chan struct{})}
	t.subs = append(t.subs, s)
	return s, nil
}

// Close stops the frame loop and drops all subscriptions. Idempotent.
func (t *RuntimeTicker) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	running := t.started
	for _, s := range t.subs {
		s.closeDone()
	}
	t.subs = nil
	t.mu.Unlock()

	close(t.stopCh)
	if running {
		<-t.stopped
	}
	return nil
}

type runtimeSub struct {
	id       uint64
	h        api.TickHandler
	t        *RuntimeTicker
	done     chan struct{}
	doneOnce sync.Once
}

func (s *runtimeSub) Cancel() error {
	s.t.mu.Lock()
	defer s.t.mu.Unlock()
	for i, cur := range s.t.subs {
		if cur.id == s.id {
			s.t.subs = append(s.t.subs[:i], s.t.subs[i+1:]...)
			break
		}
	}
	s.closeDone()
	return nil
}

func (s *runtimeSub) Done() <-chan struct{} { return s.done }

func (s *runtimeSub) closeDone() {
	s.doneOnce.Do(func() { close(s.done) })
}
