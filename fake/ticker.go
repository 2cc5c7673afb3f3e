// File: fake/ticker.go
// Package fake provides test doubles for the core contracts.
// License: Apache-2.0

package fake

import (
	"sync"
	"time"

	"github.com/framewell/ticksched/api"
)

// ManualTicker is a hand-stepped TickSource for tests. Each Step delivers
// one tick with the given delta to every subscriber, synchronously, in
// subscription order.
type ManualTicker struct {
	mu     sync.Mutex
	subs   []*manualSub
	nextID uint64
	closed bool
}

// NewManualTicker returns a ticker with no subscribers.
func NewManualTicker() *ManualTicker {
	return &ManualTicker{}
}

// Subscribe registers h for every future Step.
func (t *ManualTicker) Subscribe(h api.TickHandler) (api.Cancelable, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil, api.ErrTickerClosed
	}
	t.nextID++
	s := &manualSub{id: t.nextID, h: h, t: t, done: make(chan struct{})}
	t.subs = append(t.subs, s)
	return s, nil
}

// Step delivers one tick carrying delta. Handlers run outside the ticker
// lock so they may subscribe or cancel during delivery; such changes take
// effect from the next Step.
func (t *ManualTicker) Step(delta time.Duration) {
	t.mu.Lock()
	snapshot := make([]*manualSub, len(t.subs))
	copy(snapshot, t.subs)
	t.mu.Unlock()

	for _, s := range snapshot {
		s.h(delta)
	}
}

// StepN delivers n ticks of delta each.
func (t *ManualTicker) StepN(n int, delta time.Duration) {
	for i := 0; i < n; i++ {
		t.Step(delta)
	}
}

// Close drops all subscriptions and rejects new ones.
func (t *ManualTicker) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil
	}
	t.closed = true
	for _, s := range t.subs {
		s.closeDone()
	}
	t.subs = nil
	return nil
}

type manualSub struct {
	id       uint64
	h        api.TickHandler
	t        *ManualTicker
	done     chan struct{}
	doneOnce sync.Once
}

func (s *manualSub) Cancel() error {
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

func (s *manualSub) Done() <-chan struct{} { return s.done }

func (s *manualSub) closeDone() {
	s.doneOnce.Do(func() { close(s.done) })
}
