// File: internal/sched/wait_test.go
// Blocking wait contract: lower bound, overshoot, caller-only suspension.
// License: Apache-2.0

package sched_test

import (
	"testing"
	"time"

	"github.com/framewell/ticksched/internal/sched"
)

// startWait runs Wait on its own goroutine and blocks the test until the
// waiter is registered, so subsequent ticks are guaranteed to be counted.
func startWait(t *testing.T, r *sched.Registry, d time.Duration) <-chan time.Duration {
	t.Helper()
	before := r.Stats()["waiting"].(int)
	out := make(chan time.Duration, 1)
	go func() {
		out <- r.Wait(d)
	}()
	deadline := time.Now().Add(2 * time.Second)
	for {
		if r.Stats()["waiting"].(int) > before {
			return out
		}
		if time.Now().After(deadline) {
			t.Fatal("waiter never registered")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestWaitReturnsAtLeastRequested(t *testing.T) {
	r := newRegistry()
	out := startWait(t, r, 50*time.Millisecond)

	r.Tick(20 * time.Millisecond)
	r.Tick(20 * time.Millisecond)
	select {
	case got := <-out:
		t.Fatalf("Wait resumed at 40ms of delivered ticks with %v requested 50ms", got)
	default:
	}

	r.Tick(20 * time.Millisecond)
	got := <-out
	if got < 50*time.Millisecond {
		t.Errorf("Wait() = %v, want >= 50ms", got)
	}
	if got != 60*time.Millisecond {
		t.Errorf("Wait() = %v, want 60ms (3 ticks of 20ms)", got)
	}
}

func TestWaitZeroSuspendsUntilNextTick(t *testing.T) {
	r := newRegistry()
	out := startWait(t, r, 0)

	select {
	case got := <-out:
		t.Fatalf("Wait(0) returned %v before any tick", got)
	default:
	}

	r.Tick(7 * time.Millisecond)
	if got := <-out; got != 7*time.Millisecond {
		t.Errorf("Wait(0) = %v, want the single tick's 7ms", got)
	}
}

func TestWaitNegativeClampedToZero(t *testing.T) {
	r := newRegistry()
	out := startWait(t, r, -time.Second)

	r.Tick(5 * time.Millisecond)
	if got := <-out; got != 5*time.Millisecond {
		t.Errorf("Wait(-1s) = %v, want 5ms", got)
	}
}

func TestWaitDoesNotBlockOtherScheduledWork(t *testing.T) {
	r := newRegistry()
	fired := false
	_, _ = r.Delay(10*time.Millisecond, func() { fired = true })

	out := startWait(t, r, time.Hour)

	r.Tick(20 * time.Millisecond)
	if !fired {
		t.Error("delayed action starved by a blocked waiter")
	}
	select {
	case <-out:
		t.Error("hour-long wait resumed after 20ms")
	default:
	}
}

func TestConcurrentWaitersResumeIndependently(t *testing.T) {
	r := newRegistry()
	short := startWait(t, r, 10*time.Millisecond)
	long := startWait(t, r, 50*time.Millisecond)

	r.Tick(20 * time.Millisecond)
	if got := <-short; got != 20*time.Millisecond {
		t.Errorf("short Wait() = %v, want 20ms", got)
	}
	select {
	case <-long:
		t.Fatal("long waiter resumed early")
	default:
	}

	r.Tick(20 * time.Millisecond)
	r.Tick(20 * time.Millisecond)
	if got := <-long; got != 60*time.Millisecond {
		t.Errorf("long Wait() = %v, want 60ms", got)
	}
}
