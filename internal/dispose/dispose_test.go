// File: internal/dispose/dispose_test.go
// License: Apache-2.0

package dispose_test

import (
	"testing"

	"github.com/framewell/ticksched/api"
	"github.com/framewell/ticksched/internal/dispose"
)

type destroyAndDisconnect struct {
	destroyed    *int
	disconnected *int
}

func (d destroyAndDisconnect) Destroy()    { *d.destroyed++ }
func (d destroyAndDisconnect) Disconnect() { *d.disconnected++ }

type disconnectOnly struct {
	disconnected *int
}

func (d disconnectOnly) Disconnect() { *d.disconnected++ }

type panickyDestroy struct{}

func (panickyDestroy) Destroy() { panic("teardown blew up") }

func TestDestroyWinsOverDisconnect(t *testing.T) {
	var destroyed, disconnected int
	ref := destroyAndDisconnect{destroyed: &destroyed, disconnected: &disconnected}

	if err := dispose.ForValue(ref).Teardown(); err != nil {
		t.Fatalf("Teardown() error: %v", err)
	}
	if destroyed != 1 || disconnected != 0 {
		t.Errorf("destroyed=%d disconnected=%d, want exactly one Destroy call", destroyed, disconnected)
	}
}

func TestDisconnectUsedWhenNoDestroy(t *testing.T) {
	var disconnected int
	ref := disconnectOnly{disconnected: &disconnected}

	_ = dispose.ForValue(ref).Teardown()
	if disconnected != 1 {
		t.Errorf("disconnected=%d, want 1", disconnected)
	}
}

func TestRecordCapabilityPriorityOrder(t *testing.T) {
	var called []string
	rec := map[string]any{
		"destroy":    func() { called = append(called, "destroy") },
		"Disconnect": func() { called = append(called, "Disconnect") },
		"disconnect": func() { called = append(called, "disconnect") },
	}

	_ = dispose.ForValue(rec).Teardown()
	if len(called) != 1 || called[0] != "destroy" {
		t.Errorf("called = %v, want exactly [destroy]", called)
	}

	// Canonical casing outranks the alternate one.
	called = nil
	rec["Destroy"] = func() { called = append(called, "Destroy") }
	_ = dispose.ForValue(rec).Teardown()
	if len(called) != 1 || called[0] != "Destroy" {
		t.Errorf("called = %v, want exactly [Destroy]", called)
	}
}

func TestCapabilityProbedLazilyAtFireTime(t *testing.T) {
	rec := map[string]any{}
	d := dispose.ForValue(rec)

	// Capability attached between scheduling and firing.
	var called int
	rec["Destroy"] = func() { called++ }

	_ = d.Teardown()
	if called != 1 {
		t.Errorf("late-attached capability called %d times, want 1", called)
	}
}

func TestSubscriptionHandleFallsBackToCancel(t *testing.T) {
	h := &api.MockCancelable{DoneCh: make(chan struct{})}

	_ = dispose.ForValue(h).Teardown()
	if !h.Cancelled {
		t.Error("subscription handle was not cancelled")
	}
}

func TestNoCapabilityIsSilentNoOp(t *testing.T) {
	if err := dispose.ForValue(struct{ X int }{X: 1}).Teardown(); err != nil {
		t.Errorf("Teardown() error: %v, want nil", err)
	}
}

func TestTeardownPanicIsSwallowed(t *testing.T) {
	if err := dispose.ForValue(panickyDestroy{}).Teardown(); err != nil {
		t.Errorf("Teardown() error: %v, want nil", err)
	}
	// Reaching here proves the panic did not escape.
}

func TestNilAtFireTimeSkipsTeardown(t *testing.T) {
	var p *destroyAndDisconnect
	if err := dispose.ForValue(p).Teardown(); err != nil {
		t.Errorf("Teardown() on typed nil: %v, want nil", err)
	}
}

func TestValidShape(t *testing.T) {
	var counter int
	cases := []struct {
		name string
		ref  any
		ok   bool
	}{
		{"nil", nil, false},
		{"int", 42, false},
		{"string", "x", false},
		{"pointer", &counter, true},
		{"struct", struct{}{}, true},
		{"record map", map[string]any{}, true},
		{"subscription handle", &api.MockCancelable{}, true},
	}
	for _, tc := range cases {
		if got := dispose.ValidShape(tc.ref); got != tc.ok {
			t.Errorf("ValidShape(%s) = %v, want %v", tc.name, got, tc.ok)
		}
	}
}
