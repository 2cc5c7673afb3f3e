// File: internal/spawn/spawn_test.go
// License: Apache-2.0

package spawn_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/framewell/ticksched/api"
	"github.com/framewell/ticksched/internal/spawn"
	"github.com/framewell/ticksched/log"
)

func newInvoker() *spawn.Invoker {
	return spawn.NewInvoker(log.Nop())
}

func TestGoReturnsCallbackValues(t *testing.T) {
	iv := newInvoker()

	res := iv.Go(func(a, b int) (int, int) {
		return a + b, a * b
	}, []any{3, 4})

	if !res.OK {
		t.Fatalf("Go() failed: %v", res.Err)
	}
	if len(res.Values) != 2 || res.Values[0] != 7 || res.Values[1] != 12 {
		t.Errorf("Go() values = %v, want [7 12]", res.Values)
	}
}

func TestGoCapturesPanicWithoutKillingCaller(t *testing.T) {
	iv := newInvoker()

	res := iv.Go(func() {
		panic("boom")
	}, nil)

	if res.OK {
		t.Fatal("Go() reported success for a panicking callback")
	}
	if res.Err == nil || !strings.Contains(res.Err.Error(), "boom") {
		t.Errorf("Go() diagnostic = %v, want panic value included", res.Err)
	}
	// Reaching here at all proves the panic did not escape.
}

func TestCallVariadicCallback(t *testing.T) {
	iv := newInvoker()

	res := iv.Call(func(prefix string, rest ...int) int {
		sum := len(prefix)
		for _, n := range rest {
			sum += n
		}
		return sum
	}, []any{"ab", 1, 2, 3})

	if !res.OK {
		t.Fatalf("Call() failed: %v", res.Err)
	}
	if res.Values[0] != 8 {
		t.Errorf("Call() value = %v, want 8", res.Values[0])
	}
}

func TestCallNilArgumentBecomesZeroValue(t *testing.T) {
	iv := newInvoker()

	res := iv.Call(func(p *int) bool {
		return p == nil
	}, []any{nil})

	if !res.OK {
		t.Fatalf("Call() failed: %v", res.Err)
	}
	if res.Values[0] != true {
		t.Error("nil snapshot slot was not passed as a zero value")
	}
}

func TestCallConvertsCompatibleArguments(t *testing.T) {
	iv := newInvoker()

	res := iv.Call(func(f float64) float64 { return f * 2 }, []any{int(21)})
	if !res.OK {
		t.Fatalf("Call() failed: %v", res.Err)
	}
	if res.Values[0] != float64(42) {
		t.Errorf("Call() value = %v, want 42", res.Values[0])
	}
}

func TestCallArgumentMismatchIsFailureNotPanic(t *testing.T) {
	iv := newInvoker()

	res := iv.Call(func(s struct{ X int }) {}, []any{"not a struct"})
	if res.OK {
		t.Fatal("Call() reported success for unassignable argument")
	}
	if res.Err == nil {
		t.Fatal("Call() returned no diagnostic")
	}
}

func TestValidateCallback(t *testing.T) {
	cases := []struct {
		name string
		fn   any
		args []any
		ok   bool
	}{
		{"nil callback", nil, nil, false},
		{"not a function", 42, nil, false},
		{"zero-arg ok", func() {}, nil, true},
		{"arity match", func(int, string) {}, []any{1, "x"}, true},
		{"arity mismatch", func(int) {}, []any{1, 2}, false},
		{"variadic minimum met", func(string, ...int) {}, []any{"x"}, true},
		{"variadic minimum missed", func(string, ...int) {}, nil, false},
	}
	for _, tc := range cases {
		err := spawn.ValidateCallback(tc.fn, tc.args)
		if tc.ok && err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
		if !tc.ok {
			if err == nil {
				t.Errorf("%s: expected error", tc.name)
			} else if !errors.Is(err, api.ErrInvalidArgument) {
				t.Errorf("%s: error %v is not ErrInvalidArgument", tc.name, err)
			}
		}
	}
}
