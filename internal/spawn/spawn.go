// File: internal/spawn/spawn.go
// Package spawn implements the supervised callback invoker shared by the
// immediate, delayed and timer execution paths.
// License: Apache-2.0

package spawn

import (
	"fmt"
	"reflect"
	"runtime/debug"

	pkgerrors "github.com/pkg/errors"

	"github.com/framewell/ticksched/api"
	"github.com/framewell/ticksched/log"
)

// Invoker converts callback faults into structured results instead of
// letting them propagate. One invoker serves every scheduling primitive so
// the zero-argument and variadic paths stay unified.
type Invoker struct {
	log log.Logger
}

// NewInvoker returns an invoker reporting failures to logger.
func NewInvoker(logger log.Logger) *Invoker {
	return &Invoker{log: logger.Component("spawn")}
}

// ValidateCallback checks that fn can be invoked with the given argument
// snapshot. It is called before any goroutine or pending action is created.
func ValidateCallback(fn any, args []any) error {
	if fn == nil {
		return api.InvalidArgument("callback", "must not be nil")
	}
	t := reflect.TypeOf(fn)
	if t.Kind() != reflect.Func {
		return api.InvalidArgument("callback", fmt.Sprintf("must be a function, got %T", fn))
	}
	if t.IsVariadic() {
		if len(args) < t.NumIn()-1 {
			return api.InvalidArgument("args",
				fmt.Sprintf("callback takes at least %d arguments, snapshot has %d", t.NumIn()-1, len(args)))
		}
		return nil
	}
	if len(args) != t.NumIn() {
		return api.InvalidArgument("args",
			fmt.Sprintf("callback takes %d arguments, snapshot has %d", t.NumIn(), len(args)))
	}
	return nil
}

// Call runs fn with the argument snapshot on the current goroutine,
// capturing any panic into a failed result. The tick driver calls through
// here so a single failing action never kills the loop.
func (iv *Invoker) Call(fn any, args []any) (res api.SpawnResult) {
	defer func() {
		if r := recover(); r != nil {
			err := pkgerrors.WithStack(fmt.Errorf("callback panic: %v", r))
			iv.log.Warn().
				Err(err).
				Str("stack", string(debug.Stack())).
				Msg("callback failed")
			res = api.SpawnResult{Err: err}
		}
	}()

	v := reflect.ValueOf(fn)
	in, err := buildArgs(v.Type(), args)
	if err != nil {
		err = pkgerrors.WithStack(err)
		iv.log.Warn().Err(err).Msg("callback argument mismatch at fire time")
		return api.SpawnResult{Err: err}
	}

	out := v.Call(in)
	values := make([]any, len(out))
	for i, o := range out {
		values[i] = o.Interface()
	}
	return api.SpawnResult{OK: true, Values: values}
}

// Go runs fn on a fresh goroutine and blocks for its first outcome. The
// new call stack is independent: a panic there is captured and reported,
// never re-raised into the caller.
func (iv *Invoker) Go(fn any, args []any) api.SpawnResult {
	ch := make(chan api.SpawnResult, 1)
	go func() {
		ch <- iv.Call(fn, args)
	}()
	return <-ch
}

// Fire runs fn under supervision and discards the outcome. Used by the
// timer registry where no caller is left to receive a result.
func (iv *Invoker) Fire(fn any, args []any) {
	_ = iv.Call(fn, args)
}

// buildArgs maps the opaque snapshot onto fn's parameter types. Nil
// snapshot slots become zero values of the parameter type.
func buildArgs(t reflect.Type, args []any) ([]reflect.Value, error) {
	in := make([]reflect.Value, 0, len(args))
	for i, a := range args {
		var pt reflect.Type
		if t.IsVariadic() && i >= t.NumIn()-1 {
			pt = t.In(t.NumIn() - 1).Elem()
		} else {
			if i >= t.NumIn() {
				return nil, fmt.Errorf("argument %d: callback takes only %d arguments", i, t.NumIn())
			}
			pt = t.In(i)
		}
		if a == nil {
			in = append(in, reflect.Zero(pt))
			continue
		}
		av := reflect.ValueOf(a)
		if !av.Type().AssignableTo(pt) {
			if !av.Type().ConvertibleTo(pt) {
				return nil, fmt.Errorf("argument %d: %s is not assignable to %s", i, av.Type(), pt)
			}
			av = av.Convert(pt)
		}
		in = append(in, av)
	}
	return in, nil
}
