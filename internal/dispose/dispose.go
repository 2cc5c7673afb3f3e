// File: internal/dispose/dispose.go
// Package dispose adapts heterogeneous references onto the Disposable
// contract by probing their capability set at fire time.
// License: Apache-2.0

package dispose

import (
	"reflect"

	"github.com/framewell/ticksched/api"
)

// ValidShape reports whether ref is an accepted disposable reference:
// a native handle (pointer or struct), a generic record (map or struct,
// optionally exposing a teardown method), or a subscription-like handle
// (api.Cancelable or api.Disposable).
func ValidShape(ref any) bool {
	if ref == nil {
		return false
	}
	switch ref.(type) {
	case api.Disposable, api.Cancelable:
		return true
	}
	v := reflect.ValueOf(ref)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		return true
	case reflect.Struct, reflect.Map:
		return true
	default:
		return false
	}
}

// ForValue wraps ref in an adapter whose Teardown performs the
// fixed-priority capability lookup. The lookup is deliberately deferred to
// Teardown so a method or record key attached after scheduling is still
// honored at fire time.
func ForValue(ref any) api.Disposable {
	return &valueAdapter{ref: ref}
}

type valueAdapter struct {
	ref any
}

// Teardown probes the reference in priority order and invokes the first
// available capability. Errors and panics raised by the teardown call are
// swallowed: disposal is best-effort and never retried or reported.
func (a *valueAdapter) Teardown() error {
	defer func() {
		// TeardownFailure policy: fully swallowed.
		_ = recover()
	}()

	if a.ref == nil || isNilValue(a.ref) {
		return nil
	}

	for _, capability := range api.CapabilityOrder() {
		if fn, ok := probe(a.ref, capability); ok {
			fn()
			return nil
		}
	}

	// No capability at all: the action still counts as fired.
	return nil
}

// probe looks up one named zero-argument capability on ref. Exported
// methods are found by reflection; alternate-casing capabilities, which Go
// cannot express as exported methods, are served by func-valued keys on
// record maps. A Disposable counts as carrying the primary destroy
// capability and a Cancelable subscription handle as the canonical
// disconnect capability.
func probe(ref any, capability api.TeardownCapability) (func(), bool) {
	name := string(capability)

	v := reflect.ValueOf(ref)
	if m := v.MethodByName(name); m.IsValid() && m.Type().NumIn() == 0 {
		return func() { m.Call(nil) }, true
	}

	switch capability {
	case api.CapDestroy:
		if d, ok := ref.(api.Disposable); ok {
			return func() { _ = d.Teardown() }, true
		}
	case api.CapDisconnect:
		if c, ok := ref.(api.Cancelable); ok {
			return func() { _ = c.Cancel() }, true
		}
	}

	if v.Kind() == reflect.Map && v.Type().Key().Kind() == reflect.String {
		entry := v.MapIndex(reflect.ValueOf(name))
		if entry.IsValid() {
			if entry.Kind() == reflect.Interface {
				entry = entry.Elem()
			}
			if entry.IsValid() && entry.Kind() == reflect.Func && entry.Type().NumIn() == 0 {
				return func() { entry.Call(nil) }, true
			}
		}
	}

	return nil, false
}

// isNilValue reports whether ref is a typed nil (nil pointer, map, etc.).
func isNilValue(ref any) bool {
	v := reflect.ValueOf(ref)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Interface, reflect.Chan, reflect.Func, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}
