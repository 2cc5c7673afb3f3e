// File: api/disposable.go
// Package api defines the best-effort teardown contract.
// License: Apache-2.0

package api

// Disposable is anything that can tear itself down exactly once.
// Concrete references handed to the disposal scheduler do not need to
// implement this interface; the dispose package adapts native handles,
// generic records, and subscription handles onto it by probing their
// capability set at fire time.
type Disposable interface {
	// Teardown performs the best-effort destroy/disconnect call.
	// Errors are advisory: disposal never retries.
	Teardown() error
}

// TeardownCapability names one probe slot in the fixed priority order used
// when inspecting a heterogeneous reference.
type TeardownCapability string

// Capability probe order, highest priority first.
const (
	CapDestroy       TeardownCapability = "Destroy"
	CapDestroyLower  TeardownCapability = "destroy"
	CapDisconnect    TeardownCapability = "Disconnect"
	CapDisconnectLow TeardownCapability = "disconnect"
)

// CapabilityOrder is the probe sequence for heterogeneous references.
func CapabilityOrder() []TeardownCapability {
	return []TeardownCapability{CapDestroy, CapDestroyLower, CapDisconnect, CapDisconnectLow}
}
