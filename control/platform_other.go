//go:build !linux
// +build !linux

// File: control/platform_other.go
// Portable debug probe integrations.
// License: Apache-2.0

package control

import "runtime"

// RegisterPlatformProbes sets platform debug metrics.
func RegisterPlatformProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	dp.RegisterProbe("platform.clock_source", func() any {
		return "time.Since(process start)"
	})
}
