//go:build linux
// +build linux

// File: control/platform_linux.go
// Linux-specific debug probe integrations.
// License: Apache-2.0

package control

import "runtime"

// RegisterPlatformProbes sets Linux-specific debug metrics.
func RegisterPlatformProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	dp.RegisterProbe("platform.clock_source", func() any {
		return "clock_gettime(CLOCK_MONOTONIC)"
	})
}
