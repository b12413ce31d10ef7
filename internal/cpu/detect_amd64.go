//go:build amd64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl performs capability detection on amd64 systems.
//
// SSE2 is part of the x86-64 baseline, so packed kernels are effectively
// always available here unless forced off.
func detectFeaturesImpl() Features {
	return Features{
		HasSSE2:      cpu.X86.HasSSE2,
		Architecture: runtime.GOARCH,
	}
}
