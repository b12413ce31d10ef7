//go:build arm64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl performs capability detection on arm64 systems.
//
// On ARMv8, Advanced SIMD is mandatory, so packed kernels are effectively
// always available here unless forced off.
func detectFeaturesImpl() Features {
	return Features{
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}
