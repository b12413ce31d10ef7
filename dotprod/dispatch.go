// Package dotprod provides integer and fixed-point dot products.
//
// Each operation resolves to a scalar baseline or a packed kernel once, on
// first use, based on the capabilities of the executing host. All variants of
// an operation produce bit-identical results, so callers observe only speed,
// never values, from the selection.
package dotprod

import (
	"sync"

	"github.com/cwbudde/algo-intdsp/internal/cpu"
	"github.com/cwbudde/algo-intdsp/internal/kernels/registry"

	// Arch packages register their kernel variants via init().
	_ "github.com/cwbudde/algo-intdsp/internal/kernels/arch/baseline"
	_ "github.com/cwbudde/algo-intdsp/internal/kernels/arch/packed"
)

var (
	impl     *registry.OpEntry
	implOnce sync.Once
)

// kernels resolves the kernel entry for this host. An unresolvable context is
// a contract violation and panics rather than silently defaulting.
func kernels() *registry.OpEntry {
	implOnce.Do(func() {
		features := cpu.DetectFeatures()
		entry := registry.Global.Lookup(features)
		if entry == nil {
			panic("dotprod: no kernel implementation registered")
		}
		if entry.DotInt32 == nil || entry.DotInt16 == nil || entry.DotInt8 == nil ||
			entry.DotFixed32 == nil || entry.DotFixed16 == nil {
			panic("dotprod: selected implementation missing dot product kernels")
		}
		impl = entry
	})
	return impl
}
