package mat

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

// kernels resolves the kernel entry for this host, once. Selection is a pure
// function of the execution context; an unresolvable context panics rather
// than silently defaulting.
func kernels() *registry.OpEntry {
	implOnce.Do(func() {
		features := cpu.DetectFeatures()
		entry := registry.Global.Lookup(features)
		if entry == nil {
			panic("mat: no kernel implementation registered")
		}
		if entry.MatMulInt32 == nil || entry.MatMulInt16 == nil || entry.MatMulInt8 == nil ||
			entry.MatMulTransInt32 == nil || entry.MatMulTransInt16 == nil || entry.MatMulTransInt8 == nil ||
			entry.MatMulFixed32 == nil || entry.MatMulTransFixed32 == nil ||
			entry.MatMulTransCmplxInt32 == nil || entry.MatMulTransCmplxInt16 == nil ||
			entry.MatSubInt32 == nil || entry.MatSubInt16 == nil || entry.MatSubInt8 == nil ||
			entry.MatAddInt32 == nil || entry.MatAddInt16 == nil || entry.MatAddInt8 == nil ||
			entry.MatScaleFixed32 == nil {
			panic("mat: selected implementation missing matrix kernels")
		}
		impl = entry
	})
	return impl
}
