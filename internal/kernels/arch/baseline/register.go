package baseline

import (
	"github.com/cwbudde/algo-intdsp/internal/cpu"
	"github.com/cwbudde/algo-intdsp/internal/kernels/registry"
)

// init registers the scalar reference kernels.
//
// Baseline is the fallback selected on hosts without packed arithmetic or
// when packed selection is forced off.
//
// Priority: 0 (lowest).
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:     "baseline",
		Level:    cpu.LevelBaseline,
		Priority: 0,

		DotInt32:   DotInt32,
		DotInt16:   DotInt16,
		DotInt8:    DotInt8,
		DotFixed32: DotFixed32,
		DotFixed16: DotFixed16,

		MatMulInt32: MatMulInt32,
		MatMulInt16: MatMulInt16,
		MatMulInt8:  MatMulInt8,

		MatMulTransInt32: MatMulTransInt32,
		MatMulTransInt16: MatMulTransInt16,
		MatMulTransInt8:  MatMulTransInt8,

		MatMulFixed32:      MatMulFixed32,
		MatMulTransFixed32: MatMulTransFixed32,

		MatMulTransCmplxInt32: MatMulTransCmplxInt32,
		MatMulTransCmplxInt16: MatMulTransCmplxInt16,

		MatSubInt32: MatSubInt32,
		MatSubInt16: MatSubInt16,
		MatSubInt8:  MatSubInt8,
		MatAddInt32: MatAddInt32,
		MatAddInt16: MatAddInt16,
		MatAddInt8:  MatAddInt8,

		MatScaleFixed32: MatScaleFixed32,
	})
}
