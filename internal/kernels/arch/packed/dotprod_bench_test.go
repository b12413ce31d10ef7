package packed

import (
	"testing"

	"github.com/cwbudde/algo-intdsp/internal/kernels/arch/baseline"
	"github.com/cwbudde/algo-intdsp/internal/kernels/registry"
	"github.com/cwbudde/algo-intdsp/internal/testutil"
)

var benchSizes = []int{16, 64, 256, 1024, 4096, 16384}

func squareGeom(n int) registry.MatGeom {
	return registry.MatGeom{M: n, N: n, O: n, StrideA: n, StrideB: n, StrideC: n}
}

func BenchmarkDotInt16(b *testing.B) {
	for _, size := range benchSizes {
		x := testutil.Int16Seq(size, 1)
		y := testutil.Int16Seq(size, 2)

		b.Run(sizeStr(size), func(b *testing.B) {
			b.SetBytes(int64(size * 2 * 2)) // Two slices read
			for i := 0; i < b.N; i++ {
				_ = DotInt16(x, y)
			}
		})
	}
}

func BenchmarkDotInt16Baseline(b *testing.B) {
	for _, size := range benchSizes {
		x := testutil.Int16Seq(size, 1)
		y := testutil.Int16Seq(size, 2)

		b.Run(sizeStr(size), func(b *testing.B) {
			b.SetBytes(int64(size * 2 * 2))
			for i := 0; i < b.N; i++ {
				_ = baseline.DotInt16(x, y)
			}
		})
	}
}

func BenchmarkDotInt8(b *testing.B) {
	for _, size := range benchSizes {
		x := testutil.Int8Seq(size, 3)
		y := testutil.Int8Seq(size, 4)

		b.Run(sizeStr(size), func(b *testing.B) {
			b.SetBytes(int64(size * 2))
			for i := 0; i < b.N; i++ {
				_ = DotInt8(x, y)
			}
		})
	}
}

func BenchmarkMatMulTransInt16(b *testing.B) {
	dims := []int{8, 32, 128}
	for _, n := range dims {
		g := squareGeom(n)
		x := testutil.Int16Seq(n*n, 5)
		y := testutil.Int16Seq(n*n, 6)
		dst := make([]int32, n*n)

		b.Run(sizeStr(n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				MatMulTransInt16(dst, x, y, g, 0, 1)
			}
		})
	}
}
