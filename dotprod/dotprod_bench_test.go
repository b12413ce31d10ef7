package dotprod

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-intdsp/internal/testutil"
)

func BenchmarkInt32(b *testing.B) {
	sizes := []int{256, 4096, 65536}
	for _, size := range sizes {
		x := testutil.Int32Seq(size, 1)
		y := testutil.Int32Seq(size, 2)

		b.Run(fmt.Sprintf("%d", size), func(b *testing.B) {
			b.SetBytes(int64(size * 4 * 2)) // Two slices read
			for i := 0; i < b.N; i++ {
				_ = Int32(x, y)
			}
		})
	}
}

func BenchmarkInt32Parallel(b *testing.B) {
	const size = 1 << 18
	x := testutil.Int32Seq(size, 1)
	y := testutil.Int32Seq(size, 2)

	for _, nPE := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("nPE=%d", nPE), func(b *testing.B) {
			b.SetBytes(int64(size * 4 * 2))
			for i := 0; i < b.N; i++ {
				_ = Int32Parallel(x, y, nPE)
			}
		})
	}
}
