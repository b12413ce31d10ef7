package baseline

import (
	"testing"

	"github.com/cwbudde/algo-intdsp/internal/kernels/registry"
)

func TestDotInt32(t *testing.T) {
	cases := []struct {
		name string
		a, b []int32
		want int32
	}{
		{name: "empty", a: nil, b: nil, want: 0},
		{name: "one empty", a: []int32{1, 2}, b: nil, want: 0},
		{name: "single", a: []int32{3}, b: []int32{-7}, want: -21},
		{name: "worked example", a: []int32{1, 2, 3}, b: []int32{4, 5, 6}, want: 32},
		{name: "mixed signs", a: []int32{-1, 2, -3}, b: []int32{4, -5, 6}, want: -32},
		{name: "different lengths", a: []int32{1, 2, 3, 4}, b: []int32{2, 3}, want: 8},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DotInt32(tc.a, tc.b); got != tc.want {
				t.Fatalf("DotInt32() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestDotNarrowWidths(t *testing.T) {
	a16 := []int16{1, 2, 3}
	b16 := []int16{4, 5, 6}
	if got := DotInt16(a16, b16); got != 32 {
		t.Fatalf("DotInt16() = %d, want 32", got)
	}

	a8 := []int8{-100, 100}
	b8 := []int8{100, 100}
	// Products exceed the 8-bit range; accumulation is 32-bit.
	if got := DotInt8(a8, b8); got != 0 {
		t.Fatalf("DotInt8() = %d, want 0", got)
	}
}

func TestDotFixedTruncatesTowardNegativeInfinity(t *testing.T) {
	cases := []struct {
		name      string
		a, b      []int32
		deciPoint uint
		want      int32
	}{
		{name: "positive", a: []int32{5}, b: []int32{1}, deciPoint: 1, want: 2},
		{name: "negative floors", a: []int32{-5}, b: []int32{1}, deciPoint: 1, want: -3},
		{name: "negative floors deep", a: []int32{-1}, b: []int32{1}, deciPoint: 4, want: -1},
		{name: "zero shift", a: []int32{7}, b: []int32{3}, deciPoint: 0, want: 21},
		{name: "worked example scaled", a: []int32{1, 2, 3}, b: []int32{4, 5, 6}, deciPoint: 3, want: 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DotFixed32(tc.a, tc.b, tc.deciPoint); got != tc.want {
				t.Fatalf("DotFixed32() = %d, want %d", got, tc.want)
			}
		})
	}

	if got := DotFixed16([]int16{-5}, []int16{1}, 1); got != -3 {
		t.Fatalf("DotFixed16() = %d, want -3", got)
	}
}

func TestMatMulTransWorkedExample(t *testing.T) {
	// A = |1 2|   B^T rows = columns of B = |5 6| and |7 8|
	//     |3 4|
	a := []int32{1, 2, 3, 4}
	b := []int32{5, 6, 7, 8}
	dst := make([]int32, 4)
	g := registry.MatGeom{M: 2, N: 2, O: 2, StrideA: 2, StrideB: 2, StrideC: 2}

	MatMulTransInt32(dst, a, b, g, 0, 1)

	want := []int32{17, 23, 39, 53}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst[%d] = %d, want %d", i, dst[i], want[i])
		}
	}
}

func TestMatMulPlainWorkedExample(t *testing.T) {
	// Same product as above but B in natural N x O layout.
	a := []int32{1, 2, 3, 4}
	b := []int32{5, 7, 6, 8}
	dst := make([]int32, 4)
	g := registry.MatGeom{M: 2, N: 2, O: 2, StrideA: 2, StrideB: 2, StrideC: 2}

	MatMulInt32(dst, a, b, g, 0, 1)

	want := []int32{17, 23, 39, 53}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst[%d] = %d, want %d", i, dst[i], want[i])
		}
	}
}

func TestMatMulTransStridedSubView(t *testing.T) {
	// Operands live in the top-left corner of larger backing matrices.
	const (
		m, n, o                   = 2, 3, 2
		strideA, strideB, strideC = 5, 4, 3
		backA, backB, backC       = 2*5 + 3, 2*4 + 3, 2*3 + 2
	)
	a := make([]int32, backA)
	b := make([]int32, backB)
	for row := 0; row < m; row++ {
		for col := 0; col < n; col++ {
			a[row*strideA+col] = int32(row*n + col + 1)
		}
	}
	for row := 0; row < o; row++ {
		for col := 0; col < n; col++ {
			b[row*strideB+col] = int32(row*n + col + 1)
		}
	}
	dst := make([]int32, backC)
	for i := range dst {
		dst[i] = -1
	}

	g := registry.MatGeom{M: m, N: n, O: o, StrideA: strideA, StrideB: strideB, StrideC: strideC}
	MatMulTransInt32(dst, a, b, g, 0, 1)

	// Rows of A: (1,2,3), (4,5,6); rows of B^T: (1,2,3), (4,5,6).
	want := [][]int32{{14, 32}, {32, 77}}
	for row := 0; row < m; row++ {
		for col := 0; col < o; col++ {
			if got := dst[row*strideC+col]; got != want[row][col] {
				t.Fatalf("dst[%d,%d] = %d, want %d", row, col, got, want[row][col])
			}
		}
	}
	// Stride padding must stay untouched.
	if dst[o] != -1 || dst[strideC+o] != -1 {
		t.Fatal("kernel wrote into stride padding")
	}
}

func TestMatMulTransCmplxWorkedExample(t *testing.T) {
	// A = [(1+2i)], B = [(3+4i)]: re = 1*3 - 2*4 = -5, im = 1*4 + 2*3 = 10.
	g := registry.MatGeom{M: 1, N: 1, O: 1, StrideA: 1, StrideB: 1, StrideC: 1}

	dst32 := make([]int32, 2)
	MatMulTransCmplxInt32(dst32, []int32{1, 2}, []int32{3, 4}, g, 0, 1)
	if dst32[0] != -5 || dst32[1] != 10 {
		t.Fatalf("int32 complex = (%d, %d), want (-5, 10)", dst32[0], dst32[1])
	}

	dst16 := make([]int32, 2)
	MatMulTransCmplxInt16(dst16, []int16{1, 2}, []int16{3, 4}, g, 0, 1)
	if dst16[0] != -5 || dst16[1] != 10 {
		t.Fatalf("int16 complex = (%d, %d), want (-5, 10)", dst16[0], dst16[1])
	}
}

func TestMatSubWraparound(t *testing.T) {
	g := registry.EltGeom{M: 1, N: 2, StrideA: 2, StrideB: 2, StrideDst: 2}

	dst := make([]int8, 2)
	MatSubInt8(dst, []int8{-128, 10}, []int8{1, 3}, g, 0, 1)
	if dst[0] != 127 {
		t.Fatalf("int8 subtract wrap = %d, want 127", dst[0])
	}
	if dst[1] != 7 {
		t.Fatalf("int8 subtract = %d, want 7", dst[1])
	}
}

func TestMatAdd(t *testing.T) {
	g := registry.EltGeom{M: 2, N: 2, StrideA: 2, StrideB: 2, StrideDst: 2}
	dst := make([]int32, 4)
	MatAddInt32(dst, []int32{1, 2, 3, 4}, []int32{10, 20, 30, 40}, g, 0, 1)
	want := []int32{11, 22, 33, 44}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst[%d] = %d, want %d", i, dst[i], want[i])
		}
	}
}

func TestMatScaleFixed32(t *testing.T) {
	g := registry.EltGeom{M: 1, N: 3, StrideA: 3, StrideDst: 3}
	dst := make([]int32, 3)
	MatScaleFixed32(dst, []int32{4, -4, 5}, 3, 1, g, 0, 1)
	// (4*3)>>1 = 6, (-4*3)>>1 = -6, (5*3)>>1 = 7.
	want := []int32{6, -6, 7}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst[%d] = %d, want %d", i, dst[i], want[i])
		}
	}
}

// TestCyclicAssignmentCoversRowsOnce runs each core's invocation separately
// and checks that the per-core row sets partition [0, M): every output row
// written exactly once across cores, none skipped, none duplicated.
func TestCyclicAssignmentCoversRowsOnce(t *testing.T) {
	const m, n, o = 7, 3, 2
	a := make([]int32, m*n)
	b := make([]int32, o*n)
	for i := range a {
		a[i] = int32(i + 1)
	}
	for i := range b {
		b[i] = int32(2*i + 1)
	}
	g := registry.MatGeom{M: m, N: n, O: o, StrideA: n, StrideB: n, StrideC: o}

	single := make([]int32, m*o)
	MatMulTransInt32(single, a, b, g, 0, 1)

	for _, nPE := range []int{1, 2, 3, 4, 8} {
		writers := make([]int, m)
		combined := make([]int32, m*o)
		for coreID := 0; coreID < nPE; coreID++ {
			const canary = int32(-123456789)
			dst := make([]int32, m*o)
			for i := range dst {
				dst[i] = canary
			}
			MatMulTransInt32(dst, a, b, g, coreID, nPE)
			for row := 0; row < m; row++ {
				rowWritten := false
				for col := 0; col < o; col++ {
					if dst[row*o+col] != canary {
						rowWritten = true
						combined[row*o+col] = dst[row*o+col]
					}
				}
				if rowWritten {
					writers[row]++
				}
			}
		}
		for row, count := range writers {
			if count != 1 {
				t.Fatalf("nPE=%d: row %d written by %d cores, want 1", nPE, row, count)
			}
		}
		for i := range single {
			if combined[i] != single[i] {
				t.Fatalf("nPE=%d: combined[%d] = %d, want %d", nPE, i, combined[i], single[i])
			}
		}
	}
}
