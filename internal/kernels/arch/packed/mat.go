package packed

import "github.com/cwbudde/algo-intdsp/internal/kernels/registry"

// MatMulInt32 computes dst[m,o] = sum_n a[m,n] * b[n,o] for the cyclic row
// set of the given core, with a two-way unrolled inner loop.
func MatMulInt32(dst, a, b []int32, g registry.MatGeom, coreID, nPE int) {
	even := g.N &^ 1
	for m := coreID; m < g.M; m += nPE {
		for o := 0; o < g.O; o++ {
			var sum int32
			for n := 0; n < even; n += 2 {
				sum += a[m*g.StrideA+n]*b[n*g.StrideB+o] +
					a[m*g.StrideA+n+1]*b[(n+1)*g.StrideB+o]
			}
			if even < g.N {
				sum += a[m*g.StrideA+even] * b[even*g.StrideB+o]
			}
			dst[m*g.StrideC+o] = sum
		}
	}
}

// MatMulInt16 consumes two 16-bit lanes of the A row per iteration. The B
// column is strided, so its lanes are gathered individually.
func MatMulInt16(dst []int32, a, b []int16, g registry.MatGeom, coreID, nPE int) {
	even := g.N &^ 1
	for m := coreID; m < g.M; m += nPE {
		for o := 0; o < g.O; o++ {
			var sum int32
			for n := 0; n < even; n += 2 {
				sum += int32(a[m*g.StrideA+n])*int32(b[n*g.StrideB+o]) +
					int32(a[m*g.StrideA+n+1])*int32(b[(n+1)*g.StrideB+o])
			}
			if even < g.N {
				sum += int32(a[m*g.StrideA+even]) * int32(b[even*g.StrideB+o])
			}
			dst[m*g.StrideC+o] = sum
		}
	}
}

// MatMulInt8 consumes four 8-bit lanes of the A row per iteration.
func MatMulInt8(dst []int32, a, b []int8, g registry.MatGeom, coreID, nPE int) {
	quad := g.N &^ 3
	for m := coreID; m < g.M; m += nPE {
		for o := 0; o < g.O; o++ {
			var sum int32
			for n := 0; n < quad; n += 4 {
				sum += int32(a[m*g.StrideA+n])*int32(b[n*g.StrideB+o]) +
					int32(a[m*g.StrideA+n+1])*int32(b[(n+1)*g.StrideB+o]) +
					int32(a[m*g.StrideA+n+2])*int32(b[(n+2)*g.StrideB+o]) +
					int32(a[m*g.StrideA+n+3])*int32(b[(n+3)*g.StrideB+o])
			}
			for n := quad; n < g.N; n++ {
				sum += int32(a[m*g.StrideA+n]) * int32(b[n*g.StrideB+o])
			}
			dst[m*g.StrideC+o] = sum
		}
	}
}

// MatMulTransInt32 computes dst[m,o] = sum_n a[m,n] * b[o,n] with a two-way
// unrolled inner loop. Both operand rows are contiguous in n.
func MatMulTransInt32(dst, a, b []int32, g registry.MatGeom, coreID, nPE int) {
	for m := coreID; m < g.M; m += nPE {
		rowA := a[m*g.StrideA:]
		for o := 0; o < g.O; o++ {
			rowB := b[o*g.StrideB:]
			dst[m*g.StrideC+o] = DotInt32(rowA[:g.N], rowB[:g.N])
		}
	}
}

// MatMulTransInt16 reuses the packed 16-bit dot product per output element;
// in the transposed layout both operand rows are contiguous in n.
func MatMulTransInt16(dst []int32, a, b []int16, g registry.MatGeom, coreID, nPE int) {
	for m := coreID; m < g.M; m += nPE {
		rowA := a[m*g.StrideA:]
		for o := 0; o < g.O; o++ {
			rowB := b[o*g.StrideB:]
			dst[m*g.StrideC+o] = DotInt16(rowA[:g.N], rowB[:g.N])
		}
	}
}

// MatMulTransInt8 reuses the packed 8-bit dot product per output element.
func MatMulTransInt8(dst []int32, a, b []int8, g registry.MatGeom, coreID, nPE int) {
	for m := coreID; m < g.M; m += nPE {
		rowA := a[m*g.StrideA:]
		for o := 0; o < g.O; o++ {
			rowB := b[o*g.StrideB:]
			dst[m*g.StrideC+o] = DotInt8(rowA[:g.N], rowB[:g.N])
		}
	}
}

// MatMulFixed32 is the fixed-point plain multiply: full-precision
// accumulation, then one arithmetic right shift per output element.
func MatMulFixed32(dst, a, b []int32, deciPoint uint, g registry.MatGeom, coreID, nPE int) {
	even := g.N &^ 1
	for m := coreID; m < g.M; m += nPE {
		for o := 0; o < g.O; o++ {
			var sum int32
			for n := 0; n < even; n += 2 {
				sum += a[m*g.StrideA+n]*b[n*g.StrideB+o] +
					a[m*g.StrideA+n+1]*b[(n+1)*g.StrideB+o]
			}
			if even < g.N {
				sum += a[m*g.StrideA+even] * b[even*g.StrideB+o]
			}
			dst[m*g.StrideC+o] = sum >> deciPoint
		}
	}
}

// MatMulTransFixed32 is the fixed-point transpose multiply.
func MatMulTransFixed32(dst, a, b []int32, deciPoint uint, g registry.MatGeom, coreID, nPE int) {
	for m := coreID; m < g.M; m += nPE {
		rowA := a[m*g.StrideA:]
		for o := 0; o < g.O; o++ {
			rowB := b[o*g.StrideB:]
			dst[m*g.StrideC+o] = DotInt32(rowA[:g.N], rowB[:g.N]) >> deciPoint
		}
	}
}
