package baseline

import "github.com/cwbudde/algo-intdsp/internal/kernels/registry"

// MatMulInt32 computes dst[m,o] = sum_n a[m,n] * b[n,o] for the cyclic row
// set of the given core: m = coreID, coreID+nPE, ... while m < M. Each core
// writes only to its own output rows, so concurrent invocations with
// distinct coreID values never overlap.
func MatMulInt32(dst, a, b []int32, g registry.MatGeom, coreID, nPE int) {
	for m := coreID; m < g.M; m += nPE {
		for o := 0; o < g.O; o++ {
			var sum int32
			for n := 0; n < g.N; n++ {
				sum += a[m*g.StrideA+n] * b[n*g.StrideB+o]
			}
			dst[m*g.StrideC+o] = sum
		}
	}
}

// MatMulInt16 is MatMulInt32 over 16-bit sources with 32-bit accumulation.
func MatMulInt16(dst []int32, a, b []int16, g registry.MatGeom, coreID, nPE int) {
	for m := coreID; m < g.M; m += nPE {
		for o := 0; o < g.O; o++ {
			var sum int32
			for n := 0; n < g.N; n++ {
				sum += int32(a[m*g.StrideA+n]) * int32(b[n*g.StrideB+o])
			}
			dst[m*g.StrideC+o] = sum
		}
	}
}

// MatMulInt8 is MatMulInt32 over 8-bit sources with 32-bit accumulation.
func MatMulInt8(dst []int32, a, b []int8, g registry.MatGeom, coreID, nPE int) {
	for m := coreID; m < g.M; m += nPE {
		for o := 0; o < g.O; o++ {
			var sum int32
			for n := 0; n < g.N; n++ {
				sum += int32(a[m*g.StrideA+n]) * int32(b[n*g.StrideB+o])
			}
			dst[m*g.StrideC+o] = sum
		}
	}
}

// MatMulTransInt32 computes dst[m,o] = sum_n a[m,n] * b[o,n], i.e. B is
// supplied already transposed and indexed by output column first.
func MatMulTransInt32(dst, a, b []int32, g registry.MatGeom, coreID, nPE int) {
	for m := coreID; m < g.M; m += nPE {
		for o := 0; o < g.O; o++ {
			var sum int32
			for n := 0; n < g.N; n++ {
				sum += a[m*g.StrideA+n] * b[o*g.StrideB+n]
			}
			dst[m*g.StrideC+o] = sum
		}
	}
}

// MatMulTransInt16 is MatMulTransInt32 over 16-bit sources.
func MatMulTransInt16(dst []int32, a, b []int16, g registry.MatGeom, coreID, nPE int) {
	for m := coreID; m < g.M; m += nPE {
		for o := 0; o < g.O; o++ {
			var sum int32
			for n := 0; n < g.N; n++ {
				sum += int32(a[m*g.StrideA+n]) * int32(b[o*g.StrideB+n])
			}
			dst[m*g.StrideC+o] = sum
		}
	}
}

// MatMulTransInt8 is MatMulTransInt32 over 8-bit sources.
func MatMulTransInt8(dst []int32, a, b []int8, g registry.MatGeom, coreID, nPE int) {
	for m := coreID; m < g.M; m += nPE {
		for o := 0; o < g.O; o++ {
			var sum int32
			for n := 0; n < g.N; n++ {
				sum += int32(a[m*g.StrideA+n]) * int32(b[o*g.StrideB+n])
			}
			dst[m*g.StrideC+o] = sum
		}
	}
}

// MatMulFixed32 is the fixed-point plain multiply: each output element is
// accumulated at full precision, then shifted right arithmetically by
// deciPoint.
func MatMulFixed32(dst, a, b []int32, deciPoint uint, g registry.MatGeom, coreID, nPE int) {
	for m := coreID; m < g.M; m += nPE {
		for o := 0; o < g.O; o++ {
			var sum int32
			for n := 0; n < g.N; n++ {
				sum += a[m*g.StrideA+n] * b[n*g.StrideB+o]
			}
			dst[m*g.StrideC+o] = sum >> deciPoint
		}
	}
}

// MatMulTransFixed32 is the fixed-point transpose multiply; see MatMulFixed32.
func MatMulTransFixed32(dst, a, b []int32, deciPoint uint, g registry.MatGeom, coreID, nPE int) {
	for m := coreID; m < g.M; m += nPE {
		for o := 0; o < g.O; o++ {
			var sum int32
			for n := 0; n < g.N; n++ {
				sum += a[m*g.StrideA+n] * b[o*g.StrideB+n]
			}
			dst[m*g.StrideC+o] = sum >> deciPoint
		}
	}
}
