package baseline

import "github.com/cwbudde/algo-intdsp/internal/kernels/registry"

// MatSubInt32 computes dst[m,n] = a[m,n] - b[m,n] over the cyclic row set of
// the given core, each buffer at its own stride.
func MatSubInt32(dst, a, b []int32, g registry.EltGeom, coreID, nPE int) {
	for m := coreID; m < g.M; m += nPE {
		for n := 0; n < g.N; n++ {
			dst[m*g.StrideDst+n] = a[m*g.StrideA+n] - b[m*g.StrideB+n]
		}
	}
}

// MatSubInt16 is MatSubInt32 for 16-bit elements. The difference wraps at
// 16 bits like the element type.
func MatSubInt16(dst, a, b []int16, g registry.EltGeom, coreID, nPE int) {
	for m := coreID; m < g.M; m += nPE {
		for n := 0; n < g.N; n++ {
			dst[m*g.StrideDst+n] = a[m*g.StrideA+n] - b[m*g.StrideB+n]
		}
	}
}

// MatSubInt8 is MatSubInt32 for 8-bit elements.
func MatSubInt8(dst, a, b []int8, g registry.EltGeom, coreID, nPE int) {
	for m := coreID; m < g.M; m += nPE {
		for n := 0; n < g.N; n++ {
			dst[m*g.StrideDst+n] = a[m*g.StrideA+n] - b[m*g.StrideB+n]
		}
	}
}

// MatAddInt32 computes dst[m,n] = a[m,n] + b[m,n] over the cyclic row set of
// the given core.
func MatAddInt32(dst, a, b []int32, g registry.EltGeom, coreID, nPE int) {
	for m := coreID; m < g.M; m += nPE {
		for n := 0; n < g.N; n++ {
			dst[m*g.StrideDst+n] = a[m*g.StrideA+n] + b[m*g.StrideB+n]
		}
	}
}

// MatAddInt16 is MatAddInt32 for 16-bit elements.
func MatAddInt16(dst, a, b []int16, g registry.EltGeom, coreID, nPE int) {
	for m := coreID; m < g.M; m += nPE {
		for n := 0; n < g.N; n++ {
			dst[m*g.StrideDst+n] = a[m*g.StrideA+n] + b[m*g.StrideB+n]
		}
	}
}

// MatAddInt8 is MatAddInt32 for 8-bit elements.
func MatAddInt8(dst, a, b []int8, g registry.EltGeom, coreID, nPE int) {
	for m := coreID; m < g.M; m += nPE {
		for n := 0; n < g.N; n++ {
			dst[m*g.StrideDst+n] = a[m*g.StrideA+n] + b[m*g.StrideB+n]
		}
	}
}

// MatScaleFixed32 computes dst[m,n] = (src[m,n] * scale) >> shift, the
// elementwise fixed-point rescale. The shift truncates toward negative
// infinity. StrideA carries the source pitch; StrideB is unused.
func MatScaleFixed32(dst, src []int32, scale int32, shift uint, g registry.EltGeom, coreID, nPE int) {
	for m := coreID; m < g.M; m += nPE {
		for n := 0; n < g.N; n++ {
			dst[m*g.StrideDst+n] = (src[m*g.StrideA+n] * scale) >> shift
		}
	}
}
