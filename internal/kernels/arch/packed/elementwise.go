package packed

import "github.com/cwbudde/algo-intdsp/internal/kernels/registry"

// MatSubInt32 computes dst[m,n] = a[m,n] - b[m,n] with a two-way unrolled
// row loop.
func MatSubInt32(dst, a, b []int32, g registry.EltGeom, coreID, nPE int) {
	even := g.N &^ 1
	for m := coreID; m < g.M; m += nPE {
		da := m * g.StrideA
		db := m * g.StrideB
		dd := m * g.StrideDst
		for n := 0; n < even; n += 2 {
			dst[dd+n] = a[da+n] - b[db+n]
			dst[dd+n+1] = a[da+n+1] - b[db+n+1]
		}
		if even < g.N {
			dst[dd+even] = a[da+even] - b[db+even]
		}
	}
}

// MatSubInt16 processes two 16-bit lanes per step.
func MatSubInt16(dst, a, b []int16, g registry.EltGeom, coreID, nPE int) {
	even := g.N &^ 1
	for m := coreID; m < g.M; m += nPE {
		da := m * g.StrideA
		db := m * g.StrideB
		dd := m * g.StrideDst
		for n := 0; n < even; n += 2 {
			dst[dd+n] = a[da+n] - b[db+n]
			dst[dd+n+1] = a[da+n+1] - b[db+n+1]
		}
		if even < g.N {
			dst[dd+even] = a[da+even] - b[db+even]
		}
	}
}

// MatSubInt8 processes four 8-bit lanes per step.
func MatSubInt8(dst, a, b []int8, g registry.EltGeom, coreID, nPE int) {
	quad := g.N &^ 3
	for m := coreID; m < g.M; m += nPE {
		da := m * g.StrideA
		db := m * g.StrideB
		dd := m * g.StrideDst
		for n := 0; n < quad; n += 4 {
			dst[dd+n] = a[da+n] - b[db+n]
			dst[dd+n+1] = a[da+n+1] - b[db+n+1]
			dst[dd+n+2] = a[da+n+2] - b[db+n+2]
			dst[dd+n+3] = a[da+n+3] - b[db+n+3]
		}
		for n := quad; n < g.N; n++ {
			dst[dd+n] = a[da+n] - b[db+n]
		}
	}
}

// MatAddInt32 computes dst[m,n] = a[m,n] + b[m,n] with a two-way unrolled
// row loop.
func MatAddInt32(dst, a, b []int32, g registry.EltGeom, coreID, nPE int) {
	even := g.N &^ 1
	for m := coreID; m < g.M; m += nPE {
		da := m * g.StrideA
		db := m * g.StrideB
		dd := m * g.StrideDst
		for n := 0; n < even; n += 2 {
			dst[dd+n] = a[da+n] + b[db+n]
			dst[dd+n+1] = a[da+n+1] + b[db+n+1]
		}
		if even < g.N {
			dst[dd+even] = a[da+even] + b[db+even]
		}
	}
}

// MatAddInt16 processes two 16-bit lanes per step.
func MatAddInt16(dst, a, b []int16, g registry.EltGeom, coreID, nPE int) {
	even := g.N &^ 1
	for m := coreID; m < g.M; m += nPE {
		da := m * g.StrideA
		db := m * g.StrideB
		dd := m * g.StrideDst
		for n := 0; n < even; n += 2 {
			dst[dd+n] = a[da+n] + b[db+n]
			dst[dd+n+1] = a[da+n+1] + b[db+n+1]
		}
		if even < g.N {
			dst[dd+even] = a[da+even] + b[db+even]
		}
	}
}

// MatAddInt8 processes four 8-bit lanes per step.
func MatAddInt8(dst, a, b []int8, g registry.EltGeom, coreID, nPE int) {
	quad := g.N &^ 3
	for m := coreID; m < g.M; m += nPE {
		da := m * g.StrideA
		db := m * g.StrideB
		dd := m * g.StrideDst
		for n := 0; n < quad; n += 4 {
			dst[dd+n] = a[da+n] + b[db+n]
			dst[dd+n+1] = a[da+n+1] + b[db+n+1]
			dst[dd+n+2] = a[da+n+2] + b[db+n+2]
			dst[dd+n+3] = a[da+n+3] + b[db+n+3]
		}
		for n := quad; n < g.N; n++ {
			dst[dd+n] = a[da+n] + b[db+n]
		}
	}
}

// MatScaleFixed32 computes dst[m,n] = (src[m,n] * scale) >> shift with a
// two-way unrolled row loop.
func MatScaleFixed32(dst, src []int32, scale int32, shift uint, g registry.EltGeom, coreID, nPE int) {
	even := g.N &^ 1
	for m := coreID; m < g.M; m += nPE {
		ds := m * g.StrideA
		dd := m * g.StrideDst
		for n := 0; n < even; n += 2 {
			dst[dd+n] = (src[ds+n] * scale) >> shift
			dst[dd+n+1] = (src[ds+n+1] * scale) >> shift
		}
		if even < g.N {
			dst[dd+even] = (src[ds+even] * scale) >> shift
		}
	}
}
