package packed

import "github.com/cwbudde/algo-intdsp/internal/kernels/registry"

// MatMulTransCmplxInt32 is the complex strided transpose multiply with a
// two-way unrolled inner loop over interleaved (re, im) pairs. Real and
// imaginary accumulators stay independent at 32-bit width.
func MatMulTransCmplxInt32(dst, a, b []int32, g registry.MatGeom, coreID, nPE int) {
	even := g.N &^ 1
	for m := coreID; m < g.M; m += nPE {
		for o := 0; o < g.O; o++ {
			var sumRe, sumIm int32
			for n := 0; n < even; n += 2 {
				ai := (m*g.StrideA + n) * 2
				bi := (o*g.StrideB + n) * 2
				sumRe += a[ai]*b[bi] - a[ai+1]*b[bi+1] +
					a[ai+2]*b[bi+2] - a[ai+3]*b[bi+3]
				sumIm += a[ai]*b[bi+1] + a[ai+1]*b[bi] +
					a[ai+2]*b[bi+3] + a[ai+3]*b[bi+2]
			}
			if even < g.N {
				ai := (m*g.StrideA + even) * 2
				bi := (o*g.StrideB + even) * 2
				sumRe += a[ai]*b[bi] - a[ai+1]*b[bi+1]
				sumIm += a[ai]*b[bi+1] + a[ai+1]*b[bi]
			}
			dst[(m*g.StrideC+o)*2+0] = sumRe
			dst[(m*g.StrideC+o)*2+1] = sumIm
		}
	}
}

// MatMulTransCmplxInt16 widens each 16-bit (re, im) pair to 32 bits and
// multiply-accumulates both components per lane step.
func MatMulTransCmplxInt16(dst []int32, a, b []int16, g registry.MatGeom, coreID, nPE int) {
	even := g.N &^ 1
	for m := coreID; m < g.M; m += nPE {
		for o := 0; o < g.O; o++ {
			var sumRe, sumIm int32
			for n := 0; n < even; n += 2 {
				ai := (m*g.StrideA + n) * 2
				bi := (o*g.StrideB + n) * 2
				sumRe += int32(a[ai])*int32(b[bi]) - int32(a[ai+1])*int32(b[bi+1]) +
					int32(a[ai+2])*int32(b[bi+2]) - int32(a[ai+3])*int32(b[bi+3])
				sumIm += int32(a[ai])*int32(b[bi+1]) + int32(a[ai+1])*int32(b[bi]) +
					int32(a[ai+2])*int32(b[bi+3]) + int32(a[ai+3])*int32(b[bi+2])
			}
			if even < g.N {
				ai := (m*g.StrideA + even) * 2
				bi := (o*g.StrideB + even) * 2
				sumRe += int32(a[ai])*int32(b[bi]) - int32(a[ai+1])*int32(b[bi+1])
				sumIm += int32(a[ai])*int32(b[bi+1]) + int32(a[ai+1])*int32(b[bi])
			}
			dst[(m*g.StrideC+o)*2+0] = sumRe
			dst[(m*g.StrideC+o)*2+1] = sumIm
		}
	}
}
