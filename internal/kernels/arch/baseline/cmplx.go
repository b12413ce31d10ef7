package baseline

import "github.com/cwbudde/algo-intdsp/internal/kernels/registry"

// MatMulTransCmplxInt32 computes the complex strided transpose multiply over
// interleaved (re, im) pairs:
//
//	sum_re += a_re*b_re - a_im*b_im
//	sum_im += a_re*b_im + a_im*b_re
//
// Strides count logical complex elements; primitive index is (idx)*2.
// Real and imaginary parts accumulate independently at 32-bit width.
func MatMulTransCmplxInt32(dst, a, b []int32, g registry.MatGeom, coreID, nPE int) {
	for m := coreID; m < g.M; m += nPE {
		for o := 0; o < g.O; o++ {
			var sumRe, sumIm int32
			for n := 0; n < g.N; n++ {
				aRe := a[(m*g.StrideA+n)*2+0]
				aIm := a[(m*g.StrideA+n)*2+1]
				bRe := b[(o*g.StrideB+n)*2+0]
				bIm := b[(o*g.StrideB+n)*2+1]
				sumRe += aRe*bRe - aIm*bIm
				sumIm += aRe*bIm + aIm*bRe
			}
			dst[(m*g.StrideC+o)*2+0] = sumRe
			dst[(m*g.StrideC+o)*2+1] = sumIm
		}
	}
}

// MatMulTransCmplxInt16 is MatMulTransCmplxInt32 over 16-bit pairs with
// 32-bit accumulators and a 32-bit interleaved output.
func MatMulTransCmplxInt16(dst []int32, a, b []int16, g registry.MatGeom, coreID, nPE int) {
	for m := coreID; m < g.M; m += nPE {
		for o := 0; o < g.O; o++ {
			var sumRe, sumIm int32
			for n := 0; n < g.N; n++ {
				aRe := int32(a[(m*g.StrideA+n)*2+0])
				aIm := int32(a[(m*g.StrideA+n)*2+1])
				bRe := int32(b[(o*g.StrideB+n)*2+0])
				bIm := int32(b[(o*g.StrideB+n)*2+1])
				sumRe += aRe*bRe - aIm*bIm
				sumIm += aRe*bIm + aIm*bRe
			}
			dst[(m*g.StrideC+o)*2+0] = sumRe
			dst[(m*g.StrideC+o)*2+1] = sumIm
		}
	}
}
