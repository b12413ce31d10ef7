// Package mat provides strided integer matrix operations: multiply,
// multiply-transpose (plain, fixed-point, and complex-interleaved), subtract,
// add, and fixed-point scale.
//
// Operations are described by descriptors borrowing caller-owned buffers.
// Row strides are in logical elements and must be at least the logical row
// length, which lets an operation run on a sub-view of a larger matrix
// without copying. Layout is row-major; complex matrices store each logical
// element as two consecutive primitive values, real then imaginary.
//
// Front-ends validate dimensions, strides, and buffer extents and return an
// error before any kernel runs. Two contracts stay with the caller: input
// buffers must not alias the destination, and a stride chosen smaller than a
// row of a *different* overlapping view is not detectable here.
package mat

import (
	"fmt"

	"github.com/cwbudde/algo-intdsp/internal/kernels/registry"
)

// Element constrains the primitive element types the kernels operate on.
type Element interface {
	~int8 | ~int16 | ~int32
}

// MulDesc describes one strided matrix product. SrcA is M x N with row pitch
// StrideA. For the plain multiply SrcB is N x O; for the transpose forms it
// is O x N (indexed by output column first). Dst is M x O with row pitch
// StrideC. DeciPoint is consulted by the fixed-point operations only.
//
// A descriptor lives for one call and owns nothing.
type MulDesc[S, D Element] struct {
	SrcA, SrcB []S

	M, N, O int

	StrideA, StrideB, StrideC int

	// DeciPoint is the arithmetic right-shift applied to each accumulated
	// output by the fixed-point operations. Values at or above the 32-bit
	// accumulator width are a caller error with an unspecified result.
	DeciPoint uint

	Dst []D
}

// geom returns the kernel-level geometry of the descriptor.
func (d MulDesc[S, D]) geom() registry.MatGeom {
	return registry.MatGeom{
		M: d.M, N: d.N, O: d.O,
		StrideA: d.StrideA, StrideB: d.StrideB, StrideC: d.StrideC,
	}
}

// validate checks dimensions, strides, and buffer extents. bRows and bCols
// give SrcB's logical shape (N x O plain, O x N transposed); factor is 2 for
// complex-interleaved buffers and 1 otherwise.
func (d MulDesc[S, D]) validate(bRows, bCols, factor int) error {
	if d.M < 1 || d.N < 1 || d.O < 1 {
		return fmt.Errorf("mat: dimensions must be >= 1: M=%d N=%d O=%d", d.M, d.N, d.O)
	}
	if d.StrideA < d.N {
		return fmt.Errorf("mat: strideA %d < row length %d", d.StrideA, d.N)
	}
	if d.StrideB < bCols {
		return fmt.Errorf("mat: strideB %d < row length %d", d.StrideB, bCols)
	}
	if d.StrideC < d.O {
		return fmt.Errorf("mat: strideC %d < row length %d", d.StrideC, d.O)
	}
	if need := ((d.M-1)*d.StrideA + d.N) * factor; len(d.SrcA) < need {
		return fmt.Errorf("mat: srcA too small: %d < %d", len(d.SrcA), need)
	}
	if need := ((bRows-1)*d.StrideB + bCols) * factor; len(d.SrcB) < need {
		return fmt.Errorf("mat: srcB too small: %d < %d", len(d.SrcB), need)
	}
	if need := ((d.M-1)*d.StrideC + d.O) * factor; len(d.Dst) < need {
		return fmt.Errorf("mat: dst too small: %d < %d", len(d.Dst), need)
	}
	return nil
}

func (d MulDesc[S, D]) validatePlain() error {
	return d.validate(d.N, d.O, 1)
}

func (d MulDesc[S, D]) validateTrans() error {
	return d.validate(d.O, d.N, 1)
}

func (d MulDesc[S, D]) validateCmplxTrans() error {
	return d.validate(d.O, d.N, 2)
}

// EltDesc describes one elementwise M x N operation. Each buffer carries its
// own row pitch.
type EltDesc[T Element] struct {
	SrcA, SrcB []T

	M, N int

	StrideA, StrideB, StrideDst int

	Dst []T
}

func (d EltDesc[T]) geom() registry.EltGeom {
	return registry.EltGeom{
		M: d.M, N: d.N,
		StrideA: d.StrideA, StrideB: d.StrideB, StrideDst: d.StrideDst,
	}
}

func (d EltDesc[T]) validate() error {
	if d.M < 1 || d.N < 1 {
		return fmt.Errorf("mat: dimensions must be >= 1: M=%d N=%d", d.M, d.N)
	}
	if d.StrideA < d.N {
		return fmt.Errorf("mat: strideA %d < row length %d", d.StrideA, d.N)
	}
	if d.StrideB < d.N {
		return fmt.Errorf("mat: strideB %d < row length %d", d.StrideB, d.N)
	}
	if d.StrideDst < d.N {
		return fmt.Errorf("mat: strideDst %d < row length %d", d.StrideDst, d.N)
	}
	if need := (d.M-1)*d.StrideA + d.N; len(d.SrcA) < need {
		return fmt.Errorf("mat: srcA too small: %d < %d", len(d.SrcA), need)
	}
	if need := (d.M-1)*d.StrideB + d.N; len(d.SrcB) < need {
		return fmt.Errorf("mat: srcB too small: %d < %d", len(d.SrcB), need)
	}
	if need := (d.M-1)*d.StrideDst + d.N; len(d.Dst) < need {
		return fmt.Errorf("mat: dst too small: %d < %d", len(d.Dst), need)
	}
	return nil
}

// ScaleDesc describes one elementwise fixed-point rescale:
// Dst[m,n] = (Src[m,n] * Scale) >> Shift.
type ScaleDesc[T Element] struct {
	Src []T

	// Scale is the fixed-point multiplier; Shift discards its fractional
	// bits after the widened product.
	Scale T
	Shift uint

	M, N int

	StrideSrc, StrideDst int

	Dst []T
}

func (d ScaleDesc[T]) geom() registry.EltGeom {
	return registry.EltGeom{
		M: d.M, N: d.N,
		StrideA: d.StrideSrc, StrideDst: d.StrideDst,
	}
}

func (d ScaleDesc[T]) validate() error {
	if d.M < 1 || d.N < 1 {
		return fmt.Errorf("mat: dimensions must be >= 1: M=%d N=%d", d.M, d.N)
	}
	if d.StrideSrc < d.N {
		return fmt.Errorf("mat: strideSrc %d < row length %d", d.StrideSrc, d.N)
	}
	if d.StrideDst < d.N {
		return fmt.Errorf("mat: strideDst %d < row length %d", d.StrideDst, d.N)
	}
	if need := (d.M-1)*d.StrideSrc + d.N; len(d.Src) < need {
		return fmt.Errorf("mat: src too small: %d < %d", len(d.Src), need)
	}
	if need := (d.M-1)*d.StrideDst + d.N; len(d.Dst) < need {
		return fmt.Errorf("mat: dst too small: %d < %d", len(d.Dst), need)
	}
	return nil
}

// validateNPE checks the worker-core count of a parallel entry point.
// nPE larger than M is fine: excess cores receive an empty row set.
func validateNPE(nPE int) error {
	if nPE < 1 {
		return fmt.Errorf("mat: nPE must be >= 1: %d", nPE)
	}
	return nil
}
