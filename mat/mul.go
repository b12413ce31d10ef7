package mat

// MulInt32 computes Dst[m,o] = sum_n SrcA[m,n] * SrcB[n,o] with 32-bit
// wraparound accumulation.
func MulInt32(d MulDesc[int32, int32]) error {
	if err := d.validatePlain(); err != nil {
		return err
	}
	kernels().MatMulInt32(d.Dst, d.SrcA, d.SrcB, d.geom(), 0, 1)
	return nil
}

// MulInt16 is the 16-bit plain multiply; products and accumulation are
// 32-bit.
func MulInt16(d MulDesc[int16, int32]) error {
	if err := d.validatePlain(); err != nil {
		return err
	}
	kernels().MatMulInt16(d.Dst, d.SrcA, d.SrcB, d.geom(), 0, 1)
	return nil
}

// MulInt8 is the 8-bit plain multiply with 32-bit accumulation.
func MulInt8(d MulDesc[int8, int32]) error {
	if err := d.validatePlain(); err != nil {
		return err
	}
	kernels().MatMulInt8(d.Dst, d.SrcA, d.SrcB, d.geom(), 0, 1)
	return nil
}

// MulFixed32 is the fixed-point plain multiply: each output accumulates at
// full precision and is then shifted right arithmetically by DeciPoint,
// truncating toward negative infinity.
func MulFixed32(d MulDesc[int32, int32]) error {
	if err := d.validatePlain(); err != nil {
		return err
	}
	kernels().MatMulFixed32(d.Dst, d.SrcA, d.SrcB, d.DeciPoint, d.geom(), 0, 1)
	return nil
}

// MulTransInt32 computes Dst[m,o] = sum_n SrcA[m,n] * SrcB[o,n]; SrcB is
// supplied already logically transposed.
func MulTransInt32(d MulDesc[int32, int32]) error {
	if err := d.validateTrans(); err != nil {
		return err
	}
	kernels().MatMulTransInt32(d.Dst, d.SrcA, d.SrcB, d.geom(), 0, 1)
	return nil
}

// MulTransInt16 is the 16-bit transpose multiply.
func MulTransInt16(d MulDesc[int16, int32]) error {
	if err := d.validateTrans(); err != nil {
		return err
	}
	kernels().MatMulTransInt16(d.Dst, d.SrcA, d.SrcB, d.geom(), 0, 1)
	return nil
}

// MulTransInt8 is the 8-bit transpose multiply.
func MulTransInt8(d MulDesc[int8, int32]) error {
	if err := d.validateTrans(); err != nil {
		return err
	}
	kernels().MatMulTransInt8(d.Dst, d.SrcA, d.SrcB, d.geom(), 0, 1)
	return nil
}

// MulTransFixed32 is the fixed-point transpose multiply; see MulFixed32 for
// the shift contract.
func MulTransFixed32(d MulDesc[int32, int32]) error {
	if err := d.validateTrans(); err != nil {
		return err
	}
	kernels().MatMulTransFixed32(d.Dst, d.SrcA, d.SrcB, d.DeciPoint, d.geom(), 0, 1)
	return nil
}

// MulTransCmplxInt32 is the complex transpose multiply over interleaved
// (re, im) int32 pairs:
//
//	Dst_re[m,o] = sum_n a_re*b_re - a_im*b_im
//	Dst_im[m,o] = sum_n a_re*b_im + a_im*b_re
func MulTransCmplxInt32(d MulDesc[int32, int32]) error {
	if err := d.validateCmplxTrans(); err != nil {
		return err
	}
	kernels().MatMulTransCmplxInt32(d.Dst, d.SrcA, d.SrcB, d.geom(), 0, 1)
	return nil
}

// MulTransCmplxInt16 is the complex transpose multiply over interleaved
// 16-bit pairs with 32-bit accumulators and output.
func MulTransCmplxInt16(d MulDesc[int16, int32]) error {
	if err := d.validateCmplxTrans(); err != nil {
		return err
	}
	kernels().MatMulTransCmplxInt16(d.Dst, d.SrcA, d.SrcB, d.geom(), 0, 1)
	return nil
}
