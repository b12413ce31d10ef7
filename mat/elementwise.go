package mat

// SubInt32 computes Dst[m,n] = SrcA[m,n] - SrcB[m,n], each buffer at its own
// stride.
func SubInt32(d EltDesc[int32]) error {
	if err := d.validate(); err != nil {
		return err
	}
	kernels().MatSubInt32(d.Dst, d.SrcA, d.SrcB, d.geom(), 0, 1)
	return nil
}

// SubInt16 is the 16-bit elementwise subtract; the difference wraps at the
// element width.
func SubInt16(d EltDesc[int16]) error {
	if err := d.validate(); err != nil {
		return err
	}
	kernels().MatSubInt16(d.Dst, d.SrcA, d.SrcB, d.geom(), 0, 1)
	return nil
}

// SubInt8 is the 8-bit elementwise subtract.
func SubInt8(d EltDesc[int8]) error {
	if err := d.validate(); err != nil {
		return err
	}
	kernels().MatSubInt8(d.Dst, d.SrcA, d.SrcB, d.geom(), 0, 1)
	return nil
}

// AddInt32 computes Dst[m,n] = SrcA[m,n] + SrcB[m,n].
func AddInt32(d EltDesc[int32]) error {
	if err := d.validate(); err != nil {
		return err
	}
	kernels().MatAddInt32(d.Dst, d.SrcA, d.SrcB, d.geom(), 0, 1)
	return nil
}

// AddInt16 is the 16-bit elementwise add.
func AddInt16(d EltDesc[int16]) error {
	if err := d.validate(); err != nil {
		return err
	}
	kernels().MatAddInt16(d.Dst, d.SrcA, d.SrcB, d.geom(), 0, 1)
	return nil
}

// AddInt8 is the 8-bit elementwise add.
func AddInt8(d EltDesc[int8]) error {
	if err := d.validate(); err != nil {
		return err
	}
	kernels().MatAddInt8(d.Dst, d.SrcA, d.SrcB, d.geom(), 0, 1)
	return nil
}

// ScaleFixed32 computes Dst[m,n] = (Src[m,n] * Scale) >> Shift, the
// elementwise fixed-point rescale with truncating arithmetic shift.
func ScaleFixed32(d ScaleDesc[int32]) error {
	if err := d.validate(); err != nil {
		return err
	}
	kernels().MatScaleFixed32(d.Dst, d.Src, d.Scale, d.Shift, d.geom(), 0, 1)
	return nil
}
