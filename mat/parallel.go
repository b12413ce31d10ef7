package mat

import "github.com/cwbudde/algo-intdsp/cluster"

// Parallel entry points run the selected kernel once per logical core on the
// shared cluster pool. Worker coreID computes the cyclic row set
// {coreID, coreID+nPE, ...}, so output rows are pairwise disjoint across
// cores and no synchronization happens during the compute phase; the join
// inside cluster.Pool.Run is the only barrier. Output is bit-identical for
// every nPE, and nPE > M simply leaves the excess cores idle.

// MulInt32Parallel runs MulInt32 across nPE worker cores.
func MulInt32Parallel(d MulDesc[int32, int32], nPE int) error {
	if err := validateNPE(nPE); err != nil {
		return err
	}
	if err := d.validatePlain(); err != nil {
		return err
	}
	k := kernels()
	g := d.geom()
	cluster.Default().Run(nPE, func(coreID int) {
		k.MatMulInt32(d.Dst, d.SrcA, d.SrcB, g, coreID, nPE)
	})
	return nil
}

// MulInt16Parallel runs MulInt16 across nPE worker cores.
func MulInt16Parallel(d MulDesc[int16, int32], nPE int) error {
	if err := validateNPE(nPE); err != nil {
		return err
	}
	if err := d.validatePlain(); err != nil {
		return err
	}
	k := kernels()
	g := d.geom()
	cluster.Default().Run(nPE, func(coreID int) {
		k.MatMulInt16(d.Dst, d.SrcA, d.SrcB, g, coreID, nPE)
	})
	return nil
}

// MulInt8Parallel runs MulInt8 across nPE worker cores.
func MulInt8Parallel(d MulDesc[int8, int32], nPE int) error {
	if err := validateNPE(nPE); err != nil {
		return err
	}
	if err := d.validatePlain(); err != nil {
		return err
	}
	k := kernels()
	g := d.geom()
	cluster.Default().Run(nPE, func(coreID int) {
		k.MatMulInt8(d.Dst, d.SrcA, d.SrcB, g, coreID, nPE)
	})
	return nil
}

// MulFixed32Parallel runs MulFixed32 across nPE worker cores. The DeciPoint
// shift is per output element, so core count never changes the rounding.
func MulFixed32Parallel(d MulDesc[int32, int32], nPE int) error {
	if err := validateNPE(nPE); err != nil {
		return err
	}
	if err := d.validatePlain(); err != nil {
		return err
	}
	k := kernels()
	g := d.geom()
	cluster.Default().Run(nPE, func(coreID int) {
		k.MatMulFixed32(d.Dst, d.SrcA, d.SrcB, d.DeciPoint, g, coreID, nPE)
	})
	return nil
}

// MulTransInt32Parallel runs MulTransInt32 across nPE worker cores.
func MulTransInt32Parallel(d MulDesc[int32, int32], nPE int) error {
	if err := validateNPE(nPE); err != nil {
		return err
	}
	if err := d.validateTrans(); err != nil {
		return err
	}
	k := kernels()
	g := d.geom()
	cluster.Default().Run(nPE, func(coreID int) {
		k.MatMulTransInt32(d.Dst, d.SrcA, d.SrcB, g, coreID, nPE)
	})
	return nil
}

// MulTransInt16Parallel runs MulTransInt16 across nPE worker cores.
func MulTransInt16Parallel(d MulDesc[int16, int32], nPE int) error {
	if err := validateNPE(nPE); err != nil {
		return err
	}
	if err := d.validateTrans(); err != nil {
		return err
	}
	k := kernels()
	g := d.geom()
	cluster.Default().Run(nPE, func(coreID int) {
		k.MatMulTransInt16(d.Dst, d.SrcA, d.SrcB, g, coreID, nPE)
	})
	return nil
}

// MulTransInt8Parallel runs MulTransInt8 across nPE worker cores.
func MulTransInt8Parallel(d MulDesc[int8, int32], nPE int) error {
	if err := validateNPE(nPE); err != nil {
		return err
	}
	if err := d.validateTrans(); err != nil {
		return err
	}
	k := kernels()
	g := d.geom()
	cluster.Default().Run(nPE, func(coreID int) {
		k.MatMulTransInt8(d.Dst, d.SrcA, d.SrcB, g, coreID, nPE)
	})
	return nil
}

// MulTransFixed32Parallel runs MulTransFixed32 across nPE worker cores.
func MulTransFixed32Parallel(d MulDesc[int32, int32], nPE int) error {
	if err := validateNPE(nPE); err != nil {
		return err
	}
	if err := d.validateTrans(); err != nil {
		return err
	}
	k := kernels()
	g := d.geom()
	cluster.Default().Run(nPE, func(coreID int) {
		k.MatMulTransFixed32(d.Dst, d.SrcA, d.SrcB, d.DeciPoint, g, coreID, nPE)
	})
	return nil
}

// MulTransCmplxInt32Parallel runs MulTransCmplxInt32 across nPE worker cores.
func MulTransCmplxInt32Parallel(d MulDesc[int32, int32], nPE int) error {
	if err := validateNPE(nPE); err != nil {
		return err
	}
	if err := d.validateCmplxTrans(); err != nil {
		return err
	}
	k := kernels()
	g := d.geom()
	cluster.Default().Run(nPE, func(coreID int) {
		k.MatMulTransCmplxInt32(d.Dst, d.SrcA, d.SrcB, g, coreID, nPE)
	})
	return nil
}

// MulTransCmplxInt16Parallel runs MulTransCmplxInt16 across nPE worker cores.
func MulTransCmplxInt16Parallel(d MulDesc[int16, int32], nPE int) error {
	if err := validateNPE(nPE); err != nil {
		return err
	}
	if err := d.validateCmplxTrans(); err != nil {
		return err
	}
	k := kernels()
	g := d.geom()
	cluster.Default().Run(nPE, func(coreID int) {
		k.MatMulTransCmplxInt16(d.Dst, d.SrcA, d.SrcB, g, coreID, nPE)
	})
	return nil
}

// SubInt32Parallel runs SubInt32 across nPE worker cores.
func SubInt32Parallel(d EltDesc[int32], nPE int) error {
	if err := validateNPE(nPE); err != nil {
		return err
	}
	if err := d.validate(); err != nil {
		return err
	}
	k := kernels()
	g := d.geom()
	cluster.Default().Run(nPE, func(coreID int) {
		k.MatSubInt32(d.Dst, d.SrcA, d.SrcB, g, coreID, nPE)
	})
	return nil
}

// SubInt16Parallel runs SubInt16 across nPE worker cores.
func SubInt16Parallel(d EltDesc[int16], nPE int) error {
	if err := validateNPE(nPE); err != nil {
		return err
	}
	if err := d.validate(); err != nil {
		return err
	}
	k := kernels()
	g := d.geom()
	cluster.Default().Run(nPE, func(coreID int) {
		k.MatSubInt16(d.Dst, d.SrcA, d.SrcB, g, coreID, nPE)
	})
	return nil
}

// SubInt8Parallel runs SubInt8 across nPE worker cores.
func SubInt8Parallel(d EltDesc[int8], nPE int) error {
	if err := validateNPE(nPE); err != nil {
		return err
	}
	if err := d.validate(); err != nil {
		return err
	}
	k := kernels()
	g := d.geom()
	cluster.Default().Run(nPE, func(coreID int) {
		k.MatSubInt8(d.Dst, d.SrcA, d.SrcB, g, coreID, nPE)
	})
	return nil
}

// AddInt32Parallel runs AddInt32 across nPE worker cores.
func AddInt32Parallel(d EltDesc[int32], nPE int) error {
	if err := validateNPE(nPE); err != nil {
		return err
	}
	if err := d.validate(); err != nil {
		return err
	}
	k := kernels()
	g := d.geom()
	cluster.Default().Run(nPE, func(coreID int) {
		k.MatAddInt32(d.Dst, d.SrcA, d.SrcB, g, coreID, nPE)
	})
	return nil
}

// AddInt16Parallel runs AddInt16 across nPE worker cores.
func AddInt16Parallel(d EltDesc[int16], nPE int) error {
	if err := validateNPE(nPE); err != nil {
		return err
	}
	if err := d.validate(); err != nil {
		return err
	}
	k := kernels()
	g := d.geom()
	cluster.Default().Run(nPE, func(coreID int) {
		k.MatAddInt16(d.Dst, d.SrcA, d.SrcB, g, coreID, nPE)
	})
	return nil
}

// AddInt8Parallel runs AddInt8 across nPE worker cores.
func AddInt8Parallel(d EltDesc[int8], nPE int) error {
	if err := validateNPE(nPE); err != nil {
		return err
	}
	if err := d.validate(); err != nil {
		return err
	}
	k := kernels()
	g := d.geom()
	cluster.Default().Run(nPE, func(coreID int) {
		k.MatAddInt8(d.Dst, d.SrcA, d.SrcB, g, coreID, nPE)
	})
	return nil
}

// ScaleFixed32Parallel runs ScaleFixed32 across nPE worker cores.
func ScaleFixed32Parallel(d ScaleDesc[int32], nPE int) error {
	if err := validateNPE(nPE); err != nil {
		return err
	}
	if err := d.validate(); err != nil {
		return err
	}
	k := kernels()
	g := d.geom()
	cluster.Default().Run(nPE, func(coreID int) {
		k.MatScaleFixed32(d.Dst, d.Src, d.Scale, d.Shift, g, coreID, nPE)
	})
	return nil
}
