package dotprod

import "github.com/cwbudde/algo-intdsp/cluster"

// Parallel variants split the index space into nPE contiguous chunks, one
// per logical core, and combine the per-core partial sums after the join.
// 32-bit wraparound addition is associative, so the result is bit-identical
// to the single-core one for every nPE. Cores whose chunk lies beyond the
// input contribute a zero partial; nPE greater than the length is not an
// error.

// Int32Parallel computes Int32 across nPE worker cores. nPE < 1 falls back
// to a single core.
func Int32Parallel(a, b []int32, nPE int) int32 {
	n := min(len(a), len(b))
	if nPE <= 1 || n == 0 {
		return Int32(a, b)
	}

	k := kernels()
	partials := make([]int32, nPE)
	chunk := (n + nPE - 1) / nPE

	cluster.Default().Run(nPE, func(coreID int) {
		start := coreID * chunk
		if start >= n {
			return
		}
		end := min(start+chunk, n)
		partials[coreID] = k.DotInt32(a[start:end], b[start:end])
	})

	var sum int32
	for _, p := range partials {
		sum += p
	}
	return sum
}

// Int16Parallel computes Int16 across nPE worker cores.
func Int16Parallel(a, b []int16, nPE int) int32 {
	n := min(len(a), len(b))
	if nPE <= 1 || n == 0 {
		return Int16(a, b)
	}

	k := kernels()
	partials := make([]int32, nPE)
	chunk := (n + nPE - 1) / nPE

	cluster.Default().Run(nPE, func(coreID int) {
		start := coreID * chunk
		if start >= n {
			return
		}
		end := min(start+chunk, n)
		partials[coreID] = k.DotInt16(a[start:end], b[start:end])
	})

	var sum int32
	for _, p := range partials {
		sum += p
	}
	return sum
}

// Int8Parallel computes Int8 across nPE worker cores.
func Int8Parallel(a, b []int8, nPE int) int32 {
	n := min(len(a), len(b))
	if nPE <= 1 || n == 0 {
		return Int8(a, b)
	}

	k := kernels()
	partials := make([]int32, nPE)
	chunk := (n + nPE - 1) / nPE

	cluster.Default().Run(nPE, func(coreID int) {
		start := coreID * chunk
		if start >= n {
			return
		}
		end := min(start+chunk, n)
		partials[coreID] = k.DotInt8(a[start:end], b[start:end])
	})

	var sum int32
	for _, p := range partials {
		sum += p
	}
	return sum
}

// Fixed32Parallel computes Fixed32 across nPE worker cores. Partial sums stay
// at full precision; the deciPoint shift applies once, after the join, so the
// rounding matches the single-core result exactly.
func Fixed32Parallel(a, b []int32, deciPoint uint, nPE int) int32 {
	n := min(len(a), len(b))
	if nPE <= 1 || n == 0 {
		return Fixed32(a, b, deciPoint)
	}

	k := kernels()
	partials := make([]int32, nPE)
	chunk := (n + nPE - 1) / nPE

	cluster.Default().Run(nPE, func(coreID int) {
		start := coreID * chunk
		if start >= n {
			return
		}
		end := min(start+chunk, n)
		partials[coreID] = k.DotInt32(a[start:end], b[start:end])
	})

	var sum int32
	for _, p := range partials {
		sum += p
	}
	return sum >> deciPoint
}

// Fixed16Parallel computes Fixed16 across nPE worker cores; see
// Fixed32Parallel for the shift placement.
func Fixed16Parallel(a, b []int16, deciPoint uint, nPE int) int32 {
	n := min(len(a), len(b))
	if nPE <= 1 || n == 0 {
		return Fixed16(a, b, deciPoint)
	}

	k := kernels()
	partials := make([]int32, nPE)
	chunk := (n + nPE - 1) / nPE

	cluster.Default().Run(nPE, func(coreID int) {
		start := coreID * chunk
		if start >= n {
			return
		}
		end := min(start+chunk, n)
		partials[coreID] = k.DotInt16(a[start:end], b[start:end])
	})

	var sum int32
	for _, p := range partials {
		sum += p
	}
	return sum >> deciPoint
}
