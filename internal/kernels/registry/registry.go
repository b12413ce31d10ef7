// Package registry provides the implementation registry for the integer
// kernel suite.
//
// Every operation exists in a scalar baseline form and a packed form. Both
// register themselves here via init() functions in their arch packages, and
// the public front-ends pick the highest-priority entry the current host
// capabilities support. Selection depends only on the execution context,
// never on operand data.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-intdsp/internal/cpu"
)

// MatGeom carries the geometry of a strided matrix product.
//
// A is M x N with row pitch StrideA, B is O x N (transpose ops) or N x O
// (plain multiply) with row pitch StrideB, and the output is M x O with row
// pitch StrideC. Strides are in logical elements; complex kernels count one
// interleaved (re, im) pair as one element.
type MatGeom struct {
	M, N, O                   int
	StrideA, StrideB, StrideC int
}

// EltGeom carries the geometry of an elementwise M x N operation with
// independent row pitches for the two sources and the destination.
type EltGeom struct {
	M, N                        int
	StrideA, StrideB, StrideDst int
}

// OpEntry is a registered kernel variant.
//
// Strided kernels receive an explicit (coreID, nPE) pair and compute the
// cyclic row set {coreID, coreID+nPE, ...}; single-core callers pass (0, 1).
// Dot-product kernels cover the common prefix of both slices and leave
// partitioning to the caller.
type OpEntry struct {
	// Name is a human-readable identifier for this variant ("baseline",
	// "packed").
	Name string

	// Level is the capability this variant requires on the executing host.
	Level cpu.Level

	// Priority orders selection among supported variants; higher wins.
	// Baseline registers at 0, packed at 10.
	Priority int

	// Dot products, 32-bit accumulation.
	DotInt32 func(a, b []int32) int32
	DotInt16 func(a, b []int16) int32
	DotInt8  func(a, b []int8) int32

	// Fixed-point dot products: full-precision accumulation, then one
	// arithmetic right shift by deciPoint.
	DotFixed32 func(a, b []int32, deciPoint uint) int32
	DotFixed16 func(a, b []int16, deciPoint uint) int32

	// Strided matrix multiply, dst[m,o] = sum_n a[m,n]*b[n,o].
	MatMulInt32 func(dst, a, b []int32, g MatGeom, coreID, nPE int)
	MatMulInt16 func(dst []int32, a, b []int16, g MatGeom, coreID, nPE int)
	MatMulInt8  func(dst []int32, a, b []int8, g MatGeom, coreID, nPE int)

	// Strided matrix multiply with transposed B, dst[m,o] = sum_n a[m,n]*b[o,n].
	MatMulTransInt32 func(dst, a, b []int32, g MatGeom, coreID, nPE int)
	MatMulTransInt16 func(dst []int32, a, b []int16, g MatGeom, coreID, nPE int)
	MatMulTransInt8  func(dst []int32, a, b []int8, g MatGeom, coreID, nPE int)

	// Fixed-point strided multiplies: per-output accumulation then shift.
	MatMulFixed32      func(dst, a, b []int32, deciPoint uint, g MatGeom, coreID, nPE int)
	MatMulTransFixed32 func(dst, a, b []int32, deciPoint uint, g MatGeom, coreID, nPE int)

	// Complex strided multiply with transposed B over interleaved (re, im)
	// pairs.
	MatMulTransCmplxInt32 func(dst, a, b []int32, g MatGeom, coreID, nPE int)
	MatMulTransCmplxInt16 func(dst []int32, a, b []int16, g MatGeom, coreID, nPE int)

	// Elementwise strided subtraction and addition.
	MatSubInt32 func(dst, a, b []int32, g EltGeom, coreID, nPE int)
	MatSubInt16 func(dst, a, b []int16, g EltGeom, coreID, nPE int)
	MatSubInt8  func(dst, a, b []int8, g EltGeom, coreID, nPE int)
	MatAddInt32 func(dst, a, b []int32, g EltGeom, coreID, nPE int)
	MatAddInt16 func(dst, a, b []int16, g EltGeom, coreID, nPE int)
	MatAddInt8  func(dst, a, b []int8, g EltGeom, coreID, nPE int)

	// Elementwise fixed-point scaling, dst[m,n] = (src[m,n]*scale) >> shift.
	MatScaleFixed32 func(dst, src []int32, scale int32, shift uint, g EltGeom, coreID, nPE int)
}

// OpRegistry manages registration and lookup of kernel variants.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default registry used by all front-end packages.
var Global = &OpRegistry{}

// Register adds a kernel variant to the registry. Called from init()
// functions of the arch packages; all registrations must complete before the
// first Lookup.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority variant the given capabilities support,
// or nil if nothing is registered. Every arch package registers a complete
// entry, so a nil result means the build is missing the baseline package.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.Level) {
			return entry
		}
	}

	return nil
}

// sortByPriority sorts entries by priority, descending. Caller holds the
// write lock. Insertion sort; the registry holds two or three entries.
func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all registered entries. Intended for
// diagnostics and tests.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
