// Package baseline holds the scalar reference kernels.
//
// Every operation in the suite is defined by the code in this package; the
// packed variants must reproduce it bit for bit, including 32-bit accumulator
// wraparound. Kernels trust their geometry: callers validate dimensions and
// strides before invoking.
package baseline

// DotInt32 returns the dot product of a and b with 32-bit wraparound
// accumulation. Only the common prefix of the two slices is used.
func DotInt32(a, b []int32) int32 {
	n := min(len(a), len(b))
	var sum int32
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// DotInt16 returns the dot product of two 16-bit vectors, accumulated at
// 32-bit width.
func DotInt16(a, b []int16) int32 {
	n := min(len(a), len(b))
	var sum int32
	for i := 0; i < n; i++ {
		sum += int32(a[i]) * int32(b[i])
	}
	return sum
}

// DotInt8 returns the dot product of two 8-bit vectors, accumulated at
// 32-bit width.
func DotInt8(a, b []int8) int32 {
	n := min(len(a), len(b))
	var sum int32
	for i := 0; i < n; i++ {
		sum += int32(a[i]) * int32(b[i])
	}
	return sum
}

// DotFixed32 returns the fixed-point dot product of a and b: full-precision
// accumulation followed by one arithmetic right shift by deciPoint
// (truncating toward negative infinity).
func DotFixed32(a, b []int32, deciPoint uint) int32 {
	return DotInt32(a, b) >> deciPoint
}

// DotFixed16 is the 16-bit fixed-point dot product; see DotFixed32.
func DotFixed16(a, b []int16, deciPoint uint) int32 {
	return DotInt16(a, b) >> deciPoint
}
