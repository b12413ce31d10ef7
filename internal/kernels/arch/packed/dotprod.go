// Package packed holds the packed-arithmetic kernel variants.
//
// Narrow elements are consumed several lanes per loop iteration: two 16-bit
// lanes or four 8-bit lanes per step, each lane widened to 32 bits and
// multiply-accumulated into the shared 32-bit accumulator, with a scalar
// remainder path for the trailing elements. 32-bit kernels run a two-way
// unrolled scalar loop.
//
// Because 32-bit wraparound addition is associative, every kernel here is
// bit-for-bit equal to its baseline counterpart, including on overflow.
package packed

// DotInt32 returns the dot product of a and b with 32-bit wraparound
// accumulation. Only the common prefix of the two slices is used.
func DotInt32(a, b []int32) int32 {
	n := min(len(a), len(b))
	var sum int32

	even := n &^ 1
	for i := 0; i < even; i += 2 {
		sum += a[i]*b[i] + a[i+1]*b[i+1]
	}
	if even < n {
		sum += a[even] * b[even]
	}
	return sum
}

// DotInt16 returns the dot product of two 16-bit vectors, two lanes per
// iteration, accumulated at 32-bit width.
func DotInt16(a, b []int16) int32 {
	n := min(len(a), len(b))
	var sum int32

	even := n &^ 1
	for i := 0; i < even; i += 2 {
		sum += int32(a[i])*int32(b[i]) + int32(a[i+1])*int32(b[i+1])
	}
	if even < n {
		sum += int32(a[even]) * int32(b[even])
	}
	return sum
}

// DotInt8 returns the dot product of two 8-bit vectors, four lanes per
// iteration, accumulated at 32-bit width.
func DotInt8(a, b []int8) int32 {
	n := min(len(a), len(b))
	var sum int32

	quad := n &^ 3
	for i := 0; i < quad; i += 4 {
		sum += int32(a[i])*int32(b[i]) +
			int32(a[i+1])*int32(b[i+1]) +
			int32(a[i+2])*int32(b[i+2]) +
			int32(a[i+3])*int32(b[i+3])
	}
	for i := quad; i < n; i++ {
		sum += int32(a[i]) * int32(b[i])
	}
	return sum
}

// DotFixed32 accumulates at full precision, then applies one arithmetic
// right shift by deciPoint.
func DotFixed32(a, b []int32, deciPoint uint) int32 {
	return DotInt32(a, b) >> deciPoint
}

// DotFixed16 is the 16-bit fixed-point dot product; see DotFixed32.
func DotFixed16(a, b []int16, deciPoint uint) int32 {
	return DotInt16(a, b) >> deciPoint
}
