package dotprod

// Int32 returns the dot product of a and b: sum(a[i] * b[i]), accumulated at
// 32-bit width with standard wraparound. Only the common prefix of the two
// slices is used; empty input yields 0.
func Int32(a, b []int32) int32 {
	return kernels().DotInt32(a, b)
}

// Int16 returns the dot product of two 16-bit vectors. Products and the
// accumulator are 32-bit, so no intermediate narrowing occurs.
func Int16(a, b []int16) int32 {
	return kernels().DotInt16(a, b)
}

// Int8 returns the dot product of two 8-bit vectors with 32-bit accumulation.
func Int8(a, b []int8) int32 {
	return kernels().DotInt8(a, b)
}

// Fixed32 returns the fixed-point dot product of a and b: the full-precision
// 32-bit accumulated sum shifted right arithmetically by deciPoint. The
// shift truncates toward negative infinity. deciPoint values at or above the
// accumulator width are a caller error with an unspecified numeric result.
func Fixed32(a, b []int32, deciPoint uint) int32 {
	return kernels().DotFixed32(a, b, deciPoint)
}

// Fixed16 is the 16-bit fixed-point dot product; see Fixed32.
func Fixed16(a, b []int16, deciPoint uint) int32 {
	return kernels().DotFixed16(a, b, deciPoint)
}
