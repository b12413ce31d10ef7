// Package testutil provides deterministic integer test data generators.
package testutil

// Int32Seq returns n deterministic int32 values with mixed signs. seed
// selects one of many distinct sequences.
func Int32Seq(n, seed int) []int32 {
	out := make([]int32, n)
	for i := range out {
		out[i] = int32((i*37+seed*11)%113) - 56
	}
	return out
}

// Int16Seq returns n deterministic int16 values with mixed signs.
func Int16Seq(n, seed int) []int16 {
	out := make([]int16, n)
	for i := range out {
		out[i] = int16((i*53+seed*7)%97) - 48
	}
	return out
}

// Int8Seq returns n deterministic int8 values with mixed signs.
func Int8Seq(n, seed int) []int8 {
	out := make([]int8, n)
	for i := range out {
		out[i] = int8((i*29+seed*13)%51) - 25
	}
	return out
}

// Fill32 returns a slice of length n with every element set to v. Used as a
// canary background for write-coverage checks.
func Fill32(n int, v int32) []int32 {
	out := make([]int32, n)
	for i := range out {
		out[i] = v
	}
	return out
}
