package dotprod

import (
	"testing"

	"github.com/cwbudde/algo-intdsp/internal/testutil"
)

func TestInt32WorkedExample(t *testing.T) {
	a := []int32{1, 2, 3}
	b := []int32{4, 5, 6}
	if got := Int32(a, b); got != 32 {
		t.Fatalf("Int32 = %d, want 32", got)
	}
}

func TestNarrowWidths(t *testing.T) {
	a16 := []int16{1, 2, 3}
	b16 := []int16{4, 5, 6}
	if got := Int16(a16, b16); got != 32 {
		t.Fatalf("Int16 = %d, want 32", got)
	}

	a8 := []int8{1, 2, 3}
	b8 := []int8{4, 5, 6}
	if got := Int8(a8, b8); got != 32 {
		t.Fatalf("Int8 = %d, want 32", got)
	}
}

func TestLengthMismatchUsesShorter(t *testing.T) {
	a := []int32{1, 2, 3, 100}
	b := []int32{4, 5, 6}
	if got := Int32(a, b); got != 32 {
		t.Fatalf("Int32 = %d, want 32", got)
	}
	if got := Int32(nil, b); got != 0 {
		t.Fatalf("Int32(nil, b) = %d, want 0", got)
	}
}

func TestFixedShiftsAfterAccumulation(t *testing.T) {
	// 1*1 + 1*1 + 1*1 = 3, then >> 1 gives 1. Shifting each product
	// first would give 0.
	a := []int32{1, 1, 1}
	b := []int32{1, 1, 1}
	if got := Fixed32(a, b, 1); got != 1 {
		t.Fatalf("Fixed32 = %d, want 1", got)
	}

	// Negative sums truncate toward negative infinity.
	if got := Fixed32([]int32{-5}, []int32{1}, 1); got != -3 {
		t.Fatalf("Fixed32(-5>>1) = %d, want -3", got)
	}
	if got := Fixed16([]int16{-5}, []int16{1}, 1); got != -3 {
		t.Fatalf("Fixed16(-5>>1) = %d, want -3", got)
	}
}

func TestInt16AccumulatorWidth(t *testing.T) {
	// Products exceed the int16 range; the accumulator is 32-bit.
	a := []int16{300, 300}
	b := []int16{300, 300}
	if got := Int16(a, b); got != 180000 {
		t.Fatalf("Int16 = %d, want 180000", got)
	}
}

func TestDispatchMatchesSequences(t *testing.T) {
	// Long mixed-sign inputs exercise whichever kernel the host
	// resolves, checked against a directly computed reference.
	const n = 257
	a := testutil.Int32Seq(n, 1)
	b := testutil.Int32Seq(n, 2)
	var want int32
	for i := range a {
		want += a[i] * b[i]
	}
	if got := Int32(a, b); got != want {
		t.Fatalf("Int32 = %d, want %d", got, want)
	}
}
