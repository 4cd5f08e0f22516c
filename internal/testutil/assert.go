package testutil

import (
	"math"
	"testing"
)

// RequireClose fails t at the first index where got and want differ by
// more than eps, or if their lengths differ.
func RequireClose(t testing.TB, got, want []float64, eps float64) {
	t.Helper()
	compare(t, got, want, func(a, b float64) bool { return math.Abs(a-b) <= eps })
}

// RequireBitIdentical fails t unless got and want hold the same bits.
// Bypassed and identity paths must pass audio through untouched.
func RequireBitIdentical(t testing.TB, got, want []float64) {
	t.Helper()
	compare(t, got, want, func(a, b float64) bool { return math.Float64bits(a) == math.Float64bits(b) })
}

func compare(t testing.TB, got, want []float64, same func(a, b float64) bool) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("len(got)=%d len(want)=%d", len(got), len(want))
	}
	for i := range got {
		if !same(got[i], want[i]) {
			t.Fatalf("sample %d: got=%v want=%v", i, got[i], want[i])
		}
	}
}
