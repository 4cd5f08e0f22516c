package testutil

import (
	"math"
	"testing"
)

func TestSineStartsAtZeroPhase(t *testing.T) {
	s := Sine(1000, 48000, 0.5, 48)
	if len(s) != 48 || s[0] != 0 {
		t.Fatalf("len=%d s[0]=%v", len(s), s[0])
	}
	if math.Abs(s[12]-0.5) > 1e-12 {
		t.Fatalf("quarter period: got=%v want=0.5", s[12])
	}
}

func TestNoiseSeeded(t *testing.T) {
	a := Noise(42, 0.25, 256)
	RequireBitIdentical(t, a, Noise(42, 0.25, 256))

	for i, v := range a {
		if v < -0.25 || v >= 0.25 {
			t.Fatalf("sample %d out of range: %v", i, v)
		}
	}

	b := Noise(43, 0.25, 256)
	if a[0] == b[0] && a[1] == b[1] {
		t.Fatal("different seeds gave the same samples")
	}
}

func TestConstAndClone(t *testing.T) {
	c := Clone(Const(0.5, 4), Const(-1, 2))
	RequireBitIdentical(t, c[0], []float64{0.5, 0.5, 0.5, 0.5})

	d := Clone(c...)
	d[1][0] = 3
	if c[1][0] != -1 {
		t.Fatal("Clone shares storage with its input")
	}
}
