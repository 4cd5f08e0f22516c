package testutil

import (
	"math"
	"testing"
)

func TestRMSOfSine(t *testing.T) {
	x := Sine(1000, 48000, 1, 4800)
	if got := RMS(x); math.Abs(got-1/math.Sqrt2) > 1e-9 {
		t.Fatalf("RMS: got=%v want=%v", got, 1/math.Sqrt2)
	}
	if RMS(nil) != 0 {
		t.Fatal("RMS(nil) should be 0")
	}
}

func TestSettledRMSSkipsTransient(t *testing.T) {
	x := append(Const(10, 100), Const(1, 100)...)
	if got := SettledRMS(x, 100); got != 1 {
		t.Fatalf("SettledRMS: got=%v want=1", got)
	}
	if SettledRMS(x, 500) != 0 {
		t.Fatal("SettledRMS beyond length should be 0")
	}
}

func TestToneAmplitude(t *testing.T) {
	x := Sine(1000, 48000, 0.25, 9600)
	n := WholePeriods(1000, 48000, 4800)
	if n != 4800 {
		t.Fatalf("WholePeriods: got=%d want=4800", n)
	}
	if got := ToneAmplitude(x, 1000, 48000, n); math.Abs(got-0.25) > 1e-9 {
		t.Fatalf("ToneAmplitude: got=%v want=0.25", got)
	}
}
