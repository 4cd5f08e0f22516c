// Package testutil holds the test signals and level checks shared by the
// equalizer tests.
package testutil

import (
	"math"
	"math/rand/v2"
)

// Sine returns n samples of amplitude*sin(2*pi*freqHz*i/sampleRate).
func Sine(freqHz, sampleRate, amplitude float64, n int) []float64 {
	out := make([]float64, n)
	w := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(w*float64(i))
	}
	return out
}

// Noise returns n uniform samples in [-amplitude, amplitude). The same seed
// always yields the same block.
func Noise(seed uint64, amplitude float64, n int) []float64 {
	rng := rand.New(rand.NewPCG(seed, 0x9e3779b97f4a7c15))
	out := make([]float64, n)
	for i := range out {
		out[i] = amplitude * (2*rng.Float64() - 1)
	}
	return out
}

// Const returns n copies of v.
func Const(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// Clone deep-copies a channel set so one input can feed two processors.
func Clone(channels ...[]float64) [][]float64 {
	out := make([][]float64, len(channels))
	for i, ch := range channels {
		out[i] = append([]float64(nil), ch...)
	}
	return out
}
