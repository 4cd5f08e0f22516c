package testutil

import "math"

// RMS returns the root-mean-square level of x, or 0 for an empty slice.
func RMS(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	var sum float64
	for _, v := range x {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(x)))
}

// SettledRMS returns the RMS of x after skipping the first skip samples,
// which hold filter and smoothing transients.
func SettledRMS(x []float64, skip int) float64 {
	if skip >= len(x) {
		return 0
	}
	return RMS(x[max(skip, 0):])
}

// ToneAmplitude estimates the amplitude of a sinusoid at freqHz in x by
// correlating the last n samples against quadrature references. n should
// cover a whole number of periods for a leakage-free estimate.
func ToneAmplitude(x []float64, freqHz, sampleRate float64, n int) float64 {
	n = min(n, len(x))
	if n <= 0 {
		return 0
	}

	start := len(x) - n
	step := 2 * math.Pi * freqHz / sampleRate

	var re, im float64
	for i := start; i < len(x); i++ {
		s, c := math.Sincos(step * float64(i))
		re += x[i] * c
		im += x[i] * s
	}
	return 2 * math.Hypot(re, im) / float64(n)
}

// WholePeriods returns the largest sample count not exceeding limit that
// spans an integer number of periods of freqHz, or limit if none is exact
// within tolerance.
func WholePeriods(freqHz, sampleRate float64, limit int) int {
	period := sampleRate / freqHz
	for k := int(float64(limit) / period); k > 0; k-- {
		n := float64(k) * period
		if math.Abs(n-math.Round(n)) < 1e-9 {
			return int(math.Round(n))
		}
	}
	return limit
}
