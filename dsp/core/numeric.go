package core

import "math"

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [lo, hi].
// Swapped bounds are reordered.
func Clamp(value, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}

	if value < lo {
		return lo
	}

	if value > hi {
		return hi
	}

	return value
}

// ClampInt limits value to the inclusive range [lo, hi].
func ClampInt(value, lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}

	return min(max(value, lo), hi)
}

// NearlyEqual reports whether a and b are equal within eps, using a relative
// comparison for large magnitudes.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// FlushDenormals converts tiny denormal-like values to exact zero.
func FlushDenormals(x float64) float64 {
	const epsilon = 1e-30
	if x > -epsilon && x < epsilon {
		return 0
	}

	return x
}

// DBToLinear converts dB to linear amplitude (20*log10 convention).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

// LinearToDBFloor converts linear amplitude to dB and never reports less than
// floorDB. Zero, negative and NaN input all map to floorDB.
func LinearToDBFloor(linear, floorDB float64) float64 {
	if !(linear > 0) {
		return floorDB
	}

	return math.Max(20*math.Log10(linear), floorDB)
}

// NyquistLimit returns the highest usable design frequency for sampleRate:
// 0.495*sampleRate, capped at ceilingHz.
func NyquistLimit(sampleRate, ceilingHz float64) float64 {
	return math.Min(0.495*sampleRate, ceilingHz)
}
