package core

import "github.com/cwbudde/algo-vecmath"

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	clear(buf)
}

// MixMono writes the average of channels into dst and returns the number of
// samples written: the shortest of dst and every channel.
func MixMono(dst []float64, channels [][]float64) int {
	if len(channels) == 0 {
		return 0
	}

	n := len(dst)
	for _, ch := range channels {
		n = min(n, len(ch))
	}

	dst = dst[:n]
	copy(dst, channels[0])

	if len(channels) == 1 {
		return n
	}

	for _, ch := range channels[1:] {
		vecmath.AddBlockInPlace(dst, ch[:n])
	}
	vecmath.ScaleBlockInPlace(dst, 1/float64(len(channels)))

	return n
}
