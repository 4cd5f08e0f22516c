package oversample

import (
	"errors"
	"math"
)

// designHalfband returns a linear-phase lowpass of 2*tapsPerPhase+1 taps for
// the double rate, cut off at cutoffScale times the base-rate Nyquist. The
// odd length keeps the group delay on an integer base-rate sample. Taps sum
// to 1.
func designHalfband(cfg config) ([]float64, error) {
	nTaps := 2*cfg.tapsPerPhase + 1
	fc := 0.25 * cfg.cutoffScale

	taps := make([]float64, nTaps)
	center := 0.5 * float64(nTaps-1)

	var sum float64
	for n := range nTaps {
		t := float64(n) - center
		taps[n] = 2 * fc * sinc(2*fc*t) * kaiserWindow(n, nTaps, cfg.kaiserBeta)
		sum += taps[n]
	}

	if sum == 0 || math.IsNaN(sum) {
		return nil, errors.New("oversample: designed zero-sum filter")
	}

	for i := range taps {
		taps[i] /= sum
	}

	return taps, nil
}

func sinc(x float64) float64 {
	if math.Abs(x) < 1e-12 {
		return 1
	}

	pix := math.Pi * x

	return math.Sin(pix) / pix
}

func kaiserWindow(i, n int, beta float64) float64 {
	if n <= 1 || beta == 0 {
		return 1
	}

	t := 2*float64(i)/float64(n-1) - 1
	a := math.Sqrt(math.Max(0, 1-t*t))

	return i0(beta*a) / i0(beta)
}

// i0 is the zeroth-order modified Bessel function of the first kind,
// evaluated by power series.
func i0(x float64) float64 {
	sum := 1.0
	term := 1.0

	x2 := (x * x) / 4
	for k := 1; k < 64; k++ {
		term *= x2 / float64(k*k)

		sum += term
		if term < 1e-16*sum {
			break
		}
	}

	return sum
}
