package biquad

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestMagnitudeSquared_MatchesResponse(t *testing.T) {
	c := smoother()
	sr := 48000.0

	for _, freq := range []float64{100, 500, 1000, 5000, 10000, 20000} {
		h := c.Response(freq, sr)
		fromResponse := real(h)*real(h) + imag(h)*imag(h)
		fromClosed := c.MagnitudeSquared(freq, sr)
		if !almostEqual(fromClosed, fromResponse, 1e-10) {
			t.Errorf("freq=%v: MagnitudeSquared=%.15f, |Response|^2=%.15f", freq, fromClosed, fromResponse)
		}
	}
}

func TestMagnitudeIgnoresA0Scaling(t *testing.T) {
	c := smoother()
	scaled := Coefficients{B0: 3 * c.B0, B1: 3 * c.B1, B2: 3 * c.B2, A0: 3, A1: 3 * c.A1, A2: 3 * c.A2}

	for _, freq := range []float64{50, 2000, 15000} {
		if !almostEqual(c.Magnitude(freq, 48000), scaled.Magnitude(freq, 48000), 1e-12) {
			t.Fatalf("freq=%v: magnitude depends on A0 scaling", freq)
		}
	}
}

func TestMagnitudeDB_MatchesMagnitudeSquared(t *testing.T) {
	c := smoother()

	for _, freq := range []float64{100, 1000, 10000} {
		db := c.MagnitudeDB(freq, 48000)
		fromSq := 10 * math.Log10(c.MagnitudeSquared(freq, 48000))
		if !almostEqual(db, fromSq, 1e-12) {
			t.Errorf("freq=%v: MagnitudeDB=%.15f, 10*log10(MagSq)=%.15f", freq, db, fromSq)
		}
	}
}

func TestResponse_Identity(t *testing.T) {
	c := Identity()
	for _, freq := range []float64{0, 100, 1000, 10000, 24000} {
		h := c.Response(freq, 48000)
		if !almostEqual(cmplx.Abs(h), 1, 1e-12) {
			t.Errorf("freq=%v: |H|=%v, want 1", freq, cmplx.Abs(h))
		}
		if !almostEqual(c.Magnitude(freq, 48000), 1, 1e-12) {
			t.Errorf("freq=%v: Magnitude=%v, want 1", freq, c.Magnitude(freq, 48000))
		}
	}
}

func TestResponse_Allpass(t *testing.T) {
	a1, a2 := -0.5, 0.3
	c := Coefficients{B0: a2, B1: a1, B2: 1, A0: 1, A1: a1, A2: a2}
	for _, freq := range []float64{100, 500, 1000, 5000, 10000, 20000} {
		if !almostEqual(c.Magnitude(freq, 48000), 1, 1e-10) {
			t.Errorf("freq=%v: |H|=%.15f, want 1", freq, c.Magnitude(freq, 48000))
		}
	}
}
