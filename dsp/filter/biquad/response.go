package biquad

import (
	"math"
	"math/cmplx"
)

// Response computes the complex frequency response H(e^jw) of a biquad
// at the given frequency (Hz) and sample rate (Hz).
func (c Coefficients) Response(freqHz, sampleRate float64) complex128 {
	n := c.Normalized()
	w := 2 * math.Pi * freqHz / sampleRate
	ejw := cmplx.Exp(complex(0, -w))
	ej2w := ejw * ejw

	num := complex(n.B0, 0) + complex(n.B1, 0)*ejw + complex(n.B2, 0)*ej2w
	den := complex(1, 0) + complex(n.A1, 0)*ejw + complex(n.A2, 0)*ej2w

	return num / den
}

// MagnitudeSquared returns |H(f)|^2 using a closed-form expression that
// avoids complex exponentials. A vanishing denominator is floored.
func (c Coefficients) MagnitudeSquared(freqHz, sampleRate float64) float64 {
	const minDen = 1e-24

	n := c.Normalized()
	cw := 2 * math.Cos(2*math.Pi*freqHz/sampleRate)
	b0, b1, b2 := n.B0, n.B1, n.B2
	a1, a2 := n.A1, n.A2

	num := (b0-b2)*(b0-b2) + b1*b1 + (b1*(b0+b2)+b0*b2*cw)*cw
	den := (1-a2)*(1-a2) + a1*a1 + (a1*(a2+1)+cw*a2)*cw

	return math.Max(num, 0) / math.Max(den, minDen)
}

// Magnitude returns |H(f)|.
func (c Coefficients) Magnitude(freqHz, sampleRate float64) float64 {
	return math.Sqrt(c.MagnitudeSquared(freqHz, sampleRate))
}

// MagnitudeDB returns 10*log10(|H(f)|^2).
func (c Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 10 * math.Log10(c.MagnitudeSquared(freqHz, sampleRate))
}

// ImpulseResponse computes n samples of the impulse response h[n]. The
// section state is saved and restored.
func (s *Section) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}

	saved := s.State()
	s.Reset()

	ir := make([]float64, n)
	ir[0] = s.ProcessSample(1)
	for i := 1; i < n; i++ {
		ir[i] = s.ProcessSample(0)
	}

	s.SetState(saved)

	return ir
}
