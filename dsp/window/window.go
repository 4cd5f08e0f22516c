package window

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeBlackmanHarris
	TypeFlatTop

	typeCount
)

var typeNames = [typeCount]string{"rectangular", "hann", "hamming", "blackman", "blackmanharris", "flattop"}

// Generalized cosine-sum terms: w(x) = sum c[k] * cos(2*pi*k*x), x in [0, 1].
var cosineTerms = [typeCount][]float64{
	TypeRectangular:    {1},
	TypeHann:           {0.5, -0.5},
	TypeHamming:        {0.54, -0.46},
	TypeBlackman:       {0.42, -0.5, 0.08},
	TypeBlackmanHarris: {0.35875, -0.48829, 0.14128, -0.01168},
	TypeFlatTop:        {0.21557895, -0.41663158, 0.277263158, -0.083578947, 0.006947368},
}

// String returns the lower-case window name.
func (t Type) String() string {
	if t >= 0 && t < typeCount {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// ParseType parses a window name as returned by String.
func ParseType(name string) (Type, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, n := range typeNames {
		if n == name {
			return Type(t), nil
		}
	}
	return 0, fmt.Errorf("window: unsupported window %q", name)
}

// Option configures window generation.
type Option func(*config)

type config struct {
	periodic bool
}

// WithPeriodic generates the periodic form used for FFT framing instead of
// the symmetric form.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// Generate returns length coefficients of window t. Unknown types and
// non-positive lengths return nil.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 || t < 0 || t >= typeCount {
		return nil
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if length == 1 {
		return []float64{1}
	}

	den := float64(length - 1)
	if cfg.periodic {
		den = float64(length)
	}

	terms := cosineTerms[t]
	out := make([]float64, length)
	for i := range out {
		phase := 2 * math.Pi * float64(i) / den
		var sum float64
		for k, c := range terms {
			sum += c * math.Cos(float64(k)*phase)
		}
		out[i] = sum
	}

	return out
}

// CoherentGain returns the mean of coeffs: the amplitude a windowed sinusoid
// keeps in its FFT bin, relative to a rectangular window.
func CoherentGain(coeffs []float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}
	return vecmath.Sum(coeffs) / float64(len(coeffs))
}

// Apply multiplies buf in place by coeffs. It panics if the lengths differ.
func Apply(buf, coeffs []float64) {
	if len(buf) != len(coeffs) {
		panic(fmt.Sprintf("window: Apply length mismatch: %d samples, %d coefficients", len(buf), len(coeffs)))
	}
	vecmath.MulBlockInPlace(buf, coeffs)
}
