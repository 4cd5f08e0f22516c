package eq

import (
	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
	"github.com/cwbudde/algo-eq/dsp/filter/design"
	"github.com/cwbudde/algo-eq/eq/params"
)

// MaxSections is the largest number of cascaded sections a band runs.
const MaxSections = 4

// Design frequency limits in Hz. The upper limit is further capped at
// 0.495 times the sample rate.
const (
	MinFrequency = 20.0
	MaxFrequency = 20000.0
)

// Q limits applied before design.
const (
	MinQ = 0.1
	MaxQ = 18.0
)

// ClampFrequency limits hz to the usable design range at sampleRate.
func ClampFrequency(hz, sampleRate float64) float64 {
	return core.Clamp(hz, MinFrequency, core.NyquistLimit(sampleRate, MaxFrequency))
}

// ClampQ limits q to [MinQ, MaxQ].
func ClampQ(q float64) float64 {
	return core.Clamp(q, MinQ, MaxQ)
}

// DesignSection returns the coefficients of one section of a band of type t.
// Gain is ignored by the pass types. Unknown types yield the identity.
func DesignSection(t params.FilterType, freqHz, gainDB, q, sampleRate float64) biquad.Coefficients {
	switch t {
	case params.Peak:
		return design.Peak(freqHz, gainDB, q, sampleRate)
	case params.LowShelf:
		return design.LowShelf(freqHz, gainDB, q, sampleRate)
	case params.HighShelf:
		return design.HighShelf(freqHz, gainDB, q, sampleRate)
	case params.HighPass:
		return design.Highpass(freqHz, q, sampleRate)
	case params.LowPass:
		return design.Lowpass(freqHz, q, sampleRate)
	default:
		return biquad.Identity()
	}
}

// SectionCount returns the number of active sections for a band of type t
// with slope s: the slope's section count for high/low pass, else 1.
func SectionCount(t params.FilterType, s params.Slope) int {
	if t.IsCut() {
		return s.Sections()
	}
	return 1
}
