package eq

import (
	"math"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
	"github.com/cwbudde/algo-eq/eq/params"
)

// Response display limits in dB.
const (
	ResponseFloorDB   = -48.0
	ResponseCeilingDB = 24.0
)

// BandState is the clamped snapshot of one band.
type BandState struct {
	Enabled     bool
	Type        params.FilterType
	FrequencyHz float64
	GainDB      float64
	Q           float64
	Slope       params.Slope
}

// State is an immutable snapshot of one bank, the output gain and the
// sample rate. Build it with Capture.
type State struct {
	Bands        [params.NumBands]BandState
	OutputGainDB float64
	SampleRate   float64
}

// Capture copies bank of v into a State. Frequency and Q are clamped the
// way the render path clamps them and gain is limited to [-24, 24] dB.
func Capture(v params.View, sampleRate float64, bank params.Bank) State {
	s := State{
		OutputGainDB: v.OutputGainDB(),
		SampleRate:   sampleRate,
	}

	for i := range s.Bands {
		b := v.Band(i, bank)
		s.Bands[i] = BandState{
			Enabled:     b.Enabled(),
			Type:        b.Type(),
			FrequencyHz: ClampFrequency(b.FrequencyHz(), sampleRate),
			GainDB:      core.Clamp(b.GainDB(), params.GainRange.Min, params.GainRange.Max),
			Q:           ClampQ(b.Q()),
			Slope:       b.Slope(),
		}
	}

	return s
}

// MagnitudeDB returns the magnitude of the whole bank in dB at every
// frequency of freqs, clamped to [ResponseFloorDB, ResponseCeilingDB].
func (s State) MagnitudeDB(freqs []float64) []float64 {
	return s.AppendMagnitudeDB(make([]float64, 0, len(freqs)), freqs)
}

// AppendMagnitudeDB appends the values MagnitudeDB computes to dst.
//
// Each enabled band contributes |H(f)| raised to its section count. The
// product is scaled by the output gain before conversion to dB. A state
// without a valid sample rate, such as one captured before the stream was
// prepared, reads 0 dB everywhere.
func (s State) AppendMagnitudeDB(dst, freqs []float64) []float64 {
	if !(s.SampleRate > 0) {
		for range freqs {
			dst = append(dst, 0)
		}
		return dst
	}

	var (
		coeffs [params.NumBands]biquad.Coefficients
		counts [params.NumBands]int
	)

	for i, b := range s.Bands {
		if !b.Enabled {
			continue
		}
		coeffs[i] = DesignSection(b.Type, b.FrequencyHz, b.GainDB, b.Q, s.SampleRate)
		counts[i] = SectionCount(b.Type, b.Slope)
	}

	gain := core.DBToLinear(s.OutputGainDB)
	for _, f := range freqs {
		mag := gain
		for i, n := range counts {
			if n == 0 {
				continue
			}
			m := coeffs[i].Magnitude(f, s.SampleRate)
			for range n {
				mag *= m
			}
		}

		dst = append(dst, math.Min(core.LinearToDBFloor(mag, ResponseFloorDB), ResponseCeilingDB))
	}

	return dst
}

// FrequencyAxis returns points log-spaced frequencies from MinFrequency to
// the design limit at sampleRate, both inclusive.
func FrequencyAxis(points int, sampleRate float64) []float64 {
	if points <= 0 {
		return nil
	}

	freqs := make([]float64, points)
	freqs[0] = MinFrequency
	if points == 1 {
		return freqs
	}

	hi := math.Max(core.NyquistLimit(sampleRate, MaxFrequency), MinFrequency)
	ratio := math.Log(hi / MinFrequency)
	for i := 1; i < points; i++ {
		freqs[i] = MinFrequency * math.Exp(ratio*float64(i)/float64(points-1))
	}
	freqs[points-1] = hi

	return freqs
}

// DisplayBanks returns the bank whose curve is drawn in front (B while
// editing bank B, else A) and the other bank. hasSecondary reports whether
// the other bank is audible, which is the case outside stereo mode.
func DisplayBanks(v params.View) (primary, secondary params.Bank, hasSecondary bool) {
	primary, secondary = params.BankA, params.BankB
	if v.EditTarget() == params.EditB {
		primary, secondary = params.BankB, params.BankA
	}

	return primary, secondary, v.StereoMode() != params.Stereo
}
