package eq

import (
	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
	"github.com/cwbudde/algo-eq/dsp/smooth"
	"github.com/cwbudde/algo-eq/eq/params"
)

// BandRampSeconds is the smoothing time of band frequency, gain and Q.
const BandRampSeconds = 0.05

// Band is one equalizer band: up to MaxSections identical biquads in series
// driven by smoothed parameters.
//
// The zero value is a disabled band; call Prepare before use. A Band is
// owned by one goroutine.
type Band struct {
	sections [MaxSections]biquad.Section
	active   int
	enabled  bool

	sampleRate float64
	primed     bool

	freq smooth.Linear
	gain smooth.Linear
	q    smooth.Linear
}

// Prepare configures the band for sampleRate, clears the filter memory and
// restarts smoothing. The first UpdateCoefficients after Prepare jumps to
// its targets. Band state is fixed-size, so maxBlockSize only bounds the
// blocks Process may be given.
func (b *Band) Prepare(sampleRate float64, maxBlockSize int) {
	b.sampleRate = sampleRate
	b.anchorRamps(sampleRate)
	b.primed = false

	for i := range b.sections {
		b.sections[i].SetCoefficients(biquad.Identity())
	}
	b.active = 1
	b.Reset()
}

// Reset clears the delay lines of every section. Parameter targets and
// smoothing state are kept.
func (b *Band) Reset() {
	for i := range b.sections {
		b.sections[i].Reset()
	}
}

// UpdateCoefficients samples v once and recomputes the section
// coefficients. A disabled band returns immediately and keeps its filter
// state. For an enabled band the frequency and Q are clamped, the smoothers
// advance by blockLen samples and the sections are designed from the
// smoothed values at sampleRate.
func (b *Band) UpdateCoefficients(v params.BandView, sampleRate float64, blockLen int) {
	b.enabled = v.Enabled()
	if !b.enabled {
		return
	}

	// A rate change (quality switch) restarts smoothing at the new rate.
	if sampleRate != b.sampleRate {
		b.sampleRate = sampleRate
		b.anchorRamps(sampleRate)
		b.primed = false
	}

	freq := ClampFrequency(v.FrequencyHz(), sampleRate)
	gain := v.GainDB()
	q := ClampQ(v.Q())

	if !b.primed {
		b.freq.SetCurrentAndTarget(freq)
		b.gain.SetCurrentAndTarget(gain)
		b.q.SetCurrentAndTarget(q)
		b.primed = true
	} else {
		b.freq.SetTarget(freq)
		b.gain.SetTarget(gain)
		b.q.SetTarget(q)
	}

	freq = b.freq.Skip(blockLen)
	gain = b.gain.Skip(blockLen)
	q = b.q.Skip(blockLen)

	t := v.Type()
	c := DesignSection(t, freq, gain, q, sampleRate)

	b.active = SectionCount(t, v.Slope())
	for i := range b.sections {
		if i < b.active {
			b.sections[i].SetCoefficients(c)
		} else {
			b.sections[i].SetCoefficients(biquad.Identity())
		}
	}
}

// Process filters buf in place through the active sections. It does nothing
// while the band is disabled.
func (b *Band) Process(buf []float64) {
	if !b.enabled {
		return
	}

	for i := range b.active {
		b.sections[i].ProcessBlock(buf)
	}
}

// Enabled reports the enabled flag sampled by the last update.
func (b *Band) Enabled() bool { return b.enabled }

// ActiveSections returns the number of sections Process runs.
func (b *Band) ActiveSections() int { return b.active }

// Section returns the coefficients of section i.
func (b *Band) Section(i int) biquad.Coefficients {
	return b.sections[i].Coefficients()
}

// Smoothed returns the current smoothed frequency, gain and Q the
// coefficients were designed from.
func (b *Band) Smoothed() (freqHz, gainDB, q float64) {
	return b.freq.Current(), b.gain.Current(), b.q.Current()
}

func (b *Band) anchorRamps(sampleRate float64) {
	b.freq.Reset(sampleRate, BandRampSeconds)
	b.gain.Reset(sampleRate, BandRampSeconds)
	b.q.Reset(sampleRate, BandRampSeconds)
}
