package eq

import (
	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/eq/params"
)

// NoSolo is the solo index that applies every band.
const NoSolo = -1

// Engine is one bank of params.NumBands bands processed in series.
type Engine struct {
	bands      [params.NumBands]Band
	sampleRate float64
	solo       int
}

// NewEngine returns an engine with no band soloed. Call Prepare before
// processing.
func NewEngine() *Engine {
	return &Engine{solo: NoSolo}
}

// Prepare forwards to every band.
func (e *Engine) Prepare(sampleRate float64, maxBlockSize int) {
	e.sampleRate = sampleRate
	for i := range e.bands {
		e.bands[i].Prepare(sampleRate, maxBlockSize)
	}
}

// Reset clears the filter memory of every band.
func (e *Engine) Reset() {
	for i := range e.bands {
		e.bands[i].Reset()
	}
}

// UpdateParameters updates every band, in band order, from bank of v.
// effectiveRate is the rate Process runs at, which is twice the host rate
// when oversampling. Call it once per block before Process.
func (e *Engine) UpdateParameters(v params.View, bank params.Bank, blockLen int, effectiveRate float64) {
	for i := range e.bands {
		e.bands[i].UpdateCoefficients(v.Band(i, bank), effectiveRate, blockLen)
	}
}

// SetSoloBandIndex solos band index. NoSolo applies all bands; other values
// are clamped to [NoSolo, NumBands-1].
func (e *Engine) SetSoloBandIndex(index int) {
	e.solo = core.ClampInt(index, NoSolo, params.NumBands-1)
}

// SoloBandIndex returns the soloed band or NoSolo.
func (e *Engine) SoloBandIndex() int { return e.solo }

// Band returns band index for inspection.
func (e *Engine) Band(index int) *Band { return &e.bands[index] }

// Process filters buf in place through the soloed band, or through every
// band in order when none is soloed. It panics if Prepare was not called.
func (e *Engine) Process(buf []float64) {
	if e.sampleRate <= 0 {
		panic("eq: Engine.Process called before Prepare")
	}

	if e.solo != NoSolo {
		e.bands[e.solo].Process(buf)
		return
	}

	for i := range e.bands {
		e.bands[i].Process(buf)
	}
}
