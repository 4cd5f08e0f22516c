package oversample

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Factor is the rate multiplier of every Oversampler.
const Factor = 2

// Oversampler is a per-channel 2x interpolator/decimator pair.
//
// Up and Down never allocate. Passing a block longer than the configured
// maximum is a programmer error and panics.
type Oversampler struct {
	channels int
	maxBlock int
	quality  Quality
	latency  int

	// phases hold the time-reversed even and odd polyphase branches of the
	// interpolator, scaled by Factor. down holds the decimator taps.
	phases [Factor][]float64
	down   []float64

	upHist   int
	downHist int

	upState   [][]float64 // per channel: upHist history + maxBlock input
	upOut     [][]float64 // per channel: Factor*maxBlock output
	downState [][]float64 // per channel: downHist history + Factor*maxBlock input
}

// New builds an oversampler for numChannels channels of at most maxBlockSize
// base-rate samples per call.
func New(numChannels, maxBlockSize int, opts ...Option) (*Oversampler, error) {
	if numChannels <= 0 {
		return nil, fmt.Errorf("%w: channel count must be > 0: %d", ErrInvalidConfig, numChannels)
	}

	if maxBlockSize <= 0 {
		return nil, fmt.Errorf("%w: max block size must be > 0: %d", ErrInvalidConfig, maxBlockSize)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	cfg = cfg.finalized()

	taps, err := designHalfband(cfg)
	if err != nil {
		return nil, err
	}

	o := &Oversampler{
		channels: numChannels,
		maxBlock: maxBlockSize,
		quality:  cfg.quality,
		latency:  cfg.tapsPerPhase,
		down:     taps,
		downHist: len(taps) - 1,
	}

	// Even branch h[0], h[2], ... and odd branch h[1], h[3], ..., reversed so
	// each output is a contiguous dot product over the input history.
	for p := range Factor {
		var branch []float64
		for i := p; i < len(taps); i += Factor {
			branch = append(branch, Factor*taps[i])
		}

		for i, j := 0, len(branch)-1; i < j; i, j = i+1, j-1 {
			branch[i], branch[j] = branch[j], branch[i]
		}

		o.phases[p] = branch
		o.upHist = max(o.upHist, len(branch)-1)
	}

	o.upState = make([][]float64, numChannels)
	o.upOut = make([][]float64, numChannels)
	o.downState = make([][]float64, numChannels)

	for ch := range numChannels {
		o.upState[ch] = make([]float64, o.upHist+maxBlockSize)
		o.upOut[ch] = make([]float64, Factor*maxBlockSize)
		o.downState[ch] = make([]float64, o.downHist+Factor*maxBlockSize)
	}

	return o, nil
}

// Channels returns the configured channel count.
func (o *Oversampler) Channels() int { return o.channels }

// MaxBlockSize returns the largest base-rate block accepted by Up and Down.
func (o *Oversampler) MaxBlockSize() int { return o.maxBlock }

// Quality returns the configured quality mode.
func (o *Oversampler) Quality() Quality { return o.quality }

// Latency returns the up/down round-trip delay in base-rate samples.
func (o *Oversampler) Latency() int { return o.latency }

// Reset clears all filter history.
func (o *Oversampler) Reset() {
	for ch := range o.channels {
		clear(o.upState[ch][:o.upHist])
		clear(o.downState[ch][:o.downHist])
	}
}

// Up interpolates src into the channel's double-rate buffer and returns it.
// The returned slice has length Factor*len(src) and stays valid until the
// next Up call for the same channel.
func (o *Oversampler) Up(ch int, src []float64) []float64 {
	n := len(src)
	if n > o.maxBlock {
		panic(fmt.Sprintf("oversample: block of %d exceeds max block size %d", n, o.maxBlock))
	}

	state := o.upState[ch]
	out := o.upOut[ch][:Factor*n]

	copy(state[o.upHist:], src)

	for p, branch := range o.phases {
		// Shorter branches start later in the history so every branch ends on
		// the current input sample.
		offset := o.upHist + 1 - len(branch)
		for i := range n {
			out[Factor*i+p] = vecmath.DotProduct(branch, state[offset+i:offset+i+len(branch)])
		}
	}

	copy(state, state[n:n+o.upHist])

	return out
}

// Down decimates the double-rate src into dst. len(src) must be
// Factor*len(dst).
func (o *Oversampler) Down(ch int, dst, src []float64) {
	n := len(dst)
	if n > o.maxBlock {
		panic(fmt.Sprintf("oversample: block of %d exceeds max block size %d", n, o.maxBlock))
	}

	if len(src) != Factor*n {
		panic(fmt.Sprintf("oversample: Down source length %d, want %d", len(src), Factor*n))
	}

	state := o.downState[ch]
	copy(state[o.downHist:], src)

	taps := o.down
	for i := range n {
		// The prototype is symmetric, so it needs no reversal.
		dst[i] = vecmath.DotProduct(taps, state[Factor*i:Factor*i+len(taps)])
	}

	copy(state, state[Factor*n:Factor*n+o.downHist])
}
