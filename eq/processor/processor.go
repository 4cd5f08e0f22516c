package processor

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/fifo"
	"github.com/cwbudde/algo-eq/dsp/oversample"
	"github.com/cwbudde/algo-eq/dsp/smooth"
	"github.com/cwbudde/algo-eq/eq"
	"github.com/cwbudde/algo-eq/eq/params"
	"github.com/cwbudde/algo-vecmath"
)

// ErrUnsupportedLayout is returned for channel layouts other than mono or
// stereo with equal input and output counts.
var ErrUnsupportedLayout = errors.New("processor: unsupported channel layout")

// Processor is the real-time equalizer. Prepare and Process belong to the
// render goroutine. SetSoloBandIndex, ClearSoloBand and the analyzer pops
// may be called from other goroutines.
type Processor struct {
	view params.View
	cfg  config

	pre  *fifo.Ring
	post *fifo.Ring
	solo atomic.Int32

	spec     core.ProcessSpec
	prepared bool

	// One engine per channel. The routing decides which bank each engine
	// reads.
	engines []*eq.Engine
	over    *oversample.Oversampler
	quality params.QualityMode

	outGain smooth.Linear
	ramp    []float64
	mono    []float64
	work    [][]float64
	chunk   [][]float64
	planar  [][]float64
}

// New returns a processor reading its parameters from view. The analyzer
// feeds are allocated here and live as long as the processor.
func New(view params.View, opts ...Option) (*Processor, error) {
	if view == nil {
		return nil, errors.New("processor: nil parameter view")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	pre, err := fifo.New(cfg.analyzerCapacity)
	if err != nil {
		return nil, fmt.Errorf("processor: pre-analyzer feed: %w", err)
	}

	post, err := fifo.New(cfg.analyzerCapacity)
	if err != nil {
		return nil, fmt.Errorf("processor: post-analyzer feed: %w", err)
	}

	p := &Processor{
		view: view,
		cfg:  cfg,
		pre:  pre,
		post: post,
	}
	p.solo.Store(eq.NoSolo)

	return p, nil
}

// SupportsLayout reports whether the processor can run with inputs input
// and outputs output channels: mono or stereo, inputs equal to outputs.
func SupportsLayout(inputs, outputs int) bool {
	return (outputs == 1 || outputs == 2) && inputs == outputs
}

// Prepare allocates every buffer for spec and resets all processing state.
// It must not run concurrently with Process.
func (p *Processor) Prepare(spec core.ProcessSpec) error {
	if err := spec.Validate(); err != nil {
		return fmt.Errorf("processor: %w", err)
	}

	ovs, err := oversample.New(spec.NumChannels, spec.MaxBlockSize, oversample.WithQuality(p.cfg.oversampling))
	if err != nil {
		return fmt.Errorf("processor: %w", err)
	}

	p.spec = spec
	p.over = ovs
	p.quality = p.view.Quality()

	p.engines = make([]*eq.Engine, spec.NumChannels)
	for ch := range p.engines {
		p.engines[ch] = eq.NewEngine()
		p.engines[ch].Prepare(spec.SampleRate, spec.MaxBlockSize)
	}

	p.ramp = make([]float64, spec.MaxBlockSize)
	p.mono = make([]float64, spec.MaxBlockSize)
	p.work = make([][]float64, spec.NumChannels)
	p.chunk = make([][]float64, spec.NumChannels)
	p.planar = make([][]float64, spec.NumChannels)
	for ch := range p.planar {
		p.planar[ch] = make([]float64, spec.MaxBlockSize)
	}

	p.outGain.Reset(spec.SampleRate, OutputGainRampSeconds)
	p.outGain.SetCurrentAndTarget(core.DBToLinear(p.view.OutputGainDB()))

	p.prepared = true

	return nil
}

// Reset clears filter memory and oversampler history. Parameters, solo and
// analyzer feeds are untouched.
func (p *Processor) Reset() {
	if !p.prepared {
		return
	}

	for _, e := range p.engines {
		e.Reset()
	}
	p.over.Reset()
	p.outGain.SetCurrentAndTarget(p.outGain.Target())
}

// Spec returns the spec of the last successful Prepare.
func (p *Processor) Spec() core.ProcessSpec { return p.spec }

// SetSoloBandIndex solos band index in every engine from the next block on.
// Values outside [eq.NoSolo, NumBands-1] are clamped.
func (p *Processor) SetSoloBandIndex(index int) {
	p.solo.Store(int32(core.ClampInt(index, eq.NoSolo, params.NumBands-1)))
}

// ClearSoloBand turns solo off.
func (p *Processor) ClearSoloBand() {
	p.solo.Store(eq.NoSolo)
}

// SoloBandIndex returns the requested solo band or eq.NoSolo.
func (p *Processor) SoloBandIndex() int {
	return int(p.solo.Load())
}

// LatencySamples returns the processing delay in host-rate samples: the
// oversampler round trip in high quality mode, else 0.
func (p *Processor) LatencySamples() int {
	if p.over == nil || p.view.Quality() != params.QualityHigh {
		return 0
	}
	return p.over.Latency()
}

// PopPreAnalyzerSamples moves up to len(dst) samples of the input mono mix
// into dst and returns the count. It never blocks.
func (p *Processor) PopPreAnalyzerSamples(dst []float64) int {
	return p.pre.Pull(dst)
}

// PopPostAnalyzerSamples moves up to len(dst) samples of the output mono mix
// into dst and returns the count. It never blocks.
func (p *Processor) PopPostAnalyzerSamples(dst []float64) int {
	return p.post.Pull(dst)
}

// PreAnalyzerFeed returns the ring behind PopPreAnalyzerSamples for
// consumers that pull directly.
func (p *Processor) PreAnalyzerFeed() *fifo.Ring { return p.pre }

// PostAnalyzerFeed returns the ring behind PopPostAnalyzerSamples.
func (p *Processor) PostAnalyzerFeed() *fifo.Ring { return p.post }

// Process filters channels in place. Blocks longer than the prepared
// maximum are processed in pieces. Channels beyond the prepared channel
// count are cleared.
func (p *Processor) Process(channels [][]float64) {
	if !p.prepared {
		panic("processor: Process called before Prepare")
	}

	if len(channels) == 0 {
		return
	}

	active := min(len(channels), p.spec.NumChannels)
	for _, ch := range channels[active:] {
		clear(ch)
	}
	channels = channels[:active]

	n := len(channels[0])
	for _, ch := range channels[1:] {
		n = min(n, len(ch))
	}

	for start := 0; start < n; start += p.spec.MaxBlockSize {
		end := min(start+p.spec.MaxBlockSize, n)

		chunk := p.chunk[:active]
		for ch := range chunk {
			chunk[ch] = channels[ch][start:end]
		}
		p.processBlock(chunk)
	}
}

func (p *Processor) processBlock(channels [][]float64) {
	n := len(channels[0])

	p.feed(p.pre, channels, n)

	quality := p.view.Quality()
	if quality != p.quality {
		p.quality = quality
		p.over.Reset()
		for _, e := range p.engines {
			e.Reset()
		}
	}

	work := p.work[:len(channels)]
	rate := p.spec.SampleRate
	blockLen := n

	if quality == params.QualityHigh {
		for ch := range work {
			work[ch] = p.over.Up(ch, channels[ch])
		}
		rate *= oversample.Factor
		blockLen *= oversample.Factor
	} else {
		copy(work, channels)
	}

	p.route(work, blockLen, rate)

	if quality == params.QualityHigh {
		for ch := range work {
			p.over.Down(ch, channels[ch], work[ch])
		}
	}

	p.applyOutputGain(channels, n)
	p.feed(p.post, channels, n)
}

// route updates the engines and runs the band cascade under the current
// stereo mode.
func (p *Processor) route(work [][]float64, blockLen int, rate float64) {
	solo := int(p.solo.Load())
	mode := p.view.StereoMode()
	if len(work) < 2 {
		mode = params.Stereo
	}

	if mode == params.MidSide {
		eq.EncodeMidSide(work[0], work[1])
	}

	for ch, buf := range work {
		bank := params.BankA
		if mode != params.Stereo && ch == 1 {
			bank = params.BankB
		}

		e := p.engines[ch]
		e.SetSoloBandIndex(solo)
		e.UpdateParameters(p.view, bank, blockLen, rate)
		e.Process(buf)
	}

	if mode == params.MidSide {
		eq.DecodeMidSide(work[0], work[1])
	}
}

func (p *Processor) applyOutputGain(channels [][]float64, n int) {
	p.outGain.SetTarget(core.DBToLinear(p.view.OutputGainDB()))

	if p.outGain.IsSmoothing() {
		ramp := p.ramp[:n]
		for i := range ramp {
			ramp[i] = p.outGain.Next()
		}
		for _, ch := range channels {
			vecmath.MulBlockInPlace(ch[:n], ramp)
		}
		return
	}

	gain := p.outGain.Current()
	if gain == 1 {
		return
	}

	for _, ch := range channels {
		vecmath.ScaleBlockInPlace(ch[:n], gain)
	}
}

func (p *Processor) feed(r *fifo.Ring, channels [][]float64, n int) {
	m := core.MixMono(p.mono[:n], channels)
	r.Push(p.mono[:m])
}
