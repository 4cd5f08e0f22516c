package analyzer

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/window"
	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Source is the consumer side of an analyzer feed. *fifo.Ring implements
// it; so do the Pop methods of a processor through SourceFunc.
type Source interface {
	Pull(dst []float64) int
}

// SourceFunc adapts a pull function to Source.
type SourceFunc func(dst []float64) int

// Pull calls f.
func (f SourceFunc) Pull(dst []float64) int { return f(dst) }

// Analyzer is a frame-based magnitude spectrum of a sample stream.
type Analyzer struct {
	cfg        config
	sampleRate float64

	plan    *algofft.Plan[complex128]
	win     []float64
	winGain float64

	history []float64
	write   int
	filled  int
	chunk   []float64

	frame []float64
	in    []complex128
	out   []complex128
	re    []float64
	im    []float64
	mag   []float64
	db    []float64
	ready bool
}

// New returns an analyzer for a stream at sampleRate.
func New(sampleRate float64, opts ...Option) (*Analyzer, error) {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("%w: sample rate must be > 0: %v", ErrInvalidConfig, sampleRate)
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

	plan, err := algofft.NewPlan64(cfg.fftSize)
	if err != nil {
		return nil, fmt.Errorf("analyzer: fft plan: %w", err)
	}

	n := cfg.fftSize
	bins := n/2 + 1
	win := window.Generate(cfg.window, n, window.WithPeriodic())

	a := &Analyzer{
		cfg:        cfg,
		sampleRate: sampleRate,
		plan:       plan,
		win:        win,
		winGain:    window.CoherentGain(win),
		history:    make([]float64, n),
		chunk:      make([]float64, cfg.chunkSize),
		frame:      make([]float64, n),
		in:         make([]complex128, n),
		out:        make([]complex128, n),
		re:         make([]float64, bins),
		im:         make([]float64, bins),
		mag:        make([]float64, bins),
		db:         make([]float64, bins),
	}
	a.Reset()

	return a, nil
}

// Reset drops the history and the current spectrum.
func (a *Analyzer) Reset() {
	clear(a.history)
	a.write = 0
	a.filled = 0
	a.ready = false
	for i := range a.db {
		a.db[i] = a.cfg.floorDB
	}
}

// FFTSize returns the frame length.
func (a *Analyzer) FFTSize() int { return a.cfg.fftSize }

// SampleRate returns the stream sample rate.
func (a *Analyzer) SampleRate() float64 { return a.sampleRate }

// BinHz returns the spacing of spectrum bins in Hz.
func (a *Analyzer) BinHz() float64 { return a.sampleRate / float64(a.cfg.fftSize) }

// Ready reports whether at least one frame has been analyzed.
func (a *Analyzer) Ready() bool { return a.ready }

// Spectrum returns the dB value of every bin from DC to Nyquist. The slice
// is owned by the analyzer and changes on the next frame.
func (a *Analyzer) Spectrum() []float64 { return a.db }

// Update drains src chunk by chunk and analyzes the newest frame if any
// samples arrived and a full frame of history exists. It returns the number
// of samples consumed.
func (a *Analyzer) Update(src Source) (int, error) {
	total := 0
	for {
		n := src.Pull(a.chunk)
		if n == 0 {
			break
		}

		a.Write(a.chunk[:n])
		total += n

		if n < len(a.chunk) {
			break
		}
	}

	if total == 0 || a.filled < len(a.history) {
		return total, nil
	}

	return total, a.analyze()
}

// Write appends samples to the history without analyzing.
func (a *Analyzer) Write(samples []float64) {
	size := len(a.history)
	if len(samples) >= size {
		samples = samples[len(samples)-size:]
	}

	first := copy(a.history[a.write:], samples)
	copy(a.history, samples[first:])

	a.write = (a.write + len(samples)) % size
	a.filled = min(a.filled+len(samples), size)
}

// Analyze transforms the newest frame now. It fails if less than one frame
// of samples has been written since the last Reset.
func (a *Analyzer) Analyze() error {
	if a.filled < len(a.history) {
		return fmt.Errorf("analyzer: %d of %d history samples filled", a.filled, len(a.history))
	}
	return a.analyze()
}

func (a *Analyzer) analyze() error {
	// Oldest sample first.
	first := copy(a.frame, a.history[a.write:])
	copy(a.frame[first:], a.history[:a.write])

	window.Apply(a.frame, a.win)
	for i, v := range a.frame {
		a.in[i] = complex(v, 0)
	}

	if err := a.plan.Forward(a.out, a.in); err != nil {
		return fmt.Errorf("analyzer: fft: %w", err)
	}

	for k := range a.re {
		a.re[k] = real(a.out[k])
		a.im[k] = imag(a.out[k])
	}
	vecmath.Magnitude(a.mag, a.re, a.im)

	// One-sided amplitude: interior bins carry half of each sinusoid.
	last := len(a.mag) - 1
	vecmath.ScaleBlockInPlace(a.mag, 2/(float64(a.cfg.fftSize)*math.Max(a.winGain, 1e-12)))
	a.mag[0] *= 0.5
	a.mag[last] *= 0.5

	s := a.cfg.smoothing
	for k, m := range a.mag {
		db := core.Clamp(core.LinearToDBFloor(m, a.cfg.floorDB), a.cfg.floorDB, a.cfg.ceilingDB)
		if a.ready {
			db = s*a.db[k] + (1-s)*db
		}
		a.db[k] = db
	}
	a.ready = true

	return nil
}

// CurveDB returns the spectrum at freqs, interpolated linearly between bins.
// Before the first frame every value is the floor.
func (a *Analyzer) CurveDB(freqs []float64) []float64 {
	return a.AppendCurveDB(make([]float64, 0, len(freqs)), freqs)
}

// AppendCurveDB appends the values CurveDB computes to dst.
func (a *Analyzer) AppendCurveDB(dst, freqs []float64) []float64 {
	last := len(a.db) - 1
	binHz := a.BinHz()

	for _, f := range freqs {
		bin := core.Clamp(f, 0, a.sampleRate/2) / binHz
		switch {
		case !a.ready:
			dst = append(dst, a.cfg.floorDB)
		case bin >= float64(last):
			dst = append(dst, a.db[last])
		default:
			base := int(bin)
			frac := bin - float64(base)
			dst = append(dst, a.db[base]+frac*(a.db[base+1]-a.db[base]))
		}
	}

	return dst
}
