package analyzer

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-eq/dsp/window"
)

// ErrInvalidFFTSize is returned for FFT sizes that are not a power of two
// in [MinFFTSize, MaxFFTSize].
var ErrInvalidFFTSize = errors.New("analyzer: invalid FFT size")

// ErrInvalidConfig is returned for other unusable options.
var ErrInvalidConfig = errors.New("analyzer: invalid config")

// FFT size limits.
const (
	MinFFTSize = 64
	MaxFFTSize = 1 << 16
)

const (
	defaultFFTSize   = 2048
	defaultChunkSize = 512
	defaultFloorDB   = -96.0
	defaultCeilingDB = 12.0
	maxSmoothing     = 0.95
)

type config struct {
	fftSize   int
	chunkSize int
	window    window.Type
	floorDB   float64
	ceilingDB float64
	smoothing float64
}

// Option configures an Analyzer.
type Option func(*config) error

func defaultConfig() config {
	return config{
		fftSize:   defaultFFTSize,
		chunkSize: defaultChunkSize,
		window:    window.TypeHann,
		floorDB:   defaultFloorDB,
		ceilingDB: defaultCeilingDB,
	}
}

// WithFFTSize sets the frame length. It must be a power of two.
func WithFFTSize(n int) Option {
	return func(c *config) error {
		if n < MinFFTSize || n > MaxFFTSize || n&(n-1) != 0 {
			return fmt.Errorf("%w: %d", ErrInvalidFFTSize, n)
		}
		c.fftSize = n
		return nil
	}
}

// WithChunkSize sets how many samples each pull from the feed requests.
func WithChunkSize(n int) Option {
	return func(c *config) error {
		if n <= 0 {
			return fmt.Errorf("%w: chunk size must be > 0: %d", ErrInvalidConfig, n)
		}
		c.chunkSize = n
		return nil
	}
}

// WithWindow selects the analysis window. The default is Hann.
func WithWindow(t window.Type) Option {
	return func(c *config) error {
		if window.Generate(t, 1) == nil {
			return fmt.Errorf("%w: window %v", ErrInvalidConfig, t)
		}
		c.window = t
		return nil
	}
}

// WithRange sets the dB range spectrum values are clamped to.
func WithRange(floorDB, ceilingDB float64) Option {
	return func(c *config) error {
		if !(floorDB < ceilingDB) {
			return fmt.Errorf("%w: dB range [%v, %v]", ErrInvalidConfig, floorDB, ceilingDB)
		}
		c.floorDB, c.ceilingDB = floorDB, ceilingDB
		return nil
	}
}

// WithSmoothing blends each new frame with the previous one:
// db = s*previous + (1-s)*new. s must lie in [0, 0.95].
func WithSmoothing(s float64) Option {
	return func(c *config) error {
		if !(s >= 0 && s <= maxSmoothing) {
			return fmt.Errorf("%w: smoothing %v outside [0, %v]", ErrInvalidConfig, s, maxSmoothing)
		}
		c.smoothing = s
		return nil
	}
}
