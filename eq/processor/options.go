package processor

import (
	"github.com/cwbudde/algo-eq/dsp/fifo"
	"github.com/cwbudde/algo-eq/dsp/oversample"
)

// OutputGainRampSeconds is the smoothing time of the output gain stage.
const OutputGainRampSeconds = 0.02

type config struct {
	analyzerCapacity int
	oversampling     oversample.Quality
}

// Option configures a Processor.
type Option func(*config)

func defaultConfig() config {
	return config{
		analyzerCapacity: fifo.DefaultCapacity,
		oversampling:     oversample.QualityBalanced,
	}
}

// WithAnalyzerCapacity sets the size in samples of each analyzer feed. It is
// rounded up to a power of two.
func WithAnalyzerCapacity(samples int) Option {
	return func(c *config) {
		c.analyzerCapacity = samples
	}
}

// WithOversamplingQuality selects the anti-imaging filter used in high
// quality mode.
func WithOversamplingQuality(q oversample.Quality) Option {
	return func(c *config) {
		c.oversampling = q
	}
}
