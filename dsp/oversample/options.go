package oversample

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned for unusable channel counts, block sizes or
// filter settings.
var ErrInvalidConfig = errors.New("oversample: invalid config")

// Quality selects a predefined anti-imaging filter length.
type Quality int

const (
	// QualityFast uses short filters with moderate image rejection.
	QualityFast Quality = iota
	// QualityBalanced is the default trade-off.
	QualityBalanced
	// QualityBest uses long filters with a flat passband to near Nyquist.
	QualityBest
)

// String returns the quality name.
func (q Quality) String() string {
	switch q {
	case QualityFast:
		return "fast"
	case QualityBalanced:
		return "balanced"
	case QualityBest:
		return "best"
	default:
		return fmt.Sprintf("Quality(%d)", int(q))
	}
}

// Profile holds the filter parameters of a quality mode.
type Profile struct {
	TapsPerPhase int
	CutoffScale  float64
	KaiserBeta   float64
}

// QualityProfile returns the default profile used by quality mode q.
func QualityProfile(q Quality) Profile {
	switch q {
	case QualityFast:
		return Profile{TapsPerPhase: 16, CutoffScale: 0.88, KaiserBeta: 5.0}
	case QualityBest:
		return Profile{TapsPerPhase: 64, CutoffScale: 0.96, KaiserBeta: 9.0}
	default:
		return Profile{TapsPerPhase: 32, CutoffScale: 0.92, KaiserBeta: 7.5}
	}
}

type config struct {
	quality      Quality
	tapsPerPhase int
	cutoffScale  float64
	kaiserBeta   float64
}

// Option configures an Oversampler.
type Option func(*config) error

func defaultConfig() config {
	return config{quality: QualityBalanced}
}

// WithQuality selects a predefined filter profile.
func WithQuality(q Quality) Option {
	return func(cfg *config) error {
		if q < QualityFast || q > QualityBest {
			return fmt.Errorf("%w: unknown quality %d", ErrInvalidConfig, int(q))
		}

		cfg.quality = q

		return nil
	}
}

// WithTapsPerPhase overrides the taps per polyphase branch, which is also the
// round-trip latency in base-rate samples.
func WithTapsPerPhase(n int) Option {
	return func(cfg *config) error {
		if n <= 0 {
			return fmt.Errorf("%w: taps per phase must be > 0: %d", ErrInvalidConfig, n)
		}

		cfg.tapsPerPhase = n

		return nil
	}
}

// WithCutoffScale overrides the lowpass cutoff relative to the base-rate
// Nyquist frequency, in (0, 1].
func WithCutoffScale(v float64) Option {
	return func(cfg *config) error {
		if !(v > 0 && v <= 1) {
			return fmt.Errorf("%w: cutoff scale must be in (0,1]: %v", ErrInvalidConfig, v)
		}

		cfg.cutoffScale = v

		return nil
	}
}

// WithKaiserBeta overrides the Kaiser window beta.
func WithKaiserBeta(beta float64) Option {
	return func(cfg *config) error {
		if !(beta >= 0) {
			return fmt.Errorf("%w: kaiser beta must be >= 0: %v", ErrInvalidConfig, beta)
		}

		cfg.kaiserBeta = beta

		return nil
	}
}

func (c config) finalized() config {
	p := QualityProfile(c.quality)
	if c.tapsPerPhase <= 0 {
		c.tapsPerPhase = p.TapsPerPhase
	}

	if c.cutoffScale <= 0 {
		c.cutoffScale = p.CutoffScale
	}

	if c.kaiserBeta <= 0 {
		c.kaiserBeta = p.KaiserBeta
	}

	return c
}
