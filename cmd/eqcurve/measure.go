package main

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/window"
	"github.com/cwbudde/algo-eq/eq/params"
	"github.com/cwbudde/algo-eq/eq/processor"
	"github.com/cwbudde/algo-eq/measure/analyzer"
)

const (
	measureBlock     = 512
	measureAmplitude = 0.25
	measureFFTSize   = 8192
)

// measure runs a sine at every frequency through a processor reading store
// and returns the output level relative to the input, read from the
// post-analyzer feed with a flat-top window.
func measure(store *params.Store, sampleRate float64, freqs []float64) ([]float64, error) {
	p, err := processor.New(store)
	if err != nil {
		return nil, err
	}

	an, err := analyzer.New(sampleRate,
		analyzer.WithFFTSize(measureFFTSize),
		analyzer.WithWindow(window.TypeFlatTop),
		analyzer.WithRange(-200, 60),
	)
	if err != nil {
		return nil, err
	}

	spec := core.ProcessSpec{SampleRate: sampleRate, MaxBlockSize: measureBlock, NumChannels: 2}
	post := analyzer.SourceFunc(p.PopPostAnalyzerSamples)

	// Settle for half a second, then fill one analysis frame.
	total := int(sampleRate/2) + measureFFTSize
	left := make([]float64, measureBlock)
	right := make([]float64, measureBlock)
	ref := core.LinearToDB(measureAmplitude)

	if err := p.Prepare(spec); err != nil {
		return nil, err
	}

	out := make([]float64, len(freqs))
	for i, f := range freqs {
		p.Reset()
		an.Reset()

		step := 2 * math.Pi * f / sampleRate
		for start := 0; start < total; start += measureBlock {
			for j := range left {
				left[j] = measureAmplitude * math.Sin(step*float64(start+j))
			}
			copy(right, left)

			p.Process([][]float64{left, right})
			if _, err := an.Update(post); err != nil {
				return nil, fmt.Errorf("measure %.1f Hz: %w", f, err)
			}
		}

		out[i] = an.CurveDB([]float64{f})[0] - ref
	}

	return out, nil
}
