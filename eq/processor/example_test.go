package processor_test

import (
	"fmt"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/eq/params"
	"github.com/cwbudde/algo-eq/eq/processor"
)

func ExampleProcessor() {
	store := params.NewStore()
	store.SetStereoMode(params.LeftRight)
	store.SetOutputGainDB(-6)

	p, err := processor.New(store)
	if err != nil {
		panic(err)
	}

	if err := p.Prepare(core.ProcessSpec{SampleRate: 48000, MaxBlockSize: 256, NumChannels: 2}); err != nil {
		panic(err)
	}

	left := make([]float64, 256)
	right := make([]float64, 256)
	for i := range left {
		left[i], right[i] = 1, -1
	}

	p.Process([][]float64{left, right})

	pre := make([]float64, 256)
	n := p.PopPreAnalyzerSamples(pre)

	fmt.Printf("%.3f %.3f %d %.0f\n", left[0], right[0], n, pre[0])

	// Output:
	// 0.501 -0.501 256 0
}
