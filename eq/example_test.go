package eq_test

import (
	"fmt"

	"github.com/cwbudde/algo-eq/eq"
	"github.com/cwbudde/algo-eq/eq/params"
)

func ExampleCapture() {
	store := params.NewStore()
	store.SetBand(3, params.BankA, params.BandSettings{
		On: true, Kind: params.Peak, Frequency: 1000, Gain: 6, QFactor: 1,
	})
	store.SetOutputGainDB(-2)

	state := eq.Capture(store, 48000, params.BankA)
	db := state.MagnitudeDB([]float64{1000})
	fmt.Printf("%.2f dB\n", db[0])

	// Output:
	// 4.00 dB
}

func ExampleFrequencyAxis() {
	for _, f := range eq.FrequencyAxis(4, 48000) {
		fmt.Printf("%.0f ", f)
	}
	fmt.Println()

	// Output:
	// 20 200 2000 20000
}

func ExampleEngine() {
	store := params.NewStore()
	store.SetBand(0, params.BankA, params.BandSettings{
		On: true, Kind: params.HighPass, Frequency: 80, QFactor: 0.707, Steepness: params.Slope24dB,
	})

	engine := eq.NewEngine()
	engine.Prepare(48000, 256)

	block := make([]float64, 256)
	for i := range block {
		block[i] = 1
	}

	engine.UpdateParameters(store, params.BankA, len(block), 48000)
	engine.Process(block)

	fmt.Println(engine.Band(0).ActiveSections(), block[0] < 1)

	// Output:
	// 2 true
}
