// Command eqcurve prints the predicted magnitude response of an equalizer
// setup, and optionally the response measured through the real-time
// processor.
//
// Usage:
//
//	eqcurve [flags]
//
// Bands are given as type:freq[:gain[:q[:slope]]] and fill band slots 1..8
// in order. Types are peak, lowshelf, highshelf, highpass and lowpass (or
// bell, ls, hs, hp, lp); slope is 12, 24, 36 or 48 dB/oct.
//
// Examples:
//
//	eqcurve --band peak:1000:6:1.2
//	eqcurve --band hp:80:0:0.707:24 --band hs:8000:3 --points 16
//	eqcurve --band lp:5000::0.707:48 --measure --quality high
package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/alecthomas/kong"

	"github.com/cwbudde/algo-eq/eq"
	"github.com/cwbudde/algo-eq/eq/params"
)

// CLI defines the command-line interface.
type CLI struct {
	Rate    float64  `default:"48000" help:"Sample rate in Hz."`
	Band    []string `short:"b" help:"Band as type:freq[:gain[:q[:slope]]]; repeat for up to 8 bands."`
	Gain    float64  `help:"Output gain in dB."`
	Points  int      `default:"31" help:"Number of log-spaced frequencies from 20 Hz to the design limit."`
	Measure bool     `short:"m" help:"Also measure each frequency by running a sine through the processor."`
	Quality string   `default:"standard" enum:"standard,high" help:"Processing quality for --measure (standard, high)."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("eqcurve"),
		kong.Description("Print the magnitude response of a parametric EQ setup."),
		kong.UsageOnError(),
	)

	ctx.FatalIfErrorf(run(&cli, os.Stdout))
}

func run(cli *CLI, out io.Writer) error {
	if !(cli.Rate > 0) {
		return fmt.Errorf("sample rate must be > 0: %v", cli.Rate)
	}
	if cli.Points <= 0 {
		return fmt.Errorf("points must be > 0: %d", cli.Points)
	}

	store, err := buildStore(cli)
	if err != nil {
		return err
	}

	freqs := eq.FrequencyAxis(cli.Points, cli.Rate)
	predicted := eq.Capture(store, cli.Rate, params.BankA).MagnitudeDB(freqs)

	var measured []float64
	if cli.Measure {
		measured, err = measure(store, cli.Rate, freqs)
		if err != nil {
			return err
		}
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	if measured != nil {
		fmt.Fprintln(tw, "freq Hz\tpredicted dB\tmeasured dB\t")
	} else {
		fmt.Fprintln(tw, "freq Hz\tpredicted dB\t")
	}

	for i, f := range freqs {
		if measured != nil {
			fmt.Fprintf(tw, "%.1f\t%.2f\t%.2f\t\n", f, predicted[i], measured[i])
			continue
		}
		fmt.Fprintf(tw, "%.1f\t%.2f\t\n", f, predicted[i])
	}

	return tw.Flush()
}

func buildStore(cli *CLI) (*params.Store, error) {
	if len(cli.Band) > params.NumBands {
		return nil, fmt.Errorf("at most %d bands, got %d", params.NumBands, len(cli.Band))
	}

	store := params.NewStore()
	store.SetOutputGainDB(cli.Gain)

	switch cli.Quality {
	case "high":
		store.SetQuality(params.QualityHigh)
	default:
		store.SetQuality(params.QualityStandard)
	}

	for i, spec := range cli.Band {
		b, err := parseBand(spec)
		if err != nil {
			return nil, fmt.Errorf("band %d: %w", i+1, err)
		}
		store.SetBand(i, params.BankA, b)
	}

	return store, nil
}
