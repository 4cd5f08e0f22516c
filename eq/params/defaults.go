package params

// Range is an inclusive parameter range with a default value.
type Range struct {
	Min, Max, Default float64
}

// Clamp limits v to the range. NaN maps to the default.
func (r Range) Clamp(v float64) float64 {
	switch {
	case v != v:
		return r.Default
	case v < r.Min:
		return r.Min
	case v > r.Max:
		return r.Max
	}
	return v
}

// Parameter ranges.
var (
	FrequencyRange  = Range{Min: 20, Max: 20000, Default: 1000}
	GainRange       = Range{Min: -24, Max: 24, Default: 0}
	QRange          = Range{Min: 0.1, Max: 18, Default: 0.707}
	OutputGainRange = Range{Min: -24, Max: 24, Default: 0}
)

var (
	defaultTypes = [NumBands]FilterType{
		HighPass, LowShelf, Peak, Peak, Peak, Peak, HighShelf, LowPass,
	}
	defaultFrequencies = [NumBands]float64{
		30, 120, 350, 900, 2200, 5000, 9000, 18000,
	}
)

// DefaultBand returns the factory settings of band index (0-based). Bands
// start disabled.
func DefaultBand(index int) BandSettings {
	return BandSettings{
		On:        false,
		Kind:      defaultTypes[index],
		Frequency: defaultFrequencies[index],
		Gain:      GainRange.Default,
		QFactor:   QRange.Default,
		Steepness: Slope12dB,
	}
}
