package params

// BandView is a read-only view of one band's parameters.
type BandView interface {
	Enabled() bool
	Type() FilterType
	FrequencyHz() float64
	GainDB() float64
	Q() float64
	Slope() Slope
}

// View is the read-only parameter surface the render path and the response
// evaluator consume. Implementations must be safe for a reader concurrent
// with writers and must not allocate or block in any method.
type View interface {
	// Band returns the view of band index (0-based) in bank. Indices outside
	// [0, NumBands-1] panic.
	Band(index int, bank Bank) BandView
	OutputGainDB() float64
	StereoMode() StereoMode
	EditTarget() EditTarget
	Quality() QualityMode
}

// BandSettings is a plain value copy of one band's parameters. It
// implements BandView.
type BandSettings struct {
	On        bool
	Kind      FilterType
	Frequency float64
	Gain      float64
	QFactor   float64
	Steepness Slope
}

var _ BandView = BandSettings{}

func (b BandSettings) Enabled() bool        { return b.On }
func (b BandSettings) Type() FilterType     { return b.Kind }
func (b BandSettings) FrequencyHz() float64 { return b.Frequency }
func (b BandSettings) GainDB() float64      { return b.Gain }
func (b BandSettings) Q() float64           { return b.QFactor }
func (b BandSettings) Slope() Slope         { return b.Steepness }

// SettingsOf copies v into a BandSettings value.
func SettingsOf(v BandView) BandSettings {
	return BandSettings{
		On:        v.Enabled(),
		Kind:      v.Type(),
		Frequency: v.FrequencyHz(),
		Gain:      v.GainDB(),
		QFactor:   v.Q(),
		Steepness: v.Slope(),
	}
}
