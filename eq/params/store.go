package params

import (
	"fmt"
	"math"
	"sync/atomic"
)

// floatCell is a float64 stored as its IEEE-754 bits in one atomic word.
type floatCell struct {
	bits atomic.Uint64
}

func (c *floatCell) Load() float64 {
	return math.Float64frombits(c.bits.Load())
}

func (c *floatCell) Store(v float64) {
	c.bits.Store(math.Float64bits(v))
}

type bandCells struct {
	enabled atomic.Bool
	kind    atomic.Int32
	freq    floatCell
	gain    floatCell
	q       floatCell
	slope   atomic.Int32
}

func (b *bandCells) Enabled() bool        { return b.enabled.Load() }
func (b *bandCells) Type() FilterType     { return FilterType(b.kind.Load()) }
func (b *bandCells) FrequencyHz() float64 { return b.freq.Load() }
func (b *bandCells) GainDB() float64      { return b.gain.Load() }
func (b *bandCells) Q() float64           { return b.q.Load() }
func (b *bandCells) Slope() Slope         { return Slope(b.slope.Load()) }

func (b *bandCells) set(s BandSettings) {
	b.enabled.Store(s.On)
	b.kind.Store(int32(clampEnum(int(s.Kind), int(filterTypeCount))))
	b.freq.Store(FrequencyRange.Clamp(s.Frequency))
	b.gain.Store(GainRange.Clamp(s.Gain))
	b.q.Store(QRange.Clamp(s.QFactor))
	b.slope.Store(int32(clampEnum(int(s.Steepness), int(slopeCount))))
}

// Store is a lock-free parameter store. Each field is one atomic word, so
// any number of readers may run concurrently with writers. The zero value
// is not ready for use; call NewStore.
type Store struct {
	bands      [NumBanks][NumBands]bandCells
	outputGain floatCell
	stereoMode atomic.Int32
	editTarget atomic.Int32
	quality    atomic.Int32
}

var _ View = (*Store)(nil)

// NewStore returns a store holding factory defaults: every band at
// DefaultBand in both banks, 0 dB output gain, stereo mode, linked editing
// and standard quality.
func NewStore() *Store {
	s := &Store{}
	for bank := range NumBanks {
		for i := range NumBands {
			s.bands[bank][i].set(DefaultBand(i))
		}
	}

	s.outputGain.Store(OutputGainRange.Default)
	s.stereoMode.Store(int32(Stereo))
	s.editTarget.Store(int32(EditLink))
	s.quality.Store(int32(QualityStandard))

	return s
}

// Band returns a live view of band index in bank. The view reads the store
// on every call; it does not allocate.
func (s *Store) Band(index int, bank Bank) BandView {
	return &s.bands[bank][index]
}

// BandSettings returns a copy of band index in bank.
func (s *Store) BandSettings(index int, bank Bank) BandSettings {
	return SettingsOf(&s.bands[bank][index])
}

// OutputGainDB returns the output gain in dB.
func (s *Store) OutputGainDB() float64 { return s.outputGain.Load() }

// StereoMode returns the channel routing mode.
func (s *Store) StereoMode() StereoMode { return StereoMode(s.stereoMode.Load()) }

// EditTarget returns the bank edits apply to.
func (s *Store) EditTarget() EditTarget { return EditTarget(s.editTarget.Load()) }

// Quality returns the processing quality mode.
func (s *Store) Quality() QualityMode { return QualityMode(s.quality.Load()) }

// SetBand replaces all fields of band index in bank. Values are clamped to
// their ranges.
func (s *Store) SetBand(index int, bank Bank, settings BandSettings) {
	s.bands[bank][index].set(settings)
}

// SetEnabled switches band index in bank on or off.
func (s *Store) SetEnabled(index int, bank Bank, on bool) {
	s.bands[bank][index].enabled.Store(on)
}

// SetType sets the filter type of band index in bank.
func (s *Store) SetType(index int, bank Bank, t FilterType) {
	s.bands[bank][index].kind.Store(int32(clampEnum(int(t), int(filterTypeCount))))
}

// SetFrequency sets the frequency of band index in bank, clamped to
// FrequencyRange.
func (s *Store) SetFrequency(index int, bank Bank, hz float64) {
	s.bands[bank][index].freq.Store(FrequencyRange.Clamp(hz))
}

// SetGain sets the gain of band index in bank, clamped to GainRange.
func (s *Store) SetGain(index int, bank Bank, db float64) {
	s.bands[bank][index].gain.Store(GainRange.Clamp(db))
}

// SetQ sets the quality factor of band index in bank, clamped to QRange.
func (s *Store) SetQ(index int, bank Bank, q float64) {
	s.bands[bank][index].q.Store(QRange.Clamp(q))
}

// SetSlope sets the slope of band index in bank.
func (s *Store) SetSlope(index int, bank Bank, slope Slope) {
	s.bands[bank][index].slope.Store(int32(clampEnum(int(slope), int(slopeCount))))
}

// SetOutputGainDB sets the output gain, clamped to OutputGainRange.
func (s *Store) SetOutputGainDB(db float64) {
	s.outputGain.Store(OutputGainRange.Clamp(db))
}

// SetStereoMode sets the channel routing mode.
func (s *Store) SetStereoMode(m StereoMode) {
	s.stereoMode.Store(int32(clampEnum(int(m), int(stereoModeCount))))
}

// SetEditTarget sets the bank edits apply to.
func (s *Store) SetEditTarget(e EditTarget) {
	s.editTarget.Store(int32(clampEnum(int(e), int(editTargetCount))))
}

// SetQuality sets the processing quality mode.
func (s *Store) SetQuality(q QualityMode) {
	s.quality.Store(int32(clampEnum(int(q), int(qualityModeCount))))
}

// SetBandField writes one field of band index through target: bank A,
// bank B or both. Values use the ID encoding described at Set.
func (s *Store) SetBandField(index int, f Field, value float64, target EditTarget) error {
	if index < 0 || index >= NumBands {
		return fmt.Errorf("%w: band index %d", ErrUnknownParameter, index)
	}

	if value != value {
		return fmt.Errorf("%w: %s is NaN", ErrInvalidValue, f)
	}

	for _, bank := range target.Banks() {
		if err := s.setField(index, bank, f, value); err != nil {
			return err
		}
	}

	return nil
}

// ResetBand enables band index and restores its other fields to
// DefaultBand, in the banks selected by target.
func (s *Store) ResetBand(index int, target EditTarget) {
	settings := DefaultBand(index)
	settings.On = true

	for _, bank := range target.Banks() {
		s.bands[bank][index].set(settings)
	}
}

// Set writes the parameter named id. Booleans are true above 0.5, enums
// take their index (slope 0..3 for 12..48 dB/oct) rounded to the nearest
// integer, and continuous values are clamped to their range.
func (s *Store) Set(id string, value float64) error {
	ref, err := lookup(id)
	if err != nil {
		return err
	}

	if value != value {
		return fmt.Errorf("%w: %s is NaN", ErrInvalidValue, id)
	}

	switch ref.global {
	case "":
		return s.setField(ref.band, ref.bank, ref.field, value)
	case IDOutputGain:
		s.SetOutputGainDB(value)
	case IDStereoMode:
		s.SetStereoMode(StereoMode(roundIndex(value)))
	case IDEditTarget:
		s.SetEditTarget(EditTarget(roundIndex(value)))
	case IDQuality:
		s.SetQuality(QualityMode(roundIndex(value)))
	}

	return nil
}

// Get reads the parameter named id using the encoding of Set.
func (s *Store) Get(id string) (float64, error) {
	ref, err := lookup(id)
	if err != nil {
		return 0, err
	}

	switch ref.global {
	case IDOutputGain:
		return s.OutputGainDB(), nil
	case IDStereoMode:
		return float64(s.StereoMode()), nil
	case IDEditTarget:
		return float64(s.EditTarget()), nil
	case IDQuality:
		return float64(s.Quality()), nil
	}

	b := &s.bands[ref.bank][ref.band]
	switch ref.field {
	case FieldEnabled:
		if b.Enabled() {
			return 1, nil
		}
		return 0, nil
	case FieldType:
		return float64(b.Type()), nil
	case FieldFrequency:
		return b.FrequencyHz(), nil
	case FieldGain:
		return b.GainDB(), nil
	case FieldQ:
		return b.Q(), nil
	default:
		return float64(b.Slope()), nil
	}
}

func (s *Store) setField(index int, bank Bank, f Field, value float64) error {
	switch f {
	case FieldEnabled:
		s.SetEnabled(index, bank, value > 0.5)
	case FieldType:
		s.SetType(index, bank, FilterType(roundIndex(value)))
	case FieldFrequency:
		s.SetFrequency(index, bank, value)
	case FieldGain:
		s.SetGain(index, bank, value)
	case FieldQ:
		s.SetQ(index, bank, value)
	case FieldSlope:
		s.SetSlope(index, bank, Slope(roundIndex(value)))
	default:
		return fmt.Errorf("%w: field %d", ErrUnknownParameter, int(f))
	}

	return nil
}

func roundIndex(v float64) int {
	if v < 0 {
		return 0
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(math.Round(v))
}

func clampEnum(v, count int) int {
	return min(max(v, 0), count-1)
}
