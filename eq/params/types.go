package params

import (
	"fmt"
	"strings"
)

// NumBands is the number of bands per bank.
const NumBands = 8

// FilterType selects a band's transfer function.
type FilterType int

const (
	// Peak is a parametric bell boost/cut.
	Peak FilterType = iota
	// LowShelf boosts or cuts below the corner frequency.
	LowShelf
	// HighShelf boosts or cuts above the corner frequency.
	HighShelf
	// HighPass removes content below the cutoff.
	HighPass
	// LowPass removes content above the cutoff.
	LowPass

	filterTypeCount
)

var filterTypeNames = [filterTypeCount]string{"peak", "lowshelf", "highshelf", "highpass", "lowpass"}

// String returns the lower-case name of the filter type.
func (t FilterType) String() string {
	if t.Valid() {
		return filterTypeNames[t]
	}
	return fmt.Sprintf("FilterType(%d)", int(t))
}

// Valid reports whether t is a known filter type.
func (t FilterType) Valid() bool {
	return t >= 0 && t < filterTypeCount
}

// IsCut reports whether t is a high- or low-pass, the types whose steepness
// follows the band slope.
func (t FilterType) IsCut() bool {
	return t == HighPass || t == LowPass
}

// UsesGain reports whether the gain parameter affects t.
func (t FilterType) UsesGain() bool {
	return t == Peak || t == LowShelf || t == HighShelf
}

// ParseFilterType parses a filter type name, case-insensitively. Common
// short forms (bell, hp, lp, ls, hs) are accepted.
func ParseFilterType(s string) (FilterType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "peak", "bell":
		return Peak, nil
	case "lowshelf", "ls":
		return LowShelf, nil
	case "highshelf", "hs":
		return HighShelf, nil
	case "highpass", "hp":
		return HighPass, nil
	case "lowpass", "lp":
		return LowPass, nil
	}
	return 0, fmt.Errorf("params: unknown filter type %q", s)
}

// Slope is the steepness of a high/low-pass band.
type Slope int

const (
	Slope12dB Slope = iota
	Slope24dB
	Slope36dB
	Slope48dB

	slopeCount
)

// Valid reports whether s is a known slope.
func (s Slope) Valid() bool {
	return s >= 0 && s < slopeCount
}

// DBPerOctave returns the nominal steepness: 12, 24, 36 or 48.
func (s Slope) DBPerOctave() int {
	return 12 * s.Sections()
}

// Sections returns the number of cascaded second-order sections that
// realize s: 1 for 12 dB/oct up to 4 for 48 dB/oct. Unknown slopes use 1.
func (s Slope) Sections() int {
	if !s.Valid() {
		return 1
	}
	return int(s) + 1
}

// String returns the slope as "<n>dB".
func (s Slope) String() string {
	if s.Valid() {
		return fmt.Sprintf("%ddB", s.DBPerOctave())
	}
	return fmt.Sprintf("Slope(%d)", int(s))
}

// SlopeFromDBPerOctave maps 12, 24, 36 or 48 to a Slope.
func SlopeFromDBPerOctave(db int) (Slope, error) {
	if db <= 0 || db%12 != 0 || db > 48 {
		return 0, fmt.Errorf("params: unsupported slope %d dB/oct", db)
	}
	return Slope(db/12 - 1), nil
}

// Bank selects one of the two independent band sets.
type Bank int

const (
	BankA Bank = iota
	BankB

	NumBanks
)

// Valid reports whether b is a known bank.
func (b Bank) Valid() bool {
	return b >= 0 && b < NumBanks
}

// String returns "A" or "B".
func (b Bank) String() string {
	switch b {
	case BankA:
		return "A"
	case BankB:
		return "B"
	}
	return fmt.Sprintf("Bank(%d)", int(b))
}

// StereoMode selects how the two banks map onto the channels.
type StereoMode int

const (
	// Stereo runs bank A on every channel.
	Stereo StereoMode = iota
	// MidSide runs bank A on the mid and bank B on the side signal.
	MidSide
	// LeftRight runs bank A on the left and bank B on the right channel.
	LeftRight

	stereoModeCount
)

var stereoModeNames = [stereoModeCount]string{"stereo", "midside", "leftright"}

// Valid reports whether m is a known stereo mode.
func (m StereoMode) Valid() bool {
	return m >= 0 && m < stereoModeCount
}

// String returns the lower-case mode name.
func (m StereoMode) String() string {
	if m.Valid() {
		return stereoModeNames[m]
	}
	return fmt.Sprintf("StereoMode(%d)", int(m))
}

// ParseStereoMode parses a stereo mode name (stereo, midside/ms,
// leftright/lr).
func ParseStereoMode(s string) (StereoMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stereo":
		return Stereo, nil
	case "midside", "ms":
		return MidSide, nil
	case "leftright", "lr":
		return LeftRight, nil
	}
	return 0, fmt.Errorf("params: unknown stereo mode %q", s)
}

// BankLabel returns the display label of bank under mode: A/B in stereo
// mode, M/S in mid-side mode and L/R in left-right mode.
func BankLabel(mode StereoMode, bank Bank) string {
	labels := [stereoModeCount][NumBanks]string{
		Stereo:    {"A", "B"},
		MidSide:   {"M", "S"},
		LeftRight: {"L", "R"},
	}
	if !mode.Valid() || !bank.Valid() {
		return bank.String()
	}
	return labels[mode][bank]
}

// EditTarget selects which bank edits apply to.
type EditTarget int

const (
	EditA EditTarget = iota
	EditB
	// EditLink writes both banks.
	EditLink

	editTargetCount
)

var editTargetNames = [editTargetCount]string{"A", "B", "Link"}

// Valid reports whether e is a known edit target.
func (e EditTarget) Valid() bool {
	return e >= 0 && e < editTargetCount
}

// String returns A, B or Link.
func (e EditTarget) String() string {
	if e.Valid() {
		return editTargetNames[e]
	}
	return fmt.Sprintf("EditTarget(%d)", int(e))
}

// Banks returns the banks written by an edit through e.
func (e EditTarget) Banks() []Bank {
	switch e {
	case EditA:
		return []Bank{BankA}
	case EditB:
		return []Bank{BankB}
	default:
		return []Bank{BankA, BankB}
	}
}

// QualityMode selects standard or oversampled processing.
type QualityMode int

const (
	QualityStandard QualityMode = iota
	// QualityHigh runs the band cascade at twice the host sample rate.
	QualityHigh

	qualityModeCount
)

// Valid reports whether q is a known quality mode.
func (q QualityMode) Valid() bool {
	return q >= 0 && q < qualityModeCount
}

// String returns "standard" or "high".
func (q QualityMode) String() string {
	switch q {
	case QualityStandard:
		return "standard"
	case QualityHigh:
		return "high"
	}
	return fmt.Sprintf("QualityMode(%d)", int(q))
}
