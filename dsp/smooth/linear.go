package smooth

import "math"

// Linear is a linear ramp towards a target value. The zero value holds 0
// and jumps to new targets immediately until Reset configures a ramp time.
type Linear struct {
	current   float64
	target    float64
	step      float64
	countdown int
	steps     int
}

// NewLinear returns a ramp of rampSeconds at sampleRate holding initial.
func NewLinear(sampleRate, rampSeconds, initial float64) *Linear {
	l := &Linear{}
	l.Reset(sampleRate, rampSeconds)
	l.SetCurrentAndTarget(initial)

	return l
}

// Reset sets the ramp length to rampSeconds at sampleRate and stops any
// ramp in progress at its target.
func (l *Linear) Reset(sampleRate, rampSeconds float64) {
	steps := 0
	if sampleRate > 0 && rampSeconds > 0 {
		steps = int(math.Floor(rampSeconds * sampleRate))
	}

	l.steps = steps
	l.SetCurrentAndTarget(l.target)
}

// RampLength returns the number of samples a full ramp takes.
func (l *Linear) RampLength() int {
	return l.steps
}

// SetCurrentAndTarget jumps to value without ramping.
func (l *Linear) SetCurrentAndTarget(value float64) {
	l.current = value
	l.target = value
	l.step = 0
	l.countdown = 0
}

// SetTarget starts a ramp from the current value towards value. Setting the
// target a ramp is already heading to is a no-op.
func (l *Linear) SetTarget(value float64) {
	if value == l.target {
		return
	}

	if l.steps <= 0 {
		l.SetCurrentAndTarget(value)
		return
	}

	l.target = value
	l.countdown = l.steps
	l.step = (l.target - l.current) / float64(l.countdown)
}

// Next advances the ramp by one sample and returns the new value.
func (l *Linear) Next() float64 {
	if l.countdown <= 0 {
		return l.target
	}

	l.countdown--
	if l.countdown == 0 {
		l.current = l.target
	} else {
		l.current += l.step
	}

	return l.current
}

// Skip advances the ramp by n samples and returns the new value.
func (l *Linear) Skip(n int) float64 {
	if n <= 0 {
		return l.current
	}

	if n >= l.countdown {
		l.SetCurrentAndTarget(l.target)
		return l.target
	}

	l.current += l.step * float64(n)
	l.countdown -= n

	return l.current
}

// Current returns the value without advancing.
func (l *Linear) Current() float64 {
	return l.current
}

// Target returns the value the ramp is heading to.
func (l *Linear) Target() float64 {
	return l.target
}

// IsSmoothing reports whether a ramp is in progress.
func (l *Linear) IsSmoothing() bool {
	return l.countdown > 0
}

// Remaining returns the number of samples left in the current ramp.
func (l *Linear) Remaining() int {
	return l.countdown
}
