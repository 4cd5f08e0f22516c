package core

import (
	"errors"
	"fmt"
)

// ErrInvalidSpec is returned when a ProcessSpec cannot be used to prepare a
// processor.
var ErrInvalidSpec = errors.New("core: invalid process spec")

// ProcessSpec describes the stream a processor is prepared for. It is the
// prepare-time counterpart of the per-block buffers handed to Process.
type ProcessSpec struct {
	SampleRate   float64
	MaxBlockSize int
	NumChannels  int
}

// DefaultProcessSpec returns a stereo 48 kHz spec with 512-sample blocks.
func DefaultProcessSpec() ProcessSpec {
	return ProcessSpec{
		SampleRate:   48000,
		MaxBlockSize: 512,
		NumChannels:  2,
	}
}

// Validate reports whether the spec describes a usable stream.
func (s ProcessSpec) Validate() error {
	switch {
	case !(s.SampleRate > 0):
		return fmt.Errorf("%w: sample rate must be > 0: %v", ErrInvalidSpec, s.SampleRate)
	case s.MaxBlockSize <= 0:
		return fmt.Errorf("%w: max block size must be > 0: %d", ErrInvalidSpec, s.MaxBlockSize)
	case s.NumChannels <= 0:
		return fmt.Errorf("%w: channel count must be > 0: %d", ErrInvalidSpec, s.NumChannels)
	}

	return nil
}

// Scaled returns a copy of s running factor times faster, with the block
// size scaled by the same factor. Used for oversampled processing.
func (s ProcessSpec) Scaled(factor int) ProcessSpec {
	s.SampleRate *= float64(factor)
	s.MaxBlockSize *= factor

	return s
}
