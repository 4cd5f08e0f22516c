package params

import (
	"context"
	"errors"
	"time"
)

// Linker keeps the two banks consistent with the edit target. It is driven
// by a periodic tick on a non-real-time goroutine, never by the render path.
//
// On each tick it forces linked editing while the stereo mode is Stereo,
// and while editing is linked it mirrors every bank-A band into bank B.
type Linker struct {
	store *Store
}

// NewLinker returns a Linker over s.
func NewLinker(s *Store) *Linker {
	return &Linker{store: s}
}

// Tick applies the link policy once and returns the number of bank-B bands
// it rewrote.
func (l *Linker) Tick() int {
	s := l.store

	if s.StereoMode() == Stereo && s.EditTarget() != EditLink {
		s.SetEditTarget(EditLink)
	}

	if s.EditTarget() != EditLink {
		return 0
	}

	changed := 0
	for i := range NumBands {
		a := s.BandSettings(i, BankA)
		if a == s.BandSettings(i, BankB) {
			continue
		}

		s.SetBand(i, BankB, a)
		changed++
	}

	return changed
}

// Run calls Tick every interval until ctx is done. It returns nil when the
// context is cancelled and an error for a non-positive interval.
func (l *Linker) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return errors.New("params: linker interval must be > 0")
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			l.Tick()
		}
	}
}
