package processor

import (
	"errors"
	"fmt"

	"github.com/go-audio/audio"
)

// ErrChannelMismatch is returned when a buffer has more channels than the
// processor was prepared for.
var ErrChannelMismatch = errors.New("processor: channel count mismatch")

// ProcessFloatBuffer filters an interleaved go-audio buffer in place. It
// deinterleaves into preallocated planar scratch, so it does not allocate.
func (p *Processor) ProcessFloatBuffer(buf *audio.FloatBuffer) error {
	if buf == nil || buf.Format == nil {
		return errors.New("processor: buffer without format")
	}

	if !p.prepared {
		return errors.New("processor: ProcessFloatBuffer called before Prepare")
	}

	numCh := buf.Format.NumChannels
	if numCh <= 0 || numCh > p.spec.NumChannels {
		return fmt.Errorf("%w: buffer has %d, prepared for %d", ErrChannelMismatch, numCh, p.spec.NumChannels)
	}

	frames := buf.NumFrames()
	block := p.spec.MaxBlockSize
	planar := p.planar[:numCh]

	for start := 0; start < frames; start += block {
		n := min(block, frames-start)
		data := buf.Data[start*numCh : (start+n)*numCh]

		chunk := p.chunk[:numCh]
		for ch := range planar {
			dst := planar[ch][:n]
			for i := range dst {
				dst[i] = data[i*numCh+ch]
			}
			chunk[ch] = dst
		}

		p.processBlock(chunk)

		for ch, src := range chunk {
			for i, v := range src {
				data[i*numCh+ch] = v
			}
		}
	}

	return nil
}
