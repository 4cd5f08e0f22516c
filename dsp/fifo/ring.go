package fifo

import (
	"errors"
	"fmt"
	"math/bits"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// DefaultCapacity is the ring size used by the equalizer analyzer feeds.
const DefaultCapacity = 1 << 15

// ErrInvalidCapacity is returned by New for non-positive capacities.
var ErrInvalidCapacity = errors.New("fifo: capacity must be > 0")

// Ring is a fixed-capacity SPSC ring of float64 samples.
//
// The write and read cursors count samples ever pushed and pulled; they only
// grow, so "full" and "empty" never alias. Each cursor lives on its own
// cache line to keep the two threads from false sharing.
type Ring struct {
	buf  []float64
	mask uint64

	_     cpu.CacheLinePad
	write atomic.Uint64 // owned by the producer
	_     cpu.CacheLinePad
	read  atomic.Uint64 // owned by the consumer
	_     cpu.CacheLinePad
}

// New allocates a ring holding at least capacity samples. The capacity is
// rounded up to the next power of two.
func New(capacity int) (*Ring, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}

	size := uint64(1) << bits.Len64(uint64(capacity-1))

	return &Ring{
		buf:  make([]float64, size),
		mask: size - 1,
	}, nil
}

// Capacity returns the number of samples the ring can hold.
func (r *Ring) Capacity() int {
	return len(r.buf)
}

// Ready returns the number of samples available to the consumer.
func (r *Ring) Ready() int {
	return int(r.write.Load() - r.read.Load())
}

// Free returns the number of samples the producer can push without dropping.
func (r *Ring) Free() int {
	return len(r.buf) - r.Ready()
}

// Push copies as many samples as fit into the ring and returns that count.
// The remainder is dropped. Producer side only.
func (r *Ring) Push(samples []float64) int {
	w := r.write.Load()
	free := uint64(len(r.buf)) - (w - r.read.Load())

	n := min(uint64(len(samples)), free)
	if n == 0 {
		return 0
	}

	start := w & r.mask
	first := min(n, uint64(len(r.buf))-start)
	copy(r.buf[start:start+first], samples[:first])
	copy(r.buf[:n-first], samples[first:n])

	r.write.Store(w + n)

	return int(n)
}

// Pull copies up to len(dst) queued samples into dst in push order and
// returns the count, possibly 0. Consumer side only.
func (r *Ring) Pull(dst []float64) int {
	rd := r.read.Load()
	ready := r.write.Load() - rd

	n := min(uint64(len(dst)), ready)
	if n == 0 {
		return 0
	}

	start := rd & r.mask
	first := min(n, uint64(len(r.buf))-start)
	copy(dst[:first], r.buf[start:start+first])
	copy(dst[first:n], r.buf[:n-first])

	r.read.Store(rd + n)

	return int(n)
}

// Discard drops every queued sample and returns how many were dropped.
// Consumer side only.
func (r *Ring) Discard() int {
	rd := r.read.Load()
	w := r.write.Load()
	r.read.Store(w)

	return int(w - rd)
}
