package fifo

import (
	"errors"
	"runtime"
	"sync"
	"testing"
)

func ramp(from, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(from + i)
	}
	return out
}

func TestNewRoundsToPowerOfTwo(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{1, 1},
		{2, 2},
		{3, 4},
		{1000, 1024},
		{DefaultCapacity, DefaultCapacity},
	}

	for _, tt := range tests {
		r, err := New(tt.in)
		if err != nil {
			t.Fatalf("New(%d) error = %v", tt.in, err)
		}
		if r.Capacity() != tt.want {
			t.Fatalf("New(%d).Capacity() = %d, want %d", tt.in, r.Capacity(), tt.want)
		}
	}
}

func TestNewRejectsInvalidCapacity(t *testing.T) {
	for _, c := range []int{0, -4} {
		if _, err := New(c); !errors.Is(err, ErrInvalidCapacity) {
			t.Fatalf("New(%d) error = %v, want ErrInvalidCapacity", c, err)
		}
	}
}

func TestPushPullInOrder(t *testing.T) {
	r, _ := New(8)

	if n := r.Push(ramp(0, 5)); n != 5 {
		t.Fatalf("Push() = %d, want 5", n)
	}
	if r.Ready() != 5 || r.Free() != 3 {
		t.Fatalf("Ready=%d Free=%d, want 5/3", r.Ready(), r.Free())
	}

	dst := make([]float64, 3)
	if n := r.Pull(dst); n != 3 {
		t.Fatalf("Pull() = %d, want 3", n)
	}
	for i, v := range dst {
		if v != float64(i) {
			t.Fatalf("dst[%d] = %v, want %d", i, v, i)
		}
	}
}

func TestWrapAround(t *testing.T) {
	r, _ := New(8)
	dst := make([]float64, 8)

	next := 0
	for round := range 10 {
		n := r.Push(ramp(next, 6))
		if n != 6 {
			t.Fatalf("round %d: Push() = %d, want 6", round, n)
		}

		got := r.Pull(dst)
		if got != 6 {
			t.Fatalf("round %d: Pull() = %d, want 6", round, got)
		}
		for i := range got {
			if dst[i] != float64(next+i) {
				t.Fatalf("round %d: dst[%d] = %v, want %d", round, i, dst[i], next+i)
			}
		}

		next += 6
	}
}

func TestPushDropsWhatDoesNotFit(t *testing.T) {
	r, _ := New(4)

	if n := r.Push(ramp(0, 3)); n != 3 {
		t.Fatalf("Push() = %d, want 3", n)
	}
	if n := r.Push(ramp(3, 3)); n != 1 {
		t.Fatalf("Push() into nearly full ring = %d, want 1", n)
	}
	if n := r.Push(ramp(6, 2)); n != 0 {
		t.Fatalf("Push() into full ring = %d, want 0", n)
	}

	dst := make([]float64, 8)
	n := r.Pull(dst)
	if n != 4 {
		t.Fatalf("Pull() = %d, want 4", n)
	}
	for i := range n {
		if dst[i] != float64(i) {
			t.Fatalf("dst[%d] = %v, want %d", i, dst[i], i)
		}
	}
}

func TestPullNeverExceedsPushed(t *testing.T) {
	r, _ := New(16)
	dst := make([]float64, 32)

	if n := r.Pull(dst); n != 0 {
		t.Fatalf("Pull() on empty ring = %d, want 0", n)
	}

	r.Push(ramp(0, 5))
	if n := r.Pull(dst); n != 5 {
		t.Fatalf("Pull() = %d, want 5", n)
	}
	if n := r.Pull(dst); n != 0 {
		t.Fatalf("second Pull() = %d, want 0", n)
	}
	if n := r.Pull(nil); n != 0 {
		t.Fatalf("Pull(nil) = %d, want 0", n)
	}
}

func TestDiscard(t *testing.T) {
	r, _ := New(8)
	r.Push(ramp(0, 6))

	if n := r.Discard(); n != 6 {
		t.Fatalf("Discard() = %d, want 6", n)
	}
	if r.Ready() != 0 || r.Free() != 8 {
		t.Fatalf("Ready=%d Free=%d after Discard", r.Ready(), r.Free())
	}
}

func TestPushPullZeroAlloc(t *testing.T) {
	r, _ := New(1024)
	src := ramp(0, 256)
	dst := make([]float64, 256)

	allocs := testing.AllocsPerRun(100, func() {
		r.Push(src)
		r.Pull(dst)
	})
	if allocs != 0 {
		t.Fatalf("Push/Pull allocated %v times per run", allocs)
	}
}

// TestConcurrentProducerConsumer streams a counting sequence through a small
// ring. The producer re-pushes whatever did not fit, so the consumer must see
// every value exactly once and in order.
func TestConcurrentProducerConsumer(t *testing.T) {
	const total = 200000

	r, _ := New(256)

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		src := make([]float64, 97)
		next := 0
		for next < total {
			n := min(len(src), total-next)
			for i := range n {
				src[i] = float64(next + i)
			}

			chunk := src[:n]
			for len(chunk) > 0 {
				pushed := r.Push(chunk)
				chunk = chunk[pushed:]
				if pushed == 0 {
					runtime.Gosched()
				}
			}
			next += n
		}
	}()

	dst := make([]float64, 61)
	want := 0
	for want < total {
		n := r.Pull(dst)
		if n == 0 {
			runtime.Gosched()
			continue
		}
		for i := range n {
			if dst[i] != float64(want) {
				t.Fatalf("sample %d = %v, want %d", want, dst[i], want)
			}
			want++
		}
	}

	wg.Wait()

	if r.Ready() != 0 {
		t.Fatalf("Ready() = %d after draining, want 0", r.Ready())
	}
}

func BenchmarkRingPushPull(b *testing.B) {
	r, _ := New(DefaultCapacity)
	src := ramp(0, 512)
	dst := make([]float64, 512)

	b.SetBytes(512 * 8)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		r.Push(src)
		r.Pull(dst)
	}
}
