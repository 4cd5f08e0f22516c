package biquad

import (
	"sync"
	"testing"

	"github.com/cwbudde/algo-vecmath/cpu"
)

func resetKernelDispatchForTest() {
	kernelImpl = nil
	kernelName = ""
	kernelInitOnce = sync.Once{}
}

func TestKernelDispatch(t *testing.T) {
	tests := []struct {
		name     string
		features cpu.Features
		wantImpl string
	}{
		{
			name:     "generic-forced",
			features: cpu.Features{ForceGeneric: true, HasAVX2: true, Architecture: "amd64"},
			wantImpl: "generic",
		},
		{
			name:     "sse2",
			features: cpu.Features{HasSSE2: true, Architecture: "amd64"},
			wantImpl: "unrolled2",
		},
		{
			name:     "avx2",
			features: cpu.Features{HasSSE2: true, HasAVX2: true, Architecture: "amd64"},
			wantImpl: "unrolled4",
		},
		{
			name:     "neon",
			features: cpu.Features{HasNEON: true, Architecture: "arm64"},
			wantImpl: "unrolled4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu.SetForcedFeatures(tt.features)

			defer func() {
				cpu.ResetDetection()
				resetKernelDispatchForTest()
			}()

			resetKernelDispatchForTest()

			input := []float64{1, 0.5, -0.3, 0.7, 0, -1, 0.2, 0.8, -0.1, 0.3, 0.9}

			ref := make([]float64, len(input))
			sRef := NewSection(smoother())
			for i, x := range input {
				ref[i] = sRef.ProcessSample(x)
			}

			got := append([]float64(nil), input...)
			NewSection(smoother()).ProcessBlock(got)

			if kernelName != tt.wantImpl {
				t.Fatalf("kernel = %q, want %q", kernelName, tt.wantImpl)
			}

			for i := range got {
				if got[i] != ref[i] {
					t.Fatalf("sample %d mismatch: got %.17g, want %.17g", i, got[i], ref[i])
				}
			}
		})
	}
}

func TestKernelsBitIdentical(t *testing.T) {
	c := smoother()
	kernels := map[string]kernelFn{
		"generic":   processScalar,
		"unrolled2": processUnrolled2,
		"unrolled4": processUnrolled4,
	}

	// Odd lengths exercise the remainder loops.
	for _, n := range []int{1, 2, 3, 5, 7, 64, 1023} {
		input := make([]float64, n)
		for i := range input {
			input[i] = float64((i*7919)%201-100) / 100
		}

		want := append([]float64(nil), input...)
		wd0, wd1 := processScalar(&c, 0.25, -0.125, want)

		for name, kernel := range kernels {
			got := append([]float64(nil), input...)
			d0, d1 := kernel(&c, 0.25, -0.125, got)

			if d0 != wd0 || d1 != wd1 {
				t.Fatalf("%s n=%d: state=(%v, %v), want (%v, %v)", name, n, d0, d1, wd0, wd1)
			}
			for i := range got {
				if got[i] != want[i] {
					t.Fatalf("%s n=%d sample %d: got %.17g, want %.17g", name, n, i, got[i], want[i])
				}
			}
		}
	}
}
