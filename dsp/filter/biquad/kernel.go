package biquad

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// kernelFn filters buf in place with normalized coefficients c and returns
// the updated delay line.
type kernelFn func(c *Coefficients, d0, d1 float64, buf []float64) (float64, float64)

var (
	kernelImpl     kernelFn
	kernelName     string
	kernelInitOnce sync.Once
)

func blockKernel() kernelFn {
	kernelInitOnce.Do(initKernel)
	return kernelImpl
}

// initKernel chooses an unroll depth from the CPU features: 4 on AVX2 and
// NEON cores, 2 elsewhere, none when generic code is forced. This is not a
// vector backend. Every output depends on the previous one, so all three
// loops run the same scalar recursion in the same order and produce
// bit-identical output.
func initKernel() {
	features := cpu.DetectFeatures()

	switch {
	case features.ForceGeneric:
		kernelImpl, kernelName = processScalar, "generic"
	case cpu.Supports(features, cpu.SIMDAVX2), cpu.Supports(features, cpu.SIMDNEON):
		kernelImpl, kernelName = processUnrolled4, "unrolled4"
	default:
		kernelImpl, kernelName = processUnrolled2, "unrolled2"
	}
}

func processScalar(c *Coefficients, d0, d1 float64, buf []float64) (float64, float64) {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2

	for i, x := range buf {
		y := b0*x + d0
		d0 = b1*x - a1*y + d1
		d1 = b2*x - a2*y
		buf[i] = y
	}

	return d0, d1
}

func processUnrolled2(c *Coefficients, d0, d1 float64, buf []float64) (float64, float64) {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2

	i := 0

	n := len(buf)
	for ; i+1 < n; i += 2 {
		x0 := buf[i]
		y0 := b0*x0 + d0
		d0n := b1*x0 - a1*y0 + d1
		d1n := b2*x0 - a2*y0

		x1 := buf[i+1]
		y1 := b0*x1 + d0n
		d0 = b1*x1 - a1*y1 + d1n
		d1 = b2*x1 - a2*y1

		buf[i] = y0
		buf[i+1] = y1
	}

	if i < n {
		x := buf[i]
		y := b0*x + d0
		d0 = b1*x - a1*y + d1
		d1 = b2*x - a2*y
		buf[i] = y
	}

	return d0, d1
}

func processUnrolled4(c *Coefficients, d0, d1 float64, buf []float64) (float64, float64) {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2

	i := 0

	n := len(buf)
	for ; i+3 < n; i += 4 {
		x0, x1, x2, x3 := buf[i], buf[i+1], buf[i+2], buf[i+3]

		y0 := b0*x0 + d0
		d0 = b1*x0 - a1*y0 + d1
		d1 = b2*x0 - a2*y0

		y1 := b0*x1 + d0
		d0 = b1*x1 - a1*y1 + d1
		d1 = b2*x1 - a2*y1

		y2 := b0*x2 + d0
		d0 = b1*x2 - a1*y2 + d1
		d1 = b2*x2 - a2*y2

		y3 := b0*x3 + d0
		d0 = b1*x3 - a1*y3 + d1
		d1 = b2*x3 - a2*y3

		buf[i], buf[i+1], buf[i+2], buf[i+3] = y0, y1, y2, y3
	}

	for ; i < n; i++ {
		x := buf[i]
		y := b0*x + d0
		d0 = b1*x - a1*y + d1
		d1 = b2*x - a2*y
		buf[i] = y
	}

	return d0, d1
}
