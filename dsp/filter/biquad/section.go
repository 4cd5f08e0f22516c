package biquad

// Section is a single biquad filter with coefficients and internal state.
// It implements Direct Form II Transposed processing:
//
//	y  = b0*x + d0
//	d0 = b1*x - a1*y + d1
//	d1 = b2*x - a2*y
//
// The zero value is an identity section with cleared state.
type Section struct {
	c      Coefficients // normalized, A0 == 1
	set    bool
	d0, d1 float64
}

// NewSection returns a Section initialized with the given coefficients
// and zero state.
func NewSection(c Coefficients) *Section {
	s := &Section{}
	s.SetCoefficients(c)

	return s
}

// SetCoefficients replaces the transfer function. The delay line is kept so
// that coefficient updates between blocks do not click.
func (s *Section) SetCoefficients(c Coefficients) {
	s.c = c.Normalized()
	s.set = true
}

// Coefficients returns the normalized coefficients the section runs on.
func (s *Section) Coefficients() Coefficients {
	if !s.set {
		return Identity()
	}

	return s.c
}

// ProcessSample filters one input sample and returns the output.
func (s *Section) ProcessSample(x float64) float64 {
	if !s.set {
		return x
	}

	c := &s.c
	y := c.B0*x + s.d0
	s.d0 = c.B1*x - c.A1*y + s.d1
	s.d1 = c.B2*x - c.A2*y

	return y
}

// ProcessBlock filters buf in place. Zero-alloc.
func (s *Section) ProcessBlock(buf []float64) {
	if !s.set || len(buf) == 0 {
		return
	}

	s.d0, s.d1 = blockKernel()(&s.c, s.d0, s.d1, buf)
}

// Reset clears the delay line to zero.
func (s *Section) Reset() {
	s.d0 = 0
	s.d1 = 0
}

// State returns the current delay-line state [d0, d1].
func (s *Section) State() [2]float64 {
	return [2]float64{s.d0, s.d1}
}

// SetState restores a previously saved delay-line state.
func (s *Section) SetState(state [2]float64) {
	s.d0 = state[0]
	s.d1 = state[1]
}
