package biquad

// Coefficients holds the transfer function of a single second-order section:
//
//	H(z) = (B0 + B1*z^-1 + B2*z^-2) / (A0 + A1*z^-1 + A2*z^-2)
//
// A0 is carried explicitly. Use Normalized to obtain the A0 == 1 form that
// Section runs on.
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A0, A1, A2 float64 // feedback (denominator)
}

// Identity returns the pass-through transfer function (1, 0, 0, 1, 0, 0).
func Identity() Coefficients {
	return Coefficients{B0: 1, A0: 1}
}

// IsIdentity reports whether c is exactly the identity transfer function.
// A designed filter that is merely close to unity is not identity.
func (c Coefficients) IsIdentity() bool {
	return c == Identity()
}

// Normalized returns c scaled so that A0 == 1. A zero or non-finite A0
// yields Identity.
func (c Coefficients) Normalized() Coefficients {
	if c.A0 == 1 {
		return c
	}

	if c.A0 == 0 || c.A0 != c.A0 {
		return Identity()
	}

	inv := 1 / c.A0

	return Coefficients{
		B0: c.B0 * inv,
		B1: c.B1 * inv,
		B2: c.B2 * inv,
		A0: 1,
		A1: c.A1 * inv,
		A2: c.A2 * inv,
	}
}

// Array returns the coefficients in (b0, b1, b2, a0, a1, a2) order.
func (c Coefficients) Array() [6]float64 {
	return [6]float64{c.B0, c.B1, c.B2, c.A0, c.A1, c.A2}
}

// FromArray builds Coefficients from (b0, b1, b2, a0, a1, a2) order.
func FromArray(a [6]float64) Coefficients {
	return Coefficients{B0: a[0], B1: a[1], B2: a[2], A0: a[3], A1: a[4], A2: a[5]}
}
