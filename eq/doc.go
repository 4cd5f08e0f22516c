// Package eq implements the filter cascade of an eight-band parametric
// equalizer.
//
// A [Band] owns up to four cascaded biquad sections. Its frequency, gain and
// Q are smoothed with linear ramps that advance by the processed block
// length, so the audible ramp time does not depend on the host block size.
// High- and low-pass bands cascade one to four identical sections according
// to their slope; every other type runs exactly one. Unused sections carry
// the exact identity transfer function.
//
// An [Engine] runs the eight bands of one bank in series, in band order, and
// can solo a single band without stopping coefficient updates for the rest.
//
// [Capture] and [State.MagnitudeDB] predict the steady-state magnitude of a
// bank from a parameter snapshot with the closed-form biquad response. The
// prediction matches what the render path produces for a settled sinusoid.
//
// [EncodeMidSide] and [DecodeMidSide] convert between left/right and
// mid/side channel pairs in place.
package eq
