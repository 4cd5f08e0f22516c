// Package biquad provides the second-order IIR runtime used by the equalizer
// bands.
//
// [Coefficients] is a plain six-value transfer function (b0, b1, b2, a0, a1,
// a2). It is copied by value; there is no shared ownership. [Identity]
// returns the exact pass-through transfer function (1, 0, 0, 1, 0, 0), which
// inactive cascade slots carry.
//
// A [Section] implements Direct Form II Transposed processing for one set of
// coefficients. Block processing dispatches to a scalar kernel selected once
// from the detected CPU features.
//
// Coefficient design (peak, shelf, high/low pass) lives in dsp/filter/design.
package biquad
