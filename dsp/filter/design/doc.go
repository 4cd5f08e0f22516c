// Package design provides the RBJ cookbook biquad designers used by the
// equalizer bands: peak, low/high shelf and high/low pass.
//
// Every designer returns a six-value [biquad.Coefficients] normalized so
// that A0 == 1. Input that cannot yield a stable design (non-positive or
// non-finite sample rate, frequency outside (0, Nyquist)) produces
// [biquad.Identity] instead of a partially valid filter.
package design
