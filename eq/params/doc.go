// Package params holds the equalizer's parameter model: the band and global
// enums, the read-only [View] the render path consumes, and [Store], an
// atomic implementation of it that a UI or automation thread writes.
//
// Every field is a single atomic word. Reads and writes never lock, so the
// render thread can sample the store once per block. Two fields of one band
// may reflect different write instants; the smoothing in the band hides
// that.
//
// Parameters are addressed either through typed setters or by string ID:
//
//	out_gain, stereo_mode, edit_target, quality
//	b<N>_<field>     bank A, N = 1..8
//	b<N>_<field>_b   bank B
//
// where field is one of enabled, type, freq, gain, q, slope.
package params
