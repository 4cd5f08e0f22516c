// Package smooth provides parameter ramps for click-free control changes.
//
// [Linear] moves from its current value to a target in a fixed number of
// equal steps. Callers on the block-processing path advance it with
// [Linear.Skip] by the block length, so the audible ramp time does not
// depend on how the host slices the stream.
package smooth
