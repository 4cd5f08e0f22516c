// Package oversample provides a real-time-safe 2x up/down sampling filter
// pair for running a processing stage at double rate.
//
// An [Oversampler] is built for a fixed channel count and maximum block
// length; every buffer is allocated in [New]. [Oversampler.Up] interpolates
// one channel into an internal double-rate buffer and
// [Oversampler.Down] decimates it back. Both use the same linear-phase
// Kaiser-windowed sinc lowpass, so the round trip delays the signal by
// [Oversampler.Latency] base-rate samples.
package oversample
