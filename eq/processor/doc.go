// Package processor connects the equalizer engines to a host audio stream.
//
// A [Processor] reads a params.View once per block and applies, in order:
// stereo routing (mid/side encode, left/right split or a single bank on all
// channels), the band cascade, mid/side decode and the smoothed output gain.
// In high quality mode the routing and cascade run at twice the host rate
// inside a 2x oversampler.
//
// The mono mix of every input block is pushed to the pre-analyzer feed and
// the mono mix of every output block to the post-analyzer feed. A consumer
// goroutine drains them with [Processor.PopPreAnalyzerSamples] and
// [Processor.PopPostAnalyzerSamples]. Neither side ever blocks the other.
//
// Process never allocates, locks or returns an error. It panics if called
// before Prepare.
package processor
