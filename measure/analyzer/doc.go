// Package analyzer turns an analyzer feed into a magnitude spectrum for
// display next to the equalizer response curve.
//
// An [Analyzer] runs on the consumer side of a feed. Each call to
// [Analyzer.Update] drains the feed in fixed-size chunks into a history of
// one FFT frame, windows the newest frame, transforms it with algo-fft and
// converts the bin magnitudes to dB. A sinusoid of amplitude A centered on a
// bin reads 20*log10(A) dB. [Analyzer.CurveDB] interpolates the spectrum at
// arbitrary frequencies so it can share an axis with eq.FrequencyAxis.
//
// Analyzers allocate only in New and are not safe for concurrent use.
package analyzer
