// Package window generates the cosine-sum window functions used to frame
// spectrum analysis: rectangular, Hann, Hamming, Blackman, 4-term
// Blackman-Harris and flat top.
package window
