package eq

// EncodeMidSide converts the left/right pair in place to mid = (L+R)/2 and
// side = (L-R)/2. It processes the shorter of the two slices.
func EncodeMidSide(left, right []float64) {
	n := min(len(left), len(right))
	left, right = left[:n], right[:n]

	for i := range left {
		l, r := left[i], right[i]
		left[i] = 0.5 * (l + r)
		right[i] = 0.5 * (l - r)
	}
}

// DecodeMidSide converts the mid/side pair in place back to L = M+S and
// R = M-S.
func DecodeMidSide(mid, side []float64) {
	n := min(len(mid), len(side))
	mid, side = mid[:n], side[:n]

	for i := range mid {
		m, s := mid[i], side[i]
		mid[i] = m + s
		side[i] = m - s
	}
}
