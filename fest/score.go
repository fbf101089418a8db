package fest

// Skills is a compatibility vector. Circuits and jugglers taking part in one
// run must all have the same number of dimensions.
type Skills []int

// Score returns the dot product of two skill vectors.
// Dimensions beyond the shorter vector are ignored.
func Score(a, b Skills) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	total := 0
	for i := 0; i < n; i++ {
		total += a[i] * b[i]
	}
	return total
}
