// Package hamming implements Hamming distance: the count of differing
// positions between two equal-length sequences.
package hamming

import "github.com/fulmenhq/strmetrics/xerr"

// Distance counts the positions where a and b differ. Returns
// xerr.CodeLengthMismatch if the sequences have unequal length.
func Distance[E comparable](a, b []E) (int, error) {
	if len(a) != len(b) {
		return 0, xerr.Newf(xerr.CodeLengthMismatch,
			"hamming distance requires equal-length sequences, got %d and %d", len(a), len(b))
	}

	count := 0
	for i := range a {
		if a[i] != b[i] {
			count++
		}
	}
	return count, nil
}

// NormalizedDistance returns Distance(a,b) divided by len(a). Per spec.md's
// Design Notes, this intentionally divides by len(a) rather than
// max(len(a),len(b)) — both are equal once the length check passes, but the
// choice of which length to divide by is called out because the behaviour
// it's preserving could otherwise look like a bug in a generalized metric
// frontend that defaults to max(len1,len2).
func NormalizedDistance[E comparable](a, b []E) (float64, error) {
	dist, err := Distance(a, b)
	if err != nil {
		return 0, err
	}
	if len(a) == 0 {
		return 0.0, nil
	}
	return float64(dist) / float64(len(a)), nil
}
