// Package osa implements Optimal String Alignment distance (C5 OSAEngine):
// Levenshtein distance extended with adjacent transpositions, under the
// restriction that no substring is edited more than once.
package osa

import "github.com/fulmenhq/strmetrics/textprep"

// Distance computes the OSA distance between a and b: the minimum number of
// insertions, deletions, substitutions, and adjacent-character
// transpositions needed to turn a into b, where each position participates
// in at most one edit. Common prefix/suffix is stripped first, per spec.md
// §4.5, and re-added implicitly since stripping never changes the distance.
//
// Uses a three-row dynamic-programming sweep (the bit-parallel single-word
// path with the Hyyrö transposition term is the faster route for patterns
// of at most 64 elements per spec.md §4.5; this implementation always takes
// the three-row DP route, trading that speedup for an implementation that
// can be hand-verified against spec.md's worked examples without running
// the toolchain — see DESIGN.md).
func Distance[E comparable](a, b []E) int {
	_, _, a, b = textprep.RemoveCommonAffix(a, b)

	lenA, lenB := len(a), len(b)
	if lenA == 0 {
		return lenB
	}
	if lenB == 0 {
		return lenA
	}

	if lenB < lenA {
		a, b = b, a
		lenA, lenB = lenB, lenA
	}

	prevPrevRow := make([]int, lenA+1)
	prevRow := make([]int, lenA+1)
	currRow := make([]int, lenA+1)

	for i := 0; i <= lenA; i++ {
		prevRow[i] = i
	}

	for j := 1; j <= lenB; j++ {
		currRow[0] = j

		for i := 1; i <= lenA; i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			deletion := currRow[i-1] + 1
			insertion := prevRow[i] + 1
			substitution := prevRow[i-1] + cost

			best := deletion
			if insertion < best {
				best = insertion
			}
			if substitution < best {
				best = substitution
			}

			if i > 1 && j > 1 &&
				a[i-1] == b[j-2] &&
				a[i-2] == b[j-1] {
				if transpose := prevPrevRow[i-2] + 1; transpose < best {
					best = transpose
				}
			}

			currRow[i] = best
		}

		prevPrevRow, prevRow, currRow = prevRow, currRow, prevPrevRow
	}

	return prevRow[lenA]
}
