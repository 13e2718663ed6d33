// Package damerau implements the Damerau-Levenshtein distance (C6
// DamerauEngine): edit distance allowing insertion, deletion, substitution,
// and transposition of any two characters, not just adjacent ones.
package damerau

import "github.com/fulmenhq/strmetrics/textprep"

// Distance computes the unrestricted Damerau-Levenshtein distance between a
// and b using the Zhao-Sahni linear-space recurrence: three rolling integer
// rows (R, R1, FR) plus a last-seen-row index per element, rather than a
// full O(n*m) matrix. Unit costs only — per spec.md's Design Notes, a
// weighted variant is rejected by construction by not exposing a weights
// parameter at all, rather than silently computing unit cost for
// non-uniform weights.
func Distance[E comparable](a, b []E) int {
	_, _, a, b := textprep.RemoveCommonAffix(a, b)

	lenA, lenB := len(a), len(b)
	if lenA == 0 {
		return lenB
	}
	if lenB == 0 {
		return lenA
	}

	maxVal := lenA + lenB + 1
	lastRowID := make(map[E]int, lenA)

	// 1-based indexing throughout, following the Zhao-Sahni recurrence as
	// given in spec.md §4.6: FR holds saved diagonal values for
	// transposition detection, R1 is the previous row, R the current row.
	FR := make([]int, lenB+3)
	R1 := make([]int, lenB+3)
	R := make([]int, lenB+3)

	for i := range FR {
		FR[i] = maxVal
		R1[i] = maxVal
	}

	for j := 0; j <= lenB; j++ {
		R[j] = j
	}

	for i := 1; i <= lenA; i++ {
		R, R1 = R1, R

		lastColID := -1
		lastI2L1 := R[0]
		R[0] = i
		T := maxVal

		for j := 1; j <= lenB; j++ {
			charA := a[i-1]
			charB := b[j-1]

			cost := 1
			if charA == charB {
				cost = 0
			}

			diag := R1[j-1] + cost
			left := R[j-1] + 1
			up := R1[j] + 1
			temp := min(diag, min(left, up))

			if charA == charB {
				lastColID = j
				if j >= 2 {
					FR[j] = R1[j-2]
				}
				T = lastI2L1
			} else {
				k, exists := lastRowID[charB]
				if !exists {
					k = -1
				}
				l := lastColID

				if (j-l) == 1 && k >= 0 {
					temp = min(temp, FR[j]+(i-k))
				} else if (i-k) == 1 && l >= 0 {
					temp = min(temp, T+(j-l))
				}
			}

			lastI2L1 = R[j]
			R[j] = temp
		}

		lastRowID[a[i-1]] = i
	}

	return R[lenB]
}
