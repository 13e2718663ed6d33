// Package indel implements the longest-common-subsequence / indel engine
// (C3 LCSEngine): LCS length via Hyyrö's 2004 bit-parallel automaton for
// patterns up to 64 elements, falling back to a Wagner-Fischer style
// dynamic-programming sweep for longer ones, plus the indel distance
// derived from LCS length.
package indel

import (
	"github.com/fulmenhq/strmetrics/bitvec"
	"github.com/fulmenhq/strmetrics/textprep"
)

// LCS returns the length of the longest common subsequence of a and b.
func LCS[E bitvec.Element](a, b []E) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	// The automaton is built over the shorter sequence so the pattern word
	// stays within a single 64-bit word whenever possible.
	if len(a) > len(b) {
		a, b = b, a
	}
	if len(a) <= 64 {
		return lcsBitParallel(a, b)
	}
	return lcsDP(a, b)
}

// lcsBitParallel implements the single-word form of Hyyrö 2004: build a
// pattern-match bitmap over a (width m = len(a) <= 64), then for each
// element of b fold it into the state word S via S = (S+u) | (S-u), where
// u = S & mask(b[j]). The final LCS length is the number of zero bits in S
// among the low m bits, since those are exactly the positions where no
// "mismatch boundary" was crossed.
func lcsBitParallel[E bitvec.Element](a, b []E) int {
	m := len(a)
	pm := bitvec.NewPatternMatchVector(a)

	var lowMask uint64
	if m == 64 {
		lowMask = ^uint64(0)
	} else {
		lowMask = (uint64(1) << uint(m)) - 1
	}

	s := ^uint64(0)
	for _, e := range b {
		matches := pm.Get(e)
		u := s & matches
		s = (s + u) | (s - u)
	}

	return bitvec.Popcount64(^s & lowMask)
}

// lcsDP is the plain O(len(a)*len(b)) dynamic-programming LCS length,
// used once the pattern no longer fits in a single 64-bit word. Only the
// previous row is kept, so space is O(len(a)).
func lcsDP[E bitvec.Element](a, b []E) int {
	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for j := 1; j <= len(b); j++ {
		for i := 1; i <= len(a); i++ {
			if a[i-1] == b[j-1] {
				curr[i] = prev[i-1] + 1
			} else if prev[i] >= curr[i-1] {
				curr[i] = prev[i]
			} else {
				curr[i] = curr[i-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(a)]
}

// Distance returns the indel distance between a and b:
// len(a) + len(b) - 2*LCS(a,b), the edit distance when only insertions and
// deletions are allowed.
func Distance[E bitvec.Element](a, b []E) int {
	_, _, ta, tb := textprep.RemoveCommonAffix(a, b)
	return len(ta) + len(tb) - 2*LCS(ta, tb)
}
