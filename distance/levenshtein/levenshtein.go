// Package levenshtein implements the Levenshtein engine (C4 LevEngine):
// unit-cost and weighted edit distance, dispatching between Hyyrö's 2003
// bit-parallel automaton (for uniform weights and short patterns), the
// indel engine (for the weight regime where replace is never cheaper than
// insert+delete), and a Wagner-Fischer dynamic-programming fallback for the
// fully general weighted case.
package levenshtein

import (
	"github.com/fulmenhq/strmetrics/bitvec"
	"github.com/fulmenhq/strmetrics/distance/indel"
	"github.com/fulmenhq/strmetrics/textprep"
)

// Weights is the {ins, del, rep} cost triple. Uniform() returns {1,1,1}.
type Weights struct {
	Ins, Del, Rep int
}

// Uniform returns the standard unit-cost weight triple.
func Uniform() Weights { return Weights{Ins: 1, Del: 1, Rep: 1} }

func (w Weights) isUniform() bool { return w.Ins == 1 && w.Del == 1 && w.Rep == 1 }

// Distance computes the weighted Levenshtein distance between a and b.
// Dispatch, per spec.md §4.4, after common-prefix/suffix stripping:
//
//  1. Uniform weights: bit-parallel Hyyrö 2003 for patterns of at most 64
//     elements, Wagner-Fischer DP otherwise.
//  2. ins == del and rep == ins: uniform path scaled by weights.Ins.
//  3. ins == del and rep >= ins+del: delegate to the indel engine, scaled
//     by weights.Ins.
//  4. Otherwise, general weighted Wagner-Fischer.
func Distance[E bitvec.Element](a, b []E, weights Weights) int {
	_, _, a, b = textprep.RemoveCommonAffix(a, b)

	if weights.isUniform() {
		return uniformDistance(a, b)
	}
	if weights.Ins == weights.Del {
		if weights.Rep == weights.Ins {
			return weights.Ins * uniformDistance(a, b)
		}
		if weights.Rep >= weights.Ins+weights.Del {
			return weights.Ins * indel.Distance(a, b)
		}
	}
	return weightedDP(a, b, weights)
}

// uniformDistance dispatches between the bit-parallel single-word path and
// the DP fallback for unit-cost Levenshtein.
func uniformDistance[E bitvec.Element](a, b []E) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	// The pattern word is built over the shorter sequence.
	if len(a) > len(b) {
		a, b = b, a
	}
	if len(a) <= 64 {
		return hyyroe2003(a, b)
	}
	return weightedDP(a, b, Uniform())
}

// hyyroe2003 implements the single-word bit-parallel Levenshtein step from
// spec.md §4.4 (matching rapidfuzz-cpp's levenshtein_hyrroe2003): VP starts
// all-ones, VN starts zero, and each step folds in the current pattern-match
// mask to produce D0/HP/HN, updating the running score by the value of the
// mask bit (the last row/column cell) before shifting HP/HN into VP/VN for
// the next column.
func hyyroe2003[E bitvec.Element](a, b []E) int {
	m := len(a)
	pm := bitvec.NewPatternMatchVector(a)

	vp := ^uint64(0)
	vn := uint64(0)
	mask := uint64(1) << uint(m-1)
	score := m

	for _, e := range b {
		pmJ := pm.Get(e)

		d0 := (((pmJ & vp) + vp) ^ vp) | pmJ | vn
		hp := vn | ^(d0 | vp)
		hn := d0 & vp

		if hp&mask != 0 {
			score++
		}
		if hn&mask != 0 {
			score--
		}

		hp = (hp << 1) | 1
		hn = hn << 1
		vp = hn | ^(d0 | hp)
		vn = hp & d0
	}

	return score
}

// weightedDP is the Wagner-Fischer O(len(a)*len(b)) weighted fallback, a
// single-row dynamic-programming sweep with explicit {ins,del,rep} costs.
func weightedDP[E bitvec.Element](a, b []E, weights Weights) int {
	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := 0; i <= len(a); i++ {
		prev[i] = i * weights.Del
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j * weights.Ins
		for i := 1; i <= len(a); i++ {
			del := curr[i-1] + weights.Del
			ins := prev[i] + weights.Ins
			rep := prev[i-1]
			if a[i-1] != b[j-1] {
				rep += weights.Rep
			}
			best := del
			if ins < best {
				best = ins
			}
			if rep < best {
				best = rep
			}
			curr[i] = best
		}
		prev, curr = curr, prev
	}

	return prev[len(a)]
}
