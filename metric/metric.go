// Package metric implements the generic metric frontend (C9
// MetricFrontend): the distance/similarity/normalized_distance/
// normalized_similarity family shared by every distance engine, cutoff
// translation, and cached pattern objects that hold a fixed pattern and its
// block bitmap for repeated queries.
package metric

import (
	"github.com/fulmenhq/strmetrics/bitvec"
	"github.com/fulmenhq/strmetrics/distance/damerau"
	"github.com/fulmenhq/strmetrics/distance/indel"
	"github.com/fulmenhq/strmetrics/distance/levenshtein"
	"github.com/fulmenhq/strmetrics/distance/osa"
)

// Metric wraps an integer-valued edit-distance engine with the four
// callable forms spec.md §4.9 names. DistanceFn computes the raw distance;
// MaxFn computes metric_maximum(len(a), len(b)) for the engine the metric
// wraps, which normalized_distance/normalized_similarity divide by.
type Metric[E any] struct {
	DistanceFn func(a, b []E) int
	MaxFn      func(lenA, lenB int) int
}

// Distance returns DistanceFn(a, b), or scoreCutoff+1 if the true distance
// exceeds scoreCutoff (a caller that only cares whether two sequences are
// "close enough" can use this to let the engine exit early in future
// optimizations without changing the observable contract now).
func (m Metric[E]) Distance(a, b []E, scoreCutoff ...int) int {
	emitCallCounters("distance", len(a), len(b))
	dist := m.DistanceFn(a, b)
	if len(scoreCutoff) > 0 && dist > scoreCutoff[0] {
		emitCounter("strmetrics.metric.cutoff_rejections", 1, map[string]string{"op": "distance"})
		return scoreCutoff[0] + 1
	}
	return dist
}

// Similarity returns max - Distance(a, b), or 0 if that falls below
// scoreCutoff.
func (m Metric[E]) Similarity(a, b []E, scoreCutoff ...int) int {
	emitCallCounters("similarity", len(a), len(b))
	max := m.MaxFn(len(a), len(b))
	sim := max - m.DistanceFn(a, b)
	if len(scoreCutoff) > 0 && sim < scoreCutoff[0] {
		emitCounter("strmetrics.metric.cutoff_rejections", 1, map[string]string{"op": "similarity"})
		return 0
	}
	return sim
}

// NormalizedDistance returns Distance(a,b) / max (0 if max is 0), or 1.0 if
// that exceeds scoreCutoff.
func (m Metric[E]) NormalizedDistance(a, b []E, scoreCutoff ...float64) float64 {
	max := m.MaxFn(len(a), len(b))
	if max == 0 {
		return 0.0
	}
	nd := float64(m.DistanceFn(a, b)) / float64(max)
	if len(scoreCutoff) > 0 && nd > scoreCutoff[0] {
		return 1.0
	}
	return nd
}

// NormalizedSimilarity returns 1 - NormalizedDistance(a,b), or 0.0 if that
// falls below scoreCutoff.
func (m Metric[E]) NormalizedSimilarity(a, b []E, scoreCutoff ...float64) float64 {
	ns := 1.0 - m.NormalizedDistance(a, b)
	if len(scoreCutoff) > 0 && ns < scoreCutoff[0] {
		return 0.0
	}
	return ns
}

// Indel builds the Metric for the LCS/indel engine: metric_maximum is
// len(a)+len(b), the cost of deleting everything from a and inserting
// everything of b.
func Indel[E bitvec.Element]() Metric[E] {
	return Metric[E]{
		DistanceFn: indel.Distance[E],
		MaxFn:      func(lenA, lenB int) int { return lenA + lenB },
	}
}

// Levenshtein builds the Metric for the generalized Levenshtein engine
// under the given weights. metric_maximum is the cheaper of two scripts
// that are valid for any weights: deleting every element of a and
// inserting every element of b (del*lenA + ins*lenB), or replacing the
// overlapping min(lenA, lenB) elements and deleting or inserting the rest.
// For uniform weights this is max(lenA, lenB).
func Levenshtein[E bitvec.Element](weights levenshtein.Weights) Metric[E] {
	return Metric[E]{
		DistanceFn: func(a, b []E) int { return levenshtein.Distance(a, b, weights) },
		MaxFn: func(lenA, lenB int) int {
			indelAll := weights.Del*lenA + weights.Ins*lenB
			var viaReplace int
			if lenA >= lenB {
				viaReplace = weights.Rep*lenB + weights.Del*(lenA-lenB)
			} else {
				viaReplace = weights.Rep*lenA + weights.Ins*(lenB-lenA)
			}
			if viaReplace < indelAll {
				return viaReplace
			}
			return indelAll
		},
	}
}

// OSA builds the Metric for Optimal String Alignment distance.
// metric_maximum matches Levenshtein's uniform case: max(lenA, lenB).
func OSA[E comparable]() Metric[E] {
	return Metric[E]{
		DistanceFn: osa.Distance[E],
		MaxFn:      maxLen,
	}
}

// Damerau builds the Metric for unrestricted Damerau-Levenshtein distance.
// metric_maximum matches Levenshtein's uniform case: max(lenA, lenB).
func Damerau[E comparable]() Metric[E] {
	return Metric[E]{
		DistanceFn: damerau.Distance[E],
		MaxFn:      maxLen,
	}
}

func maxLen(lenA, lenB int) int {
	if lenA > lenB {
		return lenA
	}
	return lenB
}

// CachedPattern holds an owned copy of a fixed pattern together with a
// BlockPatternMatchVector built from it once, exposed through Block.
// Distance does not use that bitmap: it passes the pattern copy to
// levenshtein.Distance, which builds its own bitmap on every call. It is
// immutable after construction: safe for concurrent reads by multiple
// goroutines, as spec.md's concurrency notes require.
type CachedPattern[E bitvec.Element] struct {
	pattern []E
	block   *bitvec.BlockPatternMatchVector[E]
}

// NewCachedPattern copies pattern and builds its block bitmap once.
func NewCachedPattern[E bitvec.Element](pattern []E) *CachedPattern[E] {
	owned := make([]E, len(pattern))
	copy(owned, pattern)
	return &CachedPattern[E]{
		pattern: owned,
		block:   bitvec.NewBlockPatternMatchVector(owned),
	}
}

// Pattern returns the cached pattern sequence. The returned slice must not
// be mutated by callers.
func (c *CachedPattern[E]) Pattern() []E { return c.pattern }

// Block returns the precomputed block bitmap. No engine in this module
// accepts one; indel and levenshtein build their own from the pattern.
func (c *CachedPattern[E]) Block() *bitvec.BlockPatternMatchVector[E] { return c.block }

// Distance computes the Levenshtein distance between the cached pattern and
// candidate, reusing the cached pattern slice as the left operand.
func (c *CachedPattern[E]) Distance(candidate []E, weights levenshtein.Weights) int {
	return levenshtein.Distance(c.pattern, candidate, weights)
}
