package text

import (
	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/clipperhouse/uax29/v2/words"
)

// TokenizeWords splits s into Unicode word-boundary segments (UAX #29),
// the richer counterpart to textprep's whitespace-only SortedSplit: it
// understands punctuation, scripts without spaces, and emoji clusters
// rather than only ASCII/Unicode-space runs.
func TokenizeWords(s string) []string {
	var tokens []string
	seg := words.NewSegmenter([]byte(s))
	for seg.Next() {
		tokens = append(tokens, string(seg.Value()))
	}
	return tokens
}

// TokenizeGraphemes splits s into extended grapheme clusters (UAX #29), so
// combining marks and multi-rune emoji stay one unit. AlignDebugString does
// not use it; that renders one column per rune.
func TokenizeGraphemes(s string) []string {
	var clusters []string
	seg := graphemes.NewSegmenter([]byte(s))
	for seg.Next() {
		clusters = append(clusters, string(seg.Value()))
	}
	return clusters
}
