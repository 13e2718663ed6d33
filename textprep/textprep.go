// Package textprep implements the sequence-reduction helpers the engines
// and composite ratios share: common-affix stripping, whitespace
// tokenisation, deduplication, and set decomposition. Nothing here
// understands edit distance; it only prepares sequences for the engines in
// distance/* and fuzz.
package textprep

import "sort"

// RemoveCommonAffix strips the longest equal prefix and the longest equal
// suffix (computed after the prefix is removed, so the two never overlap)
// from a and b, returning their lengths plus the trimmed slices. Every
// affix-stripping engine path calls this first and later re-adds prefixLen
// when reporting absolute edit positions.
func RemoveCommonAffix[E comparable](a, b []E) (prefixLen, suffixLen int, trimmedA, trimmedB []E) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for prefixLen < n && a[prefixLen] == b[prefixLen] {
		prefixLen++
	}

	aRest, bRest := a[prefixLen:], b[prefixLen:]
	m := len(aRest)
	if len(bRest) < m {
		m = len(bRest)
	}
	for suffixLen < m &&
		aRest[len(aRest)-1-suffixLen] == bRest[len(bRest)-1-suffixLen] {
		suffixLen++
	}

	trimmedA = aRest[:len(aRest)-suffixLen]
	trimmedB = bRest[:len(bRest)-suffixLen]
	return prefixLen, suffixLen, trimmedA, trimmedB
}

// isWordSpace reports whether r belongs to the whitespace class spec.md §4.11
// names for sentence splitting: the ASCII control-space range plus the
// Unicode Zs/line-and-paragraph-separator code points spelled out
// explicitly rather than delegated to unicode.IsSpace, so splitting
// behaviour here does not drift if that table is ever revised upstream.
func isWordSpace(r rune) bool {
	switch {
	case r >= 0x09 && r <= 0x0D:
		return true
	case r >= 0x1C && r <= 0x20:
		return true
	case r == 0x85, r == 0xA0:
		return true
	case r == 0x1680:
		return true
	case r >= 0x2000 && r <= 0x200A:
		return true
	case r == 0x2028, r == 0x2029, r == 0x202F, r == 0x205F, r == 0x3000:
		return true
	default:
		return false
	}
}

// SplittedSentence is an ordered vector of whitespace-delimited tokens.
type SplittedSentence struct {
	Tokens []string
}

// SortedSplit splits s at runs of whitespace (per isWordSpace) and sorts the
// resulting tokens lexicographically.
func SortedSplit(s string) SplittedSentence {
	var tokens []string
	start := -1
	for i, r := range s {
		if isWordSpace(r) {
			if start >= 0 {
				tokens = append(tokens, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, s[start:])
	}
	sort.Strings(tokens)
	return SplittedSentence{Tokens: tokens}
}

// Dedupe removes adjacent duplicate tokens. Callers normally call this after
// SortedSplit, where duplicates are guaranteed to be adjacent.
func (ss SplittedSentence) Dedupe() SplittedSentence {
	if len(ss.Tokens) == 0 {
		return ss
	}
	out := make([]string, 0, len(ss.Tokens))
	out = append(out, ss.Tokens[0])
	for _, tok := range ss.Tokens[1:] {
		if tok != out[len(out)-1] {
			out = append(out, tok)
		}
	}
	return SplittedSentence{Tokens: out}
}

// Join re-serialises the tokens with single-space separators.
func (ss SplittedSentence) Join() string {
	var b []byte
	for i, tok := range ss.Tokens {
		if i > 0 {
			b = append(b, ' ')
		}
		b = append(b, tok...)
	}
	return string(b)
}

// Len reports the token count.
func (ss SplittedSentence) Len() int { return len(ss.Tokens) }

// SetDecomposition computes, for two already-sorted-and-deduped token sets,
// the tokens only in a, only in b, and their intersection — preserving a's
// insertion order for the intersection, per spec.md §4.11.
func SetDecomposition(a, b SplittedSentence) (onlyA, onlyB, intersection SplittedSentence) {
	inB := make(map[string]bool, len(b.Tokens))
	for _, tok := range b.Tokens {
		inB[tok] = true
	}
	inA := make(map[string]bool, len(a.Tokens))
	for _, tok := range a.Tokens {
		inA[tok] = true
	}

	for _, tok := range a.Tokens {
		if inB[tok] {
			intersection.Tokens = append(intersection.Tokens, tok)
		} else {
			onlyA.Tokens = append(onlyA.Tokens, tok)
		}
	}
	for _, tok := range b.Tokens {
		if !inA[tok] {
			onlyB.Tokens = append(onlyB.Tokens, tok)
		}
	}
	return onlyA, onlyB, intersection
}
