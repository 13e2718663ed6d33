// Package text is the TextPreprocessing ambient layer surrounding the
// engines in distance/*: Unicode normalization (trim, case-fold, accent
// stripping), word/grapheme tokenization, and alignment-debug rendering
// for inspecting an Editops script against its original sequences.
package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeOptions configures Normalize's pipeline.
type NormalizeOptions struct {
	// StripAccents removes diacritical marks via NFD decomposition +
	// combining-mark filtering + NFC recomposition. Default false.
	StripAccents bool

	// Locale selects a locale-specific case-folding rule. "" is simple
	// Unicode case folding; "tr"/"TR" applies Turkish dotted/dotless I
	// mapping.
	Locale string
}

// Normalize trims leading/trailing whitespace, case-folds per opts.Locale,
// and optionally strips accents — the preprocessing pass callers run on raw
// input before handing sequences to a distance engine or fuzz ratio.
func Normalize(value string, opts NormalizeOptions) string {
	result := strings.TrimSpace(value)
	result = Casefold(result, opts.Locale)
	if opts.StripAccents {
		result = StripAccents(result)
	}
	return result
}

// Casefold lowercases value, using Turkish dotted/dotless I rules when
// locale is "tr" or "TR" and simple Unicode lowercasing otherwise.
func Casefold(value string, locale string) string {
	if locale == "tr" || locale == "TR" {
		return turkishCasefold(value)
	}
	return strings.ToLower(value)
}

func turkishCasefold(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		switch r {
		case 'İ':
			b.WriteRune('i')
		case 'I':
			b.WriteRune('ı')
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// StripAccents removes diacritical marks: decompose to NFD, drop
// nonspacing-mark (category Mn) runes, recompose to NFC.
func StripAccents(value string) string {
	decomposed := norm.NFD.String(value)

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if !unicode.Is(unicode.Mn, r) {
			b.WriteRune(r)
		}
	}
	return norm.NFC.String(b.String())
}

// EqualsIgnoreCase normalizes both strings with opts and compares them.
func EqualsIgnoreCase(a, b string, opts NormalizeOptions) bool {
	return Normalize(a, opts) == Normalize(b, opts)
}
