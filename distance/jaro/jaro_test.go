package jaro

import (
	"testing"

	"github.com/antzucaro/matchr"
)

func runeSimilarity(a, b string) float64 {
	return Similarity([]rune(a), []rune(b))
}

func runeWinkler(a, b string) float64 {
	return Winkler([]rune(a), []rune(b), DefaultPrefixWeight)
}

func TestSimilarity_SpecExamples(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"martha/marhta", "MARTHA", "MARHTA", 0.944444},
		{"both empty", "", "", 1.0},
		{"one empty", "", "abc", 0.0},
		{"identical", "hello", "hello", 1.0},
		{"no match", "abc", "xyz", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runeSimilarity(tt.a, tt.b)
			if diff := got - tt.want; diff > 1e-5 || diff < -1e-5 {
				t.Errorf("Similarity(%q,%q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestWinkler_SpecExamples(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"martha/marhta", "MARTHA", "MARHTA", 0.961111},
		{"below jaro threshold unaffected", "abc", "xyz", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runeWinkler(tt.a, tt.b)
			if diff := got - tt.want; diff > 1e-5 || diff < -1e-5 {
				t.Errorf("Winkler(%q,%q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// TestWinkler_AgreesWithMatchr cross-checks this package's Jaro-Winkler
// against matchr's independent implementation of the same classical
// formulation. Disagreement here would point at a bug in the
// match/transposition counting or the prefix bonus, not at a difference in
// algorithm.
func TestWinkler_AgreesWithMatchr(t *testing.T) {
	pairs := [][2]string{
		{"MARTHA", "MARHTA"},
		{"DWAYNE", "DUANE"},
		{"DIXON", "DICKSONX"},
		{"hello", "hello"},
		{"", ""},
		{"abc", "xyz"},
		{"crate", "trace"},
	}
	for _, p := range pairs {
		got := runeWinkler(p[0], p[1])
		want := matchr.JaroWinkler(p[0], p[1], false)
		if diff := got - want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("Winkler(%q,%q) = %v, matchr.JaroWinkler = %v", p[0], p[1], got, want)
		}
	}
}

func TestSimilarity_Symmetry(t *testing.T) {
	pairs := [][2]string{
		{"MARTHA", "MARHTA"},
		{"dwayne", "duane"},
		{"dixon", "dicksonx"},
	}
	for _, p := range pairs {
		if got, want := runeSimilarity(p[0], p[1]), runeSimilarity(p[1], p[0]); got != want {
			t.Errorf("Similarity(%q,%q)=%v != Similarity(%q,%q)=%v", p[0], p[1], got, p[1], p[0], want)
		}
	}
}
