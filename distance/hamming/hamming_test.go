package hamming

import (
	"errors"
	"testing"

	"github.com/fulmenhq/strmetrics/xerr"
)

func TestDistance_Basic(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected int
	}{
		{"identical", "karolin", "karolin", 0},
		{"three diffs", "karolin", "kathrin", 3},
		{"two diffs", "1011101", "1001001", 2},
		{"empty both", "", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Distance([]rune(tt.a), []rune(tt.b))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Distance(%q,%q) = %d, want %d", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestDistance_LengthMismatch(t *testing.T) {
	_, err := Distance([]rune("abc"), []rune("ab"))
	if err == nil {
		t.Fatal("expected error for unequal lengths, got nil")
	}
	var env *xerr.Envelope
	if !errors.As(err, &env) {
		t.Fatalf("expected *xerr.Envelope, got %T", err)
	}
	if env.Code != xerr.CodeLengthMismatch {
		t.Errorf("Code = %v, want %v", env.Code, xerr.CodeLengthMismatch)
	}
}

func TestNormalizedDistance(t *testing.T) {
	got, err := NormalizedDistance([]rune("karolin"), []rune("kathrin"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 3.0 / 7.0
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("NormalizedDistance = %v, want %v", got, want)
	}
}
