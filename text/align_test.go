package text

import (
	"strings"
	"testing"

	"github.com/fulmenhq/strmetrics/editops"
)

func TestAlignDebugString(t *testing.T) {
	a, b := []rune("kitten"), []rune("sitting")
	ops := editops.Reconstruct(a, b)
	codes := editops.ToOpcodes(ops)

	src, dest := AlignDebugString(codes, a, b)
	if src == "" || dest == "" {
		t.Fatal("expected non-empty alignment lines")
	}
	if len(src) != len(dest) {
		t.Errorf("alignment lines should be equal width: %q vs %q", src, dest)
	}

	boxed := RenderAlignmentBoxLines(src, dest)
	if !strings.Contains(boxed, "┌") || !strings.Contains(boxed, "└") {
		t.Errorf("expected boxed output to contain a border, got %q", boxed)
	}
}
