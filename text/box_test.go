package text

import (
	"strings"
	"testing"
)

func TestDrawBox(t *testing.T) {
	box := DrawBox("hello", BoxOptions{MinWidth: 10})
	lines := strings.Split(strings.TrimRight(box, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines (top, content, bottom), got %d: %q", len(lines), box)
	}
	if !strings.HasPrefix(lines[0], "┌") {
		t.Errorf("top line should start with ┌, got %q", lines[0])
	}
}
