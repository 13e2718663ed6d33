package editops

import (
	"bytes"
	"testing"

	"github.com/fulmenhq/strmetrics/obslog"
	"github.com/fulmenhq/strmetrics/telemetry"
)

func TestReconstructApply(t *testing.T) {
	tests := []struct{ a, b string }{
		{"kitten", "sitting"},
		{"abc", "abdc"},
		{"", "abc"},
		{"abc", ""},
		{"lewenstein", "levenshtein"},
		{"same", "same"},
	}
	for _, tt := range tests {
		a, b := []rune(tt.a), []rune(tt.b)
		ops := Reconstruct(a, b)
		got := Apply(ops, a, b)
		if string(got) != tt.b {
			t.Errorf("Apply(Reconstruct(%q,%q)) = %q, want %q", tt.a, tt.b, string(got), tt.b)
		}
	}
}

func TestReconstructIndelNoReplace(t *testing.T) {
	a, b := []rune("abc"), []rune("axc")
	ops := ReconstructIndel(a, b)
	for _, op := range ops.Ops {
		if op.Kind == Replace {
			t.Fatalf("indel editops must not contain Replace, got %+v", op)
		}
	}
	got := Apply(ops, a, b)
	if string(got) != "axc" {
		t.Errorf("Apply = %q, want axc", string(got))
	}
}

func TestDistanceEqualsOpsLength(t *testing.T) {
	a, b := []rune("kitten"), []rune("sitting")
	ops := Reconstruct(a, b)
	if len(ops.Ops) != 3 {
		t.Errorf("len(ops) = %d, want 3", len(ops.Ops))
	}
}

func TestOpcodesRoundTrip(t *testing.T) {
	a, b := []rune("kitten"), []rune("sitting")
	ops := Reconstruct(a, b)
	codes := ToOpcodes(ops)
	back := ToEditops(codes)

	if len(back.Ops) != len(ops.Ops) {
		t.Fatalf("round trip op count = %d, want %d", len(back.Ops), len(ops.Ops))
	}
	for i := range ops.Ops {
		if back.Ops[i] != ops.Ops[i] {
			t.Errorf("op %d = %+v, want %+v", i, back.Ops[i], ops.Ops[i])
		}
	}

	gotViaCodes := applyOpcodes(codes, a, b)
	if string(gotViaCodes) != "sitting" {
		t.Errorf("opcodes cover mismatch: %q", string(gotViaCodes))
	}
}

// applyOpcodes is a test-local helper reconstructing the destination purely
// from Opcodes spans, to check ToOpcodes covers every position exactly once.
func applyOpcodes(codes Opcodes, a, b []rune) []rune {
	var out []rune
	for _, oc := range codes.Codes {
		switch oc.Kind {
		case Match:
			out = append(out, a[oc.SrcBegin:oc.SrcEnd]...)
		case Delete:
		case Insert:
			out = append(out, b[oc.DestBegin:oc.DestEnd]...)
		case Replace:
			out = append(out, b[oc.DestBegin:oc.DestEnd]...)
		}
	}
	return out
}

func TestInvert(t *testing.T) {
	a, b := []rune("kitten"), []rune("sitting")
	ops := Reconstruct(a, b)
	inv := Invert(ops)

	if inv.SrcLen != ops.DestLen || inv.DestLen != ops.SrcLen {
		t.Fatalf("Invert lengths = (%d,%d), want (%d,%d)", inv.SrcLen, inv.DestLen, ops.DestLen, ops.SrcLen)
	}

	got := Apply(inv, b, a)
	if string(got) != "kitten" {
		t.Errorf("Apply(Invert(ops), b, a) = %q, want kitten", string(got))
	}
}

func TestRemoveSubsequence(t *testing.T) {
	a, b := []rune("kitten"), []rune("sitting")
	ops := Reconstruct(a, b)
	if len(ops.Ops) == 0 {
		t.Fatal("expected non-empty ops")
	}

	subset := Editops{Ops: []EditOp{ops.Ops[0]}, SrcLen: ops.SrcLen, DestLen: ops.DestLen}
	remaining, err := RemoveSubsequence(ops, subset)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(remaining.Ops) != len(ops.Ops)-1 {
		t.Errorf("remaining ops = %d, want %d", len(remaining.Ops), len(ops.Ops)-1)
	}

	bogus := Editops{Ops: []EditOp{{Kind: Replace, SrcPos: 999, DestPos: 999}}, SrcLen: ops.SrcLen, DestLen: ops.DestLen}
	if _, err := RemoveSubsequence(ops, bogus); err == nil {
		t.Error("expected error for non-subsequence argument")
	}
}

func TestSlice(t *testing.T) {
	a, b := []rune("kitten"), []rune("sitting")
	ops := Reconstruct(a, b)

	if _, err := Slice(ops, 0, len(ops.Ops), 0); err == nil {
		t.Error("expected error for zero step")
	}
	if _, err := Slice(ops, -1, len(ops.Ops), 1); err == nil {
		t.Error("expected error for negative start")
	}

	full, err := Slice(ops, 0, len(ops.Ops), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(full.Ops) != len(ops.Ops) {
		t.Errorf("full slice length = %d, want %d", len(full.Ops), len(ops.Ops))
	}
}

func TestWriteReadEditopsRoundTrip(t *testing.T) {
	a, b := []rune("kitten"), []rune("sitting")
	ops := Reconstruct(a, b)

	var buf bytes.Buffer
	if err := WriteEditops(&buf, ops); err != nil {
		t.Fatalf("WriteEditops: %v", err)
	}
	got, err := ReadEditops(&buf)
	if err != nil {
		t.Fatalf("ReadEditops: %v", err)
	}
	if got.SrcLen != ops.SrcLen || got.DestLen != ops.DestLen {
		t.Fatalf("lengths = (%d,%d), want (%d,%d)", got.SrcLen, got.DestLen, ops.SrcLen, ops.DestLen)
	}
	if len(got.Ops) != len(ops.Ops) {
		t.Fatalf("op count = %d, want %d", len(got.Ops), len(ops.Ops))
	}
	for i := range ops.Ops {
		if got.Ops[i] != ops.Ops[i] {
			t.Errorf("op %d = %+v, want %+v", i, got.Ops[i], ops.Ops[i])
		}
	}
}

func TestHirschbergMatchesDirectOnLargerInput(t *testing.T) {
	prevThreshold := hirschbergCellThreshold
	hirschbergCellThreshold = 64
	defer func() { hirschbergCellThreshold = prevThreshold }()

	a := make([]rune, 300)
	b := make([]rune, 305)
	for i := range a {
		a[i] = rune('a' + i%26)
	}
	copy(b, a)
	for i := len(a); i < len(b); i++ {
		b[i] = rune('z' - i%26)
	}
	b[10] = 'Z'

	ops := Reconstruct(a, b)
	got := Apply(ops, a, b)
	if string(got) != string(b) {
		t.Errorf("Apply(Reconstruct(a,b)) did not reproduce b on larger input")
	}
}

func TestSetDebugLoggerExercisesHirschbergSplits(t *testing.T) {
	prevThreshold := hirschbergCellThreshold
	hirschbergCellThreshold = 64
	defer func() { hirschbergCellThreshold = prevThreshold }()

	logger, err := obslog.New(obslog.Config{Service: "editops-test", Encoding: obslog.EncodingConsole})
	if err != nil {
		t.Fatalf("obslog.New: %v", err)
	}
	SetDebugLogger(logger)
	defer SetDebugLogger(nil)

	a := make([]rune, 300)
	b := make([]rune, 305)
	for i := range a {
		a[i] = rune('a' + i%26)
	}
	copy(b, a)
	for i := len(a); i < len(b); i++ {
		b[i] = rune('z' - i%26)
	}
	b[10] = 'Z'

	// Exercises the debugLog.Debugw call inside hirschberg's split loop;
	// asserts only that installing a real logger doesn't change the result.
	ops := Reconstruct(a, b)
	got := Apply(ops, a, b)
	if string(got) != string(b) {
		t.Errorf("Apply(Reconstruct(a,b)) did not reproduce b with debug logger installed")
	}
}

func TestTelemetryCountsHirschbergSplits(t *testing.T) {
	prevThreshold := hirschbergCellThreshold
	hirschbergCellThreshold = 64
	defer func() { hirschbergCellThreshold = prevThreshold }()

	sys, err := telemetry.NewSystem(nil)
	if err != nil {
		t.Fatalf("telemetry.NewSystem: %v", err)
	}
	EnableTelemetry(sys)
	defer DisableTelemetry()

	a := make([]rune, 300)
	b := make([]rune, 305)
	for i := range a {
		a[i] = rune('a' + i%26)
	}
	copy(b, a)
	for i := len(a); i < len(b); i++ {
		b[i] = rune('z' - i%26)
	}
	b[10] = 'Z'

	Reconstruct(a, b)

	snapshot := sys.Snapshot()
	found := false
	for key, count := range snapshot {
		if count > 0 {
			found = true
			t.Logf("recorded split counter: %s = %v", key, count)
		}
	}
	if !found {
		t.Error("expected at least one hirschberg_splits counter to be recorded")
	}
}

func TestSetDebugLoggerNilIsNoop(t *testing.T) {
	prevThreshold := hirschbergCellThreshold
	hirschbergCellThreshold = 64
	defer func() { hirschbergCellThreshold = prevThreshold }()

	SetDebugLogger(nil)
	a, b := []rune("the quick brown fox jumps over the lazy dog, again and again"), []rune("the quick brown fox leaps over the lazy dog, again and again!")
	ops := Reconstruct(a, b)
	if string(Apply(ops, a, b)) != string(b) {
		t.Error("Apply(Reconstruct) mismatch with nil debug logger")
	}
}
