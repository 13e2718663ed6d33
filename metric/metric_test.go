package metric

import (
	"math"
	"testing"

	"github.com/fulmenhq/strmetrics/distance/levenshtein"
	"github.com/fulmenhq/strmetrics/telemetry"
)

func floatEquals(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestIndelMetric(t *testing.T) {
	m := Indel[rune]()
	a, b := []rune("abc"), []rune("abdc")

	if got := m.Distance(a, b); got != 1 {
		t.Errorf("Distance = %d, want 1", got)
	}
	if got := m.Similarity(a, b); got != len(a)+len(b)-1 {
		t.Errorf("Similarity = %d, want %d", got, len(a)+len(b)-1)
	}
	if got := m.NormalizedDistance(a, b); !floatEquals(got, 1.0/float64(len(a)+len(b))) {
		t.Errorf("NormalizedDistance = %v", got)
	}
}

func TestMetricCutoffSentinels(t *testing.T) {
	m := Indel[rune]()
	a, b := []rune("abc"), []rune("xyz")

	if got := m.Distance(a, b, 0); got != 1 {
		t.Errorf("Distance with cutoff 0 = %d, want 1 (distance of 6 capped to cutoff+1)", got)
	}
	if got := m.Similarity(a, b, 100); got != 0 {
		t.Errorf("Similarity below cutoff = %d, want 0", got)
	}
	if got := m.NormalizedDistance(a, b, 0.0); got != 1.0 {
		t.Errorf("NormalizedDistance above cutoff = %v, want 1.0", got)
	}
	if got := m.NormalizedSimilarity(a, b, 1.0); got != 0.0 {
		t.Errorf("NormalizedSimilarity below cutoff = %v, want 0.0", got)
	}
}

func TestLevenshteinMetricWeighted(t *testing.T) {
	m := Levenshtein[rune](levenshtein.Weights{Ins: 1, Del: 1, Rep: 2})
	a, b := []rune("lewenstein"), []rune("levenshtein")
	if got := m.Distance(a, b); got != 3 {
		t.Errorf("Distance = %d, want 3", got)
	}
}

func TestOSADamerauMetricMax(t *testing.T) {
	osaM := OSA[rune]()
	damM := Damerau[rune]()
	a, b := []rune("ca"), []rune("abc")

	if got := osaM.MaxFn(len(a), len(b)); got != 3 {
		t.Errorf("OSA MaxFn = %d, want 3", got)
	}
	if got := damM.Distance(a, b); got != 2 {
		t.Errorf("Damerau distance = %d, want 2", got)
	}
}

func TestNormalizedSimilarityComplementsDistance(t *testing.T) {
	m := Indel[rune]()
	a, b := []rune("kitten"), []rune("sitting")
	nd := m.NormalizedDistance(a, b)
	ns := m.NormalizedSimilarity(a, b)
	if !floatEquals(nd+ns, 1.0) {
		t.Errorf("nd+ns = %v, want 1.0", nd+ns)
	}
}

func TestCachedPattern(t *testing.T) {
	cp := NewCachedPattern([]rune("levenshtein"))
	got := cp.Distance([]rune("lewenstein"), levenshtein.Uniform())
	if got != 2 {
		t.Errorf("cached Distance = %d, want 2", got)
	}
	if cp.Block().NumBlocks() < 1 {
		t.Error("expected at least one block in cached pattern")
	}
}

func TestMaxZeroBothEmpty(t *testing.T) {
	m := Indel[rune]()
	if got := m.NormalizedDistance(nil, nil); got != 0.0 {
		t.Errorf("NormalizedDistance(empty,empty) = %v, want 0.0", got)
	}
}

func TestTelemetryCounters(t *testing.T) {
	sys, err := telemetry.NewSystem(nil)
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}
	EnableTelemetry(sys)
	defer DisableTelemetry()

	m := Indel[rune]()
	m.Distance([]rune("abc"), []rune("abdc"))

	snap := sys.Snapshot()
	if snap["strmetrics.metric.distance.calls"] != 1 {
		t.Errorf("distance call counter = %v, want 1", snap["strmetrics.metric.distance.calls"])
	}
}
