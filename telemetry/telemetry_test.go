package telemetry

import "testing"

func TestCounterAggregates(t *testing.T) {
	sys, err := NewSystem(nil)
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}

	if err := sys.Counter("ops.calls", 1, map[string]string{"algorithm": "indel"}); err != nil {
		t.Fatalf("Counter: %v", err)
	}
	if err := sys.Counter("ops.calls", 1, map[string]string{"algorithm": "indel"}); err != nil {
		t.Fatalf("Counter: %v", err)
	}
	if err := sys.Counter("ops.calls", 1, map[string]string{"algorithm": "jaro"}); err != nil {
		t.Fatalf("Counter: %v", err)
	}

	snap := sys.Snapshot()
	if snap["ops.calls|algorithm=indel"] != 2 {
		t.Errorf("indel total = %v, want 2", snap["ops.calls|algorithm=indel"])
	}
	if snap["ops.calls|algorithm=jaro"] != 1 {
		t.Errorf("jaro total = %v, want 1", snap["ops.calls|algorithm=jaro"])
	}
}

func TestDisabledSystemDoesNotAggregate(t *testing.T) {
	sys, _ := NewSystem(&Config{Enabled: false})
	_ = sys.Counter("ops.calls", 1, nil)
	if len(sys.Snapshot()) != 0 {
		t.Error("disabled system should not aggregate counters")
	}
}

type recordingEmitter struct{ calls int }

func (r *recordingEmitter) Counter(name string, value float64, tags map[string]string) error {
	r.calls++
	return nil
}

func TestEmitterForwarding(t *testing.T) {
	rec := &recordingEmitter{}
	sys, _ := NewSystem(&Config{Enabled: true, Emitter: rec})
	_ = sys.Counter("ops.calls", 1, nil)
	_ = sys.Counter("ops.calls", 1, nil)
	if rec.calls != 2 {
		t.Errorf("emitter calls = %d, want 2", rec.calls)
	}
}

func TestNilSystemCounterIsNoop(t *testing.T) {
	var sys *System
	if err := sys.Counter("x", 1, nil); err != nil {
		t.Errorf("nil System Counter should be a no-op, got error: %v", err)
	}
}
