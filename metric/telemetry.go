package metric

import "github.com/fulmenhq/strmetrics/telemetry"

// telemetrySystem holds the optional counter-only telemetry system for
// metric operations. nil disables it (the default).
var telemetrySystem *telemetry.System

// EnableTelemetry turns on counter-only telemetry for Metric calls, per
// ADR-0008 Pattern 1: no histograms or tracing in this hot-loop code, just
// call counts and an input-length bucket.
func EnableTelemetry(sys *telemetry.System) {
	telemetrySystem = sys
}

// DisableTelemetry turns telemetry back off.
func DisableTelemetry() {
	telemetrySystem = nil
}

func emitCounter(name string, value float64, tags map[string]string) {
	if telemetrySystem == nil {
		return
	}
	_ = telemetrySystem.Counter(name, value, tags)
}

// lengthBucket categorizes a sequence length for call-volume analysis.
func lengthBucket(n int) string {
	switch {
	case n == 0:
		return "empty"
	case n <= 10:
		return "tiny"
	case n <= 50:
		return "short"
	case n <= 200:
		return "medium"
	case n <= 1000:
		return "long"
	default:
		return "very_long"
	}
}

func emitCallCounters(op string, lenA, lenB int) {
	if telemetrySystem == nil {
		return
	}
	emitCounter("strmetrics.metric."+op+".calls", 1, nil)
	bucket := lengthBucket(lenA)
	if lenB > lenA {
		bucket = lengthBucket(lenB)
	}
	emitCounter("strmetrics.metric.sequence_length", 1, map[string]string{"bucket": bucket, "op": op})
}
