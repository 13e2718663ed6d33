package editops

import (
	"github.com/fulmenhq/strmetrics/obslog"
	"github.com/fulmenhq/strmetrics/telemetry"
)

// debugLog holds the optional logger Hirschberg recursion reports split
// points to. nil by default (no-op), matching telemetry's "off unless a
// caller installs one" contract.
var debugLog *obslog.Logger

// telemetrySystem holds the optional counter-only telemetry system for
// Hirschberg recursion depth. nil disables it (the default).
var telemetrySystem *telemetry.System

// SetDebugLogger installs (or, passed nil, removes) a logger that
// hirschberg will report each split decision to: the recursion depth, the
// chosen column, and its cost. Intended for diagnosing why a large-input
// edit script looks unexpected, not for routine use.
func SetDebugLogger(l *obslog.Logger) {
	debugLog = l
}

// EnableTelemetry turns on a counter recording each Hirschberg split's
// recursion depth, so a caller can see how deep the divide-and-conquer
// recursion on oversized inputs actually runs.
func EnableTelemetry(sys *telemetry.System) {
	telemetrySystem = sys
}

// DisableTelemetry turns Hirschberg recursion-depth telemetry back off.
func DisableTelemetry() {
	telemetrySystem = nil
}

func emitSplitCounter(depth int) {
	if telemetrySystem == nil {
		return
	}
	_ = telemetrySystem.Counter("strmetrics.editops.hirschberg_splits", 1, map[string]string{"depth": depthBucket(depth)})
}

// depthBucket categorizes a recursion depth for call-volume analysis,
// mirroring metric's length-bucket approach.
func depthBucket(depth int) string {
	switch {
	case depth == 0:
		return "0"
	case depth <= 2:
		return "1-2"
	case depth <= 5:
		return "3-5"
	default:
		return "6+"
	}
}
