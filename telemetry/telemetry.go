// Package telemetry is a trimmed, counter-only metrics system. Its users in
// this module are metric (call counts, input-length buckets, cutoff
// rejections) and editops (Hirschberg split depth), following ADR-0008 Pattern 1
// (counter-only — no histograms or tracing spans in hot-loop code).
package telemetry

import "sync"

// MetricType distinguishes the one metric shape this package emits from
// the richer taxonomy a full observability stack would carry.
type MetricType string

// TypeCounter is the only MetricType this trimmed system emits.
const TypeCounter MetricType = "counter"

// MetricsEmitter is the pluggable sink a System forwards counter events to.
// Nil Emitter is valid: events are still aggregated in-memory and visible
// through Snapshot, just not forwarded anywhere external.
type MetricsEmitter interface {
	Counter(name string, value float64, tags map[string]string) error
}

// MetricsEvent is one counter increment, timestamped for an external sink.
type MetricsEvent struct {
	Timestamp string
	Name      string
	Type      MetricType
	Value     float64
	Tags      map[string]string
}

// Config holds telemetry-system configuration. Emitter is nil by default:
// counters are aggregated in-memory and readable via System.Snapshot.
type Config struct {
	Enabled bool
	Emitter MetricsEmitter
}

// DefaultConfig enables in-memory aggregation with no external emitter.
func DefaultConfig() *Config {
	return &Config{Enabled: true}
}

// System aggregates counter metrics in-memory, forwarding each increment to
// Config.Emitter if one is set. All methods are safe for concurrent use.
type System struct {
	config *Config
	mu     sync.Mutex
	totals map[string]float64
}

// NewSystem builds a System from config (DefaultConfig() if nil).
func NewSystem(config *Config) (*System, error) {
	if config == nil {
		config = DefaultConfig()
	}
	return &System{config: config, totals: make(map[string]float64)}, nil
}

// Counter increments the named counter by value and forwards the event to
// the configured emitter, if any and if telemetry is enabled. Emission
// errors from the configured emitter are returned; aggregation itself never
// fails.
func (s *System) Counter(name string, value float64, tags map[string]string) error {
	if s == nil || !s.config.Enabled {
		return nil
	}

	s.mu.Lock()
	s.totals[aggregateKey(name, tags)] += value
	s.mu.Unlock()

	if s.config.Emitter == nil {
		return nil
	}
	return s.config.Emitter.Counter(name, value, tags)
}

// Snapshot returns the current aggregate totals, keyed by the same
// name+tags combination Counter aggregates under. Intended for tests and
// diagnostic inspection, not as a stable wire format.
func (s *System) Snapshot() map[string]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]float64, len(s.totals))
	for k, v := range s.totals {
		out[k] = v
	}
	return out
}

func aggregateKey(name string, tags map[string]string) string {
	key := name
	for _, k := range sortedKeys(tags) {
		key += "|" + k + "=" + tags[k]
	}
	return key
}

func sortedKeys(tags map[string]string) []string {
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	// Small maps (a handful of tag dimensions per call site): insertion
	// sort keeps this dependency-free without reaching for sort.Strings
	// over what's usually 1-3 elements.
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}
