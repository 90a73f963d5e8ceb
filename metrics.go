package chatauth

import (
	"sync/atomic"
)

// MetricID identifies one in-process counter.
type MetricID uint16

const (
	// MetricLoginSuccess counts accepted sign-in attempts.
	MetricLoginSuccess MetricID = iota
	// MetricLoginRejected counts sign-in attempts the service denied.
	MetricLoginRejected
	// MetricLoginTransportError counts sign-in attempts lost to transport.
	MetricLoginTransportError
	// MetricRegisterSuccess counts accepted sign-up attempts.
	MetricRegisterSuccess
	// MetricRegisterRejected counts sign-up attempts the service denied.
	MetricRegisterRejected
	// MetricRegisterTransportError counts sign-up attempts lost to transport.
	MetricRegisterTransportError
	// MetricPasswordMismatch counts sign-ups stopped by the local
	// confirm-password gate before any network call.
	MetricPasswordMismatch
	// MetricSubmitBlocked counts Submit calls rejected by the
	// single-flight guard.
	MetricSubmitBlocked
	// MetricStaleResponseDiscarded counts responses that arrived after the
	// form was closed and were dropped without side effects.
	MetricStaleResponseDiscarded
	// MetricSessionPersisted counts successful session writes.
	MetricSessionPersisted
	// MetricSessionCleared counts logouts.
	MetricSessionCleared

	metricIDCount
)

// Metrics holds atomic counters for the auth flow. When disabled, every
// operation is a no-op. All methods are safe for concurrent use.
type Metrics struct {
	enabled  bool
	counters [metricIDCount]atomic.Uint64
}

// NewMetrics creates a Metrics instance configured by cfg.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return &Metrics{enabled: cfg.Enabled}
}

// Inc increments one counter.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled || id >= metricIDCount {
		return
	}
	m.counters[id].Add(1)
}

// Get returns the current value of one counter.
func (m *Metrics) Get(id MetricID) uint64 {
	if m == nil || !m.enabled || id >= metricIDCount {
		return 0
	}
	return m.counters[id].Load()
}

// MetricsSnapshot is a point-in-time copy of all counters.
type MetricsSnapshot struct {
	Counters map[MetricID]uint64
}

// Snapshot deep-copies every counter. Disabled metrics snapshot as an
// empty map.
func (m *Metrics) Snapshot() MetricsSnapshot {
	snap := MetricsSnapshot{Counters: map[MetricID]uint64{}}
	if m == nil || !m.enabled {
		return snap
	}
	for id := MetricID(0); id < metricIDCount; id++ {
		if v := m.counters[id].Load(); v != 0 {
			snap.Counters[id] = v
		}
	}
	return snap
}
