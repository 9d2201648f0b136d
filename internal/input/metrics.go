package input

import (
	"sync/atomic"
	"time"

	"github.com/floatingskies/mark-mark/internal/input/action"
)

// Metrics counts what the engine did with its input.
type Metrics struct {
	keys       atomic.Uint64
	actions    atomic.Uint64
	errors     atomic.Uint64
	noMatches  atomic.Uint64
	dropped    atomic.Uint64
	timeouts   atomic.Uint64
	totalNanos atomic.Int64
	peakNanos  atomic.Int64
}

// MetricsSnapshot is a point-in-time copy of the counters.
type MetricsSnapshot struct {
	Keys        uint64
	Actions     uint64
	Errors      uint64
	NoMatches   uint64
	Dropped     uint64
	Timeouts    uint64
	AvgLatency  time.Duration
	PeakLatency time.Duration
}

// NewMetrics creates zeroed metrics.
func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) recordKey(latency time.Duration, a *action.Action) {
	m.keys.Add(1)
	m.totalNanos.Add(int64(latency))
	for {
		peak := m.peakNanos.Load()
		if int64(latency) <= peak || m.peakNanos.CompareAndSwap(peak, int64(latency)) {
			break
		}
	}
	if a == nil {
		return
	}
	m.actions.Add(1)
	switch {
	case a.IsError():
		m.errors.Add(1)
	case a.IsNoMatch():
		m.noMatches.Add(1)
	}
}

func (m *Metrics) recordDropped() {
	m.dropped.Add(1)
}

func (m *Metrics) recordTimeout() {
	m.timeouts.Add(1)
}

// Snapshot returns the current counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	s := MetricsSnapshot{
		Keys:        m.keys.Load(),
		Actions:     m.actions.Load(),
		Errors:      m.errors.Load(),
		NoMatches:   m.noMatches.Load(),
		Dropped:     m.dropped.Load(),
		Timeouts:    m.timeouts.Load(),
		PeakLatency: time.Duration(m.peakNanos.Load()),
	}
	if s.Keys > 0 {
		s.AvgLatency = time.Duration(m.totalNanos.Load() / int64(s.Keys))
	}
	return s
}

// Reset zeroes all counters.
func (m *Metrics) Reset() {
	m.keys.Store(0)
	m.actions.Store(0)
	m.errors.Store(0)
	m.noMatches.Store(0)
	m.dropped.Store(0)
	m.timeouts.Store(0)
	m.totalNanos.Store(0)
	m.peakNanos.Store(0)
}
