package tsarray

import (
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	length   prometheus.Gauge
	capacity prometheus.Gauge
	grows    prometheus.Counter
	shrinks  prometheus.Counter
}

// reallocated records a capacity change. Safe on a nil receiver.
func (m *metrics) reallocated(oldCap, newCap int) {
	if m == nil {
		return
	}
	if newCap > oldCap {
		m.grows.Inc()
	} else {
		m.shrinks.Inc()
	}
}

// sized records the current length and capacity. Safe on a nil receiver.
func (m *metrics) sized(length, capacity int) {
	if m == nil {
		return
	}
	m.length.Set(float64(length))
	m.capacity.Set(float64(capacity))
}
