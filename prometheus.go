package tsarray

import (
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsConfig is a config of the Prometheus metrics provided by an
// array.
//
// An instance can be created only by the [Metrics] function. The zero
// value is invalid.
type MetricsConfig struct {
	// Namespace of the metrics.
	Namespace string
	// Subsystem of the metrics.
	Subsystem string
	// Options for the occupied-slots gauge.
	Length prometheus.GaugeOpts
	// Options for the allocated-slots gauge.
	Capacity prometheus.GaugeOpts
	// Options for the grow-reallocation counter.
	Grows prometheus.CounterOpts
	// Options for the shrink-reallocation counter.
	Shrinks prometheus.CounterOpts

	registerer prometheus.Registerer
}

// Metrics returns a [MetricsConfig] with the provided registerer. If
// registerer is nil, metrics will not be registered. Many default
// parameters can be configured by passing configuration functions.
//
// Each array built with the resulting config owns its own metric
// instances; use distinct names or registries when instrumenting more
// than one array.
func Metrics(
	registerer prometheus.Registerer,
	configFuncs ...func(c *MetricsConfig),
) *MetricsConfig {
	const (
		namespace = "tsarray"
		subsystem = ""
	)

	c := MetricsConfig{
		registerer: registerer,
		Namespace:  namespace,
		Subsystem:  subsystem,
		Length: prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "length_slots",
			Help:      "Number of occupied slots in the array",
		},
		Capacity: prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "capacity_slots",
			Help:      "Number of allocated slots in the array",
		},
		Grows: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "grows",
			Help:      "Number of reallocations that grew the array",
		},
		Shrinks: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "shrinks",
			Help:      "Number of reallocations that shrank the array",
		},
	}

	for _, cf := range configFuncs {
		if cf != nil {
			cf(&c)
		}
	}

	return &c
}

func (c *MetricsConfig) metrics() *metrics {
	m := metrics{
		length:   prometheus.NewGauge(c.Length),
		capacity: prometheus.NewGauge(c.Capacity),
		grows:    prometheus.NewCounter(c.Grows),
		shrinks:  prometheus.NewCounter(c.Shrinks),
	}

	if c.registerer != nil {
		c.registerer.MustRegister(
			m.length,
			m.capacity,
			m.grows,
			m.shrinks,
		)
	}

	return &m
}
