package tsarray_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/israel-lugo/tsarray"
	"github.com/israel-lugo/tsarray/internal/testing/require"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()

	a := tsarray.New[int](tsarray.WithMetrics(tsarray.Metrics(reg)))
	appendSeq(t, a, 0, 100)

	gathered, err := reg.Gather()
	require.Nil(t, err)
	require.Equal(t, len(gathered), 4)

	families := make(map[string]bool, len(gathered))
	for _, mf := range gathered {
		families[mf.GetName()] = true
	}
	require.True(t, families["tsarray_length_slots"])
	require.True(t, families["tsarray_capacity_slots"])
	require.True(t, families["tsarray_grows"])
	require.True(t, families["tsarray_shrinks"])
}

func TestMetricsTrackResizes(t *testing.T) {
	reg := prometheus.NewRegistry()
	a := tsarray.New[int](tsarray.WithMetrics(tsarray.Metrics(reg)))

	appendSeq(t, a, 0, 1000)
	for a.Len() > 0 {
		require.Nil(t, a.Remove(a.Len()-1))
	}

	var (
		gotLength   float64
		gotCapacity float64
		gotGrows    float64
		gotShrinks  float64
	)
	gathered, err := reg.Gather()
	require.Nil(t, err)
	for _, mf := range gathered {
		v := mf.GetMetric()[0]
		switch mf.GetName() {
		case "tsarray_length_slots":
			gotLength = v.GetGauge().GetValue()
		case "tsarray_capacity_slots":
			gotCapacity = v.GetGauge().GetValue()
		case "tsarray_grows":
			gotGrows = v.GetCounter().GetValue()
		case "tsarray_shrinks":
			gotShrinks = v.GetCounter().GetValue()
		}
	}

	require.Equal(t, gotLength, float64(a.Len()))
	require.Equal(t, gotCapacity, float64(a.Cap()))
	require.True(t, gotGrows > 0)
	require.True(t, gotShrinks > 0)
}

// Metrics with a nil registerer are collected but never exported; the
// array still works.
func TestMetricsNilRegisterer(t *testing.T) {
	a := tsarray.New[int](tsarray.WithMetrics(tsarray.Metrics(nil)))
	appendSeq(t, a, 0, 10)
	require.Equal(t, a.Len(), 10)
}
