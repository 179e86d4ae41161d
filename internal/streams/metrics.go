package streams

import (
	"request-metrics/internal/shared/metrics"
)

var (
	streamWindowEvicted = "window_evicted"

	metricWindowEvictedPublishedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "window_evicted_published_total",
		},
		[]string{"stream_id"},
	)

	// metricWindowEvictedDroppedTotal counts evicted windows that were not archived because
	// their partition was full.
	metricWindowEvictedDroppedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "window_evicted_dropped_total",
		},
		[]string{"stream_id"},
	)

	metricWindowEvictedConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "window_evicted_consumed_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)
)
