package ingestors

import (
	"request-metrics/internal/shared/metrics"
)

var (
	metricEventIngestedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "event_ingested_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricRegisteredIDs = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "registered_ids",
			Help:      "Event ids remembered for duplicate detection.",
		},
	)
)
