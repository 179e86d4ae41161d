package queries

import (
	"request-metrics/internal/shared/metrics"
)

var metricQueryDurationSeconds = metrics.NewHistogramVec(
	metrics.HistogramOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.SubQuery,
		Name:      "duration_seconds",
		Buckets:   []float64{0.00001, 0.0001, 0.001, 0.01, 0.1},
	},
	[]string{"query"},
)
