package archivers

import (
	"request-metrics/internal/shared/metrics"
)

var (
	metricWindowArchivedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubArchive,
			Name:      "window_archived_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
