package evictors

import (
	"request-metrics/internal/shared/metrics"
)

var (
	metricEvictionRunsTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubEviction,
			Name:      "runs_total",
		},
	)

	metricJanitorPanicsTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubEviction,
			Name:      "janitor_panics_total",
		},
	)
)
