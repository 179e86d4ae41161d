package aggregators

import (
	"request-metrics/internal/shared/metrics"
)

var (
	// metricEventsFoldedTotal counts events added to the active window, by status class ("2xx", "5xx", ...).
	metricEventsFoldedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "events_folded_total",
		},
		[]string{"status_class"},
	)

	metricWindowsOpenedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "windows_opened_total",
		},
	)

	// metricWindowsClosedTotal includes the empty windows created to fill gaps in traffic.
	metricWindowsClosedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "windows_closed_total",
		},
	)

	metricWindowsEvictedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "windows_evicted_total",
		},
	)

	metricClosedWindows = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "closed_windows",
			Help:      "Closed windows currently retained in memory.",
		},
	)
)
