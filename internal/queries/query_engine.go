package queries

import (
	"maps"
	"slices"
	"time"

	"request-metrics/internal/aggregators"
	"request-metrics/internal/models"
)

// QueryEngine answers read-only questions over the retained windows. Only windows lying
// entirely inside the requested range contribute; a window straddling a bound is left out.
//
//go:generate mockgen -source=query_engine.go -destination=./mocks/query_engine_mock.go -package=mocks
type QueryEngine interface {
	TotalCount(r models.TimeRange) int64
	ErrorCount(r models.TimeRange) int64
	// AverageLatency is 0 when the range holds no events.
	AverageLatency(r models.TimeRange) float64
	// ErrorRate is a fraction in [0, 1], 0 when the range holds no events.
	ErrorRate(r models.TimeRange) float64
	ErrorsByRegion(r models.TimeRange) map[string]int64
	RequestsByStatusClass(r models.TimeRange) map[string]int64
	// Coverage reports whether the range reaches into history that has been evicted.
	Coverage(r models.TimeRange) models.Coverage

	KPIs(r models.TimeRange) models.KPI
	// LatencySeries has one point per window: its start (RFC 3339) and average latency.
	LatencySeries(r models.TimeRange) models.ChartSeries
	// ErrorsByRegionSeries has one point per region with errors, regions ascending.
	ErrorsByRegionSeries(r models.TimeRange) models.ChartSeries
}

type queryEngine struct {
	aggregator aggregators.WindowAggregator
}

func NewQueryEngine(aggregator aggregators.WindowAggregator) QueryEngine {
	return &queryEngine{aggregator: aggregator}
}

// tally is the sum of every contained window, taken from one snapshot.
type tally struct {
	count          int64
	sumLatencyMs   int64
	errorCount     int64
	errorsByRegion map[string]int64
	byStatusClass  map[string]int64
	windows        []*models.Window
	coverage       models.Coverage
}

func (e *queryEngine) tally(r models.TimeRange, query string) tally {
	started := time.Now()
	defer func() {
		metricQueryDurationSeconds.WithLabelValues(query).Observe(time.Since(started).Seconds())
	}()

	view := e.aggregator.Snapshot()
	t := tally{
		errorsByRegion: make(map[string]int64),
		byStatusClass:  make(map[string]int64),
		coverage:       coverageOf(view, r),
	}

	for _, w := range view.Windows() {
		if !r.Contains(w.Start, w.End) {
			continue
		}
		t.windows = append(t.windows, w)
		t.count += w.Count
		t.sumLatencyMs += w.SumLatencyMs
		t.errorCount += w.ErrorCount
		for region, n := range w.ErrorsByRegion {
			t.errorsByRegion[region] += n
		}
		for class, n := range w.RequestsByStatusClass {
			t.byStatusClass[class] += n
		}
	}
	return t
}

func coverageOf(view models.View, r models.TimeRange) models.Coverage {
	if view.Horizon.IsZero() {
		return models.Coverage{}
	}
	horizon := view.Horizon
	return models.Coverage{
		Truncated:    r.StartsBefore(horizon),
		RetainedFrom: &horizon,
	}
}

func (t tally) averageLatency() float64 {
	if t.count == 0 {
		return 0
	}
	return float64(t.sumLatencyMs) / float64(t.count)
}

func (t tally) errorRate() float64 {
	if t.count == 0 {
		return 0
	}
	return float64(t.errorCount) / float64(t.count)
}

func (e *queryEngine) TotalCount(r models.TimeRange) int64 {
	return e.tally(r, "total_count").count
}

func (e *queryEngine) ErrorCount(r models.TimeRange) int64 {
	return e.tally(r, "error_count").errorCount
}

func (e *queryEngine) AverageLatency(r models.TimeRange) float64 {
	return e.tally(r, "average_latency").averageLatency()
}

func (e *queryEngine) ErrorRate(r models.TimeRange) float64 {
	return e.tally(r, "error_rate").errorRate()
}

func (e *queryEngine) ErrorsByRegion(r models.TimeRange) map[string]int64 {
	return e.tally(r, "errors_by_region").errorsByRegion
}

func (e *queryEngine) RequestsByStatusClass(r models.TimeRange) map[string]int64 {
	return e.tally(r, "requests_by_status_class").byStatusClass
}

func (e *queryEngine) Coverage(r models.TimeRange) models.Coverage {
	return coverageOf(e.aggregator.Snapshot(), r)
}

func (e *queryEngine) KPIs(r models.TimeRange) models.KPI {
	t := e.tally(r, "kpis")
	return models.KPI{
		AverageLatencyMs: t.averageLatency(),
		ErrorRatePercent: t.errorRate() * 100,
		TotalRequests:    t.count,
		ErrorCount:       t.errorCount,
		Coverage:         t.coverage,
	}
}

func (e *queryEngine) LatencySeries(r models.TimeRange) models.ChartSeries {
	t := e.tally(r, "latency_series")
	series := models.ChartSeries{
		Labels:   make([]string, 0, len(t.windows)),
		Values:   make([]float64, 0, len(t.windows)),
		Coverage: t.coverage,
	}
	for _, w := range t.windows {
		series.Labels = append(series.Labels, w.Start.UTC().Format(time.RFC3339))
		series.Values = append(series.Values, w.AverageLatencyMs())
	}
	return series
}

func (e *queryEngine) ErrorsByRegionSeries(r models.TimeRange) models.ChartSeries {
	t := e.tally(r, "errors_by_region_series")
	regions := slices.Sorted(maps.Keys(t.errorsByRegion))
	series := models.ChartSeries{
		Labels:   regions,
		Values:   make([]float64, 0, len(regions)),
		Coverage: t.coverage,
	}
	for _, region := range regions {
		series.Values = append(series.Values, float64(t.errorsByRegion[region]))
	}
	return series
}
