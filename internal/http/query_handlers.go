package http

import (
	"net/http"

	"request-metrics/internal/ingestors"
	"request-metrics/internal/models"
	"request-metrics/internal/queries"
)

const (
	defaultRecentLimit = 10
	maxRecentLimit     = 1000
)

func timeRangeFromQuery(r *http.Request) (models.TimeRange, error) {
	q := r.URL.Query()
	return queries.ParseTimeRange(q.Get("from"), q.Get("to"))
}

type kpisHandler struct {
	queries queries.QueryEngine
}

func NewKPIsHandler(engine queries.QueryEngine) AppHttpHandler {
	return &kpisHandler{queries: engine}
}

// Handle processes GET /kpis.
func (h *kpisHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	tr, err := timeRangeFromQuery(r)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, h.queries.KPIs(tr))
}

type seriesHandler struct {
	series func(models.TimeRange) models.ChartSeries
}

// NewLatencySeriesHandler serves GET /series/latency.
func NewLatencySeriesHandler(engine queries.QueryEngine) AppHttpHandler {
	return &seriesHandler{series: engine.LatencySeries}
}

// NewErrorsByRegionSeriesHandler serves GET /series/errors-by-region.
func NewErrorsByRegionSeriesHandler(engine queries.QueryEngine) AppHttpHandler {
	return &seriesHandler{series: engine.ErrorsByRegionSeries}
}

func (h *seriesHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	tr, err := timeRangeFromQuery(r)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, h.series(tr))
}

type recentRequestsHandler struct {
	buffer ingestors.IngestBuffer
}

func NewRecentRequestsHandler(buffer ingestors.IngestBuffer) AppHttpHandler {
	return &recentRequestsHandler{buffer: buffer}
}

// Handle processes GET /requests/recent.
func (h *recentRequestsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	limit, err := queries.ParseLimit(r.URL.Query().Get("limit"), defaultRecentLimit, maxRecentLimit)
	if err != nil {
		return err
	}
	recent := h.buffer.RecentRequests(limit)
	if recent == nil {
		recent = []models.RecentRequest{}
	}
	return writeJSON(w, http.StatusOK, recent)
}

type resetHandler struct {
	buffer ingestors.IngestBuffer
}

func NewResetHandler(buffer ingestors.IngestBuffer) AppHttpHandler {
	return &resetHandler{buffer: buffer}
}

// Handle processes POST /reset.
func (h *resetHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	h.buffer.Reset(r.Context())
	w.WriteHeader(http.StatusNoContent)
	return nil
}
