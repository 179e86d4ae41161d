package http

import (
	"net/http"

	"request-metrics/internal/archivers"
	"request-metrics/internal/ingestors"
	"request-metrics/internal/queries"
	"request-metrics/internal/shared/loggers"
	"request-metrics/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// RouterOptions carries the optional parts of the router.
type RouterOptions struct {
	// Archive serves GET /archive/windows when set.
	Archive archivers.ArchiveService
	// AllowedOrigins enables CORS for the listed origins; "*" allows any.
	AllowedOrigins []string
}

// NewRouter creates and configures the HTTP router.
func NewRouter(buffer ingestors.IngestBuffer, engine queries.QueryEngine, httpLogger loggers.Logger, opts RouterOptions) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger, opts.AllowedOrigins)

	router.Get("/", errorHandlingAdapter(AppHttpHandlerFunc(handleStatus)))

	router.Post("/events", errorHandlingAdapter(NewIngestEventHandler(buffer)))
	router.Post("/events/batch", errorHandlingAdapter(NewIngestBatchHandler(buffer)))
	router.Post("/reset", errorHandlingAdapter(NewResetHandler(buffer)))

	router.Get("/kpis", errorHandlingAdapter(NewKPIsHandler(engine)))
	router.Get("/series/latency", errorHandlingAdapter(NewLatencySeriesHandler(engine)))
	router.Get("/series/errors-by-region", errorHandlingAdapter(NewErrorsByRegionSeriesHandler(engine)))
	router.Get("/requests/recent", errorHandlingAdapter(NewRecentRequestsHandler(buffer)))

	if opts.Archive != nil {
		router.Get("/archive/windows", errorHandlingAdapter(NewArchivedWindowsHandler(opts.Archive)))
	}

	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
