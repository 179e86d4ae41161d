package replays

import (
	"context"

	"request-metrics/internal/engines"
	"request-metrics/internal/models"
	"request-metrics/internal/shared/clocks"
	"request-metrics/internal/shared/loggers"
	"request-metrics/internal/shared/svcerrors"
)

type Rejection struct {
	Index            int    `json:"index"`
	ID               int64  `json:"id"`
	ErrorCode        string `json:"errorCode"`
	ErrorDescription string `json:"errorDescription"`
}

// Report holds the three dashboard views after a replay.
type Report struct {
	Name           string                 `json:"name,omitempty"`
	Accepted       int                    `json:"accepted"`
	Rejected       []Rejection            `json:"rejected"`
	KPIs           models.KPI             `json:"kpis"`
	LatencySeries  models.ChartSeries     `json:"latencySeries"`
	ErrorsByRegion models.ChartSeries     `json:"errorsByRegion"`
	RecentRequests []models.RecentRequest `json:"recentRequests"`
}

// Replay feeds events into a fresh engine whose clock follows event time, so historical
// logs fold into the windows they belong to.
func Replay(ctx context.Context, opts engines.Options, fixture *Fixture, logger loggers.Logger) (*Report, error) {
	var start models.Event
	if len(fixture.Events) > 0 {
		start = *fixture.Events[0]
	}
	clock := clocks.NewManualClock(start.Timestamp)

	engine, err := engines.New(opts, clock, logger)
	if err != nil {
		return nil, err
	}

	ctx = logger.WithContext(ctx)
	report := &Report{Name: fixture.Name, Rejected: []Rejection{}}
	for i, event := range fixture.Events {
		clock.Set(event.Timestamp)
		if _, err := engine.Buffer.Ingest(ctx, event); err != nil {
			rejection := Rejection{Index: i, ID: event.ID, ErrorDescription: err.Error()}
			if svcErr, ok := svcerrors.AsServiceError(err); ok {
				rejection.ErrorCode = svcErr.Code
				rejection.ErrorDescription = svcErr.Message
			}
			report.Rejected = append(report.Rejected, rejection)
			continue
		}
		report.Accepted++
	}

	all := models.AllTime()
	report.KPIs = engine.Queries.KPIs(all)
	report.LatencySeries = engine.Queries.LatencySeries(all)
	report.ErrorsByRegion = engine.Queries.ErrorsByRegionSeries(all)
	report.RecentRequests = engine.Buffer.RecentRequests(opts.RecentCapacity)

	return report, nil
}
