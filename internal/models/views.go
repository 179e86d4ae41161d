package models

import "time"

// View is a consistent, read-only picture of the aggregator at one instant.
// Closed windows are shared and must not be mutated; Active is a private copy.
type View struct {
	Closed  []*Window
	Active  *Window
	Horizon time.Time
}

// Windows returns the closed windows followed by the active one, oldest first.
func (v View) Windows() []*Window {
	out := make([]*Window, 0, len(v.Closed)+1)
	out = append(out, v.Closed...)
	if v.Active != nil {
		out = append(out, v.Active)
	}
	return out
}

// Coverage tells the caller whether part of the requested range has already been evicted.
type Coverage struct {
	Truncated    bool      `json:"truncated"`
	RetainedFrom *time.Time `json:"retainedFrom,omitempty"`
}

type KPI struct {
	AverageLatencyMs float64 `json:"averageLatencyMs"`
	ErrorRatePercent float64 `json:"errorRatePercent"`
	TotalRequests    int64   `json:"totalRequests"`
	ErrorCount       int64   `json:"errorCount"`
	Coverage
}

// ChartSeries is a pair of equally long label and value arrays.
type ChartSeries struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
	Coverage
}

type RecentRequest struct {
	ID         int64     `json:"id"`
	Time       time.Time `json:"time"`
	Region     string    `json:"region"`
	StatusCode int       `json:"statusCode"`
	LatencyMs  int64     `json:"latencyMs"`
}

func NewRecentRequest(e *Event) RecentRequest {
	return RecentRequest{
		ID:         e.ID,
		Time:       e.Timestamp,
		Region:     e.Region,
		StatusCode: e.StatusCode,
		LatencyMs:  e.LatencyMs,
	}
}
