package models

import (
	"fmt"
	"time"
)

// errorStatusThreshold is the first status code counted as an error (4xx and 5xx).
const errorStatusThreshold = 400

// Event is a single request-log record. It is immutable once ingested.
//
// Example JSON:
//
//	{
//	  "id": 7,
//	  "timestamp": "2025-10-07T12:24:17.992297+00:00",
//	  "latency_ms": 416,
//	  "status_code": 504,
//	  "region": "APAC"
//	}
type Event struct {
	ID         int64     `json:"id"`
	Timestamp  time.Time `json:"timestamp" validate:"required"`
	LatencyMs  int64     `json:"latency_ms" validate:"gte=0"`
	StatusCode int       `json:"status_code" validate:"min=100,max=599"`
	Region     string    `json:"region" validate:"required,max=32"`
}

// IsError reports whether the request failed from the client's point of view.
func (e *Event) IsError() bool {
	return e.StatusCode >= errorStatusThreshold
}

// StatusClass returns "1xx" through "5xx".
func (e *Event) StatusClass() string {
	return StatusClassOf(e.StatusCode)
}

func StatusClassOf(statusCode int) string {
	return fmt.Sprintf("%dxx", statusCode/100)
}
