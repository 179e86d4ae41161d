package events

import (
	"maps"
	"time"

	"request-metrics/internal/models"
)

// WindowEvictedEvent carries the final tallies of a window that left memory. It is
// produced by the eviction listener and consumed by the archive service.
//
// Example JSON:
//
//	{
//	  "windowStart": "2025-10-07T12:24:00Z",
//	  "windowEnd": "2025-10-07T12:25:00Z",
//	  "bucket": 60000000000,
//	  "count": 3,
//	  "sumLatencyMs": 836,
//	  "errorCount": 2,
//	  "errorsByRegion": {"APAC": 2},
//	  "requestsByRegion": {"APAC": 2, "EU": 1},
//	  "requestsByStatusClass": {"2xx": 1, "5xx": 2},
//	  "evictedAt": "2025-10-07T13:25:00Z"
//	}
type WindowEvictedEvent struct {
	WindowStart           time.Time         `json:"windowStart"`
	WindowEnd             time.Time         `json:"windowEnd"`
	Bucket                models.BucketSpan `json:"bucket"`
	Count                 int64             `json:"count"`
	SumLatencyMs          int64             `json:"sumLatencyMs"`
	ErrorCount            int64             `json:"errorCount"`
	ErrorsByRegion        map[string]int64  `json:"errorsByRegion"`
	RequestsByRegion      map[string]int64  `json:"requestsByRegion"`
	RequestsByStatusClass map[string]int64  `json:"requestsByStatusClass"`
	EvictedAt             time.Time         `json:"evictedAt"`
}

func NewWindowEvictedEvent(w *models.Window, bucket models.BucketSpan, evictedAt time.Time) WindowEvictedEvent {
	return WindowEvictedEvent{
		WindowStart:           w.Start,
		WindowEnd:             w.End,
		Bucket:                bucket,
		Count:                 w.Count,
		SumLatencyMs:          w.SumLatencyMs,
		ErrorCount:            w.ErrorCount,
		ErrorsByRegion:        maps.Clone(w.ErrorsByRegion),
		RequestsByRegion:      maps.Clone(w.RequestsByRegion),
		RequestsByStatusClass: maps.Clone(w.RequestsByStatusClass),
		EvictedAt:             evictedAt,
	}
}

// PartitionKey routes every event of one window to the same partition.
func (e *WindowEvictedEvent) PartitionKey() string {
	return e.Bucket.FormatWindowStart(e.WindowStart)
}
