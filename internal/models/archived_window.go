package models

import "time"

// ArchivedWindow is the persisted form of an evicted window.
//
// Example JSON:
//
//	{
//	  "windowStart": "2025-10-07T12:24:00Z",
//	  "windowEnd": "2025-10-07T12:25:00Z",
//	  "bucket": "1m0s",
//	  "count": 3,
//	  "sumLatencyMs": 836,
//	  "averageLatencyMs": 278.6666666666667,
//	  "errorCount": 2,
//	  "errorsByRegion": {"APAC": 2},
//	  "requestsByRegion": {"APAC": 2, "EU": 1},
//	  "requestsByStatusClass": {"2xx": 1, "5xx": 2},
//	  "evictedAt": "2025-10-07T13:25:00Z",
//	  "archivedAt": "2025-10-07T13:25:00.013Z"
//	}
type ArchivedWindow struct {
	WindowStart           time.Time        `json:"windowStart"`
	WindowEnd             time.Time        `json:"windowEnd"`
	Bucket                string           `json:"bucket"`
	Count                 int64            `json:"count"`
	SumLatencyMs          int64            `json:"sumLatencyMs"`
	AverageLatencyMs      float64          `json:"averageLatencyMs"`
	ErrorCount            int64            `json:"errorCount"`
	ErrorsByRegion        map[string]int64 `json:"errorsByRegion"`
	RequestsByRegion      map[string]int64 `json:"requestsByRegion"`
	RequestsByStatusClass map[string]int64 `json:"requestsByStatusClass"`
	EvictedAt             time.Time        `json:"evictedAt"`
	ArchivedAt            time.Time        `json:"archivedAt"`
}
