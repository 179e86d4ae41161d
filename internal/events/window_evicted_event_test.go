package events

import (
	"testing"
	"time"

	"request-metrics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWindowEvictedEvent_CopiesTallies(t *testing.T) {
	t.Parallel()

	span, err := models.NewBucketSpan(time.Minute)
	require.NoError(t, err)
	start := time.Date(2025, 10, 7, 12, 24, 0, 0, time.UTC)

	w := models.NewWindow(start, span)
	w.Add(&models.Event{ID: 1, Timestamp: start, LatencyMs: 120, StatusCode: 200, Region: "EU"})
	w.Add(&models.Event{ID: 2, Timestamp: start.Add(time.Second), LatencyMs: 300, StatusCode: 503, Region: "APAC"})

	evictedAt := start.Add(time.Hour)
	event := NewWindowEvictedEvent(w, span, evictedAt)

	assert.Equal(t, start, event.WindowStart)
	assert.Equal(t, start.Add(time.Minute), event.WindowEnd)
	assert.Equal(t, int64(2), event.Count)
	assert.Equal(t, int64(420), event.SumLatencyMs)
	assert.Equal(t, int64(1), event.ErrorCount)
	assert.Equal(t, map[string]int64{"APAC": 1}, event.ErrorsByRegion)
	assert.Equal(t, map[string]int64{"2xx": 1, "5xx": 1}, event.RequestsByStatusClass)
	assert.Equal(t, evictedAt, event.EvictedAt)

	w.ErrorsByRegion["APAC"] = 99
	assert.Equal(t, int64(1), event.ErrorsByRegion["APAC"], "event must not share maps with the window")
}

func TestWindowEvictedEvent_PartitionKey(t *testing.T) {
	t.Parallel()

	span, err := models.NewBucketSpan(time.Minute)
	require.NoError(t, err)
	event := WindowEvictedEvent{WindowStart: time.Date(2025, 10, 7, 12, 24, 0, 0, time.UTC), Bucket: span}

	assert.Equal(t, "20251007T1224Z", event.PartitionKey())
}
