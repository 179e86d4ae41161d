package replays_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"request-metrics/internal/engines"
	"request-metrics/internal/generators"
	"request-metrics/internal/replays"
	"request-metrics/internal/shared/loggers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hourly = engines.Options{
	BucketDuration: time.Hour,
	Retention:      24 * time.Hour,
	MaxClockSkew:   5 * time.Second,
	RecentCapacity: 10,
	AllowedRegions: []string{"EU", "US", "APAC"},
}

func TestLoadFixture_Sample(t *testing.T) {
	t.Parallel()

	fixture, err := replays.LoadFixture("../../testdata/sample_events.yaml")
	require.NoError(t, err)

	assert.Equal(t, "dashboard-sample", fixture.Name)
	require.Len(t, fixture.Events, 16)
	assert.Equal(t, int64(252), fixture.Events[0].LatencyMs)
	assert.Equal(t, time.Date(2025, 10, 7, 12, 18, 17, 992297000, time.UTC), fixture.Events[0].Timestamp)
	assert.Equal(t, "EU", fixture.Events[15].Region)
}

func TestDecodeFixture_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
		want string
	}{
		{name: "empty", yaml: ``, want: "empty fixture"},
		{name: "unknown key", yaml: "events:\n  - id: 1\n    path: /\n", want: "failed to decode fixture"},
		{name: "missing latency", yaml: "events:\n  - id: 1\n    timestamp: \"2025-10-07T12:00:00Z\"\n", want: "missing latency_ms"},
		{name: "bad timestamp", yaml: "events:\n  - id: 1\n    latency_ms: 3\n    timestamp: noon\n", want: "invalid timestamp format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := replays.DecodeFixture(strings.NewReader(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestReplay_Sample(t *testing.T) {
	t.Parallel()

	fixture, err := replays.LoadFixture("../../testdata/sample_events.yaml")
	require.NoError(t, err)

	report, err := replays.Replay(context.Background(), hourly, fixture, loggers.Nop())
	require.NoError(t, err)

	assert.Equal(t, 16, report.Accepted)
	assert.Empty(t, report.Rejected)
	assert.Equal(t, int64(16), report.KPIs.TotalRequests)
	assert.Equal(t, int64(11), report.KPIs.ErrorCount)
	assert.Equal(t, 257.5, report.KPIs.AverageLatencyMs)
	assert.Equal(t, 68.75, report.KPIs.ErrorRatePercent)
	assert.Equal(t, []string{"APAC", "EU", "US"}, report.ErrorsByRegion.Labels)
	assert.Equal(t, []float64{5, 4, 2}, report.ErrorsByRegion.Values)
	require.Len(t, report.RecentRequests, 10)
	assert.Equal(t, int64(7), report.RecentRequests[0].ID)
	assert.Equal(t, int64(16), report.RecentRequests[9].ID)
}

func TestReplay_ReportsRejections(t *testing.T) {
	t.Parallel()

	fixture, err := replays.DecodeFixture(strings.NewReader(`
name: rejections
events:
  - {id: 1, timestamp: "2025-10-07T12:00:00Z", latency_ms: 10, status_code: 200, region: EU}
  - {id: 1, timestamp: "2025-10-07T12:01:00Z", latency_ms: 10, status_code: 200, region: EU}
  - {id: 2, timestamp: "2025-10-07T13:30:00Z", latency_ms: 10, status_code: 200, region: EU}
  - {id: 3, timestamp: "2025-10-07T12:59:00Z", latency_ms: 10, status_code: 200, region: EU}
  - {id: 4, timestamp: "2025-10-07T13:31:00Z", latency_ms: 10, status_code: 200, region: MARS}
`))
	require.NoError(t, err)

	report, err := replays.Replay(context.Background(), hourly, fixture, loggers.Nop())
	require.NoError(t, err)

	assert.Equal(t, 2, report.Accepted)
	require.Len(t, report.Rejected, 3)
	assert.Equal(t, replays.Rejection{Index: 1, ID: 1, ErrorCode: "ING_1001", ErrorDescription: "event id 1 was already ingested"}, report.Rejected[0])
	assert.Equal(t, "ING_1002", report.Rejected[1].ErrorCode)
	assert.Equal(t, "ING_1000", report.Rejected[2].ErrorCode)
}

func TestReplay_InvalidOptions(t *testing.T) {
	t.Parallel()

	opts := hourly
	opts.Retention = time.Minute

	_, err := replays.Replay(context.Background(), opts, &replays.Fixture{}, loggers.Nop())
	assert.Error(t, err)
}

func TestEncodeFixture_DecodesBack(t *testing.T) {
	t.Parallel()

	fixture, err := replays.LoadFixture("../../testdata/sample_events.yaml")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, replays.EncodeFixture(&buf, fixture))
	assert.NotContains(t, buf.String(), "response_time_ms")

	decoded, err := replays.DecodeFixture(&buf)
	require.NoError(t, err)
	assert.Equal(t, fixture, decoded)
}

func TestReplay_GeneratedDay(t *testing.T) {
	t.Parallel()

	generated, err := generators.Generate(generators.Options{
		Count:    1440,
		Start:    time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC),
		Interval: time.Minute,
		Seed:     11,
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, replays.EncodeFixture(&buf, &replays.Fixture{Name: "generated", Events: generated}))
	fixture, err := replays.DecodeFixture(&buf)
	require.NoError(t, err)

	report, err := replays.Replay(context.Background(), hourly, fixture, loggers.Nop())
	require.NoError(t, err)

	assert.Equal(t, 1440, report.Accepted)
	assert.Empty(t, report.Rejected)
	assert.Equal(t, int64(1440), report.KPIs.TotalRequests)
	assert.Len(t, report.LatencySeries.Labels, 24)
}
