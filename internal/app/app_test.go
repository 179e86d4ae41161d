package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"request-metrics/internal/events"
	"request-metrics/internal/shared/configs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *configs.Config {
	t.Helper()
	return &configs.Config{
		Server: configs.ServerConfig{Port: 18080, ReadHeaderTimeout: 1, ReadTimeout: 1, WriteTimeout: 1, IdleTimeout: 1},
		Log:    configs.LogConfig{Level: "error"},
		Aggregation: configs.AggregationConfig{
			BucketDuration:   time.Minute,
			Retention:        time.Hour,
			EvictionInterval: time.Second,
			MaxClockSkew:     5 * time.Second,
			RecentCapacity:   10,
		},
		Archive: configs.ArchiveConfig{Enabled: true, RootDir: t.TempDir()},
	}
}

func TestNew_WiresArchiveWhenEnabled(t *testing.T) {
	application, err := New(testConfig(t))
	require.NoError(t, err)
	assert.NotNil(t, application.archiveConsumer)
	assert.NotNil(t, application.archiveQueue)
	assert.NotNil(t, application.engine)
	assert.NoError(t, application.backgroundCtx.Err(), "background context exists before Start")
}

func TestNew_WithoutArchive(t *testing.T) {
	cfg := testConfig(t)
	cfg.Archive = configs.ArchiveConfig{}

	application, err := New(cfg)
	require.NoError(t, err)
	assert.Nil(t, application.archiveConsumer)
	assert.Nil(t, application.archiveQueue)
}

func TestNew_Errors(t *testing.T) {
	cfg := testConfig(t)
	cfg.Log.Level = "loud"
	_, err := New(cfg)
	assert.ErrorContains(t, err, "failed to initialize logger")

	cfg = testConfig(t)
	cfg.Aggregation.Retention = time.Second
	_, err = New(cfg)
	assert.ErrorContains(t, err, "failed to initialize engine")
}

func TestShutdown_BeforeStart(t *testing.T) {
	application, err := New(testConfig(t))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, application.Shutdown(ctx))
}

func TestShutdown_CancelsBackgroundAndClosesQueue(t *testing.T) {
	application, err := New(testConfig(t))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, application.Shutdown(ctx))

	assert.ErrorIs(t, application.backgroundCtx.Err(), context.Canceled)
	assert.False(t, application.archiveQueue.TryPublish("k", events.WindowEvictedEvent{}))
}

func TestNew_ArchiveRouteFollowsConfig(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		want    int
	}{
		{name: "enabled", enabled: true, want: http.StatusOK},
		{name: "disabled", enabled: false, want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.Archive.Enabled = tt.enabled
			application, err := New(cfg)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/archive/windows?from=2025-10-07T12:00:00Z&to=2025-10-07T13:00:00Z", nil)
			application.server.Handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.want, rr.Code)
		})
	}
}
