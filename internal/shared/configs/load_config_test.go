package configs

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
  cors_allowed_origins: ["https://dashboard.example"]
log:
  level: debug
aggregation:
  bucket_duration: 1m
  retention: 1h
  eviction_interval: 15s
  max_clock_skew: 2s
  recent_capacity: 10
ingest:
  allowed_regions: [EU, US, APAC]
archive:
  enabled: true
  root_dir: ./data
`

func writeConfig(t *testing.T, content string) string {
	tmpfile, err := os.CreateTemp(t.TempDir(), "test_config_*.yml")
	require.NoError(t, err)
	_, err = tmpfile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())
	return tmpfile.Name()
}

func TestLoadConfig_ValidConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, 60, cfg.Server.IdleTimeout)
	assert.Equal(t, []string{"https://dashboard.example"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, time.Minute, cfg.Aggregation.BucketDuration)
	assert.Equal(t, time.Hour, cfg.Aggregation.Retention)
	assert.Equal(t, 15*time.Second, cfg.Aggregation.EvictionInterval)
	assert.Equal(t, 2*time.Second, cfg.Aggregation.MaxClockSkew)
	assert.Equal(t, 10, cfg.Aggregation.RecentCapacity)
	assert.Equal(t, []string{"EU", "US", "APAC"}, cfg.Ingest.AllowedRegions)
	assert.True(t, cfg.Archive.Enabled)
	assert.Equal(t, "./data", cfg.Archive.RootDir)
}

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	minimal := `server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: info
aggregation:
  bucket_duration: 1m
  retention: 30m
`
	cfg, err := LoadConfig(writeConfig(t, minimal))
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, cfg.Aggregation.EvictionInterval)
	assert.Equal(t, 5*time.Second, cfg.Aggregation.MaxClockSkew)
	assert.Equal(t, 10, cfg.Aggregation.RecentCapacity)
	assert.False(t, cfg.Archive.Enabled)
	assert.Empty(t, cfg.Ingest.AllowedRegions)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
}

func TestLoadConfig_ValidationFailures(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantField string
	}{
		{
			name: "missing port",
			content: `server:
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: debug
aggregation:
  bucket_duration: 1m
  retention: 1h
`,
			wantField: "server.port",
		},
		{
			name: "port out of range",
			content: `server:
  port: 70000
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: debug
aggregation:
  bucket_duration: 1m
  retention: 1h
`,
			wantField: "server.port",
		},
		{
			name: "retention shorter than bucket",
			content: `server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: debug
aggregation:
  bucket_duration: 1h
  retention: 1m
`,
			wantField: "aggregation.retention",
		},
		{
			name: "archive enabled without root dir",
			content: `server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: debug
aggregation:
  bucket_duration: 1m
  retention: 1h
archive:
  enabled: true
`,
			wantField: "archive.rootdir",
		},
		{
			name: "negative clock skew",
			content: `server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: debug
aggregation:
  bucket_duration: 1m
  retention: 1h
  max_clock_skew: -1s
`,
			wantField: "aggregation.maxclockskew",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeConfig(t, tt.content))
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/configs.yml")
	assert.Nil(t, cfg)
	assert.Error(t, err)
}
