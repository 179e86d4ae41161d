package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"request-metrics/internal/replays"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunGenerate_DefaultStartEndsBeforeNow(t *testing.T) {
	now := time.Date(2025, 10, 7, 12, 18, 17, 0, time.UTC)

	var out bytes.Buffer
	err := runGenerate(&out, generateOptions{count: 60, interval: time.Minute, firstID: 1, seed: 1, distribution: "gaussian", name: "hour"}, now)
	require.NoError(t, err)

	fixture, err := replays.DecodeFixture(&out)
	require.NoError(t, err)
	assert.Equal(t, "hour", fixture.Name)
	require.Len(t, fixture.Events, 60)
	assert.Equal(t, time.Date(2025, 10, 7, 11, 18, 0, 0, time.UTC), fixture.Events[0].Timestamp)
	assert.Equal(t, time.Date(2025, 10, 7, 12, 17, 0, 0, time.UTC), fixture.Events[59].Timestamp)
}

func TestRunGenerate_Errors(t *testing.T) {
	var out bytes.Buffer

	err := runGenerate(&out, generateOptions{count: 1, interval: time.Minute, start: "yesterday"}, time.Now())
	assert.ErrorContains(t, err, "invalid start")

	err = runGenerate(&out, generateOptions{count: 1, interval: time.Minute, distribution: "zipf"}, time.Now())
	assert.ErrorContains(t, err, "unknown distribution")
	assert.Empty(t, out.String())
}

func TestGenerateCmd_WritesReplayableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day.yaml")

	root := newRootCmd()
	root.SetArgs([]string{"generate", "--count", "1440", "--start", "2025-10-06T00:00:00Z", "--seed", "5", "--out", path})
	require.NoError(t, root.Execute())

	_, err := os.Stat(path)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, runReplay(context.Background(), &out, path, "", "error"))
	assert.Contains(t, out.String(), `"accepted": 1440`)
	assert.Contains(t, out.String(), `"rejected": []`)
}
