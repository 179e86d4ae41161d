package generators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC)

func TestGenerate_Shape(t *testing.T) {
	t.Parallel()

	for _, dist := range []Distribution{DistributionGaussian, DistributionUniform} {
		t.Run(string(dist), func(t *testing.T) {
			t.Parallel()

			generated, err := Generate(Options{Count: 1440, Start: start, Interval: time.Minute, Seed: 7, Distribution: dist})
			require.NoError(t, err)
			require.Len(t, generated, 1440)

			for i, e := range generated {
				assert.Equal(t, int64(i+1), e.ID)
				assert.Equal(t, start.Add(time.Duration(i)*time.Minute), e.Timestamp)
				assert.GreaterOrEqual(t, e.LatencyMs, int64(MinLatencyMs))
				assert.LessOrEqual(t, e.LatencyMs, int64(MaxLatencyMs))
				assert.Contains(t, StatusCodes, e.StatusCode)
				assert.Contains(t, Regions, e.Region)
			}
		})
	}
}

func TestGenerate_GaussianCentersOnMean(t *testing.T) {
	t.Parallel()

	generated, err := Generate(Options{Count: 5000, Start: start, Interval: time.Second, Seed: 42})
	require.NoError(t, err)

	var sum int64
	for _, e := range generated {
		sum += e.LatencyMs
	}
	assert.InDelta(t, 250, float64(sum)/float64(len(generated)), 10)
}

func TestGenerate_SameSeedSameEvents(t *testing.T) {
	t.Parallel()

	opts := Options{Count: 100, Start: start, Interval: time.Minute, FirstID: 1000, Seed: 3, Distribution: DistributionUniform}
	a, err := Generate(opts)
	require.NoError(t, err)
	b, err := Generate(opts)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, int64(1000), a[0].ID)

	opts.Seed = 4
	c, err := Generate(opts)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestGenerate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts Options
		want string
	}{
		{name: "no events", opts: Options{Start: start, Interval: time.Minute}, want: "count must be at least 1"},
		{name: "zero interval", opts: Options{Count: 1, Start: start}, want: "interval must be positive"},
		{name: "no start", opts: Options{Count: 1, Interval: time.Minute}, want: "start is required"},
		{name: "bad distribution", opts: Options{Count: 1, Start: start, Interval: time.Minute, Distribution: "poisson"}, want: `unknown distribution "poisson"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Generate(tt.opts)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}
