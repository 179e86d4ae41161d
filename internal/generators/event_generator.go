package generators

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"request-metrics/internal/models"
)

// Distribution selects how latencies are drawn.
type Distribution string

const (
	// DistributionGaussian draws latencies around 250ms with an 80ms deviation.
	DistributionGaussian Distribution = "gaussian"
	// DistributionUniform draws latencies evenly across the clamp range.
	DistributionUniform Distribution = "uniform"
)

const (
	MinLatencyMs = 50
	MaxLatencyMs = 900

	meanLatencyMs   = 250
	stddevLatencyMs = 80
)

var (
	StatusCodes = []int{200, 201, 400, 404, 500, 504}
	Regions     = []string{"EU", "US", "APAC"}
)

// Options configure one generated series. Events are spaced Interval apart from Start
// and carry consecutive ids from FirstID.
type Options struct {
	Count        int
	Start        time.Time
	Interval     time.Duration
	FirstID      int64
	Seed         int64
	Distribution Distribution
}

// Generate returns Count synthetic events in timestamp order. The same Options always
// produce the same events.
func Generate(opts Options) ([]*models.Event, error) {
	if opts.Count < 1 {
		return nil, fmt.Errorf("count must be at least 1, got %d", opts.Count)
	}
	if opts.Interval <= 0 {
		return nil, fmt.Errorf("interval must be positive, got %s", opts.Interval)
	}
	if opts.Start.IsZero() {
		return nil, fmt.Errorf("start is required")
	}

	random := rand.New(rand.NewSource(opts.Seed))

	var latency func() int64
	switch opts.Distribution {
	case DistributionGaussian, "":
		latency = func() int64 {
			ms := math.Round(meanLatencyMs + stddevLatencyMs*random.NormFloat64())
			return int64(min(max(ms, MinLatencyMs), MaxLatencyMs))
		}
	case DistributionUniform:
		latency = func() int64 {
			return MinLatencyMs + random.Int63n(MaxLatencyMs-MinLatencyMs+1)
		}
	default:
		return nil, fmt.Errorf("unknown distribution %q", opts.Distribution)
	}

	firstID := opts.FirstID
	if firstID == 0 {
		firstID = 1
	}

	start := opts.Start.UTC()
	generated := make([]*models.Event, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		generated = append(generated, &models.Event{
			ID:         firstID + int64(i),
			Timestamp:  start.Add(time.Duration(i) * opts.Interval),
			LatencyMs:  latency(),
			StatusCode: StatusCodes[random.Intn(len(StatusCodes))],
			Region:     Regions[random.Intn(len(Regions))],
		})
	}
	return generated, nil
}
