package engines

import (
	"fmt"
	"time"

	"request-metrics/internal/aggregators"
	"request-metrics/internal/evictors"
	"request-metrics/internal/ingestors"
	"request-metrics/internal/models"
	"request-metrics/internal/queries"
	"request-metrics/internal/shared/clocks"
	"request-metrics/internal/shared/configs"
	"request-metrics/internal/shared/loggers"
)

// Options are the knobs of one in-process engine.
type Options struct {
	BucketDuration   time.Duration
	Retention        time.Duration
	EvictionInterval time.Duration
	MaxClockSkew     time.Duration
	RecentCapacity   int
	AllowedRegions   []string
}

func OptionsFromConfig(cfg *configs.Config) Options {
	return Options{
		BucketDuration:   cfg.Aggregation.BucketDuration,
		Retention:        cfg.Aggregation.Retention,
		EvictionInterval: cfg.Aggregation.EvictionInterval,
		MaxClockSkew:     cfg.Aggregation.MaxClockSkew,
		RecentCapacity:   cfg.Aggregation.RecentCapacity,
		AllowedRegions:   cfg.Ingest.AllowedRegions,
	}
}

// Engine is the ingest buffer, aggregator, eviction policy and query engine wired together.
type Engine struct {
	Clock      clocks.Clock
	Aggregator aggregators.WindowAggregator
	Registry   ingestors.IDRegistry
	Evictor    evictors.EvictionPolicy
	Buffer     ingestors.IngestBuffer
	Queries    queries.QueryEngine
}

// New builds an engine. The id registry always listens to evictions; extra listeners
// (such as the archive producer) are notified after it.
func New(opts Options, clock clocks.Clock, logger loggers.Logger, listeners ...evictors.EvictionListener) (*Engine, error) {
	span, err := models.NewBucketSpan(opts.BucketDuration)
	if err != nil {
		return nil, fmt.Errorf("invalid bucket duration: %w", err)
	}
	if opts.Retention < opts.BucketDuration {
		return nil, fmt.Errorf("retention %s must be at least the bucket duration %s", opts.Retention, opts.BucketDuration)
	}

	aggregator := aggregators.NewWindowAggregator(span, opts.Retention)
	registry := ingestors.NewIDRegistry()

	all := make([]evictors.EvictionListener, 0, len(listeners)+1)
	all = append(all, registry)
	all = append(all, listeners...)
	evictor := evictors.NewEvictionPolicy(aggregator, clock, opts.Retention, opts.EvictionInterval, logger, all...)

	buffer := ingestors.NewIngestBuffer(
		aggregator,
		evictor,
		registry,
		ingestors.NewRecentRequests(opts.RecentCapacity),
		clock,
		ingestors.Rules{
			AllowedRegions: opts.AllowedRegions,
			MaxClockSkew:   opts.MaxClockSkew,
			Retention:      opts.Retention,
		},
	)

	return &Engine{
		Clock:      clock,
		Aggregator: aggregator,
		Registry:   registry,
		Evictor:    evictor,
		Buffer:     buffer,
		Queries:    queries.NewQueryEngine(aggregator),
	}, nil
}
