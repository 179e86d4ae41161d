package evictors

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"request-metrics/internal/aggregators"
	"request-metrics/internal/models"
	"request-metrics/internal/shared/clocks"
	"request-metrics/internal/shared/loggers"
)

// EvictionListener is told about every eviction pass that removed at least one window.
//
//go:generate mockgen -source=eviction_policy.go -destination=./mocks/eviction_policy_mock.go -package=mocks
type EvictionListener interface {
	OnEvicted(ctx context.Context, cutoff time.Time, evicted []*models.Window)
}

type EvictionPolicy interface {
	// EvictExpired rolls the aggregator forward to now and drops closed windows that
	// ended at or before now - retention.
	EvictExpired(ctx context.Context, now time.Time) []*models.Window
	// Start runs EvictExpired on every tick until ctx is cancelled or Stop is called.
	Start(ctx context.Context)
	Stop()
}

type evictionPolicy struct {
	aggregator aggregators.WindowAggregator
	clock      clocks.Clock
	retention  time.Duration
	interval   time.Duration
	listeners  []EvictionListener

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewEvictionPolicy(
	aggregator aggregators.WindowAggregator,
	clock clocks.Clock,
	retention, interval time.Duration,
	logger loggers.Logger,
	listeners ...EvictionListener,
) EvictionPolicy {
	return &evictionPolicy{
		aggregator: aggregator,
		clock:      clock,
		retention:  retention,
		interval:   interval,
		listeners:  listeners,
		stopCh:     make(chan struct{}),
		logger:     logger,
	}
}

func (p *evictionPolicy) EvictExpired(ctx context.Context, now time.Time) []*models.Window {
	cutoff := now.Add(-p.retention)

	p.aggregator.Advance(now)
	evicted := p.aggregator.Evict(cutoff)
	metricEvictionRunsTotal.Inc()
	if len(evicted) == 0 {
		return nil
	}

	loggers.Ctx(ctx).Debug().
		Time(loggers.FieldCutoff, cutoff).
		Msgf("evicted %d windows", len(evicted))

	for _, listener := range p.listeners {
		listener.OnEvicted(ctx, cutoff, evicted)
	}
	return evicted
}

func (p *evictionPolicy) Start(ctx context.Context) {
	if p.interval <= 0 {
		return
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		p.runJanitor(ctx)
	}()
}

// Stop waits for the janitor to exit.
func (p *evictionPolicy) Stop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()
}

func (p *evictionPolicy) runJanitor(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	ctx = p.logger.With().Str(loggers.FieldComponent, "eviction_janitor").Logger().WithContext(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

func (p *evictionPolicy) tick(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg(fmt.Sprintf("eviction janitor panic recovered: %v", r))
			metricJanitorPanicsTotal.Inc()
		}
	}()

	p.EvictExpired(ctx, p.clock.Now())
}
