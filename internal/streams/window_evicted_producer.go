package streams

import (
	"context"
	"time"

	"request-metrics/internal/events"
	"request-metrics/internal/models"
	"request-metrics/internal/shared/clocks"
	"request-metrics/internal/shared/loggers"
)

// WindowEvictedProducer turns evicted windows into WindowEvictedEvents on the archive queue.
// It is registered as an eviction listener and runs on the ingest path, so it never
// blocks: when a partition is full the event is dropped and counted.
//
// Partition strategy: the key is the formatted window start (for example "20251007T1224Z"
// for a one-minute bucket). Windows are written once each, so the key only spreads load
// across the consumer's workers.
//
// Windows with no events are not published.
//
//go:generate mockgen -source=window_evicted_producer.go -destination=./mocks/window_evicted_producer_mock.go -package=mocks
type WindowEvictedProducer interface {
	OnEvicted(ctx context.Context, cutoff time.Time, evicted []*models.Window)
}

type windowEvictedProducer struct {
	queue *PartitionedQueue[events.WindowEvictedEvent]
	span  models.BucketSpan
	clock clocks.Clock
}

func NewWindowEvictedProducer(queue *PartitionedQueue[events.WindowEvictedEvent], span models.BucketSpan, clock clocks.Clock) WindowEvictedProducer {
	return &windowEvictedProducer{queue: queue, span: span, clock: clock}
}

func (producer *windowEvictedProducer) OnEvicted(ctx context.Context, _ time.Time, evicted []*models.Window) {
	evictedAt := producer.clock.Now()
	for _, w := range evicted {
		if w.Count == 0 {
			continue
		}

		event := events.NewWindowEvictedEvent(w, producer.span, evictedAt)
		if !producer.queue.TryPublish(event.PartitionKey(), event) {
			metricWindowEvictedDroppedTotal.WithLabelValues(streamWindowEvicted).Inc()
			loggers.Ctx(ctx).Warn().
				Str(loggers.FieldWindowStart, event.PartitionKey()).
				Msg("archive queue full, evicted window dropped")
			continue
		}
		metricWindowEvictedPublishedTotal.WithLabelValues(streamWindowEvicted).Inc()
	}
}
