package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"request-metrics/internal/archivers"
	"request-metrics/internal/events"
	"request-metrics/internal/shared/loggers"
	"request-metrics/internal/shared/metrics"
	"request-metrics/internal/shared/svcerrors"
	"request-metrics/internal/shared/ulid"
)

//go:generate mockgen -source=window_archive_consumer.go -destination=./mocks/window_archive_consumer_mock.go -package=mocks
type WindowArchiveConsumer interface {
	Start(ctx context.Context)
	Stop()
}

type windowArchiveConsumer struct {
	queue          *PartitionedQueue[events.WindowEvictedEvent]
	archiveService archivers.ArchiveService

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewWindowArchiveConsumer(queue *PartitionedQueue[events.WindowEvictedEvent], archiveService archivers.ArchiveService, logger loggers.Logger) WindowArchiveConsumer {
	return &windowArchiveConsumer{
		queue:          queue,
		archiveService: archiveService,
		stopCh:         make(chan struct{}),
		logger:         logger,
	}
}

// Start spawns 1 worker goroutine per partition.
func (consumer *windowArchiveConsumer) Start(ctx context.Context) {
	for partitionIndex := 0; partitionIndex < consumer.queue.PartitionCount(); partitionIndex++ {
		ch := consumer.queue.partitions[partitionIndex]
		consumer.wg.Add(1)
		go func() {
			defer consumer.wg.Done()

			consumer.runPartitionWorker(ctx, partitionIndex, ch)
		}()
	}
}

// Stop archives whatever is already queued, then waits for the workers to exit.
// Cancelling the Start context exits without draining.
func (consumer *windowArchiveConsumer) Stop() {
	consumer.stopOnce.Do(func() { close(consumer.stopCh) })
	consumer.wg.Wait()
}

func (consumer *windowArchiveConsumer) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan events.WindowEvictedEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-consumer.stopCh:
			consumer.drain(ctx, partitionIndex, ch)
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			consumer.handle(ctx, partitionIndex, &event)
		}
	}
}

func (consumer *windowArchiveConsumer) drain(ctx context.Context, partitionIndex int, ch <-chan events.WindowEvictedEvent) {
	for {
		select {
		case event, ok := <-ch:
			if !ok {
				return
			}
			consumer.handle(ctx, partitionIndex, &event)
		default:
			return
		}
	}
}

func (consumer *windowArchiveConsumer) handle(ctx context.Context, partitionIndex int, event *events.WindowEvictedEvent) {
	ctx = consumer.logger.With().
		Str(loggers.FieldPartitionId, fmt.Sprintf("%d", partitionIndex)).
		Str(loggers.FieldRequestID, ulid.NewULID()).
		Logger().WithContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("consumer panic recovered")

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}

			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricWindowEvictedConsumedTotal.WithLabelValues(streamWindowEvicted, svcErr.Code).Inc()
		}
	}()

	if svcError := consumer.archiveService.Archive(ctx, event); svcError != nil {
		metricWindowEvictedConsumedTotal.WithLabelValues(streamWindowEvicted, svcError.Code).Inc()
		return
	}
	metricWindowEvictedConsumedTotal.WithLabelValues(streamWindowEvicted, metrics.ValueNoError).Inc()
}
