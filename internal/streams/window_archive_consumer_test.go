package streams

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	archivermocks "request-metrics/internal/archivers/mocks"
	"request-metrics/internal/events"
	"request-metrics/internal/shared/loggers"
	"request-metrics/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func windowEvictedEvent(minute int) events.WindowEvictedEvent {
	start := time.Date(2025, 10, 7, 12, minute, 0, 0, time.UTC)
	return events.WindowEvictedEvent{WindowStart: start, WindowEnd: start.Add(time.Minute), Bucket: 0, Count: 1}
}

func TestWindowArchiveConsumer_ArchivesQueuedEvents(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queue := NewPartitionedQueueWithSize[events.WindowEvictedEvent](2, 8)
	archiveService := archivermocks.NewMockArchiveService(ctrl)

	var archived atomic.Int32
	archiveService.EXPECT().
		Archive(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *events.WindowEvictedEvent) *svcerrors.ServiceError {
			archived.Add(1)
			return nil
		}).
		Times(3)

	consumer := NewWindowArchiveConsumer(queue, archiveService, loggers.Nop())
	consumer.Start(context.Background())

	for i := 0; i < 3; i++ {
		assert.True(t, queue.TryPublish(windowEvictedEvent(i).WindowStart.String(), windowEvictedEvent(i)))
	}

	assert.Eventually(t, func() bool { return archived.Load() == 3 }, time.Second, 5*time.Millisecond)
	consumer.Stop()
}

func TestWindowArchiveConsumer_StopDrainsQueue(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queue := NewPartitionedQueueWithSize[events.WindowEvictedEvent](1, 8)
	archiveService := archivermocks.NewMockArchiveService(ctrl)
	archiveService.EXPECT().Archive(gomock.Any(), gomock.Any()).Return(nil).Times(5)

	for i := 0; i < 5; i++ {
		assert.True(t, queue.TryPublish("k", windowEvictedEvent(i)))
	}

	consumer := NewWindowArchiveConsumer(queue, archiveService, loggers.Nop())
	consumer.Start(context.Background())
	consumer.Stop()

	assert.Len(t, queue.partitions[0], 0)
}

func TestWindowArchiveConsumer_RecoversFromPanic(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queue := NewPartitionedQueueWithSize[events.WindowEvictedEvent](1, 8)
	archiveService := archivermocks.NewMockArchiveService(ctrl)

	var calls atomic.Int32
	archiveService.EXPECT().
		Archive(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *events.WindowEvictedEvent) *svcerrors.ServiceError {
			if calls.Add(1) == 1 {
				panic("boom")
			}
			return svcerrors.NewInternalError("ARC_9000", nil)
		}).
		Times(2)

	consumer := NewWindowArchiveConsumer(queue, archiveService, loggers.Nop())
	consumer.Start(context.Background())

	assert.True(t, queue.TryPublish("k", windowEvictedEvent(0)))
	assert.True(t, queue.TryPublish("k", windowEvictedEvent(1)))

	assert.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, 5*time.Millisecond)
	consumer.Stop()
}

func TestWindowArchiveConsumer_ClosedQueueStopsWorkers(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queue := NewPartitionedQueueWithSize[events.WindowEvictedEvent](2, 8)
	archiveService := archivermocks.NewMockArchiveService(ctrl)
	archiveService.EXPECT().Archive(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	for i := 0; i < 3; i++ {
		assert.True(t, queue.TryPublish(windowEvictedEvent(i).WindowStart.String(), windowEvictedEvent(i)))
	}
	queue.Close()

	consumer := NewWindowArchiveConsumer(queue, archiveService, loggers.Nop())
	consumer.Start(context.Background())

	// Workers exit on their own once the closed partitions are empty.
	done := make(chan struct{})
	go func() {
		consumer.(*windowArchiveConsumer).wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("workers did not exit after the queue was closed")
	}
	consumer.Stop()
}

func TestWindowArchiveConsumer_DrainEndsOnClosedQueue(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queue := NewPartitionedQueueWithSize[events.WindowEvictedEvent](1, 8)
	archiveService := archivermocks.NewMockArchiveService(ctrl)
	archiveService.EXPECT().Archive(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	assert.True(t, queue.TryPublish("k", windowEvictedEvent(0)))
	assert.True(t, queue.TryPublish("k", windowEvictedEvent(1)))
	queue.Close()

	consumer := NewWindowArchiveConsumer(queue, archiveService, loggers.Nop())
	consumer.(*windowArchiveConsumer).drain(context.Background(), 0, queue.partitions[0])
}

func TestWindowArchiveConsumer_ContextCancelStopsWorkers(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queue := NewPartitionedQueueWithSize[events.WindowEvictedEvent](2, 8)
	archiveService := archivermocks.NewMockArchiveService(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	consumer := NewWindowArchiveConsumer(queue, archiveService, loggers.Nop())
	consumer.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		consumer.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("workers did not exit after cancel")
	}
}
