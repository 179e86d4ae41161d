package archivers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"request-metrics/internal/events"
	"request-metrics/internal/models"
	"request-metrics/internal/shared/clocks"
	"request-metrics/internal/shared/loggers"
	"request-metrics/internal/shared/metrics"
	"request-metrics/internal/shared/svcerrors"
	"request-metrics/internal/stores"
)

//go:generate mockgen -source=archive_service.go -destination=./mocks/archive_service_mock.go -package=mocks
type ArchiveService interface {
	Archive(ctx context.Context, event *events.WindowEvictedEvent) *svcerrors.ServiceError
	// Windows reads back the archived windows starting in [r.From, r.To), oldest first.
	// Both bounds are required and the range may span at most MaxWindowsRange.
	Windows(ctx context.Context, r models.TimeRange) ([]*models.ArchivedWindow, *svcerrors.ServiceError)
}

// MaxWindowsRange bounds one archive read to a week of windows.
const MaxWindowsRange = 7 * 24 * time.Hour

type archiveService struct {
	archiveStore stores.WindowArchiveStore
	clock        clocks.Clock
}

func NewArchiveService(archiveStore stores.WindowArchiveStore, clock clocks.Clock) ArchiveService {
	return &archiveService{archiveStore: archiveStore, clock: clock}
}

func (s *archiveService) Archive(ctx context.Context, event *events.WindowEvictedEvent) *svcerrors.ServiceError {
	logger := loggers.Ctx(ctx)
	logger.Debug().
		Str(loggers.FieldWindowStart, event.PartitionKey()).
		Msg("started archiving evicted window")

	archived := &models.ArchivedWindow{
		WindowStart:           event.WindowStart,
		WindowEnd:             event.WindowEnd,
		Bucket:                event.Bucket.String(),
		Count:                 event.Count,
		SumLatencyMs:          event.SumLatencyMs,
		ErrorCount:            event.ErrorCount,
		ErrorsByRegion:        event.ErrorsByRegion,
		RequestsByRegion:      event.RequestsByRegion,
		RequestsByStatusClass: event.RequestsByStatusClass,
		EvictedAt:             event.EvictedAt,
		ArchivedAt:            s.clock.Now(),
	}
	if event.Count > 0 {
		archived.AverageLatencyMs = float64(event.SumLatencyMs) / float64(event.Count)
	}

	if err := s.archiveStore.Put(ctx, archived); err != nil {
		var svcErr *svcerrors.ServiceError
		if errors.Is(err, stores.ErrWindowAlreadyArchived) {
			svcErr = errWindowAlreadyArchived(err)
			logger.Warn().Str(loggers.FieldErrorCode, svcErr.Code).Msg(err.Error())
		} else {
			svcErr = errInternalArchiveStoreFailed(err)
			logger.Error().Str(loggers.FieldErrorCode, svcErr.Code).Err(err).Msg("failed to archive window")
		}
		metricWindowArchivedTotal.WithLabelValues(svcErr.Code).Inc()
		return svcErr
	}

	metricWindowArchivedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return nil
}

func (s *archiveService) Windows(ctx context.Context, r models.TimeRange) ([]*models.ArchivedWindow, *svcerrors.ServiceError) {
	switch {
	case r.From.IsZero() || r.To.IsZero():
		return nil, errInvalidArchiveRange("from and to are both required")
	case !r.IsValid():
		return nil, errInvalidArchiveRange("from must be before to")
	case r.To.Sub(r.From) > MaxWindowsRange:
		return nil, errInvalidArchiveRange(fmt.Sprintf("range must not exceed %s", MaxWindowsRange))
	}

	windows, err := s.archiveStore.List(ctx, r.From, r.To)
	if err != nil {
		svcErr := errInternalArchiveStoreFailed(err)
		loggers.Ctx(ctx).Error().Str(loggers.FieldErrorCode, svcErr.Code).Err(err).Msg("failed to read archived windows")
		return nil, svcErr
	}
	return windows, nil
}
