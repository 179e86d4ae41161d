package ingestors

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"request-metrics/internal/aggregators"
	"request-metrics/internal/evictors"
	"request-metrics/internal/models"
	"request-metrics/internal/shared/clocks"
	"request-metrics/internal/shared/loggers"
	"request-metrics/internal/shared/metrics"
	"request-metrics/internal/shared/svcerrors"
	"request-metrics/internal/shared/validators"
)

// Rules are the admission checks applied on top of the Event struct tags.
type Rules struct {
	// AllowedRegions restricts regions when non-empty. Entries are normalized like event regions.
	AllowedRegions []string
	// MaxClockSkew is how far past the clock an event timestamp may be.
	MaxClockSkew time.Duration
	// Retention rejects events older than now minus Retention as late. Zero disables the check.
	Retention time.Duration
}

//go:generate mockgen -source=ingest_buffer.go -destination=./mocks/ingest_buffer_mock.go -package=mocks
type IngestBuffer interface {
	// Ingest validates and folds one event and returns its acknowledgment sequence.
	// Sequences start at 1 and never repeat, not even across Reset.
	Ingest(ctx context.Context, event *models.Event) (uint64, error)
	// RecentRequests returns up to k of the latest accepted events, oldest first.
	RecentRequests(k int) []models.RecentRequest
	// Reset drops every window, remembered id and recent entry.
	Reset(ctx context.Context)
}

type ingestBuffer struct {
	mu  sync.Mutex
	seq uint64

	aggregator aggregators.WindowAggregator
	evictor    evictors.EvictionPolicy
	registry   IDRegistry
	recent     *RecentRequests
	clock      clocks.Clock

	validate       *validators.Validate
	allowedRegions map[string]struct{}
	maxClockSkew   time.Duration
	retention      time.Duration
}

func NewIngestBuffer(
	aggregator aggregators.WindowAggregator,
	evictor evictors.EvictionPolicy,
	registry IDRegistry,
	recent *RecentRequests,
	clock clocks.Clock,
	rules Rules,
) IngestBuffer {
	validate := validators.New()
	validate.RegisterTagNameFunc(jsonFieldName)

	var allowed map[string]struct{}
	if len(rules.AllowedRegions) > 0 {
		allowed = make(map[string]struct{}, len(rules.AllowedRegions))
		for _, region := range rules.AllowedRegions {
			allowed[NormalizeRegion(region)] = struct{}{}
		}
	}

	return &ingestBuffer{
		aggregator:     aggregator,
		evictor:        evictor,
		registry:       registry,
		recent:         recent,
		clock:          clock,
		validate:       validate,
		allowedRegions: allowed,
		maxClockSkew:   rules.MaxClockSkew,
		retention:      rules.Retention,
	}
}

func (b *ingestBuffer) Ingest(ctx context.Context, event *models.Event) (uint64, error) {
	if event == nil {
		return 0, b.reject(errValidationFailed("event is required", nil))
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.clock.Now()

	e := *event
	e.Region = NormalizeRegion(e.Region)
	e.Timestamp = e.Timestamp.UTC()

	if svcErr := b.validateEvent(&e, now); svcErr != nil {
		return 0, b.reject(svcErr)
	}
	if b.registry.Seen(e.ID) {
		return 0, b.reject(errDuplicateEvent(fmt.Sprintf("event id %d was already ingested", e.ID)))
	}
	// Anything before the cutoff can only land in an evicted window.
	if b.retention > 0 {
		if cutoff := now.Add(-b.retention); e.Timestamp.Before(cutoff) {
			return 0, b.reject(errLateEvent(fmt.Errorf("%w: timestamp %s is before the retention cutoff %s",
				aggregators.ErrLateEvent, e.Timestamp.Format(time.RFC3339Nano), cutoff.Format(time.RFC3339Nano))))
		}
	}

	if err := b.aggregator.Fold(&e); err != nil {
		if errors.Is(err, aggregators.ErrLateEvent) {
			return 0, b.reject(errLateEvent(err))
		}
		return 0, b.reject(svcerrors.NewInternalErrorUndefined(err))
	}

	b.registry.Register(e.ID, e.Timestamp)
	b.seq++
	b.recent.Push(models.NewRecentRequest(&e))
	metricEventIngestedTotal.WithLabelValues(metrics.ValueNoError).Inc()

	loggers.Ctx(ctx).Debug().
		Int64(loggers.FieldEventID, e.ID).
		Uint64(loggers.FieldSequence, b.seq).
		Msg("event ingested")

	b.evictor.EvictExpired(ctx, now)

	return b.seq, nil
}

func (b *ingestBuffer) reject(svcErr *svcerrors.ServiceError) error {
	metricEventIngestedTotal.WithLabelValues(svcErr.Code).Inc()
	return svcErr
}

func (b *ingestBuffer) validateEvent(e *models.Event, now time.Time) *svcerrors.ServiceError {
	if err := b.validate.Struct(e); err != nil {
		var ve validators.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, formatFieldError(fe))
			}
			return errValidationFailed("invalid event: "+strings.Join(msgs, ", "), err)
		}
		return errValidationFailed("invalid event", err)
	}

	if e.Timestamp.IsZero() {
		return errValidationFailed("invalid event: timestamp (required)", nil)
	}

	if b.allowedRegions != nil {
		if _, ok := b.allowedRegions[e.Region]; !ok {
			return errValidationFailed(fmt.Sprintf("invalid event: region %q is not allowed", e.Region), nil)
		}
	}

	if e.Timestamp.After(now.Add(b.maxClockSkew)) {
		return errValidationFailed(
			fmt.Sprintf("invalid event: timestamp %s is ahead of the clock by more than %s",
				e.Timestamp.Format(time.RFC3339Nano), b.maxClockSkew),
			nil,
		)
	}
	return nil
}

func (b *ingestBuffer) RecentRequests(k int) []models.RecentRequest {
	return b.recent.Last(k)
}

func (b *ingestBuffer) Reset(ctx context.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.aggregator.Reset()
	b.registry.Reset()
	b.recent.Reset()

	loggers.Ctx(ctx).Info().Uint64(loggers.FieldSequence, b.seq).Msg("ingest state reset")
}

func formatFieldError(fe validators.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s (required)", fe.Field())
	case "min", "max", "gte":
		return fmt.Sprintf("%s (%s=%s)", fe.Field(), fe.Tag(), fe.Param())
	default:
		return fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag())
	}
}

// jsonFieldName reports validation errors by wire name ("latency_ms") instead of Go name.
func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return field.Name
	}
	return name
}
