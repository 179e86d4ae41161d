package ingestors

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"request-metrics/internal/models"
	"request-metrics/internal/shared/svcerrors"
)

const maxBodyBytes = 1 << 20

// DecodedEvent is one element of a batch body. Exactly one of Event and Err is set.
type DecodedEvent struct {
	Index int
	ID    *int64
	Event *models.Event
	Err   error
}

// wireEvent accepts both latency_ms and the older response_time_ms field name.
type wireEvent struct {
	ID             *int64  `json:"id"`
	Timestamp      *string `json:"timestamp"`
	LatencyMs      *int64  `json:"latency_ms"`
	ResponseTimeMs *int64  `json:"response_time_ms"`
	StatusCode     *int    `json:"status_code"`
	Region         *string `json:"region"`
}

// ParseEvent decodes a single JSON event object.
func ParseEvent(r io.Reader) (*models.Event, error) {
	buf, err := readWithLimit(r, maxBodyBytes)
	if err != nil {
		return nil, err
	}

	var w wireEvent
	if err := decodeStrict(buf, &w); err != nil {
		return nil, errValidationFailed("invalid json", err)
	}
	event, svcErr := w.toEvent()
	if svcErr != nil {
		return nil, svcErr
	}
	return event, nil
}

// ParseEvents decodes a JSON array of events. A body that is not an array fails as a
// whole; a malformed element only fails its own DecodedEvent.
func ParseEvents(r io.Reader) ([]DecodedEvent, error) {
	buf, err := readWithLimit(r, maxBodyBytes)
	if err != nil {
		return nil, err
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(buf, &raw); err != nil {
		return nil, errValidationFailed("invalid json: expected an array of events", err)
	}
	if len(raw) == 0 {
		return nil, errValidationFailed("events cannot be empty", nil)
	}

	decoded := make([]DecodedEvent, 0, len(raw))
	for i, item := range raw {
		d := DecodedEvent{Index: i}
		var w wireEvent
		if err := decodeStrict(item, &w); err != nil {
			d.Err = errValidationFailed(fmt.Sprintf("item at index %d: invalid json", i), err)
		} else {
			d.ID = w.ID
			event, svcErr := w.toEvent()
			if svcErr != nil {
				d.Err = errValidationFailed(fmt.Sprintf("item at index %d: %s", i, svcErr.Message), svcErr.Cause)
			} else {
				d.Event = event
			}
		}
		decoded = append(decoded, d)
	}
	return decoded, nil
}

func decodeStrict(buf []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(buf))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func (w *wireEvent) toEvent() (*models.Event, *svcerrors.ServiceError) {
	if w.ID == nil {
		return nil, errValidationFailed("missing id", nil)
	}
	if w.Timestamp == nil {
		return nil, errValidationFailed("missing timestamp", nil)
	}
	ts, svcErr := parseTime(*w.Timestamp)
	if svcErr != nil {
		return nil, svcErr
	}

	latency := w.LatencyMs
	if latency == nil {
		latency = w.ResponseTimeMs
	}
	if latency == nil {
		return nil, errValidationFailed("missing latency_ms", nil)
	}
	if w.StatusCode == nil {
		return nil, errValidationFailed("missing status_code", nil)
	}
	if w.Region == nil {
		return nil, errValidationFailed("missing region", nil)
	}

	return &models.Event{
		ID:         *w.ID,
		Timestamp:  ts,
		LatencyMs:  *latency,
		StatusCode: *w.StatusCode,
		Region:     NormalizeRegion(*w.Region),
	}, nil
}

// NormalizeRegion trims and upper-cases a region name.
func NormalizeRegion(region string) string {
	return strings.ToUpper(strings.TrimSpace(region))
}

// ParseTimestamp accepts RFC 3339 with any fractional precision and any offset and
// returns the instant in UTC.
func ParseTimestamp(s string) (time.Time, error) {
	t, svcErr := parseTime(s)
	if svcErr != nil {
		return time.Time{}, svcErr
	}
	return t, nil
}

func parseTime(s string) (time.Time, *svcerrors.ServiceError) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, errValidationFailed(fmt.Sprintf("invalid timestamp format: %s", s), nil)
	}
	return t.UTC(), nil
}

// readWithLimit reads up to max+1 bytes from r and checks if it exceeds max.
func readWithLimit(r io.Reader, max int64) ([]byte, error) {
	if r == nil {
		return nil, errValidationFailed("empty request body", nil)
	}

	buf, err := io.ReadAll(io.LimitReader(r, max+1))
	if err != nil {
		return nil, errValidationFailed("failed to read request body", err)
	}
	if int64(len(buf)) > max {
		return nil, errValidationFailed("request body too large: must be <= 1MB", nil)
	}
	if len(bytes.TrimSpace(buf)) == 0 {
		return nil, errValidationFailed("empty request body", nil)
	}
	return buf, nil
}
