package queries

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"request-metrics/internal/models"
	"request-metrics/internal/shared/svcerrors"
)

const codeInvalidQuery = "QRY_1000"

// errInvalidQuery returns an error for malformed query parameters.
func errInvalidQuery(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidQuery, msg, cause)
}

// ParseTimeRange builds a range from optional RFC 3339 bounds. Empty bounds are open.
func ParseTimeRange(from, to string) (models.TimeRange, error) {
	var r models.TimeRange

	if s := strings.TrimSpace(from); s != "" {
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return r, errInvalidQuery(fmt.Sprintf("invalid from: %q is not an RFC 3339 timestamp", s), err)
		}
		r.From = t.UTC()
	}
	if s := strings.TrimSpace(to); s != "" {
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return r, errInvalidQuery(fmt.Sprintf("invalid to: %q is not an RFC 3339 timestamp", s), err)
		}
		r.To = t.UTC()
	}

	if !r.IsValid() {
		return models.TimeRange{}, errInvalidQuery("invalid range: from must be before to", nil)
	}
	return r, nil
}

// ParseLimit reads a positive row limit, falling back to def when s is empty.
func ParseLimit(s string, def, max int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errInvalidQuery(fmt.Sprintf("invalid limit: %q is not an integer", s), err)
	}
	if n < 1 || n > max {
		return 0, errInvalidQuery(fmt.Sprintf("invalid limit: must be between 1 and %d", max), nil)
	}
	return n, nil
}
