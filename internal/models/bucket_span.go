package models

import (
	"fmt"
	"time"
)

// BucketSpan is the fixed duration of every window. The span divides a day, so windows
// start on multiples of the span counted from UTC midnight.
type BucketSpan time.Duration

const day = 24 * time.Hour

func NewBucketSpan(d time.Duration) (BucketSpan, error) {
	if d <= 0 {
		return 0, fmt.Errorf("bucket span must be positive, got %s", d)
	}
	if day%d != 0 {
		return 0, fmt.Errorf("bucket span must divide 24h evenly, got %s", d)
	}
	return BucketSpan(d), nil
}

func (s BucketSpan) Duration() time.Duration {
	return time.Duration(s)
}

// Align returns the start of the window containing t.
func (s BucketSpan) Align(t time.Time) time.Time {
	return t.UTC().Truncate(s.Duration())
}

// FormatWindowStart renders the aligned window start at the precision the span needs.
func (s BucketSpan) FormatWindowStart(t time.Time) string {
	utc := s.Align(t)

	switch d := s.Duration(); {
	case d%time.Hour == 0:
		return utc.Format("20060102T15Z")
	case d%time.Minute == 0:
		return utc.Format("20060102T1504Z")
	default:
		return utc.Format("20060102T150405Z")
	}
}

func (s BucketSpan) String() string {
	return s.Duration().String()
}
