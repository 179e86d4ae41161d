package models

import "time"

// TimeRange is the half-open interval [From, To). A zero bound is unbounded on that side.
type TimeRange struct {
	From time.Time
	To   time.Time
}

// AllTime is the unbounded range.
func AllTime() TimeRange {
	return TimeRange{}
}

func NewTimeRange(from, to time.Time) TimeRange {
	return TimeRange{From: from, To: to}
}

// Contains reports whether [start, end) lies entirely inside the range.
func (r TimeRange) Contains(start, end time.Time) bool {
	if !r.From.IsZero() && start.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && end.After(r.To) {
		return false
	}
	return true
}

// StartsBefore reports whether the range reaches further back than t.
func (r TimeRange) StartsBefore(t time.Time) bool {
	return r.From.IsZero() || r.From.Before(t)
}

func (r TimeRange) IsValid() bool {
	return r.From.IsZero() || r.To.IsZero() || r.From.Before(r.To)
}
