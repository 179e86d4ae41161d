package models

import (
	"fmt"
	"maps"
	"time"
)

type WindowState int

const (
	WindowActive WindowState = iota
	WindowClosed
	WindowEvicted
)

func (s WindowState) String() string {
	switch s {
	case WindowActive:
		return "active"
	case WindowClosed:
		return "closed"
	case WindowEvicted:
		return "evicted"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Window is the aggregate of every event whose timestamp falls in [Start, End).
// Only the aggregator mutates a window, and only while it is Active.
type Window struct {
	Start                 time.Time
	End                   time.Time
	Count                 int64
	SumLatencyMs          int64
	ErrorCount            int64
	ErrorsByRegion        map[string]int64
	RequestsByRegion      map[string]int64
	RequestsByStatusClass map[string]int64
	State                 WindowState
}

func NewWindow(start time.Time, span BucketSpan) *Window {
	start = span.Align(start)
	return &Window{
		Start:                 start,
		End:                   start.Add(span.Duration()),
		ErrorsByRegion:        make(map[string]int64),
		RequestsByRegion:      make(map[string]int64),
		RequestsByStatusClass: make(map[string]int64),
		State:                 WindowActive,
	}
}

// Covers reports whether t falls inside [Start, End).
func (w *Window) Covers(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Add folds e into the window. The caller guarantees Covers(e.Timestamp).
func (w *Window) Add(e *Event) {
	w.Count++
	w.SumLatencyMs += e.LatencyMs
	w.RequestsByRegion[e.Region]++
	w.RequestsByStatusClass[e.StatusClass()]++
	if e.IsError() {
		w.ErrorCount++
		w.ErrorsByRegion[e.Region]++
	}
}

// AverageLatencyMs returns 0 for an empty window.
func (w *Window) AverageLatencyMs() float64 {
	if w.Count == 0 {
		return 0
	}
	return float64(w.SumLatencyMs) / float64(w.Count)
}

func (w *Window) Close() error {
	if w.State != WindowActive {
		return fmt.Errorf("cannot close window %s in state %s", w.Start.Format(time.RFC3339), w.State)
	}
	w.State = WindowClosed
	return nil
}

func (w *Window) MarkEvicted() error {
	if w.State != WindowClosed {
		return fmt.Errorf("cannot evict window %s in state %s", w.Start.Format(time.RFC3339), w.State)
	}
	w.State = WindowEvicted
	return nil
}

// Clone returns a deep copy; the tally maps are never shared.
func (w *Window) Clone() *Window {
	c := *w
	c.ErrorsByRegion = maps.Clone(w.ErrorsByRegion)
	c.RequestsByRegion = maps.Clone(w.RequestsByRegion)
	c.RequestsByStatusClass = maps.Clone(w.RequestsByStatusClass)
	return &c
}

// CheckInvariants verifies the tally relations every window must hold.
func (w *Window) CheckInvariants() error {
	if w.ErrorCount < 0 || w.Count < w.ErrorCount {
		return fmt.Errorf("count %d must be >= error count %d >= 0", w.Count, w.ErrorCount)
	}
	if w.SumLatencyMs < 0 {
		return fmt.Errorf("negative latency sum %d", w.SumLatencyMs)
	}
	if s := sumValues(w.ErrorsByRegion); s != w.ErrorCount {
		return fmt.Errorf("errors by region sum %d != error count %d", s, w.ErrorCount)
	}
	if s := sumValues(w.RequestsByRegion); s != w.Count {
		return fmt.Errorf("requests by region sum %d != count %d", s, w.Count)
	}
	if s := sumValues(w.RequestsByStatusClass); s != w.Count {
		return fmt.Errorf("requests by status class sum %d != count %d", s, w.Count)
	}
	return nil
}

func sumValues(m map[string]int64) int64 {
	var total int64
	for _, v := range m {
		total += v
	}
	return total
}
