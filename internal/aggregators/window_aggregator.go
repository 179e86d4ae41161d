package aggregators

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"request-metrics/internal/models"
)

// ErrLateEvent is returned by Fold when the event belongs to a window that is already closed.
var ErrLateEvent = errors.New("event precedes the active window")

//go:generate mockgen -source=window_aggregator.go -destination=./mocks/window_aggregator_mock.go -package=mocks
type WindowAggregator interface {
	// Fold adds the event to the active window, rolling over first when the event
	// belongs to a later window. The first event after construction or Reset opens the
	// first window.
	Fold(event *models.Event) error
	// Advance closes the active window once now reaches its end.
	Advance(now time.Time)
	// Evict removes closed windows ending at or before cutoff and returns them in the
	// Evicted state, oldest first.
	Evict(cutoff time.Time) []*models.Window
	Snapshot() models.View
	Reset()
	Span() models.BucketSpan
}

type windowAggregator struct {
	span      models.BucketSpan
	retention time.Duration
	maxClosed int

	mu      sync.RWMutex
	active  *models.Window
	pending []*models.Window // pushed out of closed by the cap, not yet handed to Evict
	horizon time.Time

	// closed is replaced, never modified in place, so a loaded slice stays valid.
	closed atomic.Pointer[[]*models.Window]
}

func NewWindowAggregator(span models.BucketSpan, retention time.Duration) WindowAggregator {
	a := &windowAggregator{
		span:      span,
		retention: retention,
		maxClosed: MaxClosedWindows(span, retention),
	}
	a.closed.Store(&[]*models.Window{})
	return a
}

// MaxClosedWindows is the bound on retained closed windows: ceil(retention/span) + 1.
func MaxClosedWindows(span models.BucketSpan, retention time.Duration) int {
	d := span.Duration()
	n := int(retention / d)
	if retention%d != 0 {
		n++
	}
	return n + 1
}

func (a *windowAggregator) Span() models.BucketSpan {
	return a.span
}

func (a *windowAggregator) Fold(event *models.Event) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch {
	case a.active == nil:
		a.active = models.NewWindow(event.Timestamp, a.span)
		metricWindowsOpenedTotal.Inc()
	case event.Timestamp.Before(a.active.Start):
		return fmt.Errorf("event at %s, active window starts %s: %w",
			event.Timestamp.UTC().Format(time.RFC3339Nano), a.active.Start.Format(time.RFC3339), ErrLateEvent)
	case !a.active.Covers(event.Timestamp):
		a.advanceLocked(event.Timestamp)
	}

	a.active.Add(event)
	metricEventsFoldedTotal.WithLabelValues(event.StatusClass()).Inc()
	return nil
}

func (a *windowAggregator) Advance(now time.Time) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.advanceLocked(now)
}

func (a *windowAggregator) advanceLocked(now time.Time) {
	if a.active == nil || now.Before(a.active.End) {
		return
	}

	current := *a.closed.Load()
	next := make([]*models.Window, 0, len(current)+2)
	next = append(next, current...)

	_ = a.active.Close()
	next = append(next, a.active)
	metricWindowsClosedTotal.Inc()

	newStart := a.span.Align(now)
	gapStart := a.active.End
	if firstRetained := a.span.Align(now.Add(-a.retention)); firstRetained.After(gapStart) {
		gapStart = firstRetained
	}
	for s := gapStart; s.Before(newStart); s = s.Add(a.span.Duration()) {
		gap := models.NewWindow(s, a.span)
		_ = gap.Close()
		next = append(next, gap)
		metricWindowsClosedTotal.Inc()
	}

	if overflow := len(next) - a.maxClosed; overflow > 0 {
		a.pending = append(a.pending, next[:overflow]...)
		next = next[overflow:]
	}

	a.active = models.NewWindow(newStart, a.span)
	metricWindowsOpenedTotal.Inc()
	a.closed.Store(&next)
	metricClosedWindows.Set(float64(len(next)))
}

func (a *windowAggregator) Evict(cutoff time.Time) []*models.Window {
	a.mu.Lock()
	defer a.mu.Unlock()

	current := *a.closed.Load()
	idx := 0
	for idx < len(current) && !current[idx].End.After(cutoff) {
		idx++
	}

	if idx == 0 && len(a.pending) == 0 {
		return nil
	}

	expired := make([]*models.Window, 0, len(a.pending)+idx)
	expired = append(expired, a.pending...)
	expired = append(expired, current[:idx]...)
	a.pending = nil

	if idx > 0 {
		remaining := make([]*models.Window, len(current)-idx)
		copy(remaining, current[idx:])
		a.closed.Store(&remaining)
		metricClosedWindows.Set(float64(len(remaining)))
	}

	evicted := make([]*models.Window, 0, len(expired))
	for _, w := range expired {
		c := w.Clone()
		_ = c.MarkEvicted()
		evicted = append(evicted, c)
		if c.End.After(a.horizon) {
			a.horizon = c.End
		}
	}
	metricWindowsEvictedTotal.Add(float64(len(evicted)))

	return evicted
}

func (a *windowAggregator) Snapshot() models.View {
	a.mu.RLock()
	defer a.mu.RUnlock()

	view := models.View{
		Closed:  *a.closed.Load(),
		Horizon: a.horizon,
	}
	if a.active != nil {
		view.Active = a.active.Clone()
	}
	return view
}

func (a *windowAggregator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.active = nil
	a.pending = nil
	a.horizon = time.Time{}
	a.closed.Store(&[]*models.Window{})
	metricClosedWindows.Set(0)
}
