package ingestors

import (
	"context"
	"sync"
	"time"

	"request-metrics/internal/models"
)

//go:generate mockgen -source=id_registry.go -destination=./mocks/id_registry_mock.go -package=mocks
type IDRegistry interface {
	Seen(id int64) bool
	Register(id int64, timestamp time.Time)
	// ForgetBefore drops ids whose event timestamp precedes cutoff and returns how many were dropped.
	ForgetBefore(cutoff time.Time) int
	Len() int
	Reset()
	// OnEvicted lets the registry follow the retention cutoff of the eviction policy.
	OnEvicted(ctx context.Context, cutoff time.Time, evicted []*models.Window)
}

type idRegistry struct {
	mu  sync.Mutex
	ids map[int64]time.Time
}

func NewIDRegistry() IDRegistry {
	return &idRegistry{ids: make(map[int64]time.Time)}
}

func (r *idRegistry) Seen(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.ids[id]
	return ok
}

func (r *idRegistry) Register(id int64, timestamp time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ids[id] = timestamp
	metricRegisteredIDs.Set(float64(len(r.ids)))
}

func (r *idRegistry) ForgetBefore(cutoff time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	dropped := 0
	for id, ts := range r.ids {
		if ts.Before(cutoff) {
			delete(r.ids, id)
			dropped++
		}
	}
	metricRegisteredIDs.Set(float64(len(r.ids)))
	return dropped
}

func (r *idRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.ids)
}

func (r *idRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.ids)
	metricRegisteredIDs.Set(0)
}

func (r *idRegistry) OnEvicted(_ context.Context, cutoff time.Time, _ []*models.Window) {
	r.ForgetBefore(cutoff)
}
