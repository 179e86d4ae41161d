package ingestors

import (
	"sync"

	"request-metrics/internal/models"
)

const defaultRecentCapacity = 10

// RecentRequests is a fixed-size ring of the most recently accepted events.
type RecentRequests struct {
	mu      sync.RWMutex
	entries []models.RecentRequest
	head    int
	count   int
}

func NewRecentRequests(capacity int) *RecentRequests {
	if capacity <= 0 {
		capacity = defaultRecentCapacity
	}
	return &RecentRequests{entries: make([]models.RecentRequest, capacity)}
}

func (r *RecentRequests) Capacity() int {
	return len(r.entries)
}

// Push adds an entry, overwriting the oldest when full.
func (r *RecentRequests) Push(entry models.RecentRequest) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[r.head] = entry
	r.head = (r.head + 1) % len(r.entries)
	if r.count < len(r.entries) {
		r.count++
	}
}

// Last returns the k most recent entries, oldest first. k is clamped to the stored count.
func (r *RecentRequests) Last(k int) []models.RecentRequest {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if k > r.count {
		k = r.count
	}
	if k <= 0 {
		return []models.RecentRequest{}
	}

	size := len(r.entries)
	out := make([]models.RecentRequest, 0, k)
	for i := k; i > 0; i-- {
		out = append(out, r.entries[(r.head-i+size)%size])
	}
	return out
}

func (r *RecentRequests) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.entries)
	r.head = 0
	r.count = 0
}
