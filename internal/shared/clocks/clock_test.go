package clocks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManualClock_SetIsMonotonic(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 10, 7, 12, 0, 0, 0, time.UTC)
	clock := NewManualClock(start)

	clock.Set(start.Add(time.Minute))
	assert.Equal(t, start.Add(time.Minute), clock.Now())

	clock.Set(start)
	assert.Equal(t, start.Add(time.Minute), clock.Now(), "Set must not move backwards")

	clock.Advance(30 * time.Second)
	assert.Equal(t, start.Add(90*time.Second), clock.Now())
}

func TestSystemClock_IsUTC(t *testing.T) {
	t.Parallel()

	assert.Equal(t, time.UTC, NewSystemClock().Now().Location())
}
