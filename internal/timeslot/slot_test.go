package timeslot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	in := time.Date(2025, 3, 14, 13, 37, 42, 123, time.UTC)

	got := Normalize(in)

	assert.Equal(t, time.Date(2025, 3, 14, 13, 0, 0, 0, time.UTC), got)
}

func TestNormalize_Idempotent(t *testing.T) {
	in := time.Date(2025, 3, 14, 13, 37, 42, 123, time.UTC)

	once := Normalize(in)
	twice := Normalize(once)

	assert.Equal(t, once, twice)
}

func TestNormalize_AlreadyOnTheHour(t *testing.T) {
	in := time.Date(2025, 3, 14, 13, 0, 0, 0, time.UTC)

	assert.Equal(t, in, Normalize(in))
}

func TestIsPast(t *testing.T) {
	now := time.Date(2025, 3, 14, 13, 0, 0, 0, time.UTC)

	assert.True(t, IsPast(now.Add(-time.Second), now))
	assert.False(t, IsPast(now, now)) // strictly before
	assert.False(t, IsPast(now.Add(time.Second), now))
}

func TestWithinLeadTime(t *testing.T) {
	now := time.Date(2025, 3, 14, 13, 0, 0, 0, time.UTC)
	lead := 2 * time.Hour

	assert.True(t, WithinLeadTime(now.Add(time.Hour), now, lead))
	assert.True(t, WithinLeadTime(now.Add(lead), now, lead)) // exactly 2h is too late
	assert.False(t, WithinLeadTime(now.Add(lead+time.Second), now, lead))
	assert.True(t, WithinLeadTime(now.Add(-time.Hour), now, lead))
}
