// Package timeslot holds the pure time rules of the booking core.
// Appointments live in fixed one-hour buckets identified by their
// start time; all times are on a single canonical clock (UTC).
package timeslot

import "time"

// Normalize truncates t to the start of its hour. Idempotent.
func Normalize(t time.Time) time.Time {
	return t.Truncate(time.Hour)
}

// IsPast reports whether t is strictly before now.
func IsPast(t, now time.Time) bool {
	return t.Before(now)
}

// WithinLeadTime reports whether less than lead remains before t,
// i.e. t-lead <= now.
func WithinLeadTime(t, now time.Time, lead time.Duration) bool {
	return !t.Add(-lead).After(now)
}
