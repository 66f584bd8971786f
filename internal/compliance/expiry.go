// Package compliance computes document expiry severity, missing-document
// requirements, and aggregate compliance reports for drivers and vehicles.
// Everything here is pure: no HTTP, no database, no clock — the reference
// time is always injected, which makes the package trivially testable and
// safe under concurrent use.
package compliance

import (
	"math"
	"time"
)

// DaysUntil returns the number of calendar days until the expiry date,
// relative to now. Both instants are truncated to local midnight, so a
// document expiring today yields 0 and one that expired yesterday yields -1.
// A nil expiry date yields nil.
func DaysUntil(expiry *time.Time, now time.Time) *int {
	if expiry == nil {
		return nil
	}
	diff := truncateToDay(*expiry).Sub(truncateToDay(now))
	days := int(math.Ceil(diff.Hours() / 24))
	return &days
}

// ParseDate parses a YYYY-MM-DD date string as stored by the persistence
// layer. Empty or malformed strings yield nil rather than an error: the
// engine treats an unparseable expiry as "no expiry known".
func ParseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

// truncateToDay strips the time component, keeping only the date.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
