// Package biztime centralizes time handling for the service.
// All storage and transport use UTC; implicit local timezone is prohibited.
// Entitlement expiry arithmetic must go through this package so that grant
// and evaluation paths agree on the clock.
package biztime

import (
	"fmt"
	"time"
)

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ToUTC converts a time (any timezone) to UTC.
func ToUTC(t time.Time) time.Time {
	return t.UTC()
}

// AddDays returns t plus the given number of calendar days, in UTC.
func AddDays(t time.Time, days int) time.Time {
	return t.UTC().AddDate(0, 0, days)
}

// FormatRFC3339 formats a UTC time using RFC3339, the wire format for all
// timestamps in API responses and stored metadata.
func FormatRFC3339(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ParseRFC3339 parses an RFC3339 timestamp and normalizes it to UTC.
func ParseRFC3339(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp format %q: %w", s, err)
	}
	return t.UTC(), nil
}
