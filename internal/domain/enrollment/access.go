package enrollment

import (
	"fmt"
	"time"
)

// AccessStatus is the result of evaluating a user's entitlements against one
// course at a point in time. Remaining is nil for lifetime access.
type AccessStatus struct {
	Granted   bool
	Remaining *time.Duration
}

// EvaluateAccess decides whether the entitlement list grants access to the
// course at the given instant. Multiple matching entitlements OR-combine:
// any currently valid entry grants access, and the reported remaining time is
// the maximum among valid entries. A lifetime entry dominates, reported as
// nil remaining. Pure and synchronous; callers polling a countdown re-invoke
// this against a live clock.
func EvaluateAccess(entitlements []*Entitlement, courseID string, now time.Time) AccessStatus {
	var status AccessStatus

	for _, e := range entitlements {
		if e.CourseID() != courseID {
			continue
		}
		if !e.IsValidAt(now) {
			continue
		}

		status.Granted = true
		if e.ExpiresAt() == nil {
			status.Remaining = nil
			return status
		}

		remaining := e.ExpiresAt().Sub(now)
		if status.Remaining == nil || remaining > *status.Remaining {
			status.Remaining = &remaining
		}
	}

	return status
}

// FormatRemaining renders a finite remaining duration for display: whole days
// when at least one day remains, otherwise hours, minutes and seconds. The
// day-granularity threshold matches the storefront countdown.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	if days := int(d.Hours()) / 24; days >= 1 {
		if days == 1 {
			return "1 day"
		}
		return fmt.Sprintf("%d days", days)
	}

	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh %dm %ds", h, m, s)
}
