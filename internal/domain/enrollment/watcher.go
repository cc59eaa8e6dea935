package enrollment

import (
	"context"
	"time"

	"gurukul/internal/shared/biztime"
	"gurukul/internal/shared/logger"
)

// FetchFunc loads a user's entitlements from the source of truth.
type FetchFunc func(ctx context.Context) ([]*Entitlement, error)

// Watcher drives the live countdown for one course: it re-evaluates a held
// entitlement list against the clock on a fixed interval and, on the
// valid-to-expired transition, reloads from the source of truth instead of
// trusting the local copy. Access-gated actions must still evaluate fresh
// data themselves; the watcher only feeds display state.
type Watcher struct {
	courseID string
	interval time.Duration
	fetch    FetchFunc
	onStatus func(AccessStatus)
	logger   logger.Interface

	now func() time.Time
}

// NewWatcher creates a watcher polling at the given interval (1s when zero).
func NewWatcher(
	courseID string,
	interval time.Duration,
	fetch FetchFunc,
	onStatus func(AccessStatus),
	log logger.Interface,
) *Watcher {
	if interval <= 0 {
		interval = time.Second
	}
	return &Watcher{
		courseID: courseID,
		interval: interval,
		fetch:    fetch,
		onStatus: onStatus,
		logger:   log,
		now:      biztime.NowUTC,
	}
}

// Run polls until ctx is cancelled. It emits a status every tick.
func (w *Watcher) Run(ctx context.Context) error {
	entitlements, err := w.fetch(ctx)
	if err != nil {
		return err
	}

	status := EvaluateAccess(entitlements, w.courseID, w.now())
	w.onStatus(status)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			next := EvaluateAccess(entitlements, w.courseID, w.now())

			if status.Granted && !next.Granted {
				// Expiry boundary crossed: the local copy is no longer
				// trustworthy, reload before reporting.
				w.logger.Infow("entitlement expired, reloading access state",
					"course_id", w.courseID)

				fresh, err := w.fetch(ctx)
				if err != nil {
					w.logger.Warnw("failed to reload entitlements",
						"course_id", w.courseID,
						"error", err)
				} else {
					entitlements = fresh
				}
				next = EvaluateAccess(entitlements, w.courseID, w.now())
			}

			status = next
			w.onStatus(status)
		}
	}
}
