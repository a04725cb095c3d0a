package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/CodexForgeBR/nag/internal/logging"
)

// Wait blocks for d, logging a countdown in verbose mode.
// Respects context cancellation.
func Wait(ctx context.Context, d time.Duration) error {
	return WaitUntil(ctx, time.Now().Add(d))
}

// WaitUntil blocks until the target time, logging a countdown in verbose mode.
// Returns immediately if target is in the past.
// Uses adaptive intervals: >1h=60s, >10min=30s, >1min=10s, <1min=1s.
func WaitUntil(ctx context.Context, target time.Time) error {
	remaining := time.Until(target)
	if remaining <= 0 {
		return nil
	}

	logging.Debug(fmt.Sprintf("Waiting until %s (%s remaining)",
		target.Format("2006-01-02 15:04:05"), logging.FormatDuration(int(remaining.Round(time.Second)/time.Second))))

	for {
		remaining = time.Until(target)
		if remaining <= 0 {
			return nil
		}

		interval := adaptiveInterval(remaining)

		// Don't sleep longer than remaining time
		if interval > remaining {
			interval = remaining
		}

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
			remaining = time.Until(target)
			if remaining <= 0 {
				return nil
			}
			logging.Debug(fmt.Sprintf("  ... %s remaining", logging.FormatDuration(int(remaining.Round(time.Second)/time.Second))))
		}
	}
}

// adaptiveInterval returns the countdown display interval based on remaining time.
func adaptiveInterval(remaining time.Duration) time.Duration {
	switch {
	case remaining > time.Hour:
		return 60 * time.Second
	case remaining > 10*time.Minute:
		return 30 * time.Second
	case remaining > time.Minute:
		return 10 * time.Second
	default:
		return 1 * time.Second
	}
}
