// Package clock holds cancellable waits and retry delays.
package clock

import (
	"context"
	"time"
)

// SleepWithContext waits for d or until ctx is done. A non-positive d only
// checks the context, so a deadline already in the past fires at once.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
