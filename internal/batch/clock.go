package batch

import (
	"context"
	"time"
)

// Clock provides time and pacing suspensions.
type Clock interface {
	// Now returns current UTC time.
	Now() time.Time
	// Sleep blocks for d or until ctx is cancelled.
	Sleep(ctx context.Context, d time.Duration)
}

type systemClock struct{}

func (c systemClock) Now() time.Time {
	return time.Now().UTC()
}

func (c systemClock) Sleep(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
