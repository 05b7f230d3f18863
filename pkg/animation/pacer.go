package animation

import (
	"context"
	"time"
)

// Pacer is the only way an animation waits between frames. Production code
// sleeps; tests substitute a pacer that advances virtual time so a
// multi-second animation runs instantly and deterministically.
type Pacer interface {
	// Hold keeps the current frame on screen for d. It returns early with
	// ctx.Err() if ctx is cancelled.
	Hold(ctx context.Context, d time.Duration) error
}

// PacerFunc adapts a function to Pacer.
type PacerFunc func(ctx context.Context, d time.Duration) error

// Hold calls f(ctx, d).
func (f PacerFunc) Hold(ctx context.Context, d time.Duration) error {
	return f(ctx, d)
}

// SleepPacer holds frames in wall-clock time.
type SleepPacer struct{}

// Hold blocks for d or until ctx is done.
func (SleepPacer) Hold(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Source is the pseudo-random generator animations and the selector draw
// from. *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}
