package input

import (
	"context"
	"sync"
	"time"
)

// Timer stands in for the hardware timer interrupt on platforms without
// one: while running, it calls fire once per elapsed period from its own
// goroutine. Periods that pass while the goroutine is starved are fired
// late rather than dropped, so a counter driven by it keeps up with real
// time.
type Timer struct {
	period time.Duration
	fire   func()

	mu       sync.Mutex
	isActive bool
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewTimer creates a stopped timer.
func NewTimer(period time.Duration, fire func()) *Timer {
	return &Timer{period: period, fire: fire}
}

// Start begins firing. It is a no-op if the timer is already running or
// the period is not positive. The timer stops on its own when ctx ends.
func (t *Timer) Start(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.isActive || t.period <= 0 {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	t.isActive = true
	t.cancel = cancel
	t.done = make(chan struct{})
	go t.run(ctx, t.done)
}

func (t *Timer) run(ctx context.Context, done chan struct{}) {
	defer t.finish(done)
	ticker := time.NewTicker(t.period)
	defer ticker.Stop()
	start := time.Now()
	var fired int64
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// A time.Ticker keeps one pending tick; catch up on the rest.
			due := int64(time.Since(start) / t.period)
			for ; fired < due; fired++ {
				if ctx.Err() != nil {
					return
				}
				t.fire()
			}
		}
	}
}

// finish marks the timer stopped when its goroutine exits, unless Stop and
// Start already replaced it with a newer run.
func (t *Timer) finish(done chan struct{}) {
	t.mu.Lock()
	if t.done == done {
		t.isActive = false
		t.cancel()
	}
	t.mu.Unlock()
	close(done)
}

// Stop halts the timer and waits for its goroutine to exit.
func (t *Timer) Stop() {
	t.mu.Lock()
	if !t.isActive {
		t.mu.Unlock()
		return
	}
	t.isActive = false
	t.cancel()
	done := t.done
	t.mu.Unlock()
	<-done
}

// IsActive returns whether the timer is currently running.
func (t *Timer) IsActive() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.isActive
}
