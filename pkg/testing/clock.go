package testing

import (
	"context"
	"sync"
	"time"
)

// FakeClock provides controllable time for deterministic animation tests.
// All methods are safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set sets the clock to an exact time.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// FakePacer satisfies animation.Pacer by advancing a FakeClock instead of
// sleeping, and records every hold.
type FakePacer struct {
	Clock *FakeClock
	// OnHold, if set, runs after the clock advances. Tests use it to fire
	// simulated interrupts between frames.
	OnHold func(d time.Duration)

	mu    sync.Mutex
	holds []time.Duration
}

// NewFakePacer returns a pacer driving a fresh FakeClock.
func NewFakePacer() *FakePacer {
	return &FakePacer{Clock: NewFakeClock()}
}

// Hold advances virtual time by d. A cancelled ctx is reported without
// advancing; a cancel fired from OnHold is reported by the same call.
func (p *FakePacer) Hold(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.Clock.Advance(d)
	p.mu.Lock()
	p.holds = append(p.holds, d)
	p.mu.Unlock()
	if p.OnHold != nil {
		p.OnHold(d)
	}
	return ctx.Err()
}

// Holds returns the recorded holds in order.
func (p *FakePacer) Holds() []time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]time.Duration, len(p.holds))
	copy(out, p.holds)
	return out
}

// Total returns the sum of all holds.
func (p *FakePacer) Total() time.Duration {
	var total time.Duration
	for _, d := range p.Holds() {
		total += d
	}
	return total
}

// Reset forgets recorded holds.
func (p *FakePacer) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.holds = nil
}
