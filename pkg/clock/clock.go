// Package clock keeps the controller's elapsed run time.
//
// The only time base is a free-running tick counter advanced by a periodic
// timer interrupt. The counter is a 32-bit atomic so the timer interrupt,
// the reset button and the control loop can touch it without a critical
// section, and it wraps silently when it overflows.
package clock

import (
	"fmt"
	"math"
	"math/bits"
	"sync/atomic"
	"time"
)

// Timebase describes the hardware timer feeding the tick counter: a counter
// clocked at CPUHz/Prescaler that raises an interrupt every Overflow counts.
type Timebase struct {
	CPUHz     uint64
	Prescaler uint64
	Overflow  uint64
}

// DefaultTimebase is an ATmega328 at 8 MHz with Timer0 in normal mode,
// prescaler 1024 and 8-bit overflow: 256*1024/8e6 = 32.768 ms per tick.
var DefaultTimebase = Timebase{
	CPUHz:     8_000_000,
	Prescaler: 1024,
	Overflow:  256,
}

// cycles returns Overflow*Prescaler, the CPU cycles per tick, and
// whether the product fits in 64 bits.
func (tb Timebase) cycles() (uint64, bool) {
	hi, lo := bits.Mul64(tb.Overflow, tb.Prescaler)
	return lo, hi == 0
}

// periodNanos returns the tick period in nanoseconds and whether it fits
// in a time.Duration.
func (tb Timebase) periodNanos() (uint64, bool) {
	if tb.CPUHz == 0 {
		return 0, false
	}
	cyc, ok := tb.cycles()
	if !ok {
		return 0, false
	}
	hi, lo := bits.Mul64(cyc, uint64(time.Second))
	if hi >= tb.CPUHz {
		return 0, false
	}
	ns, _ := bits.Div64(hi, lo, tb.CPUHz)
	if ns > math.MaxInt64 {
		return 0, false
	}
	return ns, true
}

// Period returns the time between two ticks, or 0 for a timebase that
// Validate rejects.
func (tb Timebase) Period() time.Duration {
	ns, ok := tb.periodNanos()
	if !ok {
		return 0
	}
	return time.Duration(ns)
}

// Seconds converts a tick count to whole seconds, rounding down. It
// saturates at math.MaxUint64.
func (tb Timebase) Seconds(ticks uint32) uint64 {
	cyc, ok := tb.cycles()
	if tb.CPUHz == 0 || !ok {
		return 0
	}
	hi, lo := bits.Mul64(uint64(ticks), cyc)
	if hi >= tb.CPUHz {
		return math.MaxUint64
	}
	s, _ := bits.Div64(hi, lo, tb.CPUHz)
	return s
}

// Validate reports a timebase that cannot drive the clock.
func (tb Timebase) Validate() error {
	switch {
	case tb.CPUHz == 0:
		return fmt.Errorf("cpu frequency must be positive")
	case tb.Prescaler == 0:
		return fmt.Errorf("prescaler must be positive")
	case tb.Overflow == 0:
		return fmt.Errorf("overflow period must be positive")
	}
	if _, ok := tb.periodNanos(); !ok {
		return fmt.Errorf("timer period overflows a duration")
	}
	if tb.Period() <= 0 {
		return fmt.Errorf("timer period rounds to zero")
	}
	return nil
}

// Clock is the elapsed-time clock. The zero value is not usable; use New.
type Clock struct {
	ticks    atomic.Uint32
	timebase Timebase
}

// New returns a clock at zero ticks.
func New(tb Timebase) *Clock {
	return &Clock{timebase: tb}
}

// Tick advances the counter by one. Called from the timer interrupt.
func (c *Clock) Tick() {
	c.ticks.Add(1)
}

// Reset zeroes the counter. Called from the reset interrupt.
func (c *Clock) Reset() {
	c.ticks.Store(0)
}

// Preset stores a raw tick count.
func (c *Clock) Preset(ticks uint32) {
	c.ticks.Store(ticks)
}

// Ticks returns the raw counter.
func (c *Clock) Ticks() uint32 {
	return c.ticks.Load()
}

// Timebase returns the timer configuration the clock converts with.
func (c *Clock) Timebase() Timebase {
	return c.timebase
}

// ElapsedSeconds returns the uptime in whole seconds.
func (c *Clock) ElapsedSeconds() uint64 {
	return c.timebase.Seconds(c.ticks.Load())
}

// Elapsed returns the uptime as a duration.
func (c *Clock) Elapsed() time.Duration {
	return time.Duration(c.ElapsedSeconds()) * time.Second
}

// String returns the uptime as HH:MM:SS.
func (c *Clock) String() string {
	return FormatHMS(c.ElapsedSeconds())
}

// FormatHMS splits seconds into hours, minutes and seconds. Hours are not
// wrapped at 24: the readout is uptime, not time of day.
func FormatHMS(s uint64) string {
	hours := s / 3600
	minutes := (s % 3600) / 60
	seconds := s % 3600 % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
