// Package input holds the state shared between interrupt handlers and the
// control loop, and the handlers themselves.
//
// Interrupts are producers: they only store into atomics and never block
// or draw. The control loop is the single consumer and re-reads the state
// at every selection instead of caching it.
package input

import (
	"sync/atomic"

	"github.com/go-drift/marquee/pkg/clock"
)

// Mode selects how the next animation is chosen.
type Mode uint32

const (
	// Sequential walks the animation table in order.
	Sequential Mode = iota
	// Random draws uniformly from the animation table.
	Random
)

// String returns a human-readable representation of the mode.
func (m Mode) String() string {
	switch m {
	case Sequential:
		return "sequential"
	case Random:
		return "random"
	default:
		return "unknown"
	}
}

// ParseMode resolves a mode name.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "sequential":
		return Sequential, true
	case "random":
		return Random, true
	}
	return 0, false
}

// SharedState is everything an interrupt may mutate. All fields are
// atomics; none of them may be copied out and reused across a point where
// an interrupt can fire.
type SharedState struct {
	clock        *clock.Clock
	mode         atomic.Uint32
	cursor       atomic.Uint32
	clearPending atomic.Bool
}

// NewSharedState binds the elapsed-time clock and starts in the given mode
// with the cursor at zero.
func NewSharedState(c *clock.Clock, initial Mode) *SharedState {
	s := &SharedState{clock: c}
	s.mode.Store(uint32(initial))
	return s
}

// Clock returns the elapsed-time clock.
func (s *SharedState) Clock() *clock.Clock {
	return s.clock
}

// Mode returns the current selection mode.
func (s *SharedState) Mode() Mode {
	return Mode(s.mode.Load())
}

// Cursor returns the sequence cursor.
func (s *SharedState) Cursor() uint32 {
	return s.cursor.Load()
}

// AdvanceCursor returns the cursor and moves it one step forward modulo n.
// The update is a compare-and-swap so a concurrent reset either lands
// before the read or after the store, never in between.
func (s *SharedState) AdvanceCursor(n uint32) uint32 {
	if n == 0 {
		return 0
	}
	for {
		old := s.cursor.Load()
		cur := old % n
		if s.cursor.CompareAndSwap(old, (cur+1)%n) {
			return cur
		}
	}
}

// ResetCursor moves the sequence back to the first animation.
func (s *SharedState) ResetCursor() {
	s.cursor.Store(0)
}

// toggleMode flips the mode and returns the new one. Entering Sequential
// rewinds the cursor before the new mode becomes visible.
func (s *SharedState) toggleMode() Mode {
	for {
		old := s.mode.Load()
		next := Random
		if Mode(old) == Random {
			next = Sequential
		}
		if next == Sequential {
			s.cursor.Store(0)
		}
		if s.mode.CompareAndSwap(old, uint32(next)) {
			return next
		}
	}
}

// RequestClear asks the control loop to clear the panel before its next
// selection.
func (s *SharedState) RequestClear() {
	s.clearPending.Store(true)
}

// TakeClear consumes a pending clear request.
func (s *SharedState) TakeClear() bool {
	return s.clearPending.Swap(false)
}
