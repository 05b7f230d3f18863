package input

import (
	"sync/atomic"
	"time"
)

// ResetPolicy decides what the reset button clears besides the clock.
type ResetPolicy int

const (
	// ResetClock zeroes the elapsed-time counter only.
	ResetClock ResetPolicy = iota
	// ResetSequence also rewinds the sequence cursor and asks the control
	// loop to clear the panel. The clear is deferred to the loop; the
	// handler never touches the display.
	ResetSequence
)

// String returns a human-readable representation of the policy.
func (p ResetPolicy) String() string {
	switch p {
	case ResetClock:
		return "clock"
	case ResetSequence:
		return "sequence"
	default:
		return "unknown"
	}
}

// ParseResetPolicy resolves a policy name.
func ParseResetPolicy(s string) (ResetPolicy, bool) {
	switch s {
	case "clock":
		return ResetClock, true
	case "sequence":
		return ResetSequence, true
	}
	return 0, false
}

// Indicator is a binary status output, usually an LED pin.
type Indicator interface {
	Set(on bool)
}

// IndicatorFunc adapts a function to Indicator.
type IndicatorFunc func(on bool)

// Set calls f(on).
func (f IndicatorFunc) Set(on bool) { f(on) }

type nopIndicator struct{}

func (nopIndicator) Set(bool) {}

// HandlerConfig configures the interrupt handlers.
type HandlerConfig struct {
	Policy ResetPolicy
	// Indicator reflects the selection mode; nil disables it.
	Indicator Indicator
	// IndicatorActiveLow drives the indicator low while in Random mode.
	IndicatorActiveLow bool
	// Debounce drops button edges closer together than this window.
	Debounce time.Duration
	// Now is the time source for debouncing; nil means time.Now.
	Now func() time.Time
}

// Handler implements the three interrupt service routines. Every method is
// bounded and non-blocking.
type Handler struct {
	state     *SharedState
	policy    ResetPolicy
	indicator Indicator
	activeLow bool
	resetBtn  *Debouncer
	modeBtn   *Debouncer

	resets  atomic.Uint32
	toggles atomic.Uint32
}

// NewHandler wires handlers to the shared state and drives the indicator
// to match the initial mode.
func NewHandler(state *SharedState, cfg HandlerConfig) *Handler {
	ind := cfg.Indicator
	if ind == nil {
		ind = nopIndicator{}
	}
	h := &Handler{
		state:     state,
		policy:    cfg.Policy,
		indicator: ind,
		activeLow: cfg.IndicatorActiveLow,
		resetBtn:  NewDebouncer(cfg.Debounce, cfg.Now),
		modeBtn:   NewDebouncer(cfg.Debounce, cfg.Now),
	}
	h.showMode(state.Mode())
	return h
}

// Tick is the periodic timer interrupt.
func (h *Handler) Tick() {
	h.state.clock.Tick()
}

// Reset is the reset-button interrupt. It reports whether the edge was
// accepted by the debouncer.
func (h *Handler) Reset() bool {
	if !h.resetBtn.Allow() {
		return false
	}
	h.state.clock.Reset()
	if h.policy == ResetSequence {
		h.state.ResetCursor()
		h.state.RequestClear()
	}
	h.resets.Add(1)
	return true
}

// ToggleMode is the mode-button interrupt. It reports whether the edge was
// accepted by the debouncer.
func (h *Handler) ToggleMode() bool {
	if !h.modeBtn.Allow() {
		return false
	}
	h.showMode(h.state.toggleMode())
	h.toggles.Add(1)
	return true
}

// Counts returns how many reset and toggle edges were accepted.
func (h *Handler) Counts() (resets, toggles uint32) {
	return h.resets.Load(), h.toggles.Load()
}

func (h *Handler) showMode(m Mode) {
	on := m == Random
	if h.activeLow {
		on = !on
	}
	h.indicator.Set(on)
}

// Debouncer rejects edges that arrive within a window of the last accepted
// edge. A zero window accepts everything.
type Debouncer struct {
	window time.Duration
	now    func() time.Time
	last   atomic.Int64
}

// NewDebouncer returns a debouncer; now may be nil to use time.Now.
func NewDebouncer(window time.Duration, now func() time.Time) *Debouncer {
	if now == nil {
		now = time.Now
	}
	return &Debouncer{window: window, now: now}
}

// Allow reports whether an edge arriving now should be handled.
func (d *Debouncer) Allow() bool {
	if d.window <= 0 {
		return true
	}
	t := d.now().UnixNano()
	prev := d.last.Load()
	if prev != 0 && time.Duration(t-prev) < d.window {
		return false
	}
	return d.last.CompareAndSwap(prev, t)
}
