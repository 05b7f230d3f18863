package controller

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/go-drift/marquee/pkg/animation"
	"github.com/go-drift/marquee/pkg/clock"
	merrors "github.com/go-drift/marquee/pkg/errors"
	"github.com/go-drift/marquee/pkg/graphics"
	"github.com/go-drift/marquee/pkg/input"
	"github.com/go-drift/marquee/pkg/selector"
	marqueetest "github.com/go-drift/marquee/pkg/testing"
)

type harness struct {
	rec     *marqueetest.Recorder
	pacer   *marqueetest.FakePacer
	state   *input.SharedState
	handler *input.Handler
	ctrl    *Controller
	cycles  []Cycle
}

func newHarness(lib *animation.Library, mode input.Mode, policy input.ResetPolicy) *harness {
	h := &harness{
		rec:   marqueetest.NewRecorder(graphics.Size{Width: 128, Height: 128}),
		pacer: marqueetest.NewFakePacer(),
	}
	clk := clock.New(clock.DefaultTimebase)
	h.state = input.NewSharedState(clk, mode)
	h.handler = input.NewHandler(h.state, input.HandlerConfig{Policy: policy})
	frame := &animation.Frame{
		Surface:    h.rec,
		Pacer:      h.pacer,
		Clock:      clk,
		Rand:       rand.New(rand.NewSource(7)),
		Background: graphics.ColorBlack,
		Timing:     animation.DefaultTiming(),
	}
	sel := selector.New(h.state, lib.Len(), nil)
	h.ctrl = New(frame, lib, sel, h.state)
	h.ctrl.OnCycle = func(c Cycle) { h.cycles = append(h.cycles, c) }
	return h
}

func (h *harness) ids() []animation.ID {
	out := make([]animation.ID, len(h.cycles))
	for i, c := range h.cycles {
		out[i] = c.Animation.ID
	}
	return out
}

// stubLibrary returns n animations that each draw one pixel tagged with
// their ID and hold one frame.
func stubLibrary(n int) *animation.Library {
	anims := make([]animation.Animation, n)
	for i := range anims {
		id := int16(i)
		anims[i] = animation.Animation{
			Name: animation.ID(i).String(),
			Render: func(ctx context.Context, f *animation.Frame) error {
				f.Surface.DrawPixel(id, id, graphics.ColorWhite)
				return f.Pacer.Hold(ctx, 100*time.Millisecond)
			},
		}
	}
	return animation.NewLibraryOf(anims...)
}

func TestSequentialLoop(t *testing.T) {
	h := newHarness(stubLibrary(6), input.Sequential, input.ResetClock)
	if err := h.ctrl.RunCycles(context.Background(), 7); err != nil {
		t.Fatalf("RunCycles: %v", err)
	}
	want := []animation.ID{0, 1, 2, 3, 4, 5, 0}
	got := h.ids()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ids = %v, want %v", got, want)
		}
	}
	if h.ctrl.Cycles() != 7 {
		t.Errorf("Cycles() = %d, want 7", h.ctrl.Cycles())
	}
	ops := h.rec.Ops()
	for i := 0; i < 7; i++ {
		if ops[2*i].Op != marqueetest.OpClear {
			t.Errorf("cycle %d did not start with a clear: %+v", i, ops[2*i])
		}
	}
}

func TestModeToggleTakesEffectNextCycle(t *testing.T) {
	h := newHarness(stubLibrary(6), input.Sequential, input.ResetClock)
	fired := false
	h.pacer.OnHold = func(time.Duration) {
		if !fired && h.ctrl.Cycles() == 1 {
			fired = true
			h.handler.ToggleMode() // into random, mid-animation
		}
	}
	if err := h.ctrl.RunCycles(context.Background(), 3); err != nil {
		t.Fatalf("RunCycles: %v", err)
	}
	if h.cycles[1].Mode != input.Sequential || h.cycles[1].Animation.ID != 1 {
		t.Errorf("cycle 2 = %+v, want sequential id 1 unaffected by the toggle", h.cycles[1])
	}
	if h.cycles[2].Mode != input.Random {
		t.Errorf("cycle 3 mode = %v, want random", h.cycles[2].Mode)
	}
}

func TestSequenceResetRestartsOrder(t *testing.T) {
	h := newHarness(stubLibrary(6), input.Sequential, input.ResetSequence)
	h.pacer.OnHold = func(time.Duration) {
		if h.ctrl.Cycles() == 2 {
			h.handler.Reset()
		}
	}
	if err := h.ctrl.RunCycles(context.Background(), 5); err != nil {
		t.Fatalf("RunCycles: %v", err)
	}
	want := []animation.ID{0, 1, 2, 0, 1}
	got := h.ids()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ids = %v, want %v", got, want)
		}
	}
	if !h.cycles[3].Restarted {
		t.Error("cycle after reset should report the restart")
	}
	if h.cycles[4].Restarted {
		t.Error("restart should be reported once")
	}
}

func TestClockResetKeepsOrder(t *testing.T) {
	h := newHarness(stubLibrary(6), input.Sequential, input.ResetClock)
	h.pacer.OnHold = func(time.Duration) {
		h.handler.Tick()
		if h.ctrl.Cycles() == 2 {
			h.handler.Reset()
		}
	}
	if err := h.ctrl.RunCycles(context.Background(), 5); err != nil {
		t.Fatalf("RunCycles: %v", err)
	}
	if got := h.ids(); got[3] != 3 {
		t.Errorf("ids = %v, clock reset should not rewind the sequence", got)
	}
	if ticks := h.state.Clock().Ticks(); ticks != 2 {
		t.Errorf("Ticks() = %d, want 2 (reset during cycle 3, two holds since)", ticks)
	}
}

type panicCounter struct {
	panics int
	errs   int
}

func (p *panicCounter) HandleError(*merrors.ControllerError) { p.errs++ }
func (p *panicCounter) HandlePanic(*merrors.PanicError)      { p.panics++ }

func TestPanickingAnimationIsContained(t *testing.T) {
	counter := &panicCounter{}
	prev := merrors.SetHandler(counter)
	defer merrors.SetHandler(prev)

	lib := animation.NewLibraryOf(
		animation.Animation{Name: "broken", Render: func(context.Context, *animation.Frame) error {
			panic("bad frame")
		}},
		animation.Animation{Name: "fine", Render: func(ctx context.Context, f *animation.Frame) error {
			return f.Pacer.Hold(ctx, time.Millisecond)
		}},
	)
	h := newHarness(lib, input.Sequential, input.ResetClock)
	if err := h.ctrl.RunCycles(context.Background(), 4); err != nil {
		t.Fatalf("RunCycles: %v", err)
	}
	if counter.panics != 2 {
		t.Errorf("reported %d panics, want 2", counter.panics)
	}
	if !h.cycles[0].Panicked || h.cycles[1].Panicked {
		t.Errorf("Panicked flags = %v, %v", h.cycles[0].Panicked, h.cycles[1].Panicked)
	}
}

func TestRenderErrorIsReported(t *testing.T) {
	counter := &panicCounter{}
	prev := merrors.SetHandler(counter)
	defer merrors.SetHandler(prev)

	lib := animation.NewLibraryOf(animation.Animation{Name: "failing", Render: func(context.Context, *animation.Frame) error {
		return errors.New("surface went away")
	}})
	h := newHarness(lib, input.Sequential, input.ResetClock)
	if err := h.ctrl.Step(context.Background()); err != nil {
		t.Fatalf("Step = %v, want nil", err)
	}
	if counter.errs != 1 {
		t.Errorf("reported %d errors, want 1", counter.errs)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	h := newHarness(stubLibrary(6), input.Random, input.ResetClock)
	ctx, cancel := context.WithCancel(context.Background())
	h.pacer.OnHold = func(time.Duration) {
		if h.ctrl.Cycles() == 3 {
			cancel()
		}
	}
	err := h.ctrl.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run = %v, want context.Canceled", err)
	}
	if h.ctrl.Cycles() != 4 {
		t.Errorf("Cycles() = %d, want 4", h.ctrl.Cycles())
	}
}

func TestFullLibraryCycle(t *testing.T) {
	h := newHarness(animation.NewLibrary(animation.VariantSix), input.Sequential, input.ResetClock)
	if err := h.ctrl.RunCycles(context.Background(), 6); err != nil {
		t.Fatalf("RunCycles: %v", err)
	}
	if len(h.cycles) != 6 {
		t.Fatalf("ran %d cycles", len(h.cycles))
	}
	if h.rec.Count(marqueetest.OpText) != 1 {
		t.Errorf("clock readout drawn %d times, want 1", h.rec.Count(marqueetest.OpText))
	}
	if h.rec.Count(marqueetest.OpCircle) != 11 {
		t.Errorf("circles = %d, want 11", h.rec.Count(marqueetest.OpCircle))
	}
}
