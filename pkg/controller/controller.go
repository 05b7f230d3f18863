// Package controller runs the main control loop: clear the panel, ask the
// selector for the next animation, render it to completion, repeat.
//
// The loop is the only goroutine that draws. Interrupts reach it solely
// through input.SharedState, which it re-reads at every selection; an
// interrupt that fires mid-animation takes effect on the next cycle.
package controller

import (
	"context"
	"fmt"

	"github.com/go-drift/marquee/pkg/animation"
	"github.com/go-drift/marquee/pkg/errors"
	"github.com/go-drift/marquee/pkg/input"
	"github.com/go-drift/marquee/pkg/selector"
)

// Cycle describes one completed iteration of the loop.
type Cycle struct {
	// Seq counts iterations from 1.
	Seq uint64
	// Animation is what was rendered.
	Animation animation.Animation
	// Mode is the selection mode observed when choosing.
	Mode input.Mode
	// Restarted is set when a sequence reset was pending at the start of
	// the iteration.
	Restarted bool
	// Panicked is set when the routine panicked and was cut short.
	Panicked bool
}

// Controller owns the frame (and thus the panel) and the selector.
type Controller struct {
	frame    *animation.Frame
	library  *animation.Library
	selector *selector.Selector
	state    *input.SharedState

	// OnCycle, if set, runs on the loop goroutine after every iteration.
	OnCycle func(c Cycle)

	seq uint64
}

// New wires a controller. The selector must have been built over
// library.Len() animations.
func New(frame *animation.Frame, library *animation.Library, sel *selector.Selector, state *input.SharedState) *Controller {
	return &Controller{
		frame:    frame,
		library:  library,
		selector: sel,
		state:    state,
	}
}

// Run loops until ctx is done and returns ctx.Err().
func (c *Controller) Run(ctx context.Context) error {
	for {
		if err := c.Step(ctx); err != nil {
			return err
		}
	}
}

// RunCycles runs at most n iterations. It returns early, with ctx.Err(),
// if ctx ends first.
func (c *Controller) RunCycles(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		if err := c.Step(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Step runs one iteration. The only error it returns is a cancelled ctx;
// a panicking routine is reported and the loop carries on.
func (c *Controller) Step(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// A clear deferred by the reset button lands here together with the
	// per-cycle clear.
	restarted := c.state.TakeClear()
	c.frame.Clear()

	mode := c.state.Mode()
	id := c.selector.Next()
	a, ok := c.library.Get(id)
	if !ok {
		errors.Report(errors.Errorf("controller.Step", errors.KindRender, "selector produced id %d outside a table of %d", id, c.library.Len()))
		return nil
	}

	var renderErr error
	pe := errors.Guard(fmt.Sprintf("animation.%s", a.Name), func() {
		renderErr = a.Render(ctx, c.frame)
	})
	if pe != nil {
		// Leave the panel in a known state for the next cycle.
		c.frame.Clear()
	}

	c.seq++
	if c.OnCycle != nil {
		c.OnCycle(Cycle{Seq: c.seq, Animation: a, Mode: mode, Restarted: restarted, Panicked: pe != nil})
	}

	if renderErr != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		errors.Report(&errors.ControllerError{
			Op:        "controller.Step",
			Kind:      errors.KindRender,
			Animation: a.Name,
			Err:       renderErr,
		})
	}
	return nil
}

// Cycles returns how many iterations have completed.
func (c *Controller) Cycles() uint64 {
	return c.seq
}
