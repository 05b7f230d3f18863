package animation

import (
	"context"
	"time"

	"github.com/go-drift/marquee/pkg/clock"
	"github.com/go-drift/marquee/pkg/display"
	"github.com/go-drift/marquee/pkg/graphics"
)

// Timing holds the per-animation frame holds.
type Timing struct {
	CircleStep    time.Duration
	RectangleStep time.Duration
	Smiley        time.Duration
	Starfield     time.Duration
	StarColor     time.Duration
	Clock         time.Duration
}

// DefaultTiming matches the six-animation firmware.
func DefaultTiming() Timing {
	return Timing{
		CircleStep:    500 * time.Millisecond,
		RectangleStep: 500 * time.Millisecond,
		Smiley:        500 * time.Millisecond,
		Starfield:     1000 * time.Millisecond,
		StarColor:     100 * time.Millisecond,
		Clock:         5000 * time.Millisecond,
	}
}

// Frame is everything a routine may touch while rendering.
type Frame struct {
	Surface    display.Surface
	Pacer      Pacer
	Rand       Source
	Clock      *clock.Clock
	Background graphics.Color
	Timing     Timing
}

// Center returns the middle of the panel.
func (f *Frame) Center() graphics.Point {
	return f.Surface.Size().Center()
}

// Clear paints the panel with the background color.
func (f *Frame) Clear() {
	f.Surface.Clear(f.Background)
}

func (f *Frame) hold(ctx context.Context, d time.Duration) error {
	if f.Pacer == nil {
		return ctx.Err()
	}
	return f.Pacer.Hold(ctx, d)
}
