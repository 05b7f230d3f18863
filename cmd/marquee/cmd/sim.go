package cmd

import (
	"fmt"
	"image"
	"math/rand"
	"strings"

	"github.com/go-drift/marquee/pkg/animation"
	"github.com/go-drift/marquee/pkg/clock"
	"github.com/go-drift/marquee/pkg/config"
	"github.com/go-drift/marquee/pkg/controller"
	"github.com/go-drift/marquee/pkg/display"
	"github.com/go-drift/marquee/pkg/display/raster"
	"github.com/go-drift/marquee/pkg/graphics"
	"github.com/go-drift/marquee/pkg/input"
	"github.com/go-drift/marquee/pkg/selector"
)

// simulator is the host build of the device: the same controller, shared
// state and handlers the firmware wires, over a framebuffer.
type simulator struct {
	cfg     *config.Resolved
	surface *capture
	clock   *clock.Clock
	state   *input.SharedState
	handler *input.Handler
	library *animation.Library
	frame   *animation.Frame
	ctrl    *controller.Controller
}

func newSimulator(r *config.Resolved, pacer animation.Pacer, ind input.Indicator) *simulator {
	s := &simulator{cfg: r}
	s.surface = newCapture(raster.New(r.Size))
	s.clock = clock.New(r.Timebase)
	s.state = input.NewSharedState(s.clock, r.InitialMode)
	s.handler = input.NewHandler(s.state, r.HandlerConfig(ind))
	s.library = animation.NewLibrary(r.Variant)
	s.frame = &animation.Frame{
		Surface:    s.surface,
		Pacer:      pacer,
		Rand:       rand.New(rand.NewSource(r.Seed)),
		Clock:      s.clock,
		Background: graphics.ColorBlack,
		Timing:     r.Timing,
	}
	// The selector draws from its own stream so the starfield layout does
	// not depend on how many random selections preceded it.
	sel := selector.New(s.state, s.library.Len(), rand.New(rand.NewSource(r.Seed)))
	s.ctrl = controller.New(s.frame, s.library, sel, s.state)
	return s
}

func loadConfig(path string) (*config.Resolved, error) {
	cfg, err := config.LoadOptional(path)
	if err != nil {
		return nil, err
	}
	return cfg.Resolve()
}

func snapshotName(seq uint64, name string) string {
	return fmt.Sprintf("cycle-%04d-%s.png", seq, strings.ReplaceAll(name, " ", "_"))
}

// capture wraps the framebuffer and keeps the last picture a routine
// finished drawing, since most routines clear the panel before returning.
type capture struct {
	*raster.Surface
	dirty bool
	last  *image.RGBA
}

func newCapture(s *raster.Surface) *capture {
	return &capture{Surface: s}
}

func (c *capture) Fill(x, y, w, h int16, col graphics.Color) {
	c.dirty = true
	c.Surface.Fill(x, y, w, h, col)
}

func (c *capture) DrawPixel(x, y int16, col graphics.Color) {
	c.dirty = true
	c.Surface.DrawPixel(x, y, col)
}

func (c *capture) DrawCircle(cx, cy, r int16, col graphics.Color) {
	c.dirty = true
	c.Surface.DrawCircle(cx, cy, r, col)
}

func (c *capture) DrawRect(x, y, w, h int16, col graphics.Color) {
	c.dirty = true
	c.Surface.DrawRect(x, y, w, h, col)
}

func (c *capture) DrawText(x, y int16, text string, f display.Font, scale int, col graphics.Color) {
	c.dirty = true
	c.Surface.DrawText(x, y, text, f, scale, col)
}

// Clear snapshots the framebuffer if anything was drawn since the last
// clear, then clears it.
func (c *capture) Clear(col graphics.Color) {
	if c.dirty {
		c.last = c.Surface.Image()
		c.dirty = false
	}
	c.Surface.Clear(col)
}

// Final returns the last finished picture: the live framebuffer if it has
// been drawn on since the last clear, otherwise the snapshot taken at that
// clear.
func (c *capture) Final() *image.RGBA {
	if c.dirty || c.last == nil {
		return c.Surface.Image()
	}
	return c.last
}

// Forget drops the snapshot so the next Final reflects only new drawing.
func (c *capture) Forget() {
	c.last = nil
	c.dirty = false
}
