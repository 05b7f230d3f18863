//go:build tinygo

// Package st7735 adapts the TinyGo ST7735 driver to display.Surface.
package st7735

import (
	"image/color"

	"tinygo.org/x/drivers/st7735"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freesans"

	"github.com/go-drift/marquee/pkg/display"
	"github.com/go-drift/marquee/pkg/graphics"
)

// Surface draws straight to the panel; there is no framebuffer.
type Surface struct {
	dev      *st7735.Device
	size     graphics.Size
	rotation st7735.Rotation
	ready    bool
	fonts    map[string]tinyfont.Fonter
}

var (
	_ display.Surface     = (*Surface)(nil)
	_ display.Initializer = (*Surface)(nil)
)

// New wraps an unconfigured driver. Init must run before the first draw.
func New(dev *st7735.Device, size graphics.Size) *Surface {
	return &Surface{
		dev:      dev,
		size:     size,
		rotation: st7735.NO_ROTATION,
		fonts: map[string]tinyfont.Fonter{
			display.FontSans.Name:  &freesans.Regular9pt7b,
			display.FontFixed.Name: &tinyfont.Picopixel,
		},
	}
}

// Init runs the controller bring-up sequence.
func (s *Surface) Init() error {
	s.dev.Configure(st7735.Config{
		Width:    s.size.Width,
		Height:   s.size.Height,
		Rotation: s.rotation,
	})
	s.ready = true
	return nil
}

// SetOrientation changes the scan direction, reconfiguring the panel if it
// is already running.
func (s *Surface) SetOrientation(o display.Orientation) {
	switch o {
	case display.Landscape:
		s.rotation = st7735.ROTATION_90
	case display.PortraitFlipped:
		s.rotation = st7735.ROTATION_180
	case display.LandscapeFlipped:
		s.rotation = st7735.ROTATION_270
	default:
		s.rotation = st7735.NO_ROTATION
	}
	if s.ready {
		s.Init()
	}
}

func (s *Surface) Size() graphics.Size {
	return s.size
}

func (s *Surface) Fill(x, y, w, h int16, c graphics.Color) {
	r := graphics.RectXYWH(x, y, w, h).Intersect(graphics.RectXYWH(0, 0, s.size.Width, s.size.Height))
	if r.Empty() {
		return
	}
	s.dev.FillRectangle(r.X, r.Y, r.Width, r.Height, c.RGBA())
}

func (s *Surface) Clear(c graphics.Color) {
	s.dev.FillScreen(c.RGBA())
}

func (s *Surface) DrawPixel(x, y int16, c graphics.Color) {
	if !s.size.Contains(graphics.Pt(x, y)) {
		return
	}
	s.dev.SetPixel(x, y, c.RGBA())
}

func (s *Surface) DrawCircle(cx, cy, r int16, c graphics.Color) {
	display.StrokeCircle(s, cx, cy, r, c)
}

func (s *Surface) DrawRect(x, y, w, h int16, c graphics.Color) {
	display.StrokeRect(s, x, y, w, h, c)
}

// DrawText renders through tinyfont.
func (s *Surface) DrawText(x, y int16, text string, f display.Font, scale int, c graphics.Color) {
	fonter, ok := s.fonts[f.Name]
	if !ok {
		fonter = s.fonts[display.FontSans.Name]
	}
	if scale < 1 {
		scale = 1
	}
	tinyfont.WriteLine(&scaled{s: s, x0: x, y0: y, k: int16(scale)}, fonter, x, y, text, c.RGBA())
}

// scaled is the tinyfont.Displayer glyphs are drawn through. Each glyph
// pixel becomes a k×k block anchored at the text origin, clipped by Fill.
type scaled struct {
	s      *Surface
	x0, y0 int16
	k      int16
}

func (d *scaled) Size() (int16, int16) {
	return d.s.size.Width, d.s.size.Height
}

func (d *scaled) SetPixel(x, y int16, c color.RGBA) {
	d.s.Fill(d.x0+(x-d.x0)*d.k, d.y0+(y-d.y0)*d.k, d.k, d.k, graphics.FromRGBA(c))
}

// Display is a no-op: the panel is written synchronously.
func (d *scaled) Display() error {
	return nil
}
