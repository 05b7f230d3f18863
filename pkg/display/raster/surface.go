// Package raster implements display.Surface on an in-memory RGB565
// framebuffer. The host simulator draws into it and exports PNG frames.
package raster

import (
	"image"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/marquee/pkg/display"
	"github.com/go-drift/marquee/pkg/graphics"
)

// Surface is a framebuffer-backed display.Surface. It is not safe for
// concurrent use; the control loop owns it.
type Surface struct {
	size  graphics.Size
	pix   []graphics.Color
	faces map[string]font.Face
}

var _ display.Surface = (*Surface)(nil)

// New allocates a framebuffer of the given size, cleared to black.
func New(size graphics.Size) *Surface {
	if size.Width < 0 {
		size.Width = 0
	}
	if size.Height < 0 {
		size.Height = 0
	}
	return &Surface{
		size: size,
		pix:  make([]graphics.Color, int(size.Width)*int(size.Height)),
		faces: map[string]font.Face{
			display.FontSans.Name:  inconsolata.Regular8x16,
			display.FontFixed.Name: basicfont.Face7x13,
		},
	}
}

// Size returns the framebuffer dimensions.
func (s *Surface) Size() graphics.Size {
	return s.size
}

// At returns the pixel at (x, y), or black outside the framebuffer.
func (s *Surface) At(x, y int16) graphics.Color {
	if !s.size.Contains(graphics.Pt(x, y)) {
		return graphics.ColorBlack
	}
	return s.pix[int(y)*int(s.size.Width)+int(x)]
}

// DrawPixel sets one pixel; writes outside the framebuffer are dropped.
func (s *Surface) DrawPixel(x, y int16, c graphics.Color) {
	if !s.size.Contains(graphics.Pt(x, y)) {
		return
	}
	s.pix[int(y)*int(s.size.Width)+int(x)] = c
}

// Fill paints the visible part of a rectangle.
func (s *Surface) Fill(x, y, w, h int16, c graphics.Color) {
	r := graphics.RectXYWH(x, y, w, h).Intersect(graphics.RectXYWH(0, 0, s.size.Width, s.size.Height))
	if r.Empty() {
		return
	}
	stride := int(s.size.Width)
	for j := int(r.Y); j < int(r.Bottom()); j++ {
		row := s.pix[j*stride+int(r.X) : j*stride+int(r.Right())]
		for i := range row {
			row[i] = c
		}
	}
}

// Clear paints the whole framebuffer.
func (s *Surface) Clear(c graphics.Color) {
	for i := range s.pix {
		s.pix[i] = c
	}
}

// DrawCircle strokes a circle outline.
func (s *Surface) DrawCircle(cx, cy, r int16, c graphics.Color) {
	display.StrokeCircle(s, cx, cy, r, c)
}

// DrawRect strokes a rectangle outline.
func (s *Surface) DrawRect(x, y, w, h int16, c graphics.Color) {
	display.StrokeRect(s, x, y, w, h, c)
}

// DrawText rasterizes text with its baseline at y. Each glyph pixel is
// expanded to a scale×scale block.
func (s *Surface) DrawText(x, y int16, text string, f display.Font, scale int, c graphics.Color) {
	if text == "" {
		return
	}
	if scale < 1 {
		scale = 1
	}
	face := s.face(f)
	bounds, _ := font.BoundString(face, text)
	rect := image.Rect(bounds.Min.X.Floor(), bounds.Min.Y.Floor(), bounds.Max.X.Ceil(), bounds.Max.Y.Ceil())
	if rect.Empty() {
		return
	}
	mask := image.NewAlpha(rect)
	d := &font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.Point26_6{},
	}
	d.DrawString(text)

	for py := rect.Min.Y; py < rect.Max.Y; py++ {
		for px := rect.Min.X; px < rect.Max.X; px++ {
			if mask.AlphaAt(px, py).A < 0x80 {
				continue
			}
			s.Fill(x+int16(px*scale), y+int16(py*scale), int16(scale), int16(scale), c)
		}
	}
}

// face resolves a font name, defaulting to the sans face.
func (s *Surface) face(f display.Font) font.Face {
	if face, ok := s.faces[f.Name]; ok {
		return face
	}
	return s.faces[display.FontSans.Name]
}

// Count returns how many pixels currently hold color c.
func (s *Surface) Count(c graphics.Color) int {
	n := 0
	for _, p := range s.pix {
		if p == c {
			n++
		}
	}
	return n
}

// Image converts the framebuffer to an RGBA image.
func (s *Surface) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(s.size.Width), int(s.size.Height)))
	for y := 0; y < int(s.size.Height); y++ {
		for x := 0; x < int(s.size.Width); x++ {
			img.SetRGBA(x, y, s.pix[y*int(s.size.Width)+x].RGBA())
		}
	}
	return img
}

// WritePNG encodes the framebuffer as PNG.
func (s *Surface) WritePNG(w io.Writer) error {
	return png.Encode(w, s.Image())
}
