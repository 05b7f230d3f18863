package display

import "github.com/go-drift/marquee/pkg/graphics"

// StrokeCircle plots a circle outline with the midpoint algorithm, the same
// walk the Adafruit GFX family uses: one octant is computed and mirrored
// into the other seven.
func StrokeCircle(s PixelSetter, cx, cy, r int16, c graphics.Color) {
	if r < 0 {
		return
	}
	f := 1 - r
	ddx := int16(1)
	ddy := -2 * r
	x := int16(0)
	y := r

	s.DrawPixel(cx, cy+r, c)
	s.DrawPixel(cx, cy-r, c)
	s.DrawPixel(cx+r, cy, c)
	s.DrawPixel(cx-r, cy, c)

	for x < y {
		if f >= 0 {
			y--
			ddy += 2
			f += ddy
		}
		x++
		ddx += 2
		f += ddx

		s.DrawPixel(cx+x, cy+y, c)
		s.DrawPixel(cx-x, cy+y, c)
		s.DrawPixel(cx+x, cy-y, c)
		s.DrawPixel(cx-x, cy-y, c)
		s.DrawPixel(cx+y, cy+x, c)
		s.DrawPixel(cx-y, cy+x, c)
		s.DrawPixel(cx+y, cy-x, c)
		s.DrawPixel(cx-y, cy-x, c)
	}
}

// StrokeRect plots a rectangle outline.
func StrokeRect(s PixelSetter, x, y, w, h int16, c graphics.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	for i := int16(0); i < w; i++ {
		s.DrawPixel(x+i, y, c)
		s.DrawPixel(x+i, y+h-1, c)
	}
	for j := int16(1); j < h-1; j++ {
		s.DrawPixel(x, y+j, c)
		s.DrawPixel(x+w-1, y+j, c)
	}
}

// FillRect plots every pixel of a rectangle.
func FillRect(s PixelSetter, x, y, w, h int16, c graphics.Color) {
	for j := int16(0); j < h; j++ {
		for i := int16(0); i < w; i++ {
			s.DrawPixel(x+i, y+j, c)
		}
	}
}
