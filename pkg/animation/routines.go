package animation

import (
	"context"

	"github.com/go-drift/marquee/pkg/clock"
	"github.com/go-drift/marquee/pkg/display"
	"github.com/go-drift/marquee/pkg/graphics"
)

const (
	circleSteps     = 11
	circleBase      = 10
	circleGrowth    = 5
	rectangleSteps  = 12
	rectangleSide   = 80
	rectangleStride = 5
	rectangleHue    = 10
	starCount       = 50
	starRings       = 50
)

// StarPalette is the color sequence of the growing star. It ends on black
// so the last pass erases the burst.
var StarPalette = []graphics.Color{
	graphics.ColorRed, graphics.ColorGreen, graphics.ColorBlue,
	graphics.ColorYellow, graphics.ColorBlue, graphics.ColorCyan, graphics.ColorMagenta,
	graphics.ColorWhite, graphics.ColorRed, graphics.ColorGreen, graphics.ColorYellow,
	graphics.ColorCyan, graphics.ColorMagenta, graphics.ColorWhite,
	graphics.ColorBlack,
}

// CircleRadius returns the radius drawn at step r of the circle animation.
func CircleRadius(r int) int16 {
	return int16(circleBase + circleGrowth*r)
}

// renderCircle accumulates concentric rings; earlier rings stay visible.
func renderCircle(ctx context.Context, f *Frame) error {
	c := f.Center()
	for r := 0; r < circleSteps; r++ {
		f.Surface.DrawCircle(c.X, c.Y, CircleRadius(r), graphics.ColorRed.Add(r))
		if err := f.hold(ctx, f.Timing.CircleStep); err != nil {
			return err
		}
	}
	f.Clear()
	return nil
}

func renderRectangle(ctx context.Context, f *Frame) error {
	for i := 0; i < rectangleSteps; i++ {
		off := int16(rectangleStride * i)
		f.Surface.DrawRect(off, off, rectangleSide, rectangleSide, graphics.ColorGreen.Add(rectangleHue*i))
		if err := f.hold(ctx, f.Timing.RectangleStep); err != nil {
			return err
		}
	}
	f.Clear()
	return nil
}

func renderSmiley(ctx context.Context, f *Frame) error {
	f.Surface.Fill(20, 20, 40, 40, graphics.ColorYellow)

	f.Surface.DrawPixel(30, 30, graphics.ColorBlack)
	f.Surface.DrawPixel(50, 30, graphics.ColorBlack)

	for x := int16(30); x < 50; x++ {
		f.Surface.DrawPixel(x, 50, graphics.ColorBlack)
	}
	if err := f.hold(ctx, f.Timing.Smiley); err != nil {
		return err
	}
	f.Clear()
	return nil
}

func renderStarfield(ctx context.Context, f *Frame) error {
	size := f.Surface.Size()
	for i := 0; i < starCount; i++ {
		x := int16(f.Rand.Intn(int(size.Width)))
		y := int16(f.Rand.Intn(int(size.Height)))
		DrawStar(f.Surface, x, y, 0, graphics.ColorWhite)
	}
	if err := f.hold(ctx, f.Timing.Starfield); err != nil {
		return err
	}
	f.Clear()
	return nil
}

// renderGrowingStar leaves the panel as the last (black) pass left it.
func renderGrowingStar(ctx context.Context, f *Frame) error {
	c := f.Center()
	for _, col := range StarPalette {
		for i := int16(0); i < starRings; i++ {
			DrawStar(f.Surface, c.X, c.Y, i, col)
		}
		if err := f.hold(ctx, f.Timing.StarColor); err != nil {
			return err
		}
	}
	return nil
}

// ClockOrigin is where the elapsed-time readout's baseline starts.
var ClockOrigin = graphics.Pt(20, 64)

func renderClock(ctx context.Context, f *Frame) error {
	var text string
	if f.Clock != nil {
		text = f.Clock.String()
	} else {
		text = clock.FormatHMS(0)
	}
	f.Surface.DrawText(ClockOrigin.X, ClockOrigin.Y, text, display.FontSans, 1, graphics.ColorBlue)
	if err := f.hold(ctx, f.Timing.Clock); err != nil {
		return err
	}
	f.Clear()
	return nil
}

// StarGlyphPixels is the number of DrawPixel calls one DrawStar makes.
const StarGlyphPixels = 4*5 + 4*4 + 1

// DrawStar plots the star glyph centered on (x, y): four diagonal arms of
// five pixels, four axis arms of four pixels, and the center. spread
// pushes every arm pixel outward, which is how the growing star expands.
func DrawStar(s display.Surface, x, y, spread int16, c graphics.Color) {
	for l := int16(0); l < 5; l++ {
		d := l + spread
		s.DrawPixel(x-d, y-d, c)
		s.DrawPixel(x+d, y-d, c)
		s.DrawPixel(x-d, y+d, c)
		s.DrawPixel(x+d, y+d, c)
	}
	for l := int16(0); l < 4; l++ {
		d := l + spread
		s.DrawPixel(x-d, y, c)
		s.DrawPixel(x+d, y, c)
		s.DrawPixel(x, y-d, c)
		s.DrawPixel(x, y+d, c)
	}
	s.DrawPixel(x, y, c)
}
