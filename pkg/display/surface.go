// Package display defines the drawing contract between the animation
// controller and a panel, plus the raster algorithms that panel
// implementations share.
//
// All primitives are synchronous and infallible from the caller's point of
// view. Coordinates are not validated; a Surface clips whatever falls
// outside its panel.
package display

import "github.com/go-drift/marquee/pkg/graphics"

// Surface is the set of primitives the animation library draws with.
type Surface interface {
	// Size returns the panel dimensions.
	Size() graphics.Size
	// Fill paints a solid rectangle.
	Fill(x, y, w, h int16, c graphics.Color)
	// Clear paints the whole panel with c.
	Clear(c graphics.Color)
	// DrawPixel sets one pixel.
	DrawPixel(x, y int16, c graphics.Color)
	// DrawCircle strokes a one-pixel circle outline.
	DrawCircle(cx, cy, r int16, c graphics.Color)
	// DrawRect strokes a one-pixel rectangle outline.
	DrawRect(x, y, w, h int16, c graphics.Color)
	// DrawText renders text with its baseline at y, starting at x.
	DrawText(x, y int16, text string, font Font, scale int, c graphics.Color)
}

// Orientation selects the panel scan direction.
type Orientation int

const (
	Portrait Orientation = iota
	Landscape
	PortraitFlipped
	LandscapeFlipped
)

// String returns a human-readable representation of the orientation.
func (o Orientation) String() string {
	switch o {
	case Portrait:
		return "portrait"
	case Landscape:
		return "landscape"
	case PortraitFlipped:
		return "portrait_flipped"
	case LandscapeFlipped:
		return "landscape_flipped"
	default:
		return "unknown"
	}
}

// Initializer is implemented by surfaces that need a bring-up sequence
// before the first draw.
type Initializer interface {
	Init() error
	SetOrientation(o Orientation)
}

// Font names a typeface the surface knows how to rasterize. Surfaces map
// the name onto whatever font technology they carry and fall back to their
// default face for unknown names.
type Font struct {
	Name string
}

// Named fonts.
var (
	FontSans  = Font{Name: "sans"}
	FontFixed = Font{Name: "fixed"}
)

// PixelSetter is the only primitive the shared raster algorithms need.
type PixelSetter interface {
	DrawPixel(x, y int16, c graphics.Color)
}
