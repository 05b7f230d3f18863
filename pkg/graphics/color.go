package graphics

import (
	"fmt"
	"image/color"
)

// Color is a 16-bit RGB565 pixel value (5 bits red, 6 bits green, 5 bits
// blue), the native format of ST7735-class controllers.
//
// Arithmetic on Color wraps at 16 bits. Animations rely on this to step
// through the color space by adding small integers to a base color.
type Color uint16

// RGB constructs a Color from 8-bit red, green, blue components,
// truncating to the 565 bit depths.
func RGB(r, g, b uint8) Color {
	return Color(uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3))
}

// Components returns the color expanded to 8-bit red, green, blue.
// The low bits are filled by replicating the high bits so that full
// intensity maps to 0xFF.
func (c Color) Components() (r, g, b uint8) {
	r5 := uint8(c>>11) & 0x1F
	g6 := uint8(c>>5) & 0x3F
	b5 := uint8(c) & 0x1F
	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
}

// RGBA returns the color as an opaque color.RGBA.
func (c Color) RGBA() color.RGBA {
	r, g, b := c.Components()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// FromRGBA converts any color.Color to the nearest RGB565 value.
func FromRGBA(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// Add returns c advanced by n, wrapping at 16 bits.
func (c Color) Add(n int) Color {
	return c + Color(n)
}

// String returns the color as a hex literal.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Color(0x%04X)", uint16(c))
}

// Named colors, matching the ST7735 driver palette.
const (
	ColorBlack   = Color(0x0000)
	ColorBlue    = Color(0x001F)
	ColorRed     = Color(0xF800)
	ColorGreen   = Color(0x07E0)
	ColorCyan    = Color(0x07FF)
	ColorMagenta = Color(0xF81F)
	ColorYellow  = Color(0xFFE0)
	ColorWhite   = Color(0xFFFF)
)

var colorNames = map[Color]string{
	ColorBlack:   "black",
	ColorBlue:    "blue",
	ColorRed:     "red",
	ColorGreen:   "green",
	ColorCyan:    "cyan",
	ColorMagenta: "magenta",
	ColorYellow:  "yellow",
	ColorWhite:   "white",
}

// ParseColor resolves a palette color by name.
func ParseColor(name string) (Color, bool) {
	for c, n := range colorNames {
		if n == name {
			return c, true
		}
	}
	return 0, false
}
