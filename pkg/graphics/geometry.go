// Package graphics holds the value types shared by the display surfaces and
// the animation library: integer pixel coordinates and RGB565 colors.
package graphics

// Point is a pixel coordinate. Coordinates may be negative or beyond the
// panel; clipping is the surface's job.
type Point struct {
	X int16
	Y int16
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int16) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Size represents panel dimensions in pixels.
type Size struct {
	Width  int16
	Height int16
}

// Center returns the middle pixel of a canvas of this size.
func (s Size) Center() Point {
	return Point{X: s.Width / 2, Y: s.Height / 2}
}

// Contains reports whether p lies on a canvas of this size.
func (s Size) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < s.Width && p.Y < s.Height
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X, Y          int16
	Width, Height int16
}

// RectXYWH constructs a Rect from left, top, width, height values.
func RectXYWH(x, y, w, h int16) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Right returns the exclusive right edge.
func (r Rect) Right() int16 {
	return r.X + r.Width
}

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int16 {
	return r.Y + r.Height
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Intersect returns the overlap of two rectangles, or an empty Rect.
func (r Rect) Intersect(other Rect) Rect {
	left := max(r.X, other.X)
	top := max(r.Y, other.Y)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())
	if left >= right || top >= bottom {
		return Rect{}
	}
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}
