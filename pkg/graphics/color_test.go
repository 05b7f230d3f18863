package graphics

import (
	"image/color"
	"testing"
)

func TestColorComponents(t *testing.T) {
	tests := []struct {
		c       Color
		r, g, b uint8
	}{
		{ColorBlack, 0, 0, 0},
		{ColorWhite, 0xFF, 0xFF, 0xFF},
		{ColorRed, 0xFF, 0, 0},
		{ColorGreen, 0, 0xFF, 0},
		{ColorBlue, 0, 0, 0xFF},
		{ColorYellow, 0xFF, 0xFF, 0},
	}
	for _, tt := range tests {
		r, g, b := tt.c.Components()
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("%v.Components() = (%d, %d, %d), want (%d, %d, %d)", tt.c, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

func TestRGBRoundTrip(t *testing.T) {
	for _, c := range []Color{ColorBlack, ColorBlue, ColorRed, ColorGreen, ColorCyan, ColorMagenta, ColorYellow, ColorWhite} {
		if got := FromRGBA(c.RGBA()); got != c {
			t.Errorf("FromRGBA(%v.RGBA()) = %v", c, got)
		}
	}
	if got := FromRGBA(color.RGBA{R: 0xFF, A: 0xFF}); got != ColorRed {
		t.Errorf("FromRGBA(red) = %v, want %v", got, ColorRed)
	}
}

func TestColorAddWraps(t *testing.T) {
	if got := ColorWhite.Add(1); got != ColorBlack {
		t.Errorf("ColorWhite.Add(1) = %v, want %v", got, ColorBlack)
	}
	if got := ColorGreen.Add(10); got != Color(0x07EA) {
		t.Errorf("ColorGreen.Add(10) = %v, want 0x07EA", got)
	}
}

func TestParseColor(t *testing.T) {
	c, ok := ParseColor("magenta")
	if !ok || c != ColorMagenta {
		t.Errorf("ParseColor(magenta) = %v, %v", c, ok)
	}
	if _, ok := ParseColor("mauve"); ok {
		t.Error("ParseColor(mauve) should fail")
	}
}

func TestRectIntersect(t *testing.T) {
	a := RectXYWH(0, 0, 10, 10)
	b := RectXYWH(5, 5, 10, 10)
	got := a.Intersect(b)
	want := RectXYWH(5, 5, 5, 5)
	if got != want {
		t.Errorf("Intersect = %+v, want %+v", got, want)
	}
	if !a.Intersect(RectXYWH(20, 20, 1, 1)).Empty() {
		t.Error("disjoint rectangles should intersect to empty")
	}
}

func TestSizeCenter(t *testing.T) {
	s := Size{Width: 128, Height: 128}
	if got := s.Center(); got != Pt(64, 64) {
		t.Errorf("Center() = %+v, want (64, 64)", got)
	}
	if s.Contains(Pt(128, 0)) {
		t.Error("Contains should exclude the right edge")
	}
}
