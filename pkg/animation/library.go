// Package animation contains the procedural animations the controller
// cycles through, and the dispatch table that maps an ID to its routine.
//
// # Routines
//
// Each routine is a bounded, deterministic sequence of draw calls separated
// by frame holds. A routine assumes the panel was just cleared by the
// control loop and, where noted, clears it again when done. None of them
// check coordinates; clipping belongs to the display.Surface.
//
//   - [Circle]: eleven concentric rings, radius 10 to 60 step 5.
//   - [Rectangle]: twelve 80×80 outlines marching down the diagonal.
//   - [Smiley]: a static 40×40 face.
//   - [Starfield]: fifty star glyphs at random points.
//   - [GrowingStar]: a star burst from the center, repeated in fifteen colors.
//   - [DigitalClock]: the elapsed run time as HH:MM:SS.
//
// # Dispatch
//
// A [Library] is an ordered table of [Animation] descriptors. The selector
// produces an [ID]; the control loop looks it up and calls Render.
package animation

import (
	"context"
	"fmt"
	"strconv"
)

// ID identifies an animation by its position in the six-animation table.
type ID int

const (
	Circle ID = iota
	Rectangle
	Smiley
	Starfield
	GrowingStar
	DigitalClock
)

// String returns the animation's short name.
func (id ID) String() string {
	switch id {
	case Circle:
		return "circle"
	case Rectangle:
		return "rectangle"
	case Smiley:
		return "smiley"
	case Starfield:
		return "starfield"
	case GrowingStar:
		return "growing_star"
	case DigitalClock:
		return "clock"
	default:
		return fmt.Sprintf("ID(%d)", int(id))
	}
}

// RenderFunc draws one complete animation.
type RenderFunc func(ctx context.Context, f *Frame) error

// Animation describes one entry of the dispatch table.
type Animation struct {
	ID     ID
	Name   string
	Render RenderFunc
}

// Variant selects the animation table. The five-animation build predates
// the elapsed-time readout.
type Variant int

const (
	VariantSix Variant = iota
	VariantFive
)

// String returns a human-readable representation of the variant.
func (v Variant) String() string {
	switch v {
	case VariantSix:
		return "six"
	case VariantFive:
		return "five"
	default:
		return "unknown"
	}
}

// ParseVariant resolves a variant name.
func ParseVariant(s string) (Variant, bool) {
	switch s {
	case "six", "6":
		return VariantSix, true
	case "five", "5":
		return VariantFive, true
	}
	return 0, false
}

var routines = []RenderFunc{
	Circle:       renderCircle,
	Rectangle:    renderRectangle,
	Smiley:       renderSmiley,
	Starfield:    renderStarfield,
	GrowingStar:  renderGrowingStar,
	DigitalClock: renderClock,
}

// Library is an ordered, immutable dispatch table.
type Library struct {
	entries []Animation
}

// NewLibrary builds the table for a variant.
func NewLibrary(v Variant) *Library {
	n := len(routines)
	if v == VariantFive {
		n = 5
	}
	entries := make([]Animation, n)
	for i := range entries {
		id := ID(i)
		entries[i] = Animation{ID: id, Name: id.String(), Render: routines[i]}
	}
	return &Library{entries: entries}
}

// NewLibraryOf builds a table from arbitrary descriptors. IDs are
// reassigned to match table positions.
func NewLibraryOf(anims ...Animation) *Library {
	entries := make([]Animation, len(anims))
	for i, a := range anims {
		a.ID = ID(i)
		entries[i] = a
	}
	return &Library{entries: entries}
}

// Len returns the number of animations, N.
func (l *Library) Len() int {
	return len(l.entries)
}

// Get returns the animation with the given ID.
func (l *Library) Get(id ID) (Animation, bool) {
	if id < 0 || int(id) >= len(l.entries) {
		return Animation{}, false
	}
	return l.entries[id], true
}

// Lookup resolves an animation by name or numeric ID.
func (l *Library) Lookup(key string) (Animation, bool) {
	if n, err := strconv.Atoi(key); err == nil {
		return l.Get(ID(n))
	}
	for _, a := range l.entries {
		if a.Name == key {
			return a, true
		}
	}
	return Animation{}, false
}

// All returns a copy of the table in ID order.
func (l *Library) All() []Animation {
	out := make([]Animation, len(l.entries))
	copy(out, l.entries)
	return out
}
