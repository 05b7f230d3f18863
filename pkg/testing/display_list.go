package testing

import (
	"encoding/json"
	"io"

	"github.com/go-drift/marquee/pkg/display"
	"github.com/go-drift/marquee/pkg/graphics"
)

// Display operation names recorded by Recorder.
const (
	OpFill   = "fill"
	OpClear  = "clear"
	OpPixel  = "pixel"
	OpCircle = "circle"
	OpRect   = "rect"
	OpText   = "text"
)

// DisplayOp is one recorded call on a display.Surface. Fields that do not
// apply to an op are left zero.
type DisplayOp struct {
	Op     string         `json:"op"`
	X      int16          `json:"x,omitempty"`
	Y      int16          `json:"y,omitempty"`
	W      int16          `json:"w,omitempty"`
	H      int16          `json:"h,omitempty"`
	Radius int16          `json:"r,omitempty"`
	Color  graphics.Color `json:"color"`
	Text   string         `json:"text,omitempty"`
	Font   string         `json:"font,omitempty"`
	Scale  int            `json:"scale,omitempty"`
}

// Recorder is a display.Surface test double that records every call in
// order. It draws nothing.
type Recorder struct {
	size graphics.Size
	ops  []DisplayOp

	// OnDraw, if set, runs after each recorded op. Tests use it to fire
	// simulated interrupts in the middle of a routine.
	OnDraw func(op DisplayOp)
}

var _ display.Surface = (*Recorder)(nil)

// NewRecorder returns a recorder reporting the given panel size.
func NewRecorder(size graphics.Size) *Recorder {
	return &Recorder{size: size}
}

func (r *Recorder) record(op DisplayOp) {
	r.ops = append(r.ops, op)
	if r.OnDraw != nil {
		r.OnDraw(op)
	}
}

func (r *Recorder) Size() graphics.Size {
	return r.size
}

func (r *Recorder) Fill(x, y, w, h int16, c graphics.Color) {
	r.record(DisplayOp{Op: OpFill, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) Clear(c graphics.Color) {
	r.record(DisplayOp{Op: OpClear, Color: c})
}

func (r *Recorder) DrawPixel(x, y int16, c graphics.Color) {
	r.record(DisplayOp{Op: OpPixel, X: x, Y: y, Color: c})
}

func (r *Recorder) DrawCircle(cx, cy, radius int16, c graphics.Color) {
	r.record(DisplayOp{Op: OpCircle, X: cx, Y: cy, Radius: radius, Color: c})
}

func (r *Recorder) DrawRect(x, y, w, h int16, c graphics.Color) {
	r.record(DisplayOp{Op: OpRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) DrawText(x, y int16, text string, f display.Font, scale int, c graphics.Color) {
	r.record(DisplayOp{Op: OpText, X: x, Y: y, Text: text, Font: f.Name, Scale: scale, Color: c})
}

// Ops returns a copy of the recorded ops.
func (r *Recorder) Ops() []DisplayOp {
	out := make([]DisplayOp, len(r.ops))
	copy(out, r.ops)
	return out
}

// Filter returns the recorded ops with the given name.
func (r *Recorder) Filter(name string) []DisplayOp {
	var out []DisplayOp
	for _, op := range r.ops {
		if op.Op == name {
			out = append(out, op)
		}
	}
	return out
}

// Count returns how many ops with the given name were recorded.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, op := range r.ops {
		if op.Op == name {
			n++
		}
	}
	return n
}

// Len returns the number of recorded ops.
func (r *Recorder) Len() int {
	return len(r.ops)
}

// Reset forgets recorded ops.
func (r *Recorder) Reset() {
	r.ops = nil
}

// WriteJSON dumps the display list, one op per line.
func (r *Recorder) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	for _, op := range r.ops {
		if err := enc.Encode(op); err != nil {
			return err
		}
	}
	return nil
}
