// Package testing provides test doubles for the display and frame pacing
// contracts.
//
// # Recording draws
//
// Substitute a Recorder for the panel and inspect what a routine drew:
//
//	rec := marqueetest.NewRecorder(graphics.Size{Width: 128, Height: 128})
//	f := &animation.Frame{Surface: rec, Pacer: marqueetest.NewFakePacer()}
//	a, _ := animation.NewLibrary(animation.VariantSix).Get(animation.Circle)
//	_ = a.Render(ctx, f)
//	circles := rec.Filter(marqueetest.OpCircle)
//
// # Virtual time
//
// FakePacer advances a FakeClock instead of sleeping, so a routine that
// holds frames for several seconds returns immediately:
//
//	pacer := marqueetest.NewFakePacer()
//	...
//	if pacer.Total() != 5500*time.Millisecond { ... }
//
// # Simulated interrupts
//
// Recorder.OnDraw and FakePacer.OnHold run in the middle of a routine and
// may call interrupt handlers, which is how tests check that an interrupt
// only touches shared state.
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import marqueetest "github.com/go-drift/marquee/pkg/testing"
package testing
