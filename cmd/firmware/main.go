//go:build tinygo

// Command firmware is the on-device build of the animation controller: a
// 128×128 ST7735 panel on SPI0, two push-buttons and a mode LED. The tick
// timer keeps the original board's 32.768 ms period.
//
//	tinygo flash -target arduino-nano33 ./cmd/firmware
package main

import (
	"context"
	"machine"
	"math/rand"
	"time"

	"tinygo.org/x/drivers/st7735"

	"github.com/go-drift/marquee/pkg/animation"
	"github.com/go-drift/marquee/pkg/clock"
	"github.com/go-drift/marquee/pkg/config"
	"github.com/go-drift/marquee/pkg/controller"
	"github.com/go-drift/marquee/pkg/display"
	tft "github.com/go-drift/marquee/pkg/display/st7735"
	"github.com/go-drift/marquee/pkg/errors"
	"github.com/go-drift/marquee/pkg/graphics"
	"github.com/go-drift/marquee/pkg/input"
	"github.com/go-drift/marquee/pkg/selector"
)

// Board wiring.
var (
	resetButton = machine.D2
	modeButton  = machine.D3
	modeLED     = machine.D7

	tftCS  = machine.D10
	tftDC  = machine.D9
	tftRST = machine.D8
)

// pollPeriod is how often buttons are sampled when the pin cannot raise
// an interrupt.
const pollPeriod = 10 * time.Millisecond

func main() {
	r, err := config.Default().Resolve()
	if err != nil {
		panic(err)
	}
	println("marquee", r.Variant.String(), "tick", r.Timebase.Period().String())

	machine.SPI0.Configure(machine.SPIConfig{
		Frequency: 8_000_000,
		Mode:      0,
	})
	dev := st7735.New(machine.SPI0, tftRST, tftDC, tftCS, machine.NoPin)
	panel := tft.New(&dev, r.Size)
	panel.SetOrientation(display.Portrait)
	if err := panel.Init(); err != nil {
		errors.Report(errors.New("firmware.Init", errors.KindInit, err))
	}

	modeLED.Configure(machine.PinConfig{Mode: machine.PinOutput})
	led := input.IndicatorFunc(func(on bool) { modeLED.Set(on) })

	clk := clock.New(r.Timebase)
	state := input.NewSharedState(clk, r.InitialMode)
	handler := input.NewHandler(state, r.HandlerConfig(led))

	ctx := context.Background()
	input.NewTimer(r.Timebase.Period(), handler.Tick).Start(ctx)
	attachButton(ctx, resetButton, func() { handler.Reset() })
	attachButton(ctx, modeButton, func() { handler.ToggleMode() })

	library := animation.NewLibrary(r.Variant)
	frame := &animation.Frame{
		Surface:    panel,
		Pacer:      animation.SleepPacer{},
		Rand:       rand.New(rand.NewSource(r.Seed)),
		Clock:      clk,
		Background: graphics.ColorBlack,
		Timing:     r.Timing,
	}
	sel := selector.New(state, library.Len(), rand.New(rand.NewSource(r.Seed)))
	controller.New(frame, library, sel, state).Run(ctx)
}

// attachButton fires press on each falling edge of an active-low button.
// Pins without interrupt support are polled instead.
func attachButton(ctx context.Context, pin machine.Pin, press func()) {
	pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	err := pin.SetInterrupt(machine.PinFalling, func(machine.Pin) { press() })
	if err == nil {
		return
	}

	last := pin.Get()
	input.NewTimer(pollPeriod, func() {
		v := pin.Get()
		if last && !v {
			press()
		}
		last = v
	}).Start(ctx)
}
