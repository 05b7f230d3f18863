// Package config loads the optional marquee.yaml that picks a build variant
// and tunes the simulator. The device itself has no runtime configuration;
// the firmware compiles in Default().
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/marquee/pkg/animation"
	"github.com/go-drift/marquee/pkg/clock"
	"github.com/go-drift/marquee/pkg/errors"
	"github.com/go-drift/marquee/pkg/graphics"
	"github.com/go-drift/marquee/pkg/input"
)

// DefaultFile is the name LoadOptional looks for when given no path.
const DefaultFile = "marquee.yaml"

// SchemaVersion is the config schema this build writes. Files declaring
// any v1.x schema are accepted.
const SchemaVersion = "v1.0.0"

// Config represents marquee.yaml.
type Config struct {
	Schema      string          `yaml:"schema"`
	Variant     string          `yaml:"variant"`
	Display     DisplayConfig   `yaml:"display"`
	Timebase    TimebaseConfig  `yaml:"timebase"`
	ResetPolicy string          `yaml:"reset_policy"`
	InitialMode string          `yaml:"initial_mode"`
	Indicator   IndicatorConfig `yaml:"indicator"`
	Timing      TimingConfig    `yaml:"timing"`
	DebounceMS  int             `yaml:"debounce_ms"`
	Seed        int64           `yaml:"seed"`
}

// DisplayConfig is the panel geometry in pixels.
type DisplayConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimebaseConfig describes the tick timer.
type TimebaseConfig struct {
	CPUHz     uint64 `yaml:"cpu_hz"`
	Prescaler uint64 `yaml:"prescaler"`
	Overflow  uint64 `yaml:"overflow"`
}

// IndicatorConfig configures the mode LED.
type IndicatorConfig struct {
	ActiveLow bool `yaml:"active_low"`
}

// TimingConfig holds frame holds in milliseconds.
type TimingConfig struct {
	CircleHoldMS    int `yaml:"circle_hold_ms"`
	RectangleHoldMS int `yaml:"rectangle_hold_ms"`
	SmileyHoldMS    int `yaml:"smiley_hold_ms"`
	StarfieldHoldMS int `yaml:"starfield_hold_ms"`
	StarColorHoldMS int `yaml:"star_color_hold_ms"`
	ClockHoldMS     int `yaml:"clock_hold_ms"`
}

// Resolved contains validated, typed configuration values.
type Resolved struct {
	Variant     animation.Variant
	Size        graphics.Size
	Timebase    clock.Timebase
	ResetPolicy input.ResetPolicy
	InitialMode input.Mode
	ActiveLow   bool
	Timing      animation.Timing
	Debounce    time.Duration
	Seed        int64
}

// Default returns the configuration of the six-animation firmware on a
// 128×128 panel.
func Default() *Config {
	t := animation.DefaultTiming()
	return &Config{
		Schema:  SchemaVersion,
		Variant: animation.VariantSix.String(),
		Display: DisplayConfig{Width: 128, Height: 128},
		Timebase: TimebaseConfig{
			CPUHz:     clock.DefaultTimebase.CPUHz,
			Prescaler: clock.DefaultTimebase.Prescaler,
			Overflow:  clock.DefaultTimebase.Overflow,
		},
		ResetPolicy: input.ResetClock.String(),
		InitialMode: input.Random.String(),
		Timing: TimingConfig{
			CircleHoldMS:    int(t.CircleStep / time.Millisecond),
			RectangleHoldMS: int(t.RectangleStep / time.Millisecond),
			SmileyHoldMS:    int(t.Smiley / time.Millisecond),
			StarfieldHoldMS: int(t.Starfield / time.Millisecond),
			StarColorHoldMS: int(t.StarColor / time.Millisecond),
			ClockHoldMS:     int(t.Clock / time.Millisecond),
		},
		Seed: 1,
	}
}

// LoadOptional reads path, or marquee.yaml in the working directory when
// path is empty. A missing file yields Default(). Fields absent from the
// file keep their defaults.
func LoadOptional(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return nil, errors.New("config.Load", errors.KindConfig, fmt.Errorf("failed to read %s: %w", path, err))
	}
	return Parse(data)
}

// Parse decodes a YAML document over the defaults. Unknown keys are
// rejected so a typo does not silently fall back to a default.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.New("config.Parse", errors.KindConfig, fmt.Errorf("failed to parse config: %w", err))
	}
	return cfg, nil
}

// Marshal renders cfg as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks every field and returns the first problem found.
func (c *Config) Validate() error {
	_, err := c.Resolve()
	return err
}

// Resolve validates the config and converts it to typed values.
func (c *Config) Resolve() (*Resolved, error) {
	fail := func(format string, args ...any) (*Resolved, error) {
		return nil, errors.Errorf("config.Validate", errors.KindConfig, format, args...)
	}

	if err := checkSchema(c.Schema); err != nil {
		return nil, errors.New("config.Validate", errors.KindConfig, err)
	}

	variant, ok := animation.ParseVariant(strings.TrimSpace(c.Variant))
	if !ok {
		return fail("variant must be %q or %q (got %q)", "six", "five", c.Variant)
	}

	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fail("display size must be positive (got %dx%d)", c.Display.Width, c.Display.Height)
	}
	if c.Display.Width > 0x7fff || c.Display.Height > 0x7fff {
		return fail("display size %dx%d exceeds the coordinate range", c.Display.Width, c.Display.Height)
	}

	tb := clock.Timebase{CPUHz: c.Timebase.CPUHz, Prescaler: c.Timebase.Prescaler, Overflow: c.Timebase.Overflow}
	if err := tb.Validate(); err != nil {
		return fail("timebase: %v", err)
	}

	policy, ok := input.ParseResetPolicy(strings.TrimSpace(c.ResetPolicy))
	if !ok {
		return fail("reset_policy must be %q or %q (got %q)", "clock", "sequence", c.ResetPolicy)
	}

	mode, ok := input.ParseMode(strings.TrimSpace(c.InitialMode))
	if !ok {
		return fail("initial_mode must be %q or %q (got %q)", "sequential", "random", c.InitialMode)
	}

	holds := []struct {
		name string
		ms   int
	}{
		{"circle_hold_ms", c.Timing.CircleHoldMS},
		{"rectangle_hold_ms", c.Timing.RectangleHoldMS},
		{"smiley_hold_ms", c.Timing.SmileyHoldMS},
		{"starfield_hold_ms", c.Timing.StarfieldHoldMS},
		{"star_color_hold_ms", c.Timing.StarColorHoldMS},
		{"clock_hold_ms", c.Timing.ClockHoldMS},
	}
	for _, h := range holds {
		if h.ms < 0 {
			return fail("timing.%s cannot be negative (got %d)", h.name, h.ms)
		}
	}
	if c.DebounceMS < 0 {
		return fail("debounce_ms cannot be negative (got %d)", c.DebounceMS)
	}

	return &Resolved{
		Variant:     variant,
		Size:        graphics.Size{Width: int16(c.Display.Width), Height: int16(c.Display.Height)},
		Timebase:    tb,
		ResetPolicy: policy,
		InitialMode: mode,
		ActiveLow:   c.Indicator.ActiveLow,
		Timing: animation.Timing{
			CircleStep:    ms(c.Timing.CircleHoldMS),
			RectangleStep: ms(c.Timing.RectangleHoldMS),
			Smiley:        ms(c.Timing.SmileyHoldMS),
			Starfield:     ms(c.Timing.StarfieldHoldMS),
			StarColor:     ms(c.Timing.StarColorHoldMS),
			Clock:         ms(c.Timing.ClockHoldMS),
		},
		Debounce: ms(c.DebounceMS),
		Seed:     c.Seed,
	}, nil
}

// HandlerConfig returns the interrupt handler settings. The indicator is
// left for the caller to attach.
func (r *Resolved) HandlerConfig(ind input.Indicator) input.HandlerConfig {
	return input.HandlerConfig{
		Policy:             r.ResetPolicy,
		Indicator:          ind,
		IndicatorActiveLow: r.ActiveLow,
		Debounce:           r.Debounce,
	}
}

func checkSchema(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return fmt.Errorf("schema is required")
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("schema %q is not a semantic version", v)
	}
	if major := semver.Major(v); major != "v1" {
		return fmt.Errorf("schema %s is not supported (want v1.x, got %s)", v, major)
	}
	return nil
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
