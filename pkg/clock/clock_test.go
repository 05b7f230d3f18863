package clock

import (
	"math"
	"sync"
	"testing"
	"time"
)

func TestDefaultTimebasePeriod(t *testing.T) {
	if got := DefaultTimebase.Period(); got != 32768*time.Microsecond {
		t.Errorf("Period() = %v, want 32.768ms", got)
	}
	if err := DefaultTimebase.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestTimebaseValidate(t *testing.T) {
	tests := []struct {
		name string
		tb   Timebase
	}{
		{"no cpu", Timebase{Prescaler: 1, Overflow: 1}},
		{"no prescaler", Timebase{CPUHz: 1, Overflow: 1}},
		{"no overflow", Timebase{CPUHz: 1, Prescaler: 1}},
		{"sub-nanosecond", Timebase{CPUHz: 4_000_000_000, Prescaler: 1, Overflow: 1}},
		{"cycles overflow", Timebase{CPUHz: 1, Prescaler: 1 << 32, Overflow: 1 << 32}},
		{"period overflow", Timebase{CPUHz: 1, Prescaler: 1 << 20, Overflow: 1 << 20}},
	}
	for _, tt := range tests {
		if err := tt.tb.Validate(); err == nil {
			t.Errorf("%s: Validate() = nil, want error", tt.name)
		}
	}
}

func TestWideTimebase(t *testing.T) {
	// A 32-bit overflow behind a 1024 prescaler at 16 MHz: 2^42 cycles.
	tb := Timebase{CPUHz: 16_000_000, Prescaler: 1024, Overflow: 1 << 32}
	if err := tb.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if got, want := tb.Period(), time.Duration(274_877_906_944_000); got != want {
		t.Errorf("Period() = %v, want %v", got, want)
	}
	if got := tb.Seconds(1); got != 274_877 {
		t.Errorf("Seconds(1) = %d, want 274877", got)
	}
	if got := tb.Seconds(math.MaxUint32); got != 1_180_591_620_442_533 {
		t.Errorf("Seconds(MaxUint32) = %d", got)
	}
}

func TestOverflowingTimebasePeriodIsZero(t *testing.T) {
	tb := Timebase{CPUHz: 1, Prescaler: 1 << 20, Overflow: 1 << 20}
	if got := tb.Period(); got != 0 {
		t.Errorf("Period() = %v, want 0", got)
	}
}

func TestElapsed(t *testing.T) {
	c := New(DefaultTimebase)
	c.Preset(30518)
	if got := c.Elapsed(); got != 1000*time.Second {
		t.Errorf("Elapsed() = %v, want 16m40s", got)
	}
}

func TestElapsedSecondsZero(t *testing.T) {
	c := New(DefaultTimebase)
	if got := c.String(); got != "00:00:00" {
		t.Errorf("String() at zero = %q, want 00:00:00", got)
	}
}

func TestElapsedSecondsScale(t *testing.T) {
	tests := []struct {
		ticks uint32
		want  uint64
	}{
		{30, 0},
		{31, 1},
		{61, 1},
		{62, 2},
		{30518, 1000},
	}
	for _, tt := range tests {
		c := New(DefaultTimebase)
		c.Preset(tt.ticks)
		if got := c.ElapsedSeconds(); got != tt.want {
			t.Errorf("ElapsedSeconds(%d ticks) = %d, want %d", tt.ticks, got, tt.want)
		}
	}
}

func TestElapsedMonotonicUntilWrap(t *testing.T) {
	c := New(DefaultTimebase)
	c.Preset(math.MaxUint32 - 200)
	prev := c.ElapsedSeconds()
	for i := 0; i < 200; i++ {
		c.Tick()
		got := c.ElapsedSeconds()
		if got < prev {
			t.Fatalf("elapsed went backwards at tick %d: %d < %d", c.Ticks(), got, prev)
		}
		prev = got
	}
	if c.Ticks() != math.MaxUint32 {
		t.Fatalf("Ticks() = %d, want MaxUint32", c.Ticks())
	}
	c.Tick()
	if c.Ticks() != 0 {
		t.Errorf("Ticks() after wrap = %d, want 0", c.Ticks())
	}
	if got := c.String(); got != "00:00:00" {
		t.Errorf("String() after wrap = %q, want 00:00:00", got)
	}
}

func TestReset(t *testing.T) {
	c := New(DefaultTimebase)
	for i := 0; i < 1000; i++ {
		c.Tick()
	}
	c.Reset()
	if c.Ticks() != 0 {
		t.Errorf("Ticks() after Reset = %d", c.Ticks())
	}
}

func TestFormatHMS(t *testing.T) {
	tests := []struct {
		s    uint64
		want string
	}{
		{0, "00:00:00"},
		{59, "00:00:59"},
		{60, "00:01:00"},
		{3599, "00:59:59"},
		{3600, "01:00:00"},
		{86399, "23:59:59"},
		{90061, "25:01:01"},
		{360000, "100:00:00"},
	}
	for _, tt := range tests {
		if got := FormatHMS(tt.s); got != tt.want {
			t.Errorf("FormatHMS(%d) = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestConcurrentTicks(t *testing.T) {
	c := New(DefaultTimebase)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				c.Tick()
			}
		}()
	}
	wg.Wait()
	if c.Ticks() != 8000 {
		t.Errorf("Ticks() = %d, want 8000", c.Ticks())
	}
}
