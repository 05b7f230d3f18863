package selector

import (
	"testing"

	"github.com/go-drift/marquee/pkg/animation"
	"github.com/go-drift/marquee/pkg/clock"
	"github.com/go-drift/marquee/pkg/input"
)

func newState(m input.Mode) *input.SharedState {
	return input.NewSharedState(clock.New(clock.DefaultTimebase), m)
}

func TestSequentialCycle(t *testing.T) {
	for _, n := range []int{5, 6} {
		sel := New(newState(input.Sequential), n, nil)
		for i := 0; i < n; i++ {
			if got := sel.Next(); got != animation.ID(i) {
				t.Errorf("n=%d: call %d = %v, want %d", n, i, got, i)
			}
		}
		if got := sel.Next(); got != 0 {
			t.Errorf("n=%d: call %d = %v, want 0 after wrapping", n, n, got)
		}
	}
}

func TestRandomToSequentialRestartsAtZero(t *testing.T) {
	state := newState(input.Sequential)
	h := input.NewHandler(state, input.HandlerConfig{})
	sel := New(state, 6, nil)
	sel.Next()
	sel.Next()

	h.ToggleMode() // random
	for i := 0; i < 10; i++ {
		sel.Next()
	}
	h.ToggleMode() // sequential

	for i := 0; i < 6; i++ {
		if got := sel.Next(); got != animation.ID(i) {
			t.Fatalf("call %d after re-entering sequential = %v, want %d", i, got, i)
		}
	}
}

func TestRandomDoesNotMoveCursor(t *testing.T) {
	state := newState(input.Random)
	sel := New(state, 6, nil)
	for i := 0; i < 20; i++ {
		sel.Next()
	}
	if state.Cursor() != 0 {
		t.Errorf("Cursor() = %d after random selections, want 0", state.Cursor())
	}
}

func TestRandomUniform(t *testing.T) {
	sel := New(newState(input.Random), 6, nil)
	counts := make([]int, 6)
	const draws = 6000
	for i := 0; i < draws; i++ {
		id := sel.Next()
		if id < 0 || id >= 6 {
			t.Fatalf("random id %v out of range", id)
		}
		counts[id]++
	}
	for id, c := range counts {
		if c < 800 || c > 1200 {
			t.Errorf("id %d drawn %d times out of %d, expected about 1000", id, c, draws)
		}
	}
}

func TestRandomRepeatsWithoutSeed(t *testing.T) {
	a := New(newState(input.Random), 6, nil)
	b := New(newState(input.Random), 6, nil)
	for i := 0; i < 50; i++ {
		if x, y := a.Next(), b.Next(); x != y {
			t.Fatalf("draw %d differs: %v vs %v", i, x, y)
		}
	}
}

type fixedSource []int

func (f *fixedSource) Intn(n int) int {
	v := (*f)[0] % n
	*f = (*f)[1:]
	return v
}

func TestRandomUsesSource(t *testing.T) {
	src := &fixedSource{4, 2, 9}
	sel := New(newState(input.Random), 6, src)
	for _, want := range []animation.ID{4, 2, 3} {
		if got := sel.Next(); got != want {
			t.Errorf("Next() = %v, want %v", got, want)
		}
	}
}

func TestEmptyTable(t *testing.T) {
	sel := New(newState(input.Sequential), 0, nil)
	if got := sel.Next(); got != 0 {
		t.Errorf("Next() on empty table = %v", got)
	}
}
