// Package selector decides which animation the control loop renders next.
package selector

import (
	"math/rand"

	"github.com/go-drift/marquee/pkg/animation"
	"github.com/go-drift/marquee/pkg/input"
)

// DefaultSeed is the generator seed when none is configured. The firmware
// never seeds its generator, so random mode replays the same order after
// every power cycle; a fixed default keeps that property.
const DefaultSeed = 1

// Selector reads the shared mode and cursor once per call.
type Selector struct {
	state *input.SharedState
	n     int
	rand  animation.Source
}

// New returns a selector over n animations. A nil source uses math/rand
// seeded with DefaultSeed.
func New(state *input.SharedState, n int, src animation.Source) *Selector {
	if src == nil {
		src = rand.New(rand.NewSource(DefaultSeed))
	}
	return &Selector{state: state, n: n, rand: src}
}

// Len returns the number of animations selected from.
func (s *Selector) Len() int {
	return s.n
}

// Next returns the animation to render. In sequential mode it returns the
// cursor and advances it, so it must be called exactly once per cycle.
func (s *Selector) Next() animation.ID {
	if s.n <= 0 {
		return 0
	}
	if s.state.Mode() == input.Random {
		return animation.ID(s.rand.Intn(s.n))
	}
	return animation.ID(s.state.AdvanceCursor(uint32(s.n)))
}
