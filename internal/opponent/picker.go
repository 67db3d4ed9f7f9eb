// Package opponent chooses the computer's throw.
package opponent

import (
	"math/rand/v2"

	"github.com/vk/rps/internal/rps"
)

// Picker produces the opponent's throw for one round. Implementations must
// only ever return legal throws.
type Picker interface {
	Pick() rps.Throw
}

// RandomPicker draws uniformly from the legal throws.
type RandomPicker struct {
	rng     *rand.Rand
	choices []rps.Throw
}

// NewRandomPicker returns a picker backed by src. A nil src uses the
// runtime-seeded global generator.
func NewRandomPicker(src rand.Source) *RandomPicker {
	p := &RandomPicker{choices: rps.Throws()}
	if src != nil {
		p.rng = rand.New(src)
	}
	return p
}

// Pick returns Rock, Paper or Scissors with equal probability.
func (p *RandomPicker) Pick() rps.Throw {
	n := len(p.choices)
	if p.rng != nil {
		return p.choices[p.rng.IntN(n)]
	}
	return p.choices[rand.IntN(n)]
}
