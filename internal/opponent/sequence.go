package opponent

import (
	"errors"
	"fmt"

	"github.com/vk/rps/internal/rps"
)

// Sequence replays a fixed list of throws, starting over when it runs out.
// It lets callers script the opponent.
type Sequence struct {
	throws []rps.Throw
	next   int
}

// NewSequence returns a Sequence over throws. The list must be non-empty and
// contain only legal throws.
func NewSequence(throws ...rps.Throw) (*Sequence, error) {
	if len(throws) == 0 {
		return nil, errors.New("sequence needs at least one throw")
	}
	for i, t := range throws {
		if !t.Valid() {
			return nil, fmt.Errorf("sequence entry %d: %w", i, rps.ErrInvalidThrow)
		}
	}
	return &Sequence{throws: append([]rps.Throw(nil), throws...)}, nil
}

// Pick returns the next scripted throw.
func (s *Sequence) Pick() rps.Throw {
	t := s.throws[s.next]
	s.next = (s.next + 1) % len(s.throws)
	return t
}
