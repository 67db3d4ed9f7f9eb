package rps

import (
	"errors"
	"fmt"
)

// Outcome is the result of a round seen from the reference player.
type Outcome int

const (
	Tie Outcome = iota
	Win
	Lose
)

func (o Outcome) String() string {
	switch o {
	case Tie:
		return "tie"
	case Win:
		return "win"
	case Lose:
		return "lose"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// ErrInvalidThrow is returned by Evaluate when an operand is not a legal throw.
var ErrInvalidThrow = errors.New("throw is not rock, paper or scissors")

// ErrUnparseableThrow marks human input that did not name a legal throw.
var ErrUnparseableThrow = errors.New("unparseable throw")

// UnparseableThrowError carries the raw input that failed to parse.
type UnparseableThrowError struct {
	Input string
}

func (e *UnparseableThrowError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnparseableThrow, e.Input)
}

// Unwrap lets errors.Is match ErrUnparseableThrow.
func (e *UnparseableThrowError) Unwrap() error {
	return ErrUnparseableThrow
}

// Evaluate decides the round for reference against opponent. Both throws
// must be legal; callers validate input before getting here.
func Evaluate(reference, opponent Throw) (Outcome, error) {
	if !reference.Valid() || !opponent.Valid() {
		return Tie, fmt.Errorf("evaluate %s against %s: %w", reference, opponent, ErrInvalidThrow)
	}

	switch {
	case reference == opponent:
		return Tie, nil
	case reference.Beats(opponent):
		return Win, nil
	default:
		return Lose, nil
	}
}
