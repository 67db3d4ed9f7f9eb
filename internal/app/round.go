package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vk/rps/internal/ctxlog"
	"github.com/vk/rps/internal/rps"
)

// humanThrow checks the human throw and announces it. An unparseable throw
// is returned as *rps.UnparseableThrowError and nothing is printed.
func (a *App) humanThrow(ctx context.Context, human rps.Throw, raw string) (rps.Throw, error) {
	if !human.Valid() {
		input := strings.TrimRight(raw, "\r\n")
		ctxlog.FromContext(ctx).Debug("Unparseable throw.", "input", input)
		return rps.Invalid, &rps.UnparseableThrowError{Input: input}
	}
	a.printer.HumanThrow(human)
	return human, nil
}

// computerThrow draws and announces the opponent's throw.
func (a *App) computerThrow(ctx context.Context) (rps.Throw, error) {
	computer := a.picker.Pick()
	if !computer.Valid() {
		return rps.Invalid, fmt.Errorf("opponent picked %s: %w", computer, rps.ErrInvalidThrow)
	}
	ctxlog.FromContext(ctx).Debug("Opponent picked.", "throw", computer.String())
	a.printer.ComputerThrow(computer)
	return computer, nil
}

// playRound runs one round: human line, computer line, result line.
func (a *App) playRound(ctx context.Context, human rps.Throw, raw string) (rps.Outcome, error) {
	human, err := a.humanThrow(ctx, human, raw)
	if err != nil {
		return rps.Tie, err
	}

	computer, err := a.computerThrow(ctx)
	if err != nil {
		return rps.Tie, err
	}

	outcome, err := rps.Evaluate(human, computer)
	if err != nil {
		return rps.Tie, fmt.Errorf("failed to evaluate round: %w", err)
	}
	a.printer.Result(outcome)

	ctxlog.FromContext(ctx).Debug("Round finished.",
		"human", human.String(),
		"computer", computer.String(),
		"outcome", outcome.String(),
	)
	return outcome, nil
}

// readLine reads one line of input including its newline. It returns io.EOF
// only when the input is exhausted and nothing was read.
func (a *App) readLine() (string, error) {
	line, err := a.in.ReadString('\n')
	if err == nil {
		return line, nil
	}
	if errors.Is(err, io.EOF) {
		if line == "" {
			return "", io.EOF
		}
		return line, nil
	}
	return "", fmt.Errorf("failed to read input: %w", err)
}
