package app

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/vk/rps/internal/ctxlog"
	"github.com/vk/rps/internal/rps"
)

// Run plays the game: one round when a throw was supplied, otherwise rounds
// until the player declines to continue. The only error a player can cause
// is an *rps.UnparseableThrowError.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "single_shot", a.config.SingleShot)

	var err error
	if a.config.SingleShot {
		err = a.runSingleShot(ctx)
	} else {
		err = a.runInteractive(ctx)
	}

	a.logger.Debug("App.Run method finished.", "error", err)
	return err
}

func (a *App) runSingleShot(ctx context.Context) error {
	human := rps.ParseThrow(a.config.Throw)
	if !human.Valid() {
		// Refuse before touching the screen.
		_, err := a.humanThrow(ctx, human, a.config.Throw)
		return err
	}

	a.printer.ClearScreen()
	a.printer.Banner()
	_, err := a.playRound(ctx, human, a.config.Throw)
	return err
}

func (a *App) runInteractive(ctx context.Context) error {
	for round := 1; ; round++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		roundCtx := ctxlog.With(ctx, "round", round)

		a.printer.ClearScreen()
		a.printer.Banner()
		a.printer.AskThrow()

		line, err := a.readLine()
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if _, err := a.playRound(roundCtx, rps.ParseThrow(line), line); err != nil {
			return err
		}

		a.printer.AskContinue()
		answer, err := a.readLine()
		if errors.Is(err, io.EOF) {
			a.logger.Debug("Input closed, ending session.", "rounds", round)
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(strings.ToLower(answer)) != "" {
			a.logger.Debug("Player declined another round.", "rounds", round)
			return nil
		}
	}
}
