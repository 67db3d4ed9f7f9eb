package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/rps/internal/app"
	"github.com/vk/rps/internal/cli"
	"github.com/vk/rps/internal/console"
	"github.com/vk/rps/internal/hcl"
	"github.com/vk/rps/internal/opponent"
	"github.com/vk/rps/internal/rps"
)

// main is the entrypoint for the rps game.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:], nil); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main game logic for easier testing and error handling.
// A nil picker plays against a random opponent.
func run(in io.Reader, outW, errW io.Writer, args []string, picker opponent.Picker) error {
	ctx := context.Background()

	appConfig, shouldExit, err := cli.Parse(ctx, args, outW, hcl.NewLoader())
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	game := app.NewApp(in, outW, errW, appConfig, picker)
	if err := game.Run(ctx); err != nil {
		if errors.Is(err, rps.ErrUnparseableThrow) {
			return &cli.ExitError{Code: 1, Message: console.Alert(console.Refusal, appConfig.Color)}
		}
		return fmt.Errorf("game failed: %w", err)
	}
	return nil
}
