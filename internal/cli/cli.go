package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/rps/internal/app"
	"github.com/vk/rps/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Settings from a --config file sit between the built-in defaults and any
// flag given explicitly on the command line.
func Parse(ctx context.Context, args []string, output io.Writer, loader config.Loader) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("rps", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
rps - Rock, Paper, Scissors against the computer.

Usage:
  rps [options] [THROW]

Arguments:
  THROW
    One of rock, paper or scissors. Plays a single round.
    Without it the game asks for a throw and keeps playing until you quit.

Options:
`)
		flagSet.PrintDefaults()
	}

	logFormatFlag := flagSet.String("log-format", app.DefaultLogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", app.DefaultLogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	colorFlag := flagSet.Bool("color", true, "Colorize game output.")
	configFlag := flagSet.String("config", "", "Path to an HCL settings file, or a directory of .hcl files.")
	envFileFlag := flagSet.String("env-file", "", "Path to a dotenv file whose variables the settings file can read as env.NAME.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected at most one throw, got %d arguments", flagSet.NArg())}
	}

	var settings config.Settings
	if *configFlag != "" {
		env, err := config.Environ(*envFileFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		model, err := loader.Load(ctx, *configFlag, env)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		settings = model.Settings
		slog.Debug("Settings file loaded.", "path", *configFlag)
	} else if *envFileFlag != "" {
		slog.Warn("Ignoring --env-file without --config.", "path", *envFileFlag)
	}

	explicit := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	color := *colorFlag
	if !explicit["color"] && settings.Color != nil {
		color = *settings.Color
	}

	appConfig, err := app.NewConfig(app.Config{
		Throw:      flagSet.Arg(0),
		SingleShot: flagSet.NArg() == 1,
		LogLevel:   layered(explicit["log-level"], *logLevelFlag, settings.LogLevel),
		LogFormat:  layered(explicit["log-format"], *logFormatFlag, settings.LogFormat),
		Color:      color,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", appConfig)
	return appConfig, false, nil
}

// layered picks the flag value when it was set explicitly or the file has
// nothing to say, and the file value otherwise.
func layered(isSet bool, flagValue, fileValue string) string {
	if isSet || fileValue == "" {
		return flagValue
	}
	return fileValue
}
