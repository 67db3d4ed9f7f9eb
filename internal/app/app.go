package app

import (
	"bufio"
	"io"
	"log/slog"

	"github.com/vk/rps/internal/console"
	"github.com/vk/rps/internal/opponent"
)

// App encapsulates the game's dependencies, configuration, and lifecycle.
type App struct {
	in      *bufio.Reader
	logger  *slog.Logger
	printer *console.Printer
	picker  opponent.Picker
	config  *Config
}

// NewApp is the constructor for the game. Game lines go to outW, log records
// to logW. A nil picker draws the opponent's throws at random.
func NewApp(in io.Reader, outW, logW io.Writer, cfg *Config, picker opponent.Picker) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	if picker == nil {
		picker = opponent.NewRandomPicker(nil)
	}

	return &App{
		in:      bufio.NewReader(in),
		logger:  logger,
		printer: console.NewPrinter(outW, cfg.Color),
		picker:  picker,
		config:  cfg,
	}
}
