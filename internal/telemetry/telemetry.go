// Package telemetry sets up the zerolog logger used by cmd/kyberctl.
package telemetry

import (
	"os"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	fallbacklog "github.com/rs/zerolog/log"
	"golang.org/x/term"
)

const (
	// LevelFlag is the CLI flag name callers use to expose log level
	// selection to users.
	LevelFlag = "loglevel"

	consoleTimeFormat = time.RFC3339
)

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
}

// New builds a console logger at the given level string ("debug", "info",
// "warn", "error", ...). An unparseable level falls back to info and logs
// the parse failure once.
func New(levelStr string) zerolog.Logger {
	level, err := zerolog.ParseLevel(levelStr)
	if err != nil {
		level = zerolog.InfoLevel
	}

	consoleOut := os.Stderr
	writer := zerolog.ConsoleWriter{
		Out:        colorable.NewColorable(consoleOut),
		NoColor:    !term.IsTerminal(int(consoleOut.Fd())),
		TimeFormat: consoleTimeFormat,
	}

	log := zerolog.New(writer).Level(level).With().Timestamp().Logger()
	if err != nil {
		log.Error().Err(err).Str("input", levelStr).Msg("failed to parse log level, defaulting to info")
	}
	return log
}

// Fallback is used by code that runs before a real logger can be built,
// mirroring zerolog's own global fallback logger.
func Fallback(err error) *zerolog.Logger {
	failLog := fallbacklog.With().Logger()
	fallbacklog.Error().Msgf("falling back to default logger: %s", err)
	return &failLog
}
