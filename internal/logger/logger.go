// Package logger wraps zerolog setup for the platform.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the process-wide logger. Init replaces it; before Init it is
// the zerolog default writing JSON to stderr.
var Logger = log.Logger

// Init configures the global logger. Unknown levels fall back to info;
// format "pretty" switches to the human-readable console writer.
func Init(level, format string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	out := zerolog.New(os.Stdout)
	if format == "pretty" {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	Logger = out.Level(lvl).With().Timestamp().Logger()
	log.Logger = Logger
}

// Debug starts a debug-level event on the global logger.
func Debug() *zerolog.Event { return Logger.Debug() }

// Info starts an info-level event on the global logger.
func Info() *zerolog.Event { return Logger.Info() }

// Warn starts a warn-level event on the global logger.
func Warn() *zerolog.Event { return Logger.Warn() }

// Error starts an error-level event on the global logger.
func Error() *zerolog.Event { return Logger.Error() }

// Fatal starts a fatal-level event; the process exits after logging.
func Fatal() *zerolog.Event { return Logger.Fatal() }
