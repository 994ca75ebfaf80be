// Package logger configures the application's logging.
//
// It uses zerolog; output is JSON by default, or a human-friendly console
// format when LOG_PRETTY=true.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

func New() zerolog.Logger {
	if os.Getenv("LOG_PRETTY") == "true" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
