// Package logging configures the zerolog logger shared by the
// decoder, trainer, and evaluate binaries.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New returns a console-writing zerolog.Logger. quiet suppresses
// everything below Error, matching the decoder's -q flag.
func New(quiet bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if quiet {
		level = zerolog.ErrorLevel
	}

	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
