// Package logging builds the zerolog logger used by the shell.
package logging

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultLevel keeps the terminal quiet during play.
const DefaultLevel = "warn"

// New returns a console logger writing to w at the named level.
// An empty or unknown level falls back to DefaultLevel.
func New(level string, w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}).
		Level(ParseLevel(level)).
		With().Timestamp().Logger()
}

// ParseLevel maps a level name to a zerolog level.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl, _ = zerolog.ParseLevel(DefaultLevel)
	}
	return lvl
}
