// Package log builds the console loggers used by the command-line tools.
package log

import (
	"io"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zerologr"
	"github.com/rs/zerolog"
)

// New returns a zerolog logger writing human-readable lines to w.
func New(w io.Writer, level zerolog.Level) *zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	output := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "2006-01-02T15:04:05.000Z07:00"}
	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return &logger
}

// Logr adapts a zerolog logger to logr for library code.
func Logr(l *zerolog.Logger) logr.Logger {
	zerologr.NameFieldName = "logger"
	zerologr.NameSeparator = "/"
	return zerologr.New(l)
}

// ParseLevel maps a level name ("debug", "info", ...) to a zerolog level.
// An empty name means info.
func ParseLevel(name string) (zerolog.Level, error) {
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(name)
}
