// Package logging configures the process-wide zerolog logger for the CLI.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ParseLevel maps trace/debug/info/warn/error (any case) to a zerolog level.
func ParseLevel(s string) (zerolog.Level, error) {
	switch strings.ToLower(s) {
	case "trace":
		return zerolog.TraceLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "warn":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	}

	return zerolog.NoLevel, fmt.Errorf("unknown log level %q, only trace/debug/info/warn/error is allowed", s)
}

// Setup points log.Logger at w, as JSON lines or a console writer, filtered at
// level, and returns it for injection into library options.
func Setup(w io.Writer, level string, json bool) (zerolog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	if !json {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}

	log.Logger = zerolog.New(w).With().Timestamp().Logger().Level(lvl)

	return log.Logger, nil
}
