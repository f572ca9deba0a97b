package cli

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// newLogger builds the CLI logger. Output is human-readable console format on
// stderr; --debug forces debug level regardless of the configured level.
func newLogger(w io.Writer, level string, debug bool) zerolog.Logger {
	lvl := zerolog.WarnLevel
	if parsed, err := zerolog.ParseLevel(level); err == nil && level != "" {
		lvl = parsed
	}
	if debug {
		lvl = zerolog.DebugLevel
	}

	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	return zerolog.New(console).Level(lvl).With().Timestamp().Logger()
}
