package debug

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

var (
	Enabled = false
	log     = zerolog.Nop()
)

// Enable turns on debug output to w (stderr when nil).
func Enable(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	Enabled = true
	log = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger().
		Level(zerolog.DebugLevel)
}

// FromEnv enables debug output when DEBUG is set to any non-empty value.
func FromEnv() {
	if os.Getenv("DEBUG") != "" {
		Enable(os.Stderr)
	}
}

// Log returns the debug logger. It discards everything until Enable is called.
func Log() *zerolog.Logger {
	return &log
}

func Printf(format string, args ...interface{}) {
	if Enabled {
		log.Debug().Msgf(format, args...)
	}
}
