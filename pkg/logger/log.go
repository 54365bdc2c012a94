package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w without timestamps, at debug
// level when debug is set and info level otherwise.
func New(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{
		Out:     w,
		NoColor: true,
		PartsExclude: []string{
			zerolog.TimestampFieldName,
		},
	}
	return zerolog.New(out).Level(level)
}

// Component returns a child logger tagged with the given component name.
func Component(parent zerolog.Logger, name string) zerolog.Logger {
	return parent.With().Str("component", name).Logger()
}
