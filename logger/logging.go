// Package logger is the process-wide structured logger. It keeps the small
// call-site API the project started with (Info/Error, an enabled toggle)
// but is backed by zerolog instead of the standard library logger.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var (
	enabled = true // flip to false to nuke logs
	base    = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
)

func EnableLogging(b bool) {
	enabled = b
}

func Debug(msg string, v ...interface{}) {
	if !enabled {
		return
	}
	base.Debug().Msgf(msg, v...)
}

func Info(msg string, v ...interface{}) {
	if !enabled {
		return
	}
	base.Info().Msgf(msg, v...)
}

func Warn(msg string, v ...interface{}) {
	if !enabled {
		return
	}
	base.Warn().Msgf(msg, v...)
}

func Error(msg string, v ...interface{}) {
	if !enabled {
		return
	}
	base.Error().Msgf(msg, v...)
}
