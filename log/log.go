// File: log/log.go
// Package log wraps zerolog as the library's observability sink.
// License: Apache-2.0

package log

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const defaultPerms = 0o0600

//nolint:gochecknoglobals
var loggerSetTimeFormat sync.Once

// Logger extends zerolog's Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger builds a logger at the given level writing to output, or to
// stdout when output is empty.
func NewLogger(level, output string) Logger {
	loggerSetTimeFormat.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339Nano
	})

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	var log zerolog.Logger

	if output == "" {
		log = zerolog.New(os.Stdout)
	} else {
		file, err := os.OpenFile(output, os.O_APPEND|os.O_WRONLY|os.O_CREATE, defaultPerms)
		if err != nil {
			log = zerolog.New(os.Stdout)
		} else {
			log = zerolog.New(file)
		}
	}

	return Logger{Logger: log.Level(lvl).With().Timestamp().Logger()}
}

// Component returns a sublogger tagged with a component name.
func (l Logger) Component(name string) Logger {
	return Logger{Logger: l.With().Str("component", name).Logger()}
}

// Nop returns a logger that discards everything. Handy default for tests
// and for embedders that wire their own sink.
func Nop() Logger {
	return Logger{Logger: zerolog.Nop()}
}
