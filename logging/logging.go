// Package logging hands out the one zerolog logger the lab harness
// writes through. Debug output from the solver and training loops
// is on by default; set NO_DEBUG to quiet it down to info.
package logging

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	logger zerolog.Logger
	once   sync.Once
)

func Get() zerolog.Logger {
	once.Do(func() {
		level := zerolog.DebugLevel
		if os.Getenv("NO_DEBUG") != "" {
			level = zerolog.InfoLevel
		}

		logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}).Level(level).With().Timestamp().Caller().Logger()
	})

	return logger
}
