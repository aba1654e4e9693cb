package logger

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	defaultLogger zerolog.Logger
	once          sync.Once
)

// Init configures the default logger once. Level accepts the usual zerolog
// names (debug, info, warn, error); anything else falls back to info.
func Init(level string) {
	once.Do(func() {
		lvl, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil || lvl == zerolog.NoLevel {
			lvl = zerolog.InfoLevel
		}
		out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
		defaultLogger = zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	})
}

// Get returns the default logger, initializing it at info level if Init was
// never called.
func Get() zerolog.Logger {
	Init("info")
	return defaultLogger
}
