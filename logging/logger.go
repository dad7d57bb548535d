package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config captures options for the global logger.
type Config struct {
	Level  string    // "debug", "info", ...; falls back to LOG_LEVEL
	Output io.Writer // defaults to os.Stderr
	Pretty bool      // human readable console output
}

var (
	once sync.Once
	base zerolog.Logger
)

// Configure initialises the global logger. Only the first call has effect.
func Configure(cfg Config) {
	once.Do(func() {
		base = New(cfg)
	})
}

// New builds a logger from cfg without touching the global one.
func New(cfg Config) zerolog.Logger {
	level := zerolog.InfoLevel
	name := cfg.Level
	if name == "" {
		name = os.Getenv("LOG_LEVEL")
	}
	if name != "" {
		if parsed, err := zerolog.ParseLevel(name); err == nil {
			level = parsed
		}
	}

	writer := cfg.Output
	if writer == nil {
		writer = os.Stderr
	}
	if cfg.Pretty {
		writer = zerolog.ConsoleWriter{Out: writer, TimeFormat: time.Kitchen}
	}

	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// Base returns the configured base logger.
func Base() zerolog.Logger {
	Configure(Config{})
	return base
}

// WithComponent returns a child logger annotated with the component name.
func WithComponent(component string) zerolog.Logger {
	return Base().With().Str("component", component).Logger()
}
