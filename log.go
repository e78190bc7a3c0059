package jobly

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

var logger = zerolog.Nop()

// SetLogger replaces the package logger, which is silent by default.
func SetLogger(l zerolog.Logger) {
	logger = l.With().Str("component", "jobly").Logger()
}

// NewLogger builds a logger for cfg's level and format.
func NewLogger(w io.Writer, cfg Config) zerolog.Logger {
	cfg = cfg.withDefaults()
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	if cfg.LogFormat == "json" {
		return zerolog.New(w).With().Timestamp().Logger().Level(level)
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger().Level(level)
}
