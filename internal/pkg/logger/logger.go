package logger

import (
	"io"
	"os"
	"time"

	"skill-exchange/internal/config"

	"github.com/rs/zerolog"
)

// New builds the process logger. Development environments get the console
// writer, everything else emits JSON lines.
func New(cfg config.Config) zerolog.Logger {
	return NewWithWriter(cfg, os.Stderr)
}

func NewWithWriter(cfg config.Config, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	out := w
	if cfg.Log.Pretty {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	}

	l := zerolog.New(out).Level(level).With().Timestamp()
	if cfg.App.AppName != "" {
		l = l.Str("app", cfg.App.AppName)
	}
	return l.Logger()
}

// Nop is used where a logger is optional.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
