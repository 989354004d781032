package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ZerologLogger implements Logger using rs/zerolog. Output goes to stderr
// so diagnostics never interleave with the interactive menu on stdout.
type ZerologLogger struct {
	log zerolog.Logger
}

// NewWithConfig creates a ZerologLogger with the configured level and
// format. Format is "console" or "json"; when empty, the console writer is
// used if APP_ENV is dev and JSON otherwise. All logs carry the component
// field.
func NewWithConfig(component, level, format string) Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	console := format == "console"
	if format == "" {
		console = strings.ToLower(os.Getenv("APP_ENV")) == "dev"
	}
	var z zerolog.Logger
	if console {
		writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
		z = zerolog.New(writer).With().Timestamp().Str("component", component).Logger()
	} else {
		z = zerolog.New(os.Stderr).With().Timestamp().Str("component", component).Logger()
	}
	return &ZerologLogger{log: z.Level(lvl)}
}

func (l *ZerologLogger) Debugf(format string, args ...any) {
	l.log.Debug().Msgf(format, args...)
}

func (l *ZerologLogger) Infof(format string, args ...any) {
	l.log.Info().Msgf(format, args...)
}

func (l *ZerologLogger) Warnf(format string, args ...any) {
	l.log.Warn().Msgf(format, args...)
}

func (l *ZerologLogger) Errorf(format string, args ...any) {
	l.log.Error().Msgf(format, args...)
}
