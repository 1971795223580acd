package logging

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"release-notify/internal/domain/ports"
)

const consoleTimeFormat = "15:04:05.000"

// ZeroLogger is an adapter around zerolog.Logger implementing ports.Logger.
type ZeroLogger struct {
	logger zerolog.Logger
}

var _ ports.Logger = (*ZeroLogger)(nil)

// New creates a ZeroLogger writing human-readable lines to out.
func New(out io.Writer, level string) *ZeroLogger {
	cw := zerolog.ConsoleWriter{Out: out, TimeFormat: consoleTimeFormat, NoColor: true}
	zl := zerolog.New(cw).Level(parseLevel(level)).With().Timestamp().Logger()
	return &ZeroLogger{logger: zl}
}

// Info logs an informational message.
func (l *ZeroLogger) Info(ctx context.Context, msg string, args ...any) {
	l.log(ctx, zerolog.InfoLevel, msg, args...)
}

// Warn logs a warning.
func (l *ZeroLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.log(ctx, zerolog.WarnLevel, msg, args...)
}

// Error logs an error message.
func (l *ZeroLogger) Error(ctx context.Context, msg string, args ...any) {
	l.log(ctx, zerolog.ErrorLevel, msg, args...)
}

func (l *ZeroLogger) log(ctx context.Context, level zerolog.Level, msg string, args ...any) {
	if l == nil {
		return
	}
	e := l.logger.WithLevel(level).Ctx(ctx)
	if e == nil {
		return
	}
	applyArgs(e, args)
	e.Msg(msg)
}

// applyArgs follows slog's convention: alternating key/value pairs.
// A trailing key without value is logged under "!BADKEY".
func applyArgs(e *zerolog.Event, args []any) {
	for i := 0; i < len(args); i += 2 {
		if i+1 >= len(args) {
			e.Interface("!BADKEY", args[i])
			return
		}
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}
		switch v := args[i+1].(type) {
		case error:
			e.AnErr(key, v)
		case string:
			e.Str(key, v)
		case int:
			e.Int(key, v)
		case bool:
			e.Bool(key, v)
		default:
			e.Interface(key, v)
		}
	}
}

func parseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
