package log

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ Logger = (*zapLogger)(nil)

type zapLogger struct {
	l        *zap.Logger
	minLevel Level
}

type ZapOption func(z *zapLogger)

// WithZapMinLevel drops records below level before they reach zap.
func WithZapMinLevel(level Level) ZapOption {
	return func(z *zapLogger) {
		z.minLevel = level
	}
}

// Zap makes Logger over zap. Names from the context become the zap logger name.
func Zap(l *zap.Logger, opts ...ZapOption) *zapLogger {
	z := &zapLogger{
		l:        l,
		minLevel: TRACE,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(z)
		}
	}

	return z
}

func (z *zapLogger) Log(ctx context.Context, msg string, fields ...Field) {
	lvl := LevelFromContext(ctx)
	if lvl < z.minLevel || lvl >= QUIET {
		return
	}
	l := z.l
	if names := NamesFromContext(ctx); len(names) > 0 {
		l = l.Named(strings.Join(names, "."))
	}
	if ce := l.Check(zapLevel(lvl), msg); ce != nil {
		ce.Write(zapFields(fields)...)
	}
}

func zapLevel(lvl Level) zapcore.Level {
	switch lvl {
	case TRACE, DEBUG:
		return zapcore.DebugLevel
	case INFO:
		return zapcore.InfoLevel
	case WARN:
		return zapcore.WarnLevel
	default:
		// FATAL records are not allowed to terminate the process
		return zapcore.ErrorLevel
	}
}

func zapFields(fields []Field) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	ff := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		switch f.Type() {
		case IntType:
			ff = append(ff, zap.Int(f.Key(), f.IntValue()))
		case Int64Type:
			ff = append(ff, zap.Int64(f.Key(), f.Int64Value()))
		case StringType:
			ff = append(ff, zap.String(f.Key(), f.StringValue()))
		case BoolType:
			ff = append(ff, zap.Bool(f.Key(), f.BoolValue()))
		case DurationType:
			ff = append(ff, zap.Duration(f.Key(), f.DurationValue()))
		case ErrorType:
			ff = append(ff, zap.NamedError(f.Key(), f.ErrorValue()))
		case StringerType:
			ff = append(ff, zap.String(f.Key(), f.String()))
		default:
			ff = append(ff, zap.Any(f.Key(), f.AnyValue()))
		}
	}

	return ff
}
