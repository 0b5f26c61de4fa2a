package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger adapts a zap logger to the Logger interface.
type ZapLogger struct {
	logger *zap.Logger
}

// Compile-time assertion: *ZapLogger implements Logger.
var _ Logger = (*ZapLogger)(nil)

// NewZap wraps an existing zap logger.
func NewZap(logger *zap.Logger) Logger {
	return &ZapLogger{logger: logger}
}

func (l *ZapLogger) must() *zap.Logger {
	if l == nil || l.logger == nil {
		return zap.NewNop()
	}

	return l.logger
}

// Log dispatches to the appropriate zap level.
func (l *ZapLogger) Log(level Level, msg string, fields ...Field) {
	zapFields := fieldsToZap(fields)

	switch level {
	case LevelDebug:
		l.must().Debug(msg, zapFields...)
	case LevelInfo:
		l.must().Info(msg, zapFields...)
	case LevelWarn:
		l.must().Warn(msg, zapFields...)
	case LevelError:
		l.must().Error(msg, zapFields...)
	default:
		l.must().Info(msg, zapFields...)
	}
}

// With returns a child logger with additional structured fields.
func (l *ZapLogger) With(fields ...Field) Logger {
	return &ZapLogger{logger: l.must().With(fieldsToZap(fields)...)}
}

// Enabled reports whether the logger would emit a log at the given level.
func (l *ZapLogger) Enabled(level Level) bool {
	return l.must().Core().Enabled(levelToZap(level))
}

func fieldsToZap(fields []Field) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		zapFields = append(zapFields, zap.Any(field.Key, field.Value))
	}

	return zapFields
}

func levelToZap(level Level) zapcore.Level {
	switch level {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelInfo:
		return zapcore.InfoLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
