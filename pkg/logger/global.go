package logger

import (
	"sync/atomic"

	charm "github.com/charmbracelet/log"
)

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(newLogger(charm.Default()))
}

// Default returns the global logger.
func Default() *Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the global logger. Nil is ignored.
func SetDefault(l *Logger) {
	if l != nil {
		defaultLogger.Store(l)
	}
}

// Trace logs at TraceLevel on the global logger.
func Trace(msg any, keyvals ...any) { Default().Trace(msg, keyvals...) }

// Debug logs at DebugLevel on the global logger.
func Debug(msg any, keyvals ...any) { Default().Debug(msg, keyvals...) }

// Info logs at InfoLevel on the global logger.
func Info(msg any, keyvals ...any) { Default().Info(msg, keyvals...) }

// Warn logs at WarnLevel on the global logger.
func Warn(msg any, keyvals ...any) { Default().Warn(msg, keyvals...) }

// Error logs at ErrorLevel on the global logger.
func Error(msg any, keyvals ...any) { Default().Error(msg, keyvals...) }

// GetLevel returns the global logger level.
func GetLevel() Level { return Default().GetLevel() }

// SetLevel sets the global logger level.
func SetLevel(level Level) { Default().SetLevel(level) }
