// Package logger wraps charmbracelet/log with a Trace level and the
// Trace/Debug/Info/Warning/Off level names used in configuration.
package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	charm "github.com/charmbracelet/log"

	"github.com/cloudposse/timestamp/pkg/ui/theme"
)

// Level is a charmbracelet/log level.
type Level = charm.Level

// Log levels, lowest (most verbose) first.
const (
	TraceLevel Level = charm.DebugLevel - 1
	DebugLevel Level = charm.DebugLevel
	InfoLevel  Level = charm.InfoLevel
	WarnLevel  Level = charm.WarnLevel
	ErrorLevel Level = charm.ErrorLevel
	FatalLevel Level = charm.FatalLevel
	// OffLevel silences every message.
	OffLevel Level = charm.FatalLevel + 1
)

// LogLevel is the level name accepted in configuration.
type LogLevel string

const (
	LogLevelOff     LogLevel = "Off"
	LogLevelTrace   LogLevel = "Trace"
	LogLevelDebug   LogLevel = "Debug"
	LogLevelInfo    LogLevel = "Info"
	LogLevelWarning LogLevel = "Warning"
)

// ErrInvalidLogLevel is returned by ParseLogLevel for unknown names.
var ErrInvalidLogLevel = errors.New("invalid log level")

// ParseLogLevel validates a configured level name. An empty name means Info.
func ParseLogLevel(name string) (LogLevel, error) {
	if name == "" {
		return LogLevelInfo, nil
	}
	switch l := LogLevel(name); l {
	case LogLevelTrace, LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelOff:
		return l, nil
	}
	return "", fmt.Errorf("%w `%s`: supported log levels are Trace, Debug, Info, Warning, Off", ErrInvalidLogLevel, name)
}

// Level converts the name to a charmbracelet/log level.
func (l LogLevel) Level() Level {
	switch l {
	case LogLevelTrace:
		return TraceLevel
	case LogLevelDebug:
		return DebugLevel
	case LogLevelWarning:
		return WarnLevel
	case LogLevelOff:
		return OffLevel
	default:
		return InfoLevel
	}
}

// Logger is a charmbracelet/log logger with a Trace method.
type Logger struct {
	*charm.Logger
	closer io.Closer
}

// New creates a Logger writing to stderr.
func New() *Logger {
	return newLogger(charm.New(os.Stderr))
}

// NewLogger creates a Logger at level writing to file.
// An empty file or /dev/stderr means stderr, /dev/stdout means stdout; any other
// path is opened for appending.
func NewLogger(level Level, file string) (*Logger, error) {
	var (
		w      io.Writer
		closer io.Closer
	)
	switch file {
	case "", "/dev/stderr":
		w = os.Stderr
	case "/dev/stdout":
		w = os.Stdout
	default:
		f, err := os.OpenFile(file, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file %s: %w", file, err)
		}
		w, closer = f, f
	}

	l := newLogger(charm.New(w))
	l.SetLevel(level)
	l.closer = closer
	return l, nil
}

func newLogger(cl *charm.Logger) *Logger {
	styles := charm.DefaultStyles()
	styles.Levels[TraceLevel] = lipgloss.NewStyle().
		SetString("TRCE").
		Bold(true).
		MaxWidth(4).
		Foreground(lipgloss.Color(theme.ColorGray))
	cl.SetStyles(styles)
	return &Logger{Logger: cl}
}

// Trace logs at TraceLevel.
func (l *Logger) Trace(msg any, keyvals ...any) {
	l.Log(TraceLevel, msg, keyvals...)
}

// GetLevelString returns the lowercase name of the current level.
func (l *Logger) GetLevelString() string {
	switch lvl := l.GetLevel(); lvl {
	case TraceLevel:
		return "trace"
	case OffLevel:
		return "off"
	default:
		return strings.ToLower(lvl.String())
	}
}

// Close releases the log file, if the logger opened one.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
