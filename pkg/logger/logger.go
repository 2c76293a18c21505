// pkg/logger/logger.go
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger tagged with a component name.
type Logger struct {
	zl zerolog.Logger
}

// New creates a new logger instance writing to stderr with the given component prefix.
func New(prefix string) *Logger {
	return NewWithWriter(prefix, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.DateTime})
}

// NewWithWriter creates a logger writing to w. Tests pass io.Discard.
func NewWithWriter(prefix string, w io.Writer) *Logger {
	zl := zerolog.New(w).With().Timestamp().Logger()
	if prefix != "" {
		zl = zl.With().Str("component", prefix).Logger()
	}
	return &Logger{zl: zl.Level(zerolog.InfoLevel)}
}

// Nop returns a logger that drops everything.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// SetDebug toggles debug level output.
func (l *Logger) SetDebug(on bool) {
	if on {
		l.zl = l.zl.Level(zerolog.DebugLevel)
		return
	}
	l.zl = l.zl.Level(zerolog.InfoLevel)
}

// With returns a child logger carrying an extra string field.
func (l *Logger) With(key, value string) *Logger {
	return &Logger{zl: l.zl.With().Str(key, value).Logger()}
}

// Debug logs a debug message.
func (l *Logger) Debug(v ...interface{}) {
	l.zl.Debug().Msg(fmt.Sprint(v...))
}

// Info logs an informational message.
func (l *Logger) Info(v ...interface{}) {
	l.zl.Info().Msg(fmt.Sprint(v...))
}

// Warn logs a warning message.
func (l *Logger) Warn(v ...interface{}) {
	l.zl.Warn().Msg(fmt.Sprint(v...))
}

// Error logs an error message.
func (l *Logger) Error(v ...interface{}) {
	l.zl.Error().Msg(fmt.Sprint(v...))
}

// Err logs err with a message at error level.
func (l *Logger) Err(err error, msg string) {
	l.zl.Error().Err(err).Msg(msg)
}
