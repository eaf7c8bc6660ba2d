// Package logger provides a thin wrapper around zerolog.Logger used
// throughout thesisdesk.
//
// The Logger type embeds zerolog.Logger so the full zerolog API (Debug,
// Info, Warn, Error, Fatal, ...) is available directly on *Logger.
// Application code passes *Logger by pointer and obtains request-scoped
// loggers via FromContext.
package logger

import (
	"context"
	"io"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger. Embedding exposes the
// upstream API while leaving room for application helpers.
type Logger struct {
	zerolog.Logger
}

// New constructs a *Logger for the given role label (e.g. "cli",
// "refresh-worker") writing JSON to w. Every entry carries the role, a
// timestamp, and the fully-qualified caller function name under "func".
func New(role string, w io.Writer) *Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	l := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

// NewCLI constructs a logger for interactive CLI runs. Output goes to
// stderr so command output on stdout stays machine-readable, and the
// level defaults to Warn unless verbose is set.
func NewCLI(verbose bool) *Logger {
	l := New("cli", os.Stderr)
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return &Logger{l.Level(level)}
}

// Nop returns a *Logger that discards all output. Intended for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// Child returns a new *Logger inheriting all fields of the receiver. The
// child can be enriched with extra context without touching the parent.
func (l *Logger) Child() *Logger {
	return &Logger{l.With().Logger()}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's
// log.Ctx helper. If none is attached zerolog returns its global logger,
// so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
