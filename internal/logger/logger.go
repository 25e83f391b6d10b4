// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// the convenience constructors used throughout the go-notes application.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// The terminal belongs to the UI while the program runs, so the client
// logger writes to a file instead of stdout.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
)

// DefaultLogFileName is used when no log file path is configured. The file
// is created next to the executable.
const DefaultLogFileName = "notes.log"

// fallbackOutput receives the warning about an unusable log file. The
// screen has not started yet when [NewClientLogger] runs, so stderr is free.
var fallbackOutput io.Writer = os.Stderr

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger

	out io.Closer
}

func configureGlobals() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"
}

// NewLogger constructs a *Logger for the given role label writing JSON to w.
//
// The logger is configured with:
//   - global log level set to Debug (all levels are emitted);
//   - a "role" field set to role;
//   - a timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name
//     (instead of the default file:line format) for easier log navigation.
func NewLogger(role string, w io.Writer) *Logger {
	configureGlobals()

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{Logger: logger}
}

// NewClientLogger opens (or creates) the log file at path and returns a
// *Logger writing to it at the given level ("debug", "info", ...).
//
// An empty path resolves to [DefaultLogFileName] next to the executable.
// An unknown level falls back to debug. If the file cannot be opened a
// warning goes to stderr and the logger discards its output: writing to
// stdout would corrupt the screen.
func NewClientLogger(role, path, level string) *Logger {
	if path == "" {
		path = defaultLogPath()
	}

	var w io.Writer = io.Discard
	var closer io.Closer
	logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err == nil {
		w, closer = logFile, logFile
	}

	l := NewLogger(role, w)
	l.out = closer

	lvl, parseErr := zerolog.ParseLevel(level)
	if parseErr != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.DebugLevel
	}
	l.Logger = l.Logger.Level(lvl)

	if err != nil {
		NewLogger(role, fallbackOutput).Warn().Err(err).Str("path", path).Msg("log file unavailable, output discarded")
	}

	return l
}

func defaultLogPath() string {
	execPath, err := os.Executable()
	if err != nil {
		return DefaultLogFileName
	}
	return filepath.Join(filepath.Dir(execPath), DefaultLogFileName)
}

// Close releases the log file opened by [NewClientLogger]. It is safe to
// call on any *Logger.
func (l *Logger) Close() error {
	if l == nil || l.out == nil {
		return nil
	}
	return l.out.Close()
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}
