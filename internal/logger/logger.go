// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// go-bitcoin-connect client.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Components take a scoped logger from GetChildLogger. A caller can attach
// its logger to a context with WithContext so code further down the call
// chain logs through it via FromContext.
package logger

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label that writes JSON
// to os.Stdout.
//
// Every entry carries a "role" field, a timestamp and a "func" caller field
// holding the fully-qualified function name.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role, zerolog.DebugLevel)
}

// NewClientLogger constructs a *Logger that appends to the file at logPath.
//
// The interactive client owns the terminal, so its logs go to a file. An
// empty logPath resolves to a "logs" file next to the executable; when the
// file cannot be opened the logger falls back to os.Stdout. level is parsed
// with zerolog.ParseLevel and defaults to debug when empty or invalid.
func NewClientLogger(role, logPath, level string) *Logger {
	if logPath == "" {
		execPath, _ := os.Executable()
		logPath = filepath.Join(filepath.Dir(execPath), "logs")
	}

	var out io.Writer = os.Stdout
	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err == nil {
		out = logFile
	}

	return newLogger(out, role, parseLevel(level))
}

func newLogger(out io.Writer, role string, level zerolog.Level) *Logger {
	zerolog.SetGlobalLevel(level)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

func parseLevel(level string) zerolog.Level {
	if level == "" {
		return zerolog.DebugLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.DebugLevel
	}
	return lvl
}

// Nop returns a *Logger that discards all log output. It is intended for
// tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver and tags every entry with the given component.
func (l *Logger) GetChildLogger(component string) *Logger {
	return &Logger{l.With().Str("component", component).Logger()}
}

// WithContext attaches the logger to ctx so that FromContext can retrieve it
// further down the call chain.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext extracts the zerolog.Logger stored in ctx and returns it as a
// *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default logger
// (disabled unless configured), so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
