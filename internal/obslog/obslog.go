// Package obslog provides an opt-in debug logger for allocator growth
// events. Output is discarded unless a caller calls Init.
package obslog

import (
	"io"
	"log/slog"
)

// L is the package logger. It discards all output until Init is called.
var L *slog.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Options configures Init.
type Options struct {
	Writer io.Writer  // Destination for log output. Default: io.Discard.
	Level  slog.Level // Minimum log level. Default: LevelInfo.
}

// Init replaces L with a logger writing to opts.Writer at opts.Level.
// A zero Options discards all output.
func Init(opts Options) {
	if opts.Writer == nil {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}
	L = slog.New(slog.NewTextHandler(opts.Writer, &slog.HandlerOptions{Level: opts.Level}))
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }
