// Package slogx builds the [slog.Logger] used by wsm.
package slogx

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits for the log file.
const (
	MaxSizeMB  = 8
	MaxBackups = 3
	MaxAgeDays = 28
)

// New creates a text logger writing to w at the given level.
// Any extra handlers are merged in, see [MergeHandlers].
func New(w io.Writer, level slog.Level, extra ...slog.Handler) *slog.Logger {
	var handler slog.Handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	if len(extra) > 0 {
		handler = MergeHandlers(handler, extra[0], extra[1:]...)
	}
	return slog.New(handler)
}

// FileHandler creates a JSON handler writing to a size-rotated log file.
// The returned [io.Closer] should be closed when logging is done.
func FileHandler(file string, level slog.Level) (slog.Handler, io.Closer) {
	rotator := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    MaxSizeMB,
		MaxBackups: MaxBackups,
		MaxAge:     MaxAgeDays,
	}
	return slog.NewJSONHandler(rotator, &slog.HandlerOptions{Level: level}), rotator
}
