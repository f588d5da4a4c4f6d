package blocklog

import (
	"log/slog"

	"github.com/willibrandon/blocklog/internal/slogbridge"
)

// NewSlogLogger creates a slog.Logger backed by blocklog.
func NewSlogLogger(options ...Option) *slog.Logger {
	logger := New(options...)
	return slog.New(slogbridge.NewHandler(logger))
}

// AsSlogHandler returns the logger as an slog.Handler. Records at warn
// map to the warning channel and error and above to the error channel;
// the bridge never halts the calling goroutine.
func (l *Logger) AsSlogHandler() slog.Handler {
	return slogbridge.NewHandler(l)
}
