// Package slogbridge exposes a block logger as a log/slog.Handler.
package slogbridge

import (
	"context"
	"log/slog"

	"github.com/willibrandon/blocklog/core"
)

// Handler implements slog.Handler over a block logger. Records at warn
// map to the warning channel, error and above to the error channel,
// everything else to info. The bridge routes through the logger's
// Write so reporting an error never halts the calling goroutine.
type Handler struct {
	logger core.Logger
	attrs  []slog.Attr
	groups []string
}

// NewHandler creates a Handler writing to logger.
func NewHandler(logger core.Logger) *Handler {
	return &Handler{logger: logger}
}

// Enabled reports true for every level; block logging has no level
// filtering.
func (h *Handler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// Handle renders the record as one block: the message first, then a
// Dict of the accumulated and per-record attributes when any exist.
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	values := []any{record.Message}

	attrs := core.NewDict()
	for _, attr := range h.attrs {
		attrs.Set(h.qualifyKey(attr.Key), attr.Value.Any())
	}
	record.Attrs(func(attr slog.Attr) bool {
		attrs.Set(h.qualifyKey(attr.Key), attr.Value.Any())
		return true
	})
	if attrs.Len() > 0 {
		values = append(values, attrs)
	}

	h.logger.Write(kindFor(record.Level), values...)
	return nil
}

// WithAttrs returns a handler that includes attrs in every block.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

// WithGroup returns a handler qualifying subsequent attribute keys
// with name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string{}, h.groups...), name)
	return &clone
}

func (h *Handler) qualifyKey(key string) string {
	for i := len(h.groups) - 1; i >= 0; i-- {
		key = h.groups[i] + "." + key
	}
	return key
}

func kindFor(level slog.Level) core.EventKind {
	switch {
	case level >= slog.LevelError:
		return core.ErrorEvent
	case level >= slog.LevelWarn:
		return core.WarningEvent
	default:
		return core.PrintEvent
	}
}
