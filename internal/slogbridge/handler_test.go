package slogbridge_test

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/willibrandon/blocklog"
	"github.com/willibrandon/blocklog/sinks"
)

type fixedSource struct{}

func (fixedSource) CaptureTrace(seedMessage string) string {
	return seedMessage + "\nsrc/app.lua:7: in function 'handler'"
}

func newBridgeLogger(t *testing.T, ms *sinks.MemorySink) *slog.Logger {
	t.Helper()
	base := blocklog.New(
		blocklog.WithMemory(ms),
		blocklog.WithTraceSource(fixedSource{}),
		blocklog.WithHalt(func() {
			t.Error("bridge must never halt")
		}),
	)
	return slog.New(base.AsSlogHandler())
}

func TestHandlerLevelRouting(t *testing.T) {
	ms := sinks.NewMemorySink()
	log := newBridgeLogger(t, ms)

	log.Info("info message")
	log.Warn("warn message")
	log.Error("error message")

	entries := ms.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(entries))
	}
	if entries[0].Channel != sinks.InfoChannel {
		t.Errorf("info routed to %q", entries[0].Channel)
	}
	if entries[1].Channel != sinks.WarningChannel {
		t.Errorf("warn routed to %q", entries[1].Channel)
	}
	if entries[2].Channel != sinks.ErrorChannel {
		t.Errorf("error routed to %q", entries[2].Channel)
	}
	if !strings.Contains(entries[2].Text, "ERROR") {
		t.Errorf("error label missing: %q", entries[2].Text)
	}
}

func TestHandlerAttrsRenderAsDict(t *testing.T) {
	ms := sinks.NewMemorySink()
	log := newBridgeLogger(t, ms)

	log.Info("request served", "status", 200, "path", "/healthz")

	entry := ms.Last()
	if !strings.Contains(entry.Text, `• "request served"`) {
		t.Errorf("message missing: %q", entry.Text)
	}
	if !strings.Contains(entry.Text, `["status"] = 200`) {
		t.Errorf("status attr missing: %q", entry.Text)
	}
	if !strings.Contains(entry.Text, `["path"] = "/healthz"`) {
		t.Errorf("path attr missing: %q", entry.Text)
	}
}

func TestHandlerGroupsQualifyKeys(t *testing.T) {
	ms := sinks.NewMemorySink()
	log := newBridgeLogger(t, ms)

	log.WithGroup("req").With("id", 7).Info("handled")

	entry := ms.Last()
	if !strings.Contains(entry.Text, `["req.id"] = 7`) {
		t.Errorf("group-qualified attr missing: %q", entry.Text)
	}
}

func TestHandlerWithoutAttrsSkipsDict(t *testing.T) {
	ms := sinks.NewMemorySink()
	log := newBridgeLogger(t, ms)

	log.Info("bare")

	entry := ms.Last()
	if strings.Contains(entry.Text, "] = ") {
		t.Errorf("unexpected dict in bare record: %q", entry.Text)
	}
}
