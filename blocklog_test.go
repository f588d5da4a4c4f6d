package blocklog_test

import (
	"strings"
	"testing"

	"github.com/willibrandon/blocklog"
	"github.com/willibrandon/blocklog/core"
	"github.com/willibrandon/blocklog/sinks"
)

// fixedSource keeps end-to-end output deterministic.
type fixedSource struct{}

func (fixedSource) CaptureTrace(seedMessage string) string {
	return seedMessage + "\nsrc/app.lua:7: in function 'handler'"
}

func newTestLogger(ms *sinks.MemorySink, opts ...blocklog.Option) *blocklog.Logger {
	base := []blocklog.Option{
		blocklog.WithMemory(ms),
		blocklog.WithTraceSource(fixedSource{}),
	}
	return blocklog.New(append(base, opts...)...)
}

func TestPrintEndToEnd(t *testing.T) {
	ms := sinks.NewMemorySink()
	log := newTestLogger(ms)

	log.Print("hello", 42, true)

	if ms.Count() != 1 {
		t.Fatalf("expected 1 block, got %d", ms.Count())
	}
	entry := ms.Entries()[0]
	if entry.Channel != sinks.InfoChannel {
		t.Errorf("channel = %q, want info", entry.Channel)
	}
	if !strings.Contains(entry.Text, "[ --------- PRINT --------- ]") {
		t.Errorf("banner missing: %q", entry.Text)
	}
	if !strings.Contains(entry.Text, "• \"hello\"\n• 42\n• true") {
		t.Errorf("body missing: %q", entry.Text)
	}
	if !strings.Contains(entry.Text, "→ src/app.lua (line 7): function 'handler'") {
		t.Errorf("trace missing: %q", entry.Text)
	}
	if !strings.Contains(entry.Text, "[ ------------------------- ]") {
		t.Errorf("closing decoration missing: %q", entry.Text)
	}
}

func TestWarnUsesWarningChannelWithFalseFlag(t *testing.T) {
	ms := sinks.NewMemorySink()
	log := newTestLogger(ms)

	log.Warn("careful")

	entry := ms.Last()
	if entry == nil || entry.Channel != sinks.WarningChannel {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if entry.Flagged {
		t.Error("warning flag must be false")
	}
	if !strings.Contains(entry.Text, "WARNING") {
		t.Errorf("label missing: %q", entry.Text)
	}
}

func TestCheckpoint(t *testing.T) {
	ms := sinks.NewMemorySink()
	log := newTestLogger(ms)

	log.Checkpoint("loaded assets")

	entry := ms.Last()
	if entry == nil || entry.Channel != sinks.DiagnosticChannel {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if !strings.Contains(entry.Text, "CHECKPOINT") {
		t.Errorf("label missing: %q", entry.Text)
	}
	if !strings.Contains(entry.Text, `• "loaded assets"`) {
		t.Errorf("name missing: %q", entry.Text)
	}
}

func TestErrorWritesBeforeHalt(t *testing.T) {
	ms := sinks.NewMemorySink()
	var blocksAtHalt int
	log := newTestLogger(ms, blocklog.WithHalt(func() {
		blocksAtHalt = ms.Count()
	}))

	log.Error("broken")

	if blocksAtHalt != 1 {
		t.Errorf("expected block written before halt, had %d", blocksAtHalt)
	}
	entry := ms.Last()
	if entry.Channel != sinks.ErrorChannel {
		t.Errorf("channel = %q, want error", entry.Channel)
	}
	if !strings.Contains(entry.Text, "ERROR") {
		t.Errorf("label missing: %q", entry.Text)
	}
}

func TestErrorDefaultHaltStopsGoroutine(t *testing.T) {
	ms := sinks.NewMemorySink()
	log := newTestLogger(ms)

	returned := make(chan bool, 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		log.Error("fatal")
		returned <- true
	}()

	<-done
	select {
	case <-returned:
		t.Error("Error returned normally; expected goroutine halt")
	default:
	}
	if ms.Count() != 1 {
		t.Errorf("expected 1 block, got %d", ms.Count())
	}
}

func TestAssert(t *testing.T) {
	t.Run("true condition is a no-op", func(t *testing.T) {
		ms := sinks.NewMemorySink()
		log := newTestLogger(ms, blocklog.WithHalt(func() {
			t.Error("halt invoked for passing assertion")
		}))

		log.Assert(true, "never shown")
		if ms.Count() != 0 {
			t.Errorf("expected no blocks, got %d", ms.Count())
		}
	})

	t.Run("false condition uses default text", func(t *testing.T) {
		ms := sinks.NewMemorySink()
		halted := false
		log := newTestLogger(ms, blocklog.WithHalt(func() { halted = true }))

		log.Assert(false)

		if !halted {
			t.Error("expected halt")
		}
		entry := ms.Last()
		if entry == nil || entry.Channel != sinks.ErrorChannel {
			t.Fatalf("unexpected entry: %+v", entry)
		}
		if !strings.Contains(entry.Text, "Assertion Failed!") {
			t.Errorf("default text missing: %q", entry.Text)
		}
		if !strings.Contains(entry.Text, "ASSERTION") {
			t.Errorf("label missing: %q", entry.Text)
		}
	})

	t.Run("false condition carries message", func(t *testing.T) {
		ms := sinks.NewMemorySink()
		log := newTestLogger(ms, blocklog.WithHalt(func() {}))

		log.Assert(false, "inventory must not be empty", 0)

		entry := ms.Last()
		if !strings.Contains(entry.Text, `• "inventory must not be empty"`+"\n• 0") {
			t.Errorf("message missing: %q", entry.Text)
		}
	})
}

func TestWriteRoutesWithoutHalt(t *testing.T) {
	ms := sinks.NewMemorySink()
	log := newTestLogger(ms, blocklog.WithHalt(func() {
		t.Error("Write must not halt")
	}))

	log.Write(core.ErrorEvent, "recoverable")

	entry := ms.Last()
	if entry == nil || entry.Channel != sinks.ErrorChannel {
		t.Fatalf("unexpected entry: %+v", entry)
	}
}

func TestMultipleSinksReceiveInOrder(t *testing.T) {
	first := sinks.NewMemorySink()
	second := sinks.NewMemorySink()
	log := blocklog.New(
		blocklog.WithMemory(first),
		blocklog.WithMemory(second),
		blocklog.WithTraceSource(fixedSource{}),
	)

	log.Print("fan out")

	if first.Count() != 1 || second.Count() != 1 {
		t.Errorf("counts = %d, %d; want 1, 1", first.Count(), second.Count())
	}
	if first.Last().Text != second.Last().Text {
		t.Error("sinks received different blocks")
	}
}

func TestTreeStyleEndToEnd(t *testing.T) {
	ms := sinks.NewMemorySink()
	log := newTestLogger(ms, blocklog.WithTreeStyle())

	log.Print(core.DictOf("a", 1, "b", core.DictOf("c", 2)))

	entry := ms.Last()
	if !strings.Contains(entry.Text, `├─ ["a"]: 1`) {
		t.Errorf("branch connector missing: %q", entry.Text)
	}
	if !strings.Contains(entry.Text, "└─ [\"b\"]:\n   └─ [\"c\"]: 2") {
		t.Errorf("nested tree missing: %q", entry.Text)
	}
}

func TestMultiPartSpacing(t *testing.T) {
	ms := sinks.NewMemorySink()
	log := newTestLogger(ms)

	log.Print("a")
	single := ms.Last().Text
	if strings.Contains(single, "\n\n\n") {
		t.Errorf("single part has extra blank line: %q", single)
	}

	log.Print("a", "b")
	multi := ms.Last().Text
	if !strings.Contains(multi, "\n\n\n") {
		t.Errorf("multi part missing extra blank line: %q", multi)
	}
}

func TestCloseClosesSinks(t *testing.T) {
	var order []string
	log := blocklog.New(
		blocklog.WithSink(&closeRecorder{name: "first", order: &order}),
		blocklog.WithSink(&closeRecorder{name: "second", order: &order}),
		blocklog.WithTraceSource(fixedSource{}),
	)

	if err := log.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if len(order) != 2 || order[0] != "second" || order[1] != "first" {
		t.Errorf("close order = %v, want reverse registration", order)
	}
}

type closeRecorder struct {
	name  string
	order *[]string
}

func (c *closeRecorder) WriteInfo(string)          {}
func (c *closeRecorder) WriteWarning(bool, string) {}
func (c *closeRecorder) WriteError(string)         {}
func (c *closeRecorder) WriteDiagnostic(string)    {}
func (c *closeRecorder) Close() error {
	*c.order = append(*c.order, c.name)
	return nil
}
