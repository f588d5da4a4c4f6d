package trace_test

import (
	"strings"
	"testing"

	"github.com/willibrandon/blocklog/trace"
)

func TestRuntimeSourceEmbedsSeed(t *testing.T) {
	s := trace.NewRuntimeSource(trace.WithCallerSkip(1))

	raw := s.CaptureTrace("seed one\nseed two")
	if !strings.HasPrefix(raw, "seed one\nseed two\n") {
		t.Fatalf("seed not at head: %q", raw)
	}

	rest := strings.TrimPrefix(raw, "seed one\nseed two\n")
	if rest == "" {
		t.Fatal("expected at least one frame")
	}
	if !strings.Contains(rest, "runtime_test.go:") {
		t.Errorf("expected caller frame in %q", rest)
	}
	if !strings.Contains(rest, ": in function '") {
		t.Errorf("expected function annotation in %q", rest)
	}
}

func TestRuntimeSourceFramesParse(t *testing.T) {
	s := trace.NewRuntimeSource(trace.WithCallerSkip(1))
	p := trace.New()

	raw := s.CaptureTrace("seed")
	frames := strings.TrimPrefix(raw, "seed\n")

	parsed := p.Parse(frames)
	if !strings.Contains(parsed, "→ ") {
		t.Errorf("frames did not parse to arrow form: %q", parsed)
	}
	if !strings.Contains(parsed, "(line ") {
		t.Errorf("expected line annotation in %q", parsed)
	}
}
