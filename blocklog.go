package blocklog

import (
	"runtime"

	"github.com/willibrandon/blocklog/core"
	"github.com/willibrandon/blocklog/format"
	"github.com/willibrandon/blocklog/render"
	"github.com/willibrandon/blocklog/selflog"
	"github.com/willibrandon/blocklog/sinks"
	"github.com/willibrandon/blocklog/trace"
)

// defaultAssertText is the body used by Assert when no message is given.
const defaultAssertText = "Assertion Failed!"

// Logger renders values, formats decorated blocks, and fans them out
// to its sinks in registration order. It holds no per-call state and
// is safe for concurrent use.
type Logger struct {
	renderer  *render.Renderer
	formatter *format.Formatter
	sinks     []core.Sink
	halt      func()
}

// New creates a Logger from the given options. With no sinks
// configured, blocks go to a console sink on stdout. Traces come from
// the calling goroutine's stack unless a trace source is supplied.
func New(opts ...Option) *Logger {
	cfg := &config{
		tabWidth: 4,
		halt:     runtime.Goexit,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.err != nil {
		// A sink that failed to construct must not silently vanish.
		// Report it and keep the sinks that did build.
		if selflog.IsEnabled() {
			selflog.Printf("[blocklog] configuration failed: %v", cfg.err)
		}
	}

	if len(cfg.sinks) == 0 {
		cfg.sinks = append(cfg.sinks, sinks.NewConsoleSink())
	}
	if cfg.source == nil {
		cfg.source = trace.NewRuntimeSource()
	}

	renderOpts := []render.Option{
		render.WithStyle(cfg.style),
		render.WithTabWidth(cfg.tabWidth),
		render.WithRootPrefix(cfg.rootPrefix),
	}
	formatOpts := []format.Option{
		format.WithExtraSkip(cfg.extraSkip),
	}
	if cfg.marker != "" {
		formatOpts = append(formatOpts, format.WithParser(trace.New(trace.WithSingleFrame(cfg.marker))))
	}

	return &Logger{
		renderer:  render.New(renderOpts...),
		formatter: format.New(cfg.source, formatOpts...),
		sinks:     cfg.sinks,
		halt:      cfg.halt,
	}
}

// Print writes a PRINT block to the info channel.
func (l *Logger) Print(values ...any) {
	l.emit(core.PrintEvent, values)
}

// Warn writes a WARNING block to the warning channel.
func (l *Logger) Warn(values ...any) {
	l.emit(core.WarningEvent, values)
}

// Error writes an ERROR block to the error channel, then halts the
// calling goroutine. Deferred calls still run; the goroutine does not
// return to its caller.
func (l *Logger) Error(values ...any) {
	l.emit(core.ErrorEvent, values)
	l.halt()
}

// Assert is a no-op when condition is true. When false it writes an
// ASSERTION block carrying message, or a default text when message is
// empty, then halts the calling goroutine.
func (l *Logger) Assert(condition bool, message ...any) {
	if condition {
		return
	}
	if len(message) == 0 {
		message = []any{defaultAssertText}
	}
	l.emit(core.AssertionEvent, message)
	l.halt()
}

// Checkpoint writes a CHECKPOINT block to the diagnostic channel.
func (l *Logger) Checkpoint(name string) {
	l.emit(core.CheckpointEvent, []any{name})
}

// Write routes a block for kind to the matching sink channel without
// the halt semantics of Error and Assert.
func (l *Logger) Write(kind core.EventKind, values ...any) {
	l.emit(kind, values)
}

// Close closes the sinks in reverse registration order and returns the
// first error encountered.
func (l *Logger) Close() error {
	var firstErr error
	for i := len(l.sinks) - 1; i >= 0; i-- {
		if err := l.sinks[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (l *Logger) emit(kind core.EventKind, values []any) {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = l.renderer.Render(v)
	}
	block := l.formatter.Format(kind.Label(), parts)

	for _, sink := range l.sinks {
		switch kind {
		case core.WarningEvent:
			sink.WriteWarning(false, block)
		case core.ErrorEvent, core.AssertionEvent:
			sink.WriteError(block)
		case core.CheckpointEvent:
			sink.WriteDiagnostic(block)
		default:
			sink.WriteInfo(block)
		}
	}
}

var _ core.Logger = (*Logger)(nil)
