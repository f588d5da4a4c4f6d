// Package sinks provides the output adapters that receive finished
// blocks: console, file, in-memory capture, and Sentry.
package sinks

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"

	"github.com/willibrandon/blocklog/selflog"
)

// Channel names the sink method a block arrived through.
type Channel string

const (
	InfoChannel       Channel = "info"
	WarningChannel    Channel = "warning"
	ErrorChannel      Channel = "error"
	DiagnosticChannel Channel = "diagnostic"
)

// ConsoleSink writes blocks to a terminal or writer, styled per
// channel when the destination supports color.
type ConsoleSink struct {
	output   io.Writer
	mu       sync.Mutex
	theme    *ConsoleTheme
	useColor bool
}

// NewConsoleSink creates a console sink writing to stdout with the
// default theme.
func NewConsoleSink() *ConsoleSink {
	return &ConsoleSink{
		output:   os.Stdout,
		theme:    DefaultTheme(),
		useColor: shouldUseColor(os.Stdout),
	}
}

// NewConsoleSinkWithWriter creates a console sink with a custom writer.
// Color is enabled only when the writer is a terminal.
func NewConsoleSinkWithWriter(w io.Writer) *ConsoleSink {
	return &ConsoleSink{
		output:   w,
		theme:    DefaultTheme(),
		useColor: shouldUseColor(w),
	}
}

// NewConsoleSinkWithTheme creates a console sink writing to stdout with
// a custom theme.
func NewConsoleSinkWithTheme(theme *ConsoleTheme) *ConsoleSink {
	return &ConsoleSink{
		output:   os.Stdout,
		theme:    theme,
		useColor: shouldUseColor(os.Stdout),
	}
}

// SetUseColor enables or disables styled output.
func (cs *ConsoleSink) SetUseColor(useColor bool) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.useColor = useColor
}

// WriteInfo writes a PRINT block.
func (cs *ConsoleSink) WriteInfo(text string) {
	cs.write(InfoChannel, text)
}

// WriteWarning writes a WARNING block. The flag mirrors the host
// warning protocol and does not affect console output.
func (cs *ConsoleSink) WriteWarning(flagged bool, text string) {
	cs.write(WarningChannel, text)
}

// WriteError writes an ERROR or ASSERTION block.
func (cs *ConsoleSink) WriteError(text string) {
	cs.write(ErrorChannel, text)
}

// WriteDiagnostic writes a CHECKPOINT block.
func (cs *ConsoleSink) WriteDiagnostic(text string) {
	cs.write(DiagnosticChannel, text)
}

// Close does nothing for the console sink.
func (cs *ConsoleSink) Close() error {
	return nil
}

func (cs *ConsoleSink) write(channel Channel, text string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.useColor && cs.theme != nil {
		text = cs.theme.styleFor(channel).Render(text)
	}
	if _, err := io.WriteString(cs.output, text); err != nil {
		if selflog.IsEnabled() {
			selflog.Printf("[console] write failed on %s channel: %v", channel, err)
		}
	}
}

// shouldUseColor reports whether w is a color-capable terminal.
// NO_COLOR always wins.
func shouldUseColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
