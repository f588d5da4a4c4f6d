// Package trace turns raw host stack-trace text into the compact
// arrow-form frames that appear at the bottom of a block.
package trace

import (
	"regexp"
	"strings"
)

// Mode selects which lines of the raw trace the parser reformats.
type Mode int

const (
	// LineSweep reformats every line that carries a path:line shape and
	// passes all other lines through unchanged.
	LineSweep Mode = iota

	// SingleFrame keeps only the first line whose content begins with
	// the configured marker and reformats that one line.
	SingleFrame
)

// String returns the configuration name of the mode.
func (m Mode) String() string {
	if m == SingleFrame {
		return "single"
	}
	return "sweep"
}

var (
	frameRe      = regexp.MustCompile(`^\s*(.+?):(\d+)(.*)$`)
	quotedFnRe   = regexp.MustCompile(`function '([^']+)'`)
	unquotedFnRe = regexp.MustCompile(`function ([A-Za-z_][A-Za-z0-9_.:]*)`)
)

// Parser reformats raw trace text. The zero value sweeps all lines.
type Parser struct {
	mode   Mode
	marker string
}

// Option configures a Parser.
type Option func(*Parser)

// WithSingleFrame restricts parsing to the first line beginning with
// marker, the fixed string identifying the application's own sources.
func WithSingleFrame(marker string) Option {
	return func(p *Parser) {
		p.mode = SingleFrame
		p.marker = marker
	}
}

// New creates a Parser. The default sweeps every line.
func New(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse reformats raw according to the configured mode. When nothing in
// raw carries a path:line shape the input is returned unmodified;
// malformed trace text never fails a call.
func (p *Parser) Parse(raw string) string {
	if p.mode == SingleFrame {
		return p.parseSingle(raw)
	}
	return p.parseSweep(raw)
}

func (p *Parser) parseSweep(raw string) string {
	lines := strings.Split(raw, "\n")
	matched := false
	for i, line := range lines {
		if out, ok := formatFrame(line); ok {
			lines[i] = out
			matched = true
		}
	}
	if !matched {
		return raw
	}
	return strings.TrimPrefix(strings.Join(lines, "\n"), "\n")
}

func (p *Parser) parseSingle(raw string) string {
	for _, line := range strings.Split(raw, "\n") {
		if !strings.HasPrefix(strings.TrimSpace(line), p.marker) {
			continue
		}
		if out, ok := formatFrame(line); ok {
			return out
		}
	}
	return raw
}

// formatFrame rewrites one `path:line` frame line as
// `→ path (line N): function 'name'`, the function suffix only when the
// trailing text names one. Lines without the shape report false.
func formatFrame(line string) (string, bool) {
	m := frameRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	out := "→ " + m[1] + " (line " + m[2] + ")"
	if name := functionName(m[3]); name != "" {
		out += ": function '" + name + "'"
	}
	return out, true
}

func functionName(trailing string) string {
	if m := quotedFnRe.FindStringSubmatch(trailing); m != nil {
		return m[1]
	}
	if m := unquotedFnRe.FindStringSubmatch(trailing); m != nil {
		return m[1]
	}
	return ""
}
