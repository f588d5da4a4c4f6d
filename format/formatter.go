package format

import (
	"strings"

	"github.com/willibrandon/blocklog/core"
	"github.com/willibrandon/blocklog/trace"
)

// Formatter builds one decorated block per logging call. It is
// stateless across calls and safe for concurrent use.
type Formatter struct {
	source    core.TraceSource
	parser    *trace.Parser
	extraSkip int
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithParser replaces the trace parser.
func WithParser(p *trace.Parser) Option {
	return func(f *Formatter) {
		if p != nil {
			f.parser = p
		}
	}
}

// WithExtraSkip discards additional leading trace lines beyond the
// seed, for sources whose capture inserts header lines of its own.
func WithExtraSkip(n int) Option {
	return func(f *Formatter) {
		if n >= 0 {
			f.extraSkip = n
		}
	}
}

// New creates a Formatter capturing traces from source.
func New(source core.TraceSource, opts ...Option) *Formatter {
	f := &Formatter{
		source: source,
		parser: trace.New(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format renders the block for typeLabel and messageParts: banner, the
// parts joined by bullet separators, the parsed trace for the current
// call site, and the closing decoration. A second blank line separates
// body from trace when there are two or more parts.
func (f *Formatter) Format(typeLabel string, messageParts []string) string {
	body := strings.Join(messageParts, "\n• ")

	raw := ""
	if f.source != nil {
		raw = f.source.CaptureTrace(body)
	}
	// The capture embeds the seed at its head; drop exactly the lines
	// the body spans, plus any configured extra.
	skip := 1 + strings.Count(body, "\n") + f.extraSkip
	parsed := f.parser.Parse(dropLines(raw, skip))

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(Banner(typeLabel))
	b.WriteString("\n\n• ")
	b.WriteString(body)
	b.WriteString("\n")
	if len(messageParts) >= 2 {
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(parsed)
	b.WriteString("\n\n")
	b.WriteString(PlainBanner())
	b.WriteString("\n\n")
	return b.String()
}

// dropLines removes the first n lines of s.
func dropLines(s string, n int) string {
	for ; n > 0; n-- {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			return ""
		}
		s = s[i+1:]
	}
	return s
}
