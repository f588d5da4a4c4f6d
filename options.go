package blocklog

import (
	"github.com/willibrandon/blocklog/core"
	"github.com/willibrandon/blocklog/render"
)

// config holds the configuration for building a logger.
type config struct {
	style      render.Style
	tabWidth   int
	rootPrefix string
	marker     string
	extraSkip  int
	source     core.TraceSource
	sinks      []core.Sink
	halt       func()
	err        error // First error encountered during configuration
}

// Option is a functional option for configuring a logger.
type Option func(*config)

// WithSink adds a sink. Every block goes to every sink in registration
// order.
func WithSink(sink core.Sink) Option {
	return func(c *config) {
		c.sinks = append(c.sinks, sink)
	}
}

// WithTraceSource replaces the runtime stack capture with a custom
// trace source.
func WithTraceSource(source core.TraceSource) Option {
	return func(c *config) {
		c.source = source
	}
}

// WithStyle selects the container rendering style.
func WithStyle(style render.Style) Option {
	return func(c *config) {
		c.style = style
	}
}

// WithTreeStyle renders containers as ASCII trees.
func WithTreeStyle() Option {
	return WithStyle(render.Tree)
}

// WithTabWidth sets the spaces per indent level in the bracketed
// container style.
func WithTabWidth(width int) Option {
	return func(c *config) {
		c.tabWidth = width
	}
}

// WithRootPrefix sets the marker prepended to qualified names.
func WithRootPrefix(prefix string) Option {
	return func(c *config) {
		c.rootPrefix = prefix
	}
}

// WithSingleFrame restricts trace output to the first frame whose path
// begins with marker, the string identifying the application's own
// sources.
func WithSingleFrame(marker string) Option {
	return func(c *config) {
		c.marker = marker
	}
}

// WithTraceSkip discards extra leading trace lines beyond the seed
// message, for trace sources that insert header lines of their own.
func WithTraceSkip(extra int) Option {
	return func(c *config) {
		c.extraSkip = extra
	}
}

// WithHalt replaces the halt invoked after Error and failed Assert.
// The default is runtime.Goexit. Tests and embedders use this to
// observe the halt instead of losing the goroutine.
func WithHalt(halt func()) Option {
	return func(c *config) {
		if halt != nil {
			c.halt = halt
		}
	}
}
