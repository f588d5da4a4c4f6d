package blocklog

import (
	"os"

	"github.com/willibrandon/blocklog/sinks"
)

// Convenience options for common configurations

// WithConsole adds a console sink on stdout.
func WithConsole() Option {
	return WithSink(sinks.NewConsoleSink())
}

// WithConsoleTheme adds a console sink with a custom theme.
func WithConsoleTheme(theme *sinks.ConsoleTheme) Option {
	return WithSink(sinks.NewConsoleSinkWithTheme(theme))
}

// WithMemory adds a memory sink, usually for tests.
func WithMemory(ms *sinks.MemorySink) Option {
	return WithSink(ms)
}

// WithFile adds a file sink appending to path.
func WithFile(path string) Option {
	return func(c *config) {
		if c.err != nil {
			return // Don't process if already errored
		}
		sink, err := sinks.NewFileSink(path)
		if err != nil {
			c.err = err
			return
		}
		c.sinks = append(c.sinks, sink)
	}
}

// WithSentry adds a Sentry sink for dsn.
func WithSentry(dsn string, opts ...sinks.SentryOption) Option {
	return func(c *config) {
		if c.err != nil {
			return // Don't process if already errored
		}
		sink, err := sinks.NewSentrySink(dsn, opts...)
		if err != nil {
			c.err = err
			return
		}
		c.sinks = append(c.sinks, sink)
	}
}

// WithEnvSentry adds a Sentry sink when SENTRY_DSN is set and is a
// no-op otherwise.
func WithEnvSentry(opts ...sinks.SentryOption) Option {
	return func(c *config) {
		dsn := os.Getenv("SENTRY_DSN")
		if dsn == "" {
			return
		}
		WithSentry(dsn, opts...)(c)
	}
}
