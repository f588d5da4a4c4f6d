package sinks

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/willibrandon/blocklog/selflog"
)

// SentrySink forwards blocks to Sentry: errors and warnings become
// captured messages with level scoping, info and diagnostic blocks
// become breadcrumbs attached to the next capture.
type SentrySink struct {
	hub *sentry.Hub
}

// SentryOption configures the Sentry client.
type SentryOption func(*sentry.ClientOptions)

// WithSentryEnvironment tags captures with an environment name.
func WithSentryEnvironment(env string) SentryOption {
	return func(o *sentry.ClientOptions) {
		o.Environment = env
	}
}

// WithSentryRelease tags captures with a release identifier.
func WithSentryRelease(release string) SentryOption {
	return func(o *sentry.ClientOptions) {
		o.Release = release
	}
}

// NewSentrySink creates a Sentry sink for dsn. The sink owns its own
// client so it never disturbs a host application's global hub.
func NewSentrySink(dsn string, opts ...SentryOption) (*SentrySink, error) {
	clientOpts := sentry.ClientOptions{Dsn: dsn}
	for _, opt := range opts {
		opt(&clientOpts)
	}

	client, err := sentry.NewClient(clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to init sentry client: %w", err)
	}
	return &SentrySink{
		hub: sentry.NewHub(client, sentry.NewScope()),
	}, nil
}

// WriteInfo records a PRINT block as a breadcrumb.
func (ss *SentrySink) WriteInfo(text string) {
	ss.breadcrumb(sentry.LevelInfo, text)
}

// WriteWarning captures a WARNING block at warning level.
func (ss *SentrySink) WriteWarning(flagged bool, text string) {
	ss.capture(sentry.LevelWarning, text)
}

// WriteError captures an ERROR or ASSERTION block at error level.
func (ss *SentrySink) WriteError(text string) {
	ss.capture(sentry.LevelError, text)
}

// WriteDiagnostic records a CHECKPOINT block as a breadcrumb.
func (ss *SentrySink) WriteDiagnostic(text string) {
	ss.breadcrumb(sentry.LevelDebug, text)
}

// Close flushes buffered captures to Sentry.
func (ss *SentrySink) Close() error {
	if !ss.hub.Flush(2 * time.Second) {
		if selflog.IsEnabled() {
			selflog.Printf("[sentry] flush timed out; captures may be dropped")
		}
	}
	return nil
}

func (ss *SentrySink) capture(level sentry.Level, text string) {
	ss.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(level)
		ss.hub.CaptureMessage(text)
	})
}

func (ss *SentrySink) breadcrumb(level sentry.Level, text string) {
	ss.hub.AddBreadcrumb(&sentry.Breadcrumb{
		Category: "blocklog",
		Message:  text,
		Level:    level,
	}, nil)
}
