package trace

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// stackTracer is the capability pkg/errors attaches to wrapped errors.
type stackTracer interface {
	StackTrace() errors.StackTrace
}

// FromError renders the stack recorded in a pkg/errors-wrapped error as
// raw trace text: the error message at the head, then one
// `path:line: in function 'name'` frame per line. Blocks built from it
// point at the error's origin rather than the logging call site. When
// err carries no stack the result is the bare error message.
func FromError(err error) string {
	if err == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(err.Error())

	st := deepestStack(err)
	if st == nil {
		return b.String()
	}
	for _, f := range st {
		fmt.Fprintf(&b, "\n%s:%d: in function '%n'", f, f, f)
	}
	return b.String()
}

// ErrorSource adapts FromError to the core.TraceSource contract: the
// seed message is prepended so the formatter's seed-stripping
// arithmetic stays uniform across sources.
type ErrorSource struct {
	err error
}

// NewErrorSource creates a TraceSource reporting err's stack.
func NewErrorSource(err error) *ErrorSource {
	return &ErrorSource{err: err}
}

// CaptureTrace returns seedMessage followed by the error's stack text.
func (s *ErrorSource) CaptureTrace(seedMessage string) string {
	return seedMessage + "\n" + FromError(s.err)
}

// deepestStack walks the unwrap chain and returns the stack closest to
// the error's origin.
func deepestStack(err error) errors.StackTrace {
	var st errors.StackTrace
	for err != nil {
		if tracer, ok := err.(stackTracer); ok {
			st = tracer.StackTrace()
		}
		err = errors.Unwrap(err)
	}
	return st
}
