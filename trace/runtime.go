package trace

import (
	"fmt"
	"runtime"
	"strings"
)

// defaultCallerSkip steps over runtime.Callers, CaptureTrace, and the
// formatter/logger frames so the first reported frame is the logging
// call site.
const defaultCallerSkip = 5

const maxFrames = 32

// RuntimeSource is a core.TraceSource backed by runtime.Callers. The
// raw text it produces carries the seed message at its head followed by
// one `path:line: in function 'name'` frame per line, the shape the
// parser consumes.
type RuntimeSource struct {
	skip int
}

// RuntimeOption configures a RuntimeSource.
type RuntimeOption func(*RuntimeSource)

// WithCallerSkip sets how many call frames above CaptureTrace are
// discarded before the first reported frame.
func WithCallerSkip(skip int) RuntimeOption {
	return func(s *RuntimeSource) {
		if skip >= 0 {
			s.skip = skip
		}
	}
}

// NewRuntimeSource creates a RuntimeSource.
func NewRuntimeSource(opts ...RuntimeOption) *RuntimeSource {
	s := &RuntimeSource{skip: defaultCallerSkip}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CaptureTrace returns seedMessage followed by the frames of the
// current goroutine's stack.
func (s *RuntimeSource) CaptureTrace(seedMessage string) string {
	var b strings.Builder
	b.WriteString(seedMessage)

	pcs := make([]uintptr, maxFrames)
	n := runtime.Callers(s.skip, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if frame.File != "" {
			fmt.Fprintf(&b, "\n%s:%d: in function '%s'", frame.File, frame.Line, shortFuncName(frame.Function))
		}
		if !more {
			break
		}
	}
	return b.String()
}

// shortFuncName trims the package path from a runtime function name,
// keeping `pkg.Func` or `pkg.(*Type).Method`.
func shortFuncName(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}
