package core

// TraceSource supplies the raw call-stack text for the current call site.
type TraceSource interface {
	// CaptureTrace returns a raw, host-formatted stack dump with
	// seedMessage embedded at its head. The formatter strips the seed
	// lines again before parsing, so sources must reproduce the seed
	// exactly, followed by one frame per line.
	CaptureTrace(seedMessage string) string
}
