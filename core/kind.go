package core

// EventKind identifies which entry point produced a block and which
// sink channel receives it.
type EventKind int

const (
	// PrintEvent blocks go to the info channel.
	PrintEvent EventKind = iota
	// WarningEvent blocks go to the warning channel.
	WarningEvent
	// ErrorEvent blocks go to the error channel.
	ErrorEvent
	// AssertionEvent blocks go to the error channel.
	AssertionEvent
	// CheckpointEvent blocks go to the diagnostic channel.
	CheckpointEvent
)

// Label returns the banner label for the kind.
func (k EventKind) Label() string {
	switch k {
	case WarningEvent:
		return "WARNING"
	case ErrorEvent:
		return "ERROR"
	case AssertionEvent:
		return "ASSERTION"
	case CheckpointEvent:
		return "CHECKPOINT"
	default:
		return "PRINT"
	}
}

// String returns the banner label for the kind.
func (k EventKind) String() string {
	return k.Label()
}
