package core

// Sink receives fully formatted blocks, one call per logging call.
// The text is opaque to the sink; it is already decorated, traced,
// and terminated with surrounding blank lines.
type Sink interface {
	// WriteInfo receives a PRINT block.
	WriteInfo(text string)

	// WriteWarning receives a WARNING block. The flag mirrors the host
	// warning protocol and is fixed to false by the logger.
	WriteWarning(flagged bool, text string)

	// WriteError receives an ERROR or ASSERTION block.
	WriteError(text string)

	// WriteDiagnostic receives a CHECKPOINT block.
	WriteDiagnostic(text string)

	// Close releases any resources held by the sink.
	Close() error
}
