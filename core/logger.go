package core

// Logger is the block-logging surface. All entry points are variadic
// over arbitrary values; each call renders its arguments, formats one
// decorated block, and hands it to every configured sink in order.
type Logger interface {
	// Print writes a PRINT block to the info channel.
	Print(values ...any)

	// Warn writes a WARNING block to the warning channel.
	Warn(values ...any)

	// Error writes an ERROR block to the error channel, then halts the
	// calling goroutine.
	Error(values ...any)

	// Assert is a no-op when condition is true. When false it writes an
	// ASSERTION block to the error channel, then halts the calling
	// goroutine. With no message the block carries a default text.
	Assert(condition bool, message ...any)

	// Checkpoint writes a CHECKPOINT block to the diagnostic channel.
	Checkpoint(name string)

	// Write routes a block for kind to the matching sink channel
	// without the halt semantics of Error and Assert. Adapters that
	// must keep running after reporting an error use this.
	Write(kind EventKind, values ...any)

	// Close closes the configured sinks.
	Close() error
}
