// Package blocklog renders print, warning, error, assertion, and
// checkpoint events as decorated human-readable blocks: a fixed-width
// centered banner, the bullet-joined message body, and a cleaned-up
// call-stack trace pointing back at user code.
//
// A minimal logger writes to stdout:
//
//	log := blocklog.New(blocklog.WithConsole())
//	log.Print("hello", 42, true)
//
// Values render recursively; ordered mappings become indented
// bracketed blocks or ASCII trees:
//
//	log := blocklog.New(blocklog.WithConsole(), blocklog.WithTreeStyle())
//	log.Print(core.DictOf("name", "summit", "retries", 3))
//
// Error and a failed Assert write to the error channel and then halt
// the calling goroutine via runtime.Goexit; replace the halt with
// WithHalt to observe it in tests.
//
// Output is exclusively a formatted string for human eyes. There are
// no levels, no filtering, and no machine-parseable format.
package blocklog
