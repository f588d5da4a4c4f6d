package sinks

import (
	"sync"
)

// Entry is one block captured by a MemorySink.
type Entry struct {
	Channel Channel
	Flagged bool
	Text    string
}

// MemorySink stores blocks in memory for testing purposes.
type MemorySink struct {
	entries []Entry
	mu      sync.RWMutex
}

// NewMemorySink creates a new memory sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// WriteInfo stores a PRINT block.
func (m *MemorySink) WriteInfo(text string) {
	m.append(Entry{Channel: InfoChannel, Text: text})
}

// WriteWarning stores a WARNING block along with its flag.
func (m *MemorySink) WriteWarning(flagged bool, text string) {
	m.append(Entry{Channel: WarningChannel, Flagged: flagged, Text: text})
}

// WriteError stores an ERROR or ASSERTION block.
func (m *MemorySink) WriteError(text string) {
	m.append(Entry{Channel: ErrorChannel, Text: text})
}

// WriteDiagnostic stores a CHECKPOINT block.
func (m *MemorySink) WriteDiagnostic(text string) {
	m.append(Entry{Channel: DiagnosticChannel, Text: text})
}

// Close does nothing for the memory sink.
func (m *MemorySink) Close() error {
	return nil
}

func (m *MemorySink) append(e Entry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, e)
}

// Entries returns a copy of all captured entries.
func (m *MemorySink) Entries() []Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]Entry, len(m.entries))
	copy(result, m.entries)
	return result
}

// Texts returns the captured block texts in arrival order.
func (m *MemorySink) Texts() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	texts := make([]string, len(m.entries))
	for i, e := range m.entries {
		texts[i] = e.Text
	}
	return texts
}

// Count returns the number of captured entries.
func (m *MemorySink) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Last returns the most recent entry, or nil when empty.
func (m *MemorySink) Last() *Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.entries) == 0 {
		return nil
	}
	e := m.entries[len(m.entries)-1]
	return &e
}

// Clear removes all captured entries.
func (m *MemorySink) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = m.entries[:0]
}
