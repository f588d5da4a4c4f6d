package sinks

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/willibrandon/blocklog/selflog"
)

// FileSink appends blocks to a file.
type FileSink struct {
	path   string
	file   *os.File
	mu     sync.Mutex
	isOpen bool
}

// NewFileSink creates a file sink appending to path. The parent
// directory is created when missing.
func NewFileSink(path string) (*FileSink, error) {
	fs := &FileSink{path: path}
	if err := fs.open(); err != nil {
		return nil, err
	}
	return fs, nil
}

// WriteInfo appends a PRINT block.
func (fs *FileSink) WriteInfo(text string) {
	fs.write(InfoChannel, text)
}

// WriteWarning appends a WARNING block.
func (fs *FileSink) WriteWarning(flagged bool, text string) {
	fs.write(WarningChannel, text)
}

// WriteError appends an ERROR or ASSERTION block.
func (fs *FileSink) WriteError(text string) {
	fs.write(ErrorChannel, text)
}

// WriteDiagnostic appends a CHECKPOINT block.
func (fs *FileSink) WriteDiagnostic(text string) {
	fs.write(DiagnosticChannel, text)
}

// Close syncs and closes the file.
func (fs *FileSink) Close() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if !fs.isOpen {
		return nil
	}
	fs.isOpen = false

	if err := fs.file.Sync(); err != nil {
		return fmt.Errorf("failed to sync block file: %w", err)
	}
	if err := fs.file.Close(); err != nil {
		return fmt.Errorf("failed to close block file: %w", err)
	}
	return nil
}

func (fs *FileSink) write(channel Channel, text string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if !fs.isOpen {
		return
	}
	if _, err := fs.file.WriteString(text); err != nil {
		if selflog.IsEnabled() {
			selflog.Printf("[file] write failed on %s channel (%s): %v", channel, fs.path, err)
		}
	}
}

func (fs *FileSink) open() error {
	dir := filepath.Dir(fs.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create block file directory: %w", err)
	}

	file, err := os.OpenFile(fs.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open block file: %w", err)
	}

	fs.file = file
	fs.isOpen = true
	return nil
}
