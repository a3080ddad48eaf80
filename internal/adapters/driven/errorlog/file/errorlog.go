// Package file appends delivery failure reports to a plain text log.
package file

import (
	"fmt"
	"os"
	"sync"

	"github.com/custodia-labs/evship/internal/core/ports/driven"
)

// Ensure ErrorLog implements the interface.
var _ driven.FailureLog = (*ErrorLog)(nil)

// DefaultFileName is the error log written when no path is configured.
const DefaultFileName = "collect_logs_errors.txt"

// ErrorLog is an append-only text file.
type ErrorLog struct {
	mu   sync.Mutex
	path string
}

// NewErrorLog creates an error log at path.
// If path is empty, DefaultFileName in the working directory is used.
func NewErrorLog(path string) *ErrorLog {
	if path == "" {
		path = DefaultFileName
	}
	return &ErrorLog{path: path}
}

// Append writes text to the end of the log, creating the file if absent.
// Empty text is a no-op and does not create the file.
func (l *ErrorLog) Append(text string) error {
	if text == "" {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("opening error log: %w", err)
	}

	if _, err := f.WriteString(text); err != nil {
		f.Close()
		return fmt.Errorf("writing error log: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing error log: %w", err)
	}
	return nil
}

// Path returns the log file location.
func (l *ErrorLog) Path() string {
	return l.path
}
