package memory

import (
	"strings"
	"sync"

	"github.com/custodia-labs/evship/internal/core/ports/driven"
)

// Ensure FailureLog implements the interface.
var _ driven.FailureLog = (*FailureLog)(nil)

// FailureLog collects appended reports in memory.
type FailureLog struct {
	mu      sync.Mutex
	entries []string
}

// NewFailureLog creates an empty log.
func NewFailureLog() *FailureLog {
	return &FailureLog{}
}

// Append records text. Empty text is ignored.
func (l *FailureLog) Append(text string) error {
	if text == "" {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, text)
	return nil
}

// Entries returns each appended chunk in order.
func (l *FailureLog) Entries() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

// String returns the full log content.
func (l *FailureLog) String() string {
	return strings.Join(l.Entries(), "")
}

// Path returns a fixed placeholder.
func (l *FailureLog) Path() string {
	return "memory"
}
