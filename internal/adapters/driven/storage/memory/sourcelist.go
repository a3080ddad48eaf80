package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/evship/internal/core/domain"
	"github.com/custodia-labs/evship/internal/core/ports/driven"
)

// Ensure SourceList implements the interface.
var _ driven.SourceList = (*SourceList)(nil)

// SourceList serves a fixed set of sources.
type SourceList struct {
	mu      sync.RWMutex
	sources []domain.Source
	err     error
}

// NewSourceList creates a list holding sources.
func NewSourceList(sources ...domain.Source) *SourceList {
	return &SourceList{sources: sources}
}

// SetError makes subsequent loads fail with err.
func (l *SourceList) SetError(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.err = err
}

// Load returns a copy of the sources.
func (l *SourceList) Load(ctx context.Context) ([]domain.Source, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.err != nil {
		return nil, l.err
	}
	out := make([]domain.Source, len(l.sources))
	copy(out, l.sources)
	return out, nil
}

// Path returns a fixed placeholder.
func (l *SourceList) Path() string {
	return "memory"
}
