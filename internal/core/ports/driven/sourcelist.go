package driven

import (
	"context"

	"github.com/custodia-labs/evship/internal/core/domain"
)

// SourceList provides the configured sources.
type SourceList interface {
	// Load reads and parses every source.
	// A malformed entry fails the whole load with domain.ErrInvalidInput.
	Load(ctx context.Context) ([]domain.Source, error)

	// Path returns where the sources are read from.
	Path() string
}
