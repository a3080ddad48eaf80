package driving

import (
	"context"

	"github.com/custodia-labs/evship/internal/core/domain"
)

// BatchRunner ships every configured source once.
type BatchRunner interface {
	// Run processes all sources sequentially.
	// Per-source failures do not stop later sources; they are joined into
	// the returned error. A source list error aborts before any source runs.
	Run(ctx context.Context) (*RunSummary, error)

	// Sources returns the parsed source list.
	Sources(ctx context.Context) ([]domain.Source, error)
}

// SourceSummary is the outcome of one source.
type SourceSummary struct {
	// Source is the processed source.
	Source domain.Source

	// Skipped is true when the database file was absent.
	Skipped bool

	// Fetched is the number of records resolved.
	Fetched int

	// Delivered is the number of records accepted by the index.
	Delivered int

	// Failed is the number of non-2xx responses.
	Failed int

	// Err is the fetch, connection or transport error, if any.
	Err error
}

// RunSummary aggregates one batch run.
type RunSummary struct {
	// RunID identifies the run in logs.
	RunID string

	// Sources holds one entry per configured source, in order.
	Sources []SourceSummary
}

// SourceList returns the sources the run processed, in order.
func (s *RunSummary) SourceList() []domain.Source {
	sources := make([]domain.Source, 0, len(s.Sources))
	for _, src := range s.Sources {
		sources = append(sources, src.Source)
	}
	return sources
}

// Totals sums delivered and failed records across sources.
func (s *RunSummary) Totals() (delivered, failed int) {
	for _, src := range s.Sources {
		delivered += src.Delivered
		failed += src.Failed
	}
	return delivered, failed
}
