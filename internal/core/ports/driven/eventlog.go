package driven

import (
	"context"

	"github.com/custodia-labs/evship/internal/core/domain"
)

// EventLogOpener opens event log databases.
type EventLogOpener interface {
	// Open connects to the source's database.
	// Errors wrap domain.ErrSourceUnavailable.
	Open(ctx context.Context, source domain.Source) (EventLogReader, error)
}

// EventLogReader resolves records from one open event log database.
type EventLogReader interface {
	// Fetch returns records with start <= id <= end, newest first.
	// Any failure aborts the fetch; partial results are never returned.
	Fetch(ctx context.Context, start, end int64) ([]domain.LogRecord, error)

	// Close releases the connection.
	Close() error
}
