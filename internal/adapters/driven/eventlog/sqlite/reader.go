package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/evship/internal/core/domain"
	"github.com/custodia-labs/evship/internal/core/ports/driven"
)

// Ensure the adapter implements the ports.
var (
	_ driven.EventLogOpener = (*Opener)(nil)
	_ driven.EventLogReader = (*Reader)(nil)
)

// recordQuery resolves a record range. Bounds are raw record ids.
const recordQuery = `
	SELECT
		e.date,
		u.name,
		c.name,
		a.name,
		ec.name,
		e.comment,
		e.transactionID,
		e.transactionStatus,
		m.name,
		e.dataPresentation
	FROM EventLog e
	LEFT JOIN UserCodes u ON e.userCode = u.code
	LEFT JOIN ComputerCodes c ON e.computerCode = c.code
	LEFT JOIN AppCodes a ON e.appCode = a.code
	LEFT JOIN EventCodes ec ON e.eventCode = ec.code
	LEFT JOIN MetadataCodes m ON e.metadataCodes = m.code
	WHERE e.date >= ? AND e.date <= ?
	ORDER BY e.date DESC
`

// Opener opens event log databases read-only.
type Opener struct {
	catalog *domain.EventCatalog
}

// NewOpener creates an opener resolving event names through catalog.
// A nil catalog uses domain.DefaultEventCatalog.
func NewOpener(catalog *domain.EventCatalog) *Opener {
	if catalog == nil {
		catalog = domain.DefaultEventCatalog()
	}
	return &Opener{catalog: catalog}
}

// Open connects to the source database and verifies it is readable.
func (o *Opener) Open(ctx context.Context, source domain.Source) (driven.EventLogReader, error) {
	db, err := sql.Open("sqlite", dsn(source.Path))
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %w", domain.ErrSourceUnavailable, source.Path, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: connecting to %s: %w", domain.ErrSourceUnavailable, source.Path, err)
	}

	return NewReader(db, source, o.catalog), nil
}

// uriPathEscaper escapes characters SQLite treats specially in a file: URI path.
var uriPathEscaper = strings.NewReplacer("%", "%25", "?", "%3F", "#", "%23")

// dsn builds a read-only connection string.
func dsn(path string) string {
	return "file:" + uriPathEscaper.Replace(filepath.ToSlash(path)) + "?mode=ro&_pragma=busy_timeout(5000)"
}

// Reader resolves records from one event log database.
type Reader struct {
	mu      sync.Mutex
	db      *sql.DB
	source  domain.Source
	catalog *domain.EventCatalog
	closed  bool
}

// NewReader wraps an open database handle. The reader owns db.
func NewReader(db *sql.DB, source domain.Source, catalog *domain.EventCatalog) *Reader {
	if catalog == nil {
		catalog = domain.DefaultEventCatalog()
	}
	return &Reader{db: db, source: source, catalog: catalog}
}

// Fetch returns records with start <= id <= end, newest first.
func (r *Reader) Fetch(ctx context.Context, start, end int64) ([]domain.LogRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, domain.ErrSourceClosed
	}
	if start > end {
		return nil, fmt.Errorf("%w: start record %d is after end record %d", domain.ErrInvalidInput, start, end)
	}

	rows, err := r.db.QueryContext(ctx, recordQuery, start, end)
	if err != nil {
		return nil, fmt.Errorf("querying event log: %w", err)
	}
	defer rows.Close()

	var records []domain.LogRecord //nolint:prealloc // size unknown from query
	for rows.Next() {
		record, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating event log: %w", err)
	}

	return records, nil
}

// scan materialises one row into a normalised record.
func (r *Reader) scan(rows *sql.Rows) (domain.LogRecord, error) {
	var (
		id                                  int64
		user, comp, app, eventCode, comment sql.NullString
		metadata, data                      sql.NullString
		transactionID, transactionStatus    sql.NullInt64
	)
	if err := rows.Scan(&id, &user, &comp, &app, &eventCode, &comment,
		&transactionID, &transactionStatus, &metadata, &data); err != nil {
		return domain.LogRecord{}, fmt.Errorf("scanning event log row: %w", err)
	}

	date, err := domain.DecodeRecordID(id)
	if err != nil {
		return domain.LogRecord{}, fmt.Errorf("decoding record %d: %w", id, err)
	}

	event, _ := r.catalog.Lookup(eventCode.String)
	txStatus := domain.TransactionState(transactionStatus.Int64).Label()

	return domain.LogRecord{
		ID:                id,
		Date:              date,
		User:              user.String,
		Computer:          comp.String,
		Application:       app.String,
		Event:             event.Name,
		Comment:           comment.String,
		TransactionID:     transactionID.Int64,
		TransactionStatus: txStatus,
		Metadata:          metadata.String,
		Data:              data.String,
		Error:             event.IsError,
		Database:          r.source.Name,
		Server:            r.source.Server,
		Status:            domain.DeriveStatus(event.IsError, txStatus),
	}, nil
}

// Close closes the database connection. It is safe to call more than once.
func (r *Reader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true
	return r.db.Close()
}
