package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	// A source list that fails to parse is reported with this error and
	// aborts the run before any source is processed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidRecordID indicates a record id that does not decode to a
	// timestamp at or after the Unix epoch.
	ErrInvalidRecordID = errors.New("invalid record id")

	// Source Errors.

	// ErrSourceUnavailable indicates the event log database could not be opened.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrSourceClosed indicates the event log reader has been closed.
	ErrSourceClosed = errors.New("source closed")

	// Delivery Errors.

	// ErrTransport indicates a network-level delivery failure.
	// It aborts the remaining deliveries for the current source.
	ErrTransport = errors.New("transport failure")

	// ErrIndexUnavailable indicates the index endpoint is not configured.
	ErrIndexUnavailable = errors.New("index endpoint unavailable")
)
