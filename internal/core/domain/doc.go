// Package domain defines the core business entities for evship.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Source: A configured event log database and its record range
//   - LogRecord: A normalised event ready to ship
//   - EventCatalog: Event code to display name mapping
//   - FailureReport: Non-2xx index responses for one source
//
// It also owns the record id timestamp codec (DecodeRecordID).
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
