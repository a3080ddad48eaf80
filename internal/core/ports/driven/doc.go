// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - SourceList: Loads the configured sources
//   - EventLogOpener: Opens a source's event log database
//   - EventLogReader: Resolves a record range into LogRecords
//   - DocumentIndex: Upserts JSON documents into the search index
//   - FailureLog: Persists delivery failure reports
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - RunMetrics: Records run counters. Without it, nothing is exported.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
