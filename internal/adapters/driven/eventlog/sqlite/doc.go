// Package sqlite reads 1C event log databases (.lgd files).
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO. Databases are opened read-only with a single connection and
// closed once the source has been processed.
//
// # Schema
//
// The reader expects the standard event log layout: raw rows in EventLog keyed
// by the date column (the record id), plus the UserCodes, ComputerCodes,
// AppCodes, EventCodes and MetadataCodes lookup tables mapping code to name.
// All lookups are left joins; a missing code resolves to an empty string.
//
// # Event Names
//
// EventCodes stores internal identifiers such as "_$Data$_.Update". Display
// names and error classification come from domain.EventCatalog after the join.
package sqlite
