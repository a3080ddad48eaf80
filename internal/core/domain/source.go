package domain

import (
	"fmt"
	"os"
)

// Source represents one configured installation whose event log is shipped.
// Sources are read once at startup and are immutable afterwards.
type Source struct {
	// Server is the label of the server hosting the installation.
	Server string

	// Name is the human-readable installation name.
	// It is copied into every record as the database field.
	Name string

	// StartRecordID is the first record id to ship (inclusive).
	StartRecordID int64

	// EndRecordID is the last record id to ship (inclusive).
	EndRecordID int64

	// Path is the location of the event log database file.
	Path string
}

// Validate checks that the record range is usable.
func (s *Source) Validate() error {
	if s.StartRecordID > s.EndRecordID {
		return fmt.Errorf("%w: start record %d is after end record %d",
			ErrInvalidInput, s.StartRecordID, s.EndRecordID)
	}
	return nil
}

// Exists reports whether the event log database file is present.
// A missing file is a normal "no data yet" condition.
func (s *Source) Exists() bool {
	info, err := os.Stat(s.Path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// String returns a one-line description for console output.
func (s Source) String() string {
	return fmt.Sprintf("%s | %s | %d..%d | %s",
		s.Server, s.Name, s.StartRecordID, s.EndRecordID, s.Path)
}
