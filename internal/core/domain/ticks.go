package domain

import (
	"fmt"
	"time"
)

// MillisecondsFromADToEpoch is the distance between 0001-01-01T00:00:00Z
// (proleptic Gregorian) and the Unix epoch.
const MillisecondsFromADToEpoch int64 = 62135596800000

// ticksPerMillisecond is the record id resolution.
const ticksPerMillisecond = 10

// DecodeRecordID converts an event log record id into its UTC timestamp.
//
// The id counts ticks since year 1; sub-millisecond precision is discarded
// by integer division. Ids that land before the Unix epoch are rejected with
// ErrInvalidRecordID.
func DecodeRecordID(id int64) (time.Time, error) {
	ms := id/ticksPerMillisecond - MillisecondsFromADToEpoch
	if ms < 0 {
		return time.Time{}, fmt.Errorf("%w: %d is before 1970-01-01", ErrInvalidRecordID, id)
	}
	return time.UnixMilli(ms).UTC(), nil
}

// MustDecodeRecordID is like DecodeRecordID but panics on an invalid id.
func MustDecodeRecordID(id int64) time.Time {
	t, err := DecodeRecordID(id)
	if err != nil {
		panic(err)
	}
	return t
}

// EncodeTime returns the smallest record id that decodes to t.
// t is truncated to millisecond precision.
func EncodeTime(t time.Time) int64 {
	return (t.UnixMilli() + MillisecondsFromADToEpoch) * ticksPerMillisecond
}
