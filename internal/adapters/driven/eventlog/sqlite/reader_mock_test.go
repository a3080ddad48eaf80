package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/evship/internal/core/domain"
)

var recordColumns = []string{
	"date", "user", "comp", "app", "event", "comment",
	"transactionID", "transactionStatus", "metadata", "data",
}

func newMockReader(t *testing.T) (*Reader, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	reader := NewReader(db, domain.Source{Server: "srv1", Name: "trade"}, nil)
	t.Cleanup(func() { _ = reader.Close() })
	return reader, mock
}

func TestReader_Fetch_QueryError(t *testing.T) {
	reader, mock := newMockReader(t)
	mock.ExpectQuery("FROM EventLog e").
		WithArgs(baseID, baseID+10).
		WillReturnError(errors.New("database disk image is malformed"))

	records, err := reader.Fetch(context.Background(), baseID, baseID+10)

	require.Error(t, err)
	assert.Nil(t, records)
	assert.Contains(t, err.Error(), "querying event log")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReader_Fetch_UndecodableIDAbortsFetch(t *testing.T) {
	reader, mock := newMockReader(t)
	rows := sqlmock.NewRows(recordColumns).
		AddRow(baseID+10, "u", "c", "a", `"_$Data$_.New"`, "", 1, 1, "m", "d").
		AddRow(int64(42), "u", "c", "a", `"_$Data$_.New"`, "", 1, 1, "m", "d")
	mock.ExpectQuery("FROM EventLog e").WillReturnRows(rows)

	records, err := reader.Fetch(context.Background(), 0, baseID+10)

	require.Error(t, err)
	assert.Nil(t, records)
	assert.True(t, errors.Is(err, domain.ErrInvalidRecordID))
}

func TestReader_Fetch_ScanErrorAbortsFetch(t *testing.T) {
	reader, mock := newMockReader(t)
	rows := sqlmock.NewRows(recordColumns).
		AddRow("not-a-number", "u", "c", "a", `"_$Data$_.New"`, "", 1, 1, "m", "d")
	mock.ExpectQuery("FROM EventLog e").WillReturnRows(rows)

	records, err := reader.Fetch(context.Background(), baseID, baseID)

	require.Error(t, err)
	assert.Nil(t, records)
	assert.Contains(t, err.Error(), "scanning event log row")
}

func TestReader_Fetch_RowIterationError(t *testing.T) {
	reader, mock := newMockReader(t)
	rows := sqlmock.NewRows(recordColumns).
		AddRow(baseID+1, "u", "c", "a", `"_$Data$_.New"`, "", 1, 1, "m", "d").
		AddRow(baseID, "u", "c", "a", `"_$Data$_.New"`, "", 1, 1, "m", "d").
		RowError(1, errors.New("interrupted"))
	mock.ExpectQuery("FROM EventLog e").WillReturnRows(rows)

	records, err := reader.Fetch(context.Background(), baseID, baseID+1)

	require.Error(t, err)
	assert.Nil(t, records)
	assert.Contains(t, err.Error(), "iterating event log")
}

func TestReader_Fetch_NullNames(t *testing.T) {
	reader, mock := newMockReader(t)
	rows := sqlmock.NewRows(recordColumns).
		AddRow(baseID, nil, nil, nil, nil, nil, nil, nil, nil, nil)
	mock.ExpectQuery("FROM EventLog e").WillReturnRows(rows)

	records, err := reader.Fetch(context.Background(), baseID, baseID)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, domain.LogRecord{
		ID:       baseID,
		Date:     records[0].Date,
		Database: "trade",
		Server:   "srv1",
	}, records[0])
}

func TestReader_Close_ClosesDB(t *testing.T) {
	reader, mock := newMockReader(t)
	mock.ExpectClose()

	require.NoError(t, reader.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}
