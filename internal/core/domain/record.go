package domain

import "time"

// Display labels shipped in the status fields.
const (
	StatusError      = "Ошибка"
	StatusCommitted  = "Зафиксирована"
	StatusRolledBack = "Отменена"
)

// TransactionState is the raw transactionStatus code from the event log.
type TransactionState int64

// Known transaction states. Zero and anything unrecognised mean no transaction.
const (
	TransactionNone       TransactionState = 0
	TransactionCommitted  TransactionState = 1
	TransactionRolledBack TransactionState = 2
)

// Label returns the display text for the state.
func (s TransactionState) Label() string {
	switch s {
	case TransactionCommitted:
		return StatusCommitted
	case TransactionRolledBack:
		return StatusRolledBack
	default:
		return ""
	}
}

// DeriveStatus returns the status field for a record.
// Error events always report StatusError regardless of transaction state.
func DeriveStatus(isError bool, transactionStatus string) string {
	if isError {
		return StatusError
	}
	return transactionStatus
}

// LogRecord is one normalised event log entry, ready to ship.
// JSON names match the existing index mapping.
type LogRecord struct {
	// ID is the source record id and the index document key.
	ID int64 `json:"id"`

	// Date is decoded from ID.
	Date time.Time `json:"date"`

	User        string `json:"user"`
	Computer    string `json:"comp"`
	Application string `json:"app"`
	Event       string `json:"event"`
	Comment     string `json:"comment"`

	TransactionID     int64  `json:"transaction_id"`
	TransactionStatus string `json:"transaction_status"`

	Metadata string `json:"metadata"`
	Data     string `json:"data"`
	Error    bool   `json:"error"`

	// Database and Server carry provenance from the owning Source.
	Database string `json:"database"`
	Server   string `json:"server"`

	// Status is StatusError for error events, otherwise TransactionStatus.
	Status string `json:"status"`
}
