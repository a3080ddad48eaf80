package domain

import (
	"fmt"
	"strings"
	"time"
)

// Record date layouts in failure blocks. Whole seconds carry no fraction;
// otherwise milliseconds are always three digits.
const (
	ReportDateLayout       = "2006-01-02 15:04:05 UTC"
	ReportDateLayoutMillis = "2006-01-02 15:04:05.000 UTC"
)

// FormatReportDate renders t in UTC for failure blocks.
func FormatReportDate(t time.Time) string {
	t = t.UTC()
	if t.Nanosecond() == 0 {
		return t.Format(ReportDateLayout)
	}
	return t.Format(ReportDateLayoutMillis)
}

// DeliveryFailure is one non-2xx index response.
type DeliveryFailure struct {
	StatusCode int
	Record     LogRecord
	Body       string
}

// String renders the failure as an error log block.
func (f DeliveryFailure) String() string {
	return fmt.Sprintf("Error: %d : %d : %s : %s\n%s\n",
		f.StatusCode, f.Record.ID, f.Record.Database,
		FormatReportDate(f.Record.Date), f.Body)
}

// FailureReport accumulates delivery failures for one source.
// The zero value is an empty report.
type FailureReport struct {
	failures []DeliveryFailure
}

// Add appends a failure.
func (r *FailureReport) Add(f DeliveryFailure) {
	r.failures = append(r.failures, f)
}

// Len returns the number of failures.
func (r *FailureReport) Len() int {
	if r == nil {
		return 0
	}
	return len(r.failures)
}

// Empty reports whether no failure was recorded.
func (r *FailureReport) Empty() bool {
	return r.Len() == 0
}

// Failures returns a copy of the recorded failures in order.
func (r *FailureReport) Failures() []DeliveryFailure {
	if r == nil {
		return nil
	}
	out := make([]DeliveryFailure, len(r.failures))
	copy(out, r.failures)
	return out
}

// String renders every failure block in order.
func (r *FailureReport) String() string {
	if r == nil {
		return ""
	}
	var b strings.Builder
	for _, f := range r.failures {
		b.WriteString(f.String())
	}
	return b.String()
}
