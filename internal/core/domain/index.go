package domain

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultIndexPrefix is used when neither a fixed name nor a prefix is set.
const DefaultIndexPrefix = "utp_logs"

// IndexNamer picks the destination index for a record.
// A fixed Name wins; otherwise the record date selects a monthly bucket
// named "{Prefix}-YYYY.MM".
type IndexNamer struct {
	Name   string
	Prefix string
}

// IndexFor returns the index name for r.
func (n IndexNamer) IndexFor(r *LogRecord) string {
	if n.Name != "" {
		return n.Name
	}
	prefix := n.Prefix
	if prefix == "" {
		prefix = DefaultIndexPrefix
	}
	return MonthlyIndex(prefix, r.Date)
}

// MonthlyIndex returns "{prefix}-YYYY.MM" for t in UTC.
func MonthlyIndex(prefix string, t time.Time) string {
	return fmt.Sprintf("%s-%s", prefix, t.UTC().Format("2006.01"))
}

// DocumentPath returns the upsert path "{index}/_doc/{id}".
// The path is stable for a given index and id so re-delivery overwrites.
func DocumentPath(index string, id int64) string {
	return strings.Join([]string{
		url.PathEscape(index),
		"_doc",
		strconv.FormatInt(id, 10),
	}, "/")
}
