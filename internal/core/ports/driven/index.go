package driven

import "context"

// IndexResponse is the application-level result of an upsert.
type IndexResponse struct {
	// StatusCode is the HTTP status returned by the index.
	StatusCode int

	// Body is the raw response body.
	Body []byte
}

// OK reports whether the upsert succeeded (any 2xx).
func (r IndexResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// DocumentIndex writes documents to the search index.
type DocumentIndex interface {
	// Upsert creates or overwrites the document {index}/_doc/{id}.
	// A returned error means the request never completed (transport failure);
	// non-2xx responses are reported through IndexResponse instead.
	Upsert(ctx context.Context, index string, id int64, body []byte) (IndexResponse, error)

	// Close releases resources.
	Close() error
}
