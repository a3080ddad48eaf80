package elastic

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/evship/internal/core/domain"
)

// capturedRequest is what the fake index saw.
type capturedRequest struct {
	method      string
	path        string
	contentType string
	encoding    string
	user        string
	password    string
	hasAuth     bool
	body        []byte
}

// fakeIndex records requests and answers with a fixed status.
type fakeIndex struct {
	mu       sync.Mutex
	status   int
	body     string
	requests []capturedRequest
}

func (f *fakeIndex) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	user, pass, ok := r.BasicAuth()

	f.mu.Lock()
	f.requests = append(f.requests, capturedRequest{
		method:      r.Method,
		path:        r.URL.Path,
		contentType: r.Header.Get("Content-Type"),
		encoding:    r.Header.Get("Content-Encoding"),
		user:        user,
		password:    pass,
		hasAuth:     ok,
		body:        body,
	})
	f.mu.Unlock()

	w.WriteHeader(f.status)
	_, _ = io.WriteString(w, f.body)
}

func newFakeIndex(t *testing.T, status int, body string) (*fakeIndex, *httptest.Server) {
	t.Helper()
	fake := &fakeIndex{status: status, body: body}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)
	return fake, srv
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient(Config{})

	assert.Equal(t, DefaultBaseURL, c.baseURL)
	assert.Equal(t, DefaultTimeout, c.client.Timeout)
	assert.Nil(t, c.limiter)
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	c := NewClient(Config{BaseURL: "http://es:9200/"})

	assert.Equal(t, "http://es:9200", c.baseURL)
}

func TestClient_Upsert_Request(t *testing.T) {
	fake, srv := newFakeIndex(t, http.StatusCreated, `{"result":"created"}`)
	c := NewClient(Config{BaseURL: srv.URL, Username: "elastic", Password: "secret"})

	resp, err := c.Upsert(context.Background(), "utp_logs-2022.08", 637949088000000, []byte(`{"id":1}`))

	require.NoError(t, err)
	assert.True(t, resp.OK())
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, `{"result":"created"}`, string(resp.Body))

	require.Len(t, fake.requests, 1)
	req := fake.requests[0]
	assert.Equal(t, http.MethodPut, req.method)
	assert.Equal(t, "/utp_logs-2022.08/_doc/637949088000000", req.path)
	assert.Equal(t, "application/json", req.contentType)
	assert.True(t, req.hasAuth)
	assert.Equal(t, "elastic", req.user)
	assert.Equal(t, "secret", req.password)
	assert.Equal(t, `{"id":1}`, string(req.body))
}

func TestClient_Upsert_SameIDSamePath(t *testing.T) {
	fake, srv := newFakeIndex(t, http.StatusOK, `{"result":"updated"}`)
	c := NewClient(Config{BaseURL: srv.URL})

	for i := 0; i < 2; i++ {
		_, err := c.Upsert(context.Background(), "utp_logs-2022.08", 42, []byte(`{}`))
		require.NoError(t, err)
	}

	require.Len(t, fake.requests, 2)
	assert.Equal(t, fake.requests[0].path, fake.requests[1].path)
	assert.Equal(t, http.MethodPut, fake.requests[1].method)
}

func TestClient_Upsert_NoAuthWithoutUsername(t *testing.T) {
	fake, srv := newFakeIndex(t, http.StatusOK, `{}`)
	c := NewClient(Config{BaseURL: srv.URL})

	_, err := c.Upsert(context.Background(), "idx", 1, []byte(`{}`))

	require.NoError(t, err)
	assert.False(t, fake.requests[0].hasAuth)
}

func TestClient_Upsert_NonSuccessIsNotAnError(t *testing.T) {
	_, srv := newFakeIndex(t, http.StatusBadRequest,
		`{"error":{"type":"mapper_parsing_exception","reason":"failed to parse field [date]"},"status":400}`)
	c := NewClient(Config{BaseURL: srv.URL})

	resp, err := c.Upsert(context.Background(), "idx", 1, []byte(`{}`))

	require.NoError(t, err)
	assert.False(t, resp.OK())
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(resp.Body), "mapper_parsing_exception")
}

func TestClient_Upsert_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient(Config{BaseURL: url, Timeout: time.Second})
	_, err := c.Upsert(context.Background(), "idx", 1, []byte(`{}`))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrTransport))
}

func TestClient_Upsert_Timeout(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(block)
		srv.Close()
	})

	c := NewClient(Config{BaseURL: srv.URL, Timeout: 50 * time.Millisecond})
	_, err := c.Upsert(context.Background(), "idx", 1, []byte(`{}`))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrTransport))
}

func TestClient_Upsert_CancelledContext(t *testing.T) {
	_, srv := newFakeIndex(t, http.StatusOK, `{}`)
	c := NewClient(Config{BaseURL: srv.URL, RequestsPerSecond: 1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Upsert(ctx, "idx", 1, []byte(`{}`))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrTransport))
}

func TestClient_Upsert_Gzip(t *testing.T) {
	fake, srv := newFakeIndex(t, http.StatusOK, `{}`)
	c := NewClient(Config{BaseURL: srv.URL, Gzip: true})

	_, err := c.Upsert(context.Background(), "idx", 1, []byte(`{"event":"Сеанс. Начало"}`))
	require.NoError(t, err)

	req := fake.requests[0]
	assert.Equal(t, "gzip", req.encoding)
	assert.Equal(t, "application/json", req.contentType)

	zr, err := gzip.NewReader(bytes.NewReader(req.body))
	require.NoError(t, err)
	plain, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, `{"event":"Сеанс. Начало"}`, string(plain))
}

func TestNewClient_RateLimiter(t *testing.T) {
	c := NewClient(Config{RequestsPerSecond: 0.5})

	require.NotNil(t, c.limiter)
	assert.Equal(t, 1, c.limiter.Burst())
}

func TestFailureReason(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "typed error",
			body: `{"error":{"type":"version_conflict_engine_exception","reason":"conflict"},"status":409}`,
			want: "version_conflict_engine_exception: conflict",
		},
		{
			name: "type only",
			body: `{"error":{"type":"index_closed_exception"}}`,
			want: "index_closed_exception",
		},
		{
			name: "plain text",
			body: "  Bad Gateway \n",
			want: "Bad Gateway",
		},
		{
			name: "string error",
			body: `{"error":"no handler found"}`,
			want: `{"error":"no handler found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FailureReason([]byte(tt.body)))
		})
	}
}

func TestFailureReason_Truncates(t *testing.T) {
	body := make([]byte, 500)
	for i := range body {
		body[i] = 'x'
	}

	got := FailureReason(body)

	assert.Len(t, got, 203)
	assert.True(t, len(got) > 200 && got[200:] == "...")
}

func TestFailureReason_TruncatesOnRuneBoundary(t *testing.T) {
	// Byte 200 falls inside a two-byte Cyrillic rune.
	body := "xx" + strings.Repeat("ошибка ", 40)

	got := FailureReason([]byte(body))

	assert.True(t, utf8.ValidString(got))
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.LessOrEqual(t, len(got), 203)
	assert.True(t, strings.HasPrefix(body, strings.TrimSuffix(got, "...")))
}
