// Package elastic provides a document index adapter for Elasticsearch-compatible
// endpoints using the document upsert API (PUT {index}/_doc/{id}).
package elastic

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/klauspost/compress/gzip"
	"github.com/valyala/fastjson"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/evship/internal/core/domain"
	"github.com/custodia-labs/evship/internal/core/ports/driven"
	"github.com/custodia-labs/evship/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.DocumentIndex = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "http://localhost:9200"
	DefaultTimeout = 30 * time.Second
)

// Config holds configuration for the index client.
type Config struct {
	// BaseURL is the index base URL (default: http://localhost:9200).
	BaseURL string

	// Username and Password are sent as basic auth when Username is set.
	Username string
	Password string

	// Timeout bounds each request (default: 30s).
	Timeout time.Duration

	// RequestsPerSecond paces upserts. Zero disables pacing.
	RequestsPerSecond float64

	// Gzip compresses request bodies.
	Gzip bool
}

// Client upserts documents over HTTP.
type Client struct {
	client   *http.Client
	baseURL  string
	username string
	password string
	gzip     bool
	limiter  *rate.Limiter
}

// NewClient creates a new index client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		burst := int(cfg.RequestsPerSecond)
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		username: cfg.Username,
		password: cfg.Password,
		gzip:     cfg.Gzip,
		limiter:  limiter,
	}
}

// Upsert creates or overwrites the document {index}/_doc/{id}.
func (c *Client) Upsert(ctx context.Context, index string, id int64, body []byte) (driven.IndexResponse, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return driven.IndexResponse{}, fmt.Errorf("%w: waiting for rate limiter: %w", domain.ErrTransport, err)
		}
	}

	payload, err := c.encode(body)
	if err != nil {
		return driven.IndexResponse{}, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPut,
		c.baseURL+"/"+domain.DocumentPath(index, id),
		bytes.NewReader(payload),
	)
	if err != nil {
		return driven.IndexResponse{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.gzip {
		req.Header.Set("Content-Encoding", "gzip")
	}
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return driven.IndexResponse{}, fmt.Errorf("%w: send request: %w", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return driven.IndexResponse{}, fmt.Errorf("%w: read response: %w", domain.ErrTransport, err)
	}

	result := driven.IndexResponse{StatusCode: resp.StatusCode, Body: respBody}
	if !result.OK() {
		logger.Debug("Index rejected %s/%d (status %d): %s", index, id, resp.StatusCode, FailureReason(respBody))
	}
	return result, nil
}

// encode returns the request payload, gzip-compressed when enabled.
func (c *Client) encode(body []byte) ([]byte, error) {
	if !c.gzip {
		return body, nil
	}

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(body); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Close releases resources.
func (c *Client) Close() error {
	c.client.CloseIdleConnections()
	return nil
}

// FailureReason extracts "type: reason" from an index error body.
// Bodies that are not index errors are returned trimmed and truncated.
func FailureReason(body []byte) string {
	v, err := fastjson.ParseBytes(body)
	if err == nil {
		errType := string(v.GetStringBytes("error", "type"))
		reason := string(v.GetStringBytes("error", "reason"))
		switch {
		case errType != "" && reason != "":
			return errType + ": " + reason
		case errType != "":
			return errType
		case reason != "":
			return reason
		}
	}

	text := strings.TrimSpace(string(body))
	const maxLen = 200
	if len(text) > maxLen {
		cut := maxLen
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut] + "..."
	}
	return text
}
