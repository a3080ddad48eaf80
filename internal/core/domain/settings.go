package domain

import (
	"fmt"
	"net/url"
	"time"
)

// Default file names used when nothing is configured.
const (
	DefaultSourcesFile = "collect_logs_params.txt"
	DefaultErrorLog    = "collect_logs_errors.txt"
	DefaultIndexURL    = "http://localhost:9200"
	DefaultIndexUser   = "elastic"
	DefaultTimeout     = 30 * time.Second
)

// IndexSettings holds search index connection settings.
type IndexSettings struct {
	// URL is the base URL of the index service.
	URL string

	// Username and Password are sent as basic auth when Username is set.
	Username string
	Password string

	// Name is a fixed index name. When empty, Prefix plus a monthly
	// bucket is used.
	Name   string
	Prefix string

	// Timeout bounds each upsert request.
	Timeout time.Duration

	// RequestsPerSecond paces upserts. Zero means unlimited.
	RequestsPerSecond float64

	// Gzip compresses request bodies.
	Gzip bool
}

// Namer returns the index naming rule for these settings.
func (s IndexSettings) Namer() IndexNamer {
	return IndexNamer{Name: s.Name, Prefix: s.Prefix}
}

// Validate checks the index settings.
func (s IndexSettings) Validate() error {
	u, err := url.Parse(s.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: index url %q", ErrInvalidInput, s.URL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: index url scheme %q", ErrInvalidInput, u.Scheme)
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("%w: index timeout must be positive", ErrInvalidInput)
	}
	if s.RequestsPerSecond < 0 {
		return fmt.Errorf("%w: requests per second must not be negative", ErrInvalidInput)
	}
	return nil
}

// MetricsSettings holds run metrics output settings.
type MetricsSettings struct {
	// Textfile is the Prometheus textfile path. Empty disables metrics.
	Textfile string
}

// Enabled reports whether metrics are written.
func (m MetricsSettings) Enabled() bool {
	return m.Textfile != ""
}

// AppSettings holds all application settings.
type AppSettings struct {
	// SourcesFile is the source list location.
	SourcesFile string

	// ErrorLog is where failure reports are appended.
	ErrorLog string

	// Index holds search index settings.
	Index IndexSettings

	// Metrics holds metrics output settings.
	Metrics MetricsSettings
}

// Validate checks the settings.
func (s AppSettings) Validate() error {
	if s.SourcesFile == "" {
		return fmt.Errorf("%w: sources file is required", ErrInvalidInput)
	}
	if s.ErrorLog == "" {
		return fmt.Errorf("%w: error log is required", ErrInvalidInput)
	}
	return s.Index.Validate()
}

// DefaultAppSettings returns settings with sensible defaults.
// Metrics are disabled and the index password is left empty.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		SourcesFile: DefaultSourcesFile,
		ErrorLog:    DefaultErrorLog,
		Index: IndexSettings{
			URL:      DefaultIndexURL,
			Username: DefaultIndexUser,
			Prefix:   DefaultIndexPrefix,
			Timeout:  DefaultTimeout,
		},
	}
}
