package services

import (
	"time"

	"github.com/custodia-labs/evship/internal/core/domain"
	"github.com/custodia-labs/evship/internal/core/ports/driven"
	"github.com/custodia-labs/evship/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keySourcesFile     = "sources_file"
	keyErrorLog        = "error_log"
	keyIndexURL        = "index.url"
	keyIndexUsername   = "index.username"
	keyIndexPassword   = "index.password"
	keyIndexName       = "index.name"
	keyIndexPrefix     = "index.prefix"
	keyIndexTimeout    = "index.timeout_seconds"
	keyIndexRate       = "index.requests_per_second"
	keyIndexGzip       = "index.gzip"
	keyMetricsTextfile = "metrics.textfile"
)

// SettingsService reads application settings from a ConfigStore.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		SourcesFile: s.getString(keySourcesFile, defaults.SourcesFile),
		ErrorLog:    s.getString(keyErrorLog, defaults.ErrorLog),
		Index: domain.IndexSettings{
			URL:               s.getString(keyIndexURL, defaults.Index.URL),
			Username:          s.getString(keyIndexUsername, defaults.Index.Username),
			Password:          s.configStore.GetString(keyIndexPassword), // No default
			Name:              s.configStore.GetString(keyIndexName),     // Empty selects monthly buckets
			Prefix:            s.getString(keyIndexPrefix, defaults.Index.Prefix),
			Timeout:           s.getSeconds(keyIndexTimeout, defaults.Index.Timeout),
			RequestsPerSecond: s.configStore.GetFloat(keyIndexRate),
			Gzip:              s.getBool(keyIndexGzip, defaults.Index.Gzip),
		},
		Metrics: domain.MetricsSettings{
			Textfile: s.configStore.GetString(keyMetricsTextfile),
		},
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getSeconds(key string, defaultVal time.Duration) time.Duration {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return time.Duration(val) * time.Second
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
