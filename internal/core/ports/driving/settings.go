package driving

import "github.com/custodia-labs/evship/internal/core/domain"

// SettingsService exposes application settings.
type SettingsService interface {
	// Get retrieves current application settings, defaults filled in.
	Get() (*domain.AppSettings, error)

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// Path returns the configuration file in use.
	Path() string
}
