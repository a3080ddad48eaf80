// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// BatchOrchestrator runs a batch: for each source it opens the event log,
// resolves the configured record range and hands the records to a
// DeliveryWorker. SettingsService maps the config store into
// domain.AppSettings.
package services
