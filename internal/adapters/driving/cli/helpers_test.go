package cli

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/evship/internal/core/domain"
	"github.com/custodia-labs/evship/internal/core/ports/driving"
)

// mockBatchRunner implements driving.BatchRunner for testing.
type mockBatchRunner struct {
	mu         sync.Mutex
	sources    []domain.Source
	sourcesErr error
	summary    *driving.RunSummary
	runErr     error
	runs       int
	listings   int
}

func (m *mockBatchRunner) Run(_ context.Context) (*driving.RunSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs++
	return m.summary, m.runErr
}

func (m *mockBatchRunner) Sources(_ context.Context) ([]domain.Source, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listings++
	return m.sources, m.sourcesErr
}

func (m *mockBatchRunner) listingCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listings
}

func (m *mockBatchRunner) runCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.runs
}

// mockSettingsService implements driving.SettingsService for testing.
type mockSettingsService struct {
	settings domain.AppSettings
	err      error
	path     string
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	if m.err != nil {
		return nil, m.err
	}
	s := m.settings
	return &s, nil
}

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (m *mockSettingsService) Path() string {
	return m.path
}

// withServices injects services for the duration of a test.
func withServices(t *testing.T, runner driving.BatchRunner, settings driving.SettingsService) {
	t.Helper()
	oldRunner, oldSettings, oldFile, oldBuilder := batchRunner, settingsService, sourcesFile, builder
	batchRunner = runner
	settingsService = settings
	t.Cleanup(func() {
		batchRunner, settingsService, sourcesFile, builder = oldRunner, oldSettings, oldFile, oldBuilder
	})
}

// execute runs the root command with args and returns combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		configPath, sourcesPath, verbose, askPassword = "", "", false, false
	})
	err := rootCmd.Execute()
	return buf.String(), err
}

// newTestCommand returns a detached command carrying ctx.
func newTestCommand(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetContext(ctx)
	return cmd
}
