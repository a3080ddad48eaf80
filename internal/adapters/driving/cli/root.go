// Package cli implements the evship command line interface.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/evship/internal/core/ports/driving"
	"github.com/custodia-labs/evship/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Global flags.
var (
	configPath  string
	sourcesPath string
	verbose     bool
	askPassword bool
)

// Services used by commands. They are built on first use by the
// configured Builder, or injected directly in tests.
var (
	settingsService driving.SettingsService
	batchRunner     driving.BatchRunner
	sourcesFile     string
)

// Options carries global flag values to a Builder.
type Options struct {
	// ConfigPath overrides the default configuration file.
	ConfigPath string

	// SourcesPath overrides the configured source list.
	SourcesPath string

	// Password overrides the configured index password when non-empty.
	Password string
}

// Services are the driving ports a Builder provides.
type Services struct {
	Settings driving.SettingsService
	Batch    driving.BatchRunner

	// SourcesFile is the resolved source list path.
	SourcesFile string

	// Close releases adapter resources. May be nil.
	Close func() error
}

// Builder composes services from flag values.
type Builder func(opts Options) (*Services, error)

var (
	builder       Builder
	closeServices func() error
)

var rootCmd = &cobra.Command{
	Use:   "evship",
	Short: "Ship 1C event logs to Elasticsearch",
	Long: `evship reads record ranges from 1C:Enterprise SQLite event logs (.lgd),
resolves them into flat documents and upserts them into an Elasticsearch index.

Sources are listed one per line in the source list file. Delivery failures
are appended to the error log.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ~/.evship/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&sourcesPath, "sources", "s", "", "source list file (overrides sources_file)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")
	rootCmd.PersistentFlags().BoolVar(&askPassword, "ask-password", false, "prompt for the index password")
}

// Execute runs the root command with ctx. build composes services lazily
// so commands that need no configuration never touch it.
func Execute(ctx context.Context, v string, build Builder) error {
	if v != "" {
		version = v
	}
	builder = build
	defer func() {
		if closeServices != nil {
			if err := closeServices(); err != nil {
				logger.Warn("Closing services: %v", err)
			}
		}
	}()
	return rootCmd.ExecuteContext(ctx)
}

// requireSettings makes settingsService available.
func requireSettings(cmd *cobra.Command) error {
	if settingsService != nil {
		return nil
	}
	return buildServices(cmd)
}

// requireBatch makes batchRunner available.
func requireBatch(cmd *cobra.Command) error {
	if batchRunner != nil {
		return nil
	}
	return buildServices(cmd)
}

// buildServices composes services with the configured Builder.
func buildServices(cmd *cobra.Command) error {
	if builder == nil {
		return errors.New("services not configured")
	}

	opts := Options{ConfigPath: configPath, SourcesPath: sourcesPath}
	if askPassword {
		cmd.Print("Index password: ")
		opts.Password = readPassword()
		cmd.Println()
	}

	svc, err := builder(opts)
	if err != nil {
		return err
	}
	settingsService = svc.Settings
	batchRunner = svc.Batch
	sourcesFile = svc.SourcesFile
	closeServices = svc.Close
	return nil
}
