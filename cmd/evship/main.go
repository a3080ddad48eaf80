// Command evship ships 1C:Enterprise event logs to Elasticsearch.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	configfile "github.com/custodia-labs/evship/internal/adapters/driven/config/file"
	errorlogfile "github.com/custodia-labs/evship/internal/adapters/driven/errorlog/file"
	"github.com/custodia-labs/evship/internal/adapters/driven/eventlog/sqlite"
	"github.com/custodia-labs/evship/internal/adapters/driven/index/elastic"
	"github.com/custodia-labs/evship/internal/adapters/driven/metrics/promfile"
	sourcelistfile "github.com/custodia-labs/evship/internal/adapters/driven/sourcelist/file"
	"github.com/custodia-labs/evship/internal/adapters/driving/cli"
	"github.com/custodia-labs/evship/internal/core/domain"
	"github.com/custodia-labs/evship/internal/core/ports/driven"
	"github.com/custodia-labs/evship/internal/core/services"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx, version, buildServices); err != nil {
		stop()
		os.Exit(1)
	}
}

// buildServices wires adapters into the core services.
func buildServices(opts cli.Options) (*cli.Services, error) {
	configStore, err := configfile.NewConfigStore(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return nil, err
	}
	if opts.SourcesPath != "" {
		settings.SourcesFile = opts.SourcesPath
	}
	if opts.Password != "" {
		settings.Index.Password = opts.Password
	}

	index := elastic.NewClient(elastic.Config{
		BaseURL:           settings.Index.URL,
		Username:          settings.Index.Username,
		Password:          settings.Index.Password,
		Timeout:           settings.Index.Timeout,
		RequestsPerSecond: settings.Index.RequestsPerSecond,
		Gzip:              settings.Index.Gzip,
	})

	// Metrics are optional - a nil interface disables them.
	var metrics driven.RunMetrics
	if settings.Metrics.Enabled() {
		metrics = promfile.New(settings.Metrics.Textfile)
	}

	batch := services.NewBatchOrchestrator(
		sourcelistfile.NewSourceList(settings.SourcesFile),
		sqlite.NewOpener(domain.DefaultEventCatalog()),
		services.NewDeliveryWorker(index, settings.Index.Namer()),
		errorlogfile.NewErrorLog(settings.ErrorLog),
		metrics,
	)

	return &cli.Services{
		Settings:    settingsService,
		Batch:       batch,
		SourcesFile: settings.SourcesFile,
		Close:       index.Close,
	}, nil
}
