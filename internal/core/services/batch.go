package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/custodia-labs/evship/internal/core/domain"
	"github.com/custodia-labs/evship/internal/core/ports/driven"
	"github.com/custodia-labs/evship/internal/core/ports/driving"
	"github.com/custodia-labs/evship/internal/logger"
)

// Ensure BatchOrchestrator implements the interface.
var _ driving.BatchRunner = (*BatchOrchestrator)(nil)

// BatchOrchestrator ships every configured source, one after another.
type BatchOrchestrator struct {
	sources    driven.SourceList
	opener     driven.EventLogOpener
	worker     *DeliveryWorker
	failureLog driven.FailureLog
	metrics    driven.RunMetrics

	newRunID func() string
}

// NewBatchOrchestrator creates a new batch orchestrator.
// metrics is optional - if nil, no run metrics are recorded.
func NewBatchOrchestrator(
	sources driven.SourceList,
	opener driven.EventLogOpener,
	worker *DeliveryWorker,
	failureLog driven.FailureLog,
	metrics driven.RunMetrics,
) *BatchOrchestrator {
	return &BatchOrchestrator{
		sources:    sources,
		opener:     opener,
		worker:     worker,
		failureLog: failureLog,
		metrics:    metrics,
		newRunID:   uuid.NewString,
	}
}

// Sources returns the parsed source list.
func (o *BatchOrchestrator) Sources(ctx context.Context) ([]domain.Source, error) {
	sources, err := o.sources.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sources from %s: %w", o.sources.Path(), err)
	}
	return sources, nil
}

// Run processes every source once.
//
// Sources whose database is absent are skipped. A failing source does not
// stop the run; its error is joined into the returned error once every
// source has been attempted.
func (o *BatchOrchestrator) Run(ctx context.Context) (*driving.RunSummary, error) {
	sources, err := o.Sources(ctx)
	if err != nil {
		return nil, err
	}

	summary := &driving.RunSummary{
		RunID:   o.newRunID(),
		Sources: make([]driving.SourceSummary, 0, len(sources)),
	}
	log := logger.With("run_id", summary.RunID)
	log.Debugf("Processing %d sources", len(sources))

	var errs []error
	for _, source := range sources {
		logger.Section(source.Name)
		result := o.runSource(ctx, source)
		summary.Sources = append(summary.Sources, result)

		switch {
		case result.Skipped:
			log.Debugf("Skipped %s: database %s not found", source.Name, source.Path)
		case result.Err != nil:
			log.Warnf("Source %s failed: %v", source.Name, result.Err)
			errs = append(errs, fmt.Errorf("source %s: %w", source.Name, result.Err))
		default:
			log.Debugf("Source %s: fetched %d, delivered %d, failed %d",
				source.Name, result.Fetched, result.Delivered, result.Failed)
		}
	}

	if o.metrics != nil {
		if err := o.metrics.Flush(); err != nil {
			log.Warnf("Flushing metrics: %v", err)
		}
	}

	delivered, failed := summary.Totals()
	log.Infof("Run finished: delivered %d, failed %d, source errors %d", delivered, failed, len(errs))

	if len(errs) > 0 {
		return summary, errors.Join(errs...)
	}
	return summary, nil
}

// runSource ships one source and records its outcome.
func (o *BatchOrchestrator) runSource(ctx context.Context, source domain.Source) driving.SourceSummary {
	result := driving.SourceSummary{Source: source}

	if !source.Exists() {
		result.Skipped = true
		if o.metrics != nil {
			o.metrics.SourceSkipped(source.Name)
		}
		return result
	}

	result.Err = o.shipSource(ctx, source, &result)

	if o.metrics != nil {
		o.metrics.ObserveSource(source.Name, result.Fetched, result.Delivered, result.Failed, result.Err)
	}
	return result
}

// shipSource resolves and delivers one source's records.
func (o *BatchOrchestrator) shipSource(ctx context.Context, source domain.Source, result *driving.SourceSummary) error {
	reader, err := o.opener.Open(ctx, source)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer reader.Close()

	records, err := reader.Fetch(ctx, source.StartRecordID, source.EndRecordID)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}
	result.Fetched = len(records)

	report, delivered, deliverErr := o.worker.DeliverAll(ctx, records)
	result.Delivered = delivered
	result.Failed = report.Len()

	// Failures collected before a transport error are still persisted.
	var appendErr error
	if !report.Empty() {
		if err := o.failureLog.Append(report.String()); err != nil {
			appendErr = fmt.Errorf("append failure report to %s: %w", o.failureLog.Path(), err)
		}
	}

	if deliverErr != nil {
		return errors.Join(fmt.Errorf("deliver: %w", deliverErr), appendErr)
	}
	return appendErr
}
