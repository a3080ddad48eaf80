package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/custodia-labs/evship/internal/core/domain"
	"github.com/custodia-labs/evship/internal/core/ports/driven"
	"github.com/custodia-labs/evship/internal/logger"
)

// DeliveryWorker upserts records into the document index.
type DeliveryWorker struct {
	index driven.DocumentIndex
	namer domain.IndexNamer
}

// NewDeliveryWorker creates a worker writing through index.
func NewDeliveryWorker(index driven.DocumentIndex, namer domain.IndexNamer) *DeliveryWorker {
	return &DeliveryWorker{
		index: index,
		namer: namer,
	}
}

// DeliverAll upserts every record once, in order.
//
// Non-2xx responses are collected in the returned report and delivery
// continues. A transport error stops delivery: the report collected so far
// is returned together with an error wrapping domain.ErrTransport.
// delivered counts records the index accepted.
func (w *DeliveryWorker) DeliverAll(
	ctx context.Context,
	records []domain.LogRecord,
) (report *domain.FailureReport, delivered int, err error) {
	report = &domain.FailureReport{}

	if w.index == nil {
		return report, 0, domain.ErrIndexUnavailable
	}

	for i := range records {
		rec := &records[i]

		if err := ctx.Err(); err != nil {
			return report, delivered, fmt.Errorf("%w: record %d: %w", domain.ErrTransport, rec.ID, err)
		}

		body, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return report, delivered, fmt.Errorf("encode record %d: %w", rec.ID, err)
		}

		resp, err := w.index.Upsert(ctx, w.namer.IndexFor(rec), rec.ID, body)
		if err != nil {
			if !errors.Is(err, domain.ErrTransport) {
				err = fmt.Errorf("%w: %w", domain.ErrTransport, err)
			}
			return report, delivered, fmt.Errorf("deliver record %d: %w", rec.ID, err)
		}

		if !resp.OK() {
			logger.Debug("Record %d rejected with status %d", rec.ID, resp.StatusCode)
			report.Add(domain.DeliveryFailure{
				StatusCode: resp.StatusCode,
				Record:     *rec,
				Body:       string(resp.Body),
			})
			continue
		}
		delivered++
	}

	return report, delivered, nil
}
