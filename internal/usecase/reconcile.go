package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/passtrack/passboard/internal/domain/model"
	"github.com/passtrack/passboard/internal/domain/repository"
)

// StatusProbe checks the payment state of one application trace number
// against the external status service.
type StatusProbe interface {
	Probe(ctx context.Context, traceNumber string) (model.ProbeOutcome, error)
}

// ReconcileUseCase resolves stale pending orders. Each pass selects orders
// that stayed Pending longer than the staleness threshold and probes them
// concurrently; one slow or failing probe never affects its siblings.
type ReconcileUseCase struct {
	orders     repository.OrderRepository
	probe      StatusProbe
	staleAfter time.Duration
	batchSize  int
	workers    int
	logger     *slog.Logger
	now        func() time.Time
}

// NewReconcileUseCase constructs ReconcileUseCase.
func NewReconcileUseCase(orders repository.OrderRepository, probe StatusProbe, staleAfter time.Duration, batchSize, workers int, logger *slog.Logger) *ReconcileUseCase {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &ReconcileUseCase{
		orders:     orders,
		probe:      probe,
		staleAfter: staleAfter,
		batchSize:  batchSize,
		workers:    workers,
		logger:     logger,
		now:        time.Now,
	}
}

// Run executes one reconciliation pass. Only the stale selection itself can
// fail the pass; per-order probe and persistence failures are logged and
// leave the order Pending for the next pass.
func (u *ReconcileUseCase) Run(ctx context.Context) error {
	cutoff := u.now().Add(-u.staleAfter)
	stale, err := u.orders.SelectStalePending(ctx, cutoff, u.batchSize)
	if err != nil {
		return fmt.Errorf("select stale orders: %w", err)
	}
	if len(stale) == 0 {
		return nil
	}

	sem := make(chan struct{}, u.workers)
	var wg sync.WaitGroup
	for _, order := range stale {
		wg.Add(1)
		sem <- struct{}{}
		go func(order model.Order) {
			defer wg.Done()
			defer func() { <-sem }()
			u.reconcileOrder(ctx, order)
		}(order)
	}
	wg.Wait()
	return nil
}

func (u *ReconcileUseCase) reconcileOrder(ctx context.Context, order model.Order) {
	outcome, err := u.probe.Probe(ctx, order.TraceNumber)
	if err != nil {
		u.logger.Warn("status probe unresolved",
			slog.String("trace", order.TraceNumber),
			slog.String("error", err.Error()),
		)
	}

	var status model.PaymentStatus
	switch outcome {
	case model.ProbeNotFound:
		status = model.PaymentStatusError
	case model.ProbePaid:
		status = model.PaymentStatusPaid
	default:
		// Unresolved: order stays Pending and is retried next pass.
		return
	}

	if err := u.orders.UpdatePaymentStatus(ctx, order.ID, status); err != nil {
		u.logger.Error("update payment status failed",
			slog.String("trace", order.TraceNumber),
			slog.String("status", string(status)),
			slog.String("error", err.Error()),
		)
	}
}
