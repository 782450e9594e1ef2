package app

import (
	"context"

	"github.com/passtrack/passboard/internal/domain/model"
	"github.com/passtrack/passboard/internal/domain/repository"
	"github.com/passtrack/passboard/internal/usecase"
)

// DashboardFacade aggregates the application use cases behind one surface
// consumed by the HTTP handlers and the background poller.
type DashboardFacade struct {
	auth         *usecase.AuthUseCase
	orders       *usecase.OrderUseCase
	appointments *usecase.AppointmentUseCase
	stats        *usecase.StatsUseCase
	updates      *usecase.UpdatesUseCase
	reconciler   *usecase.ReconcileUseCase
}

// NewDashboardFacade constructs DashboardFacade.
func NewDashboardFacade(
	auth *usecase.AuthUseCase,
	orders *usecase.OrderUseCase,
	appointments *usecase.AppointmentUseCase,
	stats *usecase.StatsUseCase,
	updates *usecase.UpdatesUseCase,
	reconciler *usecase.ReconcileUseCase,
) *DashboardFacade {
	return &DashboardFacade{
		auth:         auth,
		orders:       orders,
		appointments: appointments,
		stats:        stats,
		updates:      updates,
		reconciler:   reconciler,
	}
}

// Login validates operator credentials and returns a session token.
func (f *DashboardFacade) Login(username, password string) (string, error) {
	return f.auth.Authenticate(username, password)
}

// ValidateSession checks a session token.
func (f *DashboardFacade) ValidateSession(token string) error {
	return f.auth.ValidateSession(token)
}

// Orders returns a filtered, paginated order listing with the total count.
func (f *DashboardFacade) Orders(ctx context.Context, filter repository.Filter, page repository.Page) ([]model.Order, int64, error) {
	return f.orders.List(ctx, filter, page)
}

// Stats returns aggregate counts for the filter window.
func (f *DashboardFacade) Stats(ctx context.Context, filter repository.Filter) (*model.StatsSummary, error) {
	return f.stats.Summary(ctx, filter)
}

// AppointmentsByOffice returns grouped appointment counts.
func (f *DashboardFacade) AppointmentsByOffice(ctx context.Context, filter repository.Filter) ([]model.OfficeCount, error) {
	return f.appointments.CountsByOffice(ctx, filter)
}

// OrdersByUsername returns grouped order counts.
func (f *DashboardFacade) OrdersByUsername(ctx context.Context, filter repository.Filter) ([]model.UsernameCount, error) {
	return f.orders.CountsByUsername(ctx, filter)
}

// PollUpdates runs one polling pass: detect new records first, then
// reconcile stale pending orders. Reconciliation effects are intentionally
// not reflected in the returned counts; they surface on the next poll.
func (f *DashboardFacade) PollUpdates(ctx context.Context) (*model.UpdateReport, error) {
	report, err := f.updates.Check(ctx)
	if err != nil {
		return nil, err
	}
	if err := f.reconciler.Run(ctx); err != nil {
		return nil, err
	}
	return report, nil
}
