package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	domainErrors "github.com/passtrack/passboard/internal/domain/errors"
	"github.com/passtrack/passboard/internal/domain/model"
	"github.com/passtrack/passboard/internal/domain/repository"
)

// UpdatesUseCase detects record growth between polls. The last-seen counts
// live in process memory and reset to zero on restart, so the first check of
// a fresh process over a non-empty store always reports updates.
//
// The read-compare-write over the snapshot is mutex guarded: concurrent
// polls serialize on the count read, so a single count transition is never
// reported twice and never lost.
type UpdatesUseCase struct {
	orders       repository.OrderRepository
	appointments repository.AppointmentRepository

	mu               sync.Mutex
	lastAppointments int64
	lastOrders       int64
}

// NewUpdatesUseCase constructs UpdatesUseCase.
func NewUpdatesUseCase(orders repository.OrderRepository, appointments repository.AppointmentRepository) *UpdatesUseCase {
	return &UpdatesUseCase{orders: orders, appointments: appointments}
}

// Check reads current totals, compares them to the stored snapshot and
// overwrites it. Any count difference reports updates, a decrease included.
// When updates are detected the most recent row of each kind is attached.
func (u *UpdatesUseCase) Check(ctx context.Context) (*model.UpdateReport, error) {
	u.mu.Lock()
	appointmentsCount, err := u.appointments.Count(ctx, repository.Filter{})
	if err != nil {
		u.mu.Unlock()
		return nil, fmt.Errorf("count appointments: %w", err)
	}
	ordersCount, err := u.orders.Count(ctx, repository.Filter{})
	if err != nil {
		u.mu.Unlock()
		return nil, fmt.Errorf("count orders: %w", err)
	}

	hasUpdates := appointmentsCount != u.lastAppointments || ordersCount != u.lastOrders
	u.lastAppointments = appointmentsCount
	u.lastOrders = ordersCount
	u.mu.Unlock()

	report := &model.UpdateReport{
		HasUpdates:        hasUpdates,
		AppointmentsCount: appointmentsCount,
		OrdersCount:       ordersCount,
	}
	if !hasUpdates {
		return report, nil
	}

	latestAppointment, err := u.appointments.Latest(ctx)
	if err != nil && !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, fmt.Errorf("latest appointment: %w", err)
	}
	latestOrder, err := u.orders.Latest(ctx)
	if err != nil && !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, fmt.Errorf("latest order: %w", err)
	}

	report.LatestAppointment = latestAppointment
	report.LatestOrder = latestOrder
	return report, nil
}
