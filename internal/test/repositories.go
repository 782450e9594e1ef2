package test

import (
	"context"
	"sync"
	"time"

	"github.com/passtrack/passboard/internal/domain/model"
	"github.com/passtrack/passboard/internal/domain/repository"
)

// StatusUpdateCall records one UpdatePaymentStatus invocation.
type StatusUpdateCall struct {
	OrderID int64
	Status  model.PaymentStatus
}

// OrderRepoStub provides controllable OrderRepository behaviour.
type OrderRepoStub struct {
	CountFn            func(context.Context, repository.Filter) (int64, error)
	CountByStatusesFn  func(context.Context, repository.Filter, []model.PaymentStatus) (int64, error)
	ListFn             func(context.Context, repository.Filter, repository.Page) ([]model.Order, error)
	LatestFn           func(context.Context) (*model.Order, error)
	SelectStaleFn      func(context.Context, time.Time, int) ([]model.Order, error)
	UpdateStatusFn     func(context.Context, int64, model.PaymentStatus) error
	CountsByUsernameFn func(context.Context, repository.Filter) ([]model.UsernameCount, error)

	mu      sync.Mutex
	Updates []StatusUpdateCall
}

// Lock exposes the internal mutex for external synchronization.
func (s *OrderRepoStub) Lock() { s.mu.Lock() }

// Unlock releases a previously acquired lock.
func (s *OrderRepoStub) Unlock() { s.mu.Unlock() }

func (s *OrderRepoStub) Count(ctx context.Context, f repository.Filter) (int64, error) {
	if s.CountFn != nil {
		return s.CountFn(ctx, f)
	}
	return 0, nil
}

func (s *OrderRepoStub) CountByStatuses(ctx context.Context, f repository.Filter, statuses []model.PaymentStatus) (int64, error) {
	if s.CountByStatusesFn != nil {
		return s.CountByStatusesFn(ctx, f, statuses)
	}
	return 0, nil
}

func (s *OrderRepoStub) List(ctx context.Context, f repository.Filter, page repository.Page) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, f, page)
	}
	return nil, nil
}

func (s *OrderRepoStub) Latest(ctx context.Context) (*model.Order, error) {
	if s.LatestFn != nil {
		return s.LatestFn(ctx)
	}
	return &model.Order{ID: 1, TraceNumber: "T-1", PaymentStatus: model.PaymentStatusPending}, nil
}

func (s *OrderRepoStub) SelectStalePending(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error) {
	if s.SelectStaleFn != nil {
		return s.SelectStaleFn(ctx, cutoff, limit)
	}
	return nil, nil
}

// UpdatePaymentStatus records calls unless a custom function is set.
func (s *OrderRepoStub) UpdatePaymentStatus(ctx context.Context, orderID int64, status model.PaymentStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Updates = append(s.Updates, StatusUpdateCall{OrderID: orderID, Status: status})
	return nil
}

func (s *OrderRepoStub) CountsByUsername(ctx context.Context, f repository.Filter) ([]model.UsernameCount, error) {
	if s.CountsByUsernameFn != nil {
		return s.CountsByUsernameFn(ctx, f)
	}
	return nil, nil
}

// AppointmentRepoStub provides controllable AppointmentRepository behaviour.
type AppointmentRepoStub struct {
	CountFn          func(context.Context, repository.Filter) (int64, error)
	LatestFn         func(context.Context) (*model.Appointment, error)
	CountsByOfficeFn func(context.Context, repository.Filter) ([]model.OfficeCount, error)
}

func (s *AppointmentRepoStub) Count(ctx context.Context, f repository.Filter) (int64, error) {
	if s.CountFn != nil {
		return s.CountFn(ctx, f)
	}
	return 0, nil
}

func (s *AppointmentRepoStub) Latest(ctx context.Context) (*model.Appointment, error) {
	if s.LatestFn != nil {
		return s.LatestFn(ctx)
	}
	return &model.Appointment{ID: 1, OfficeName: "Addis Ababa"}, nil
}

func (s *AppointmentRepoStub) CountsByOffice(ctx context.Context, f repository.Filter) ([]model.OfficeCount, error) {
	if s.CountsByOfficeFn != nil {
		return s.CountsByOfficeFn(ctx, f)
	}
	return nil, nil
}

// ProbeStub mimics the external status probe.
type ProbeStub struct {
	ProbeFn func(context.Context, string) (model.ProbeOutcome, error)
}

func (s ProbeStub) Probe(ctx context.Context, traceNumber string) (model.ProbeOutcome, error) {
	if s.ProbeFn != nil {
		return s.ProbeFn(ctx, traceNumber)
	}
	return model.ProbeUnresolved, nil
}
