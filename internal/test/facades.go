package test

import (
	"context"
	"sync"

	"github.com/passtrack/passboard/internal/domain/model"
	"github.com/passtrack/passboard/internal/domain/repository"
)

// AuthFacadeStub provides controllable behaviour for auth endpoints.
type AuthFacadeStub struct {
	LoginFn    func(username, password string) (string, error)
	ValidateFn func(token string) error
}

// Login delegates to the provided function or succeeds with a fixed token.
func (s AuthFacadeStub) Login(username, password string) (string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(username, password)
	}
	return "session-token", nil
}

// ValidateSession delegates to the provided function or accepts any token.
func (s AuthFacadeStub) ValidateSession(token string) error {
	if s.ValidateFn != nil {
		return s.ValidateFn(token)
	}
	return nil
}

// OrderFacadeStub simulates the order listing.
type OrderFacadeStub struct {
	OrdersFn func(context.Context, repository.Filter, repository.Page) ([]model.Order, int64, error)
}

func (s OrderFacadeStub) Orders(ctx context.Context, f repository.Filter, page repository.Page) ([]model.Order, int64, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, f, page)
	}
	return []model.Order{{ID: 1, TraceNumber: "T-1", PaymentStatus: model.PaymentStatusPending}}, 1, nil
}

// StatsFacadeStub simulates aggregate counts.
type StatsFacadeStub struct {
	StatsFn func(context.Context, repository.Filter) (*model.StatsSummary, error)
}

func (s StatsFacadeStub) Stats(ctx context.Context, f repository.Filter) (*model.StatsSummary, error) {
	if s.StatsFn != nil {
		return s.StatsFn(ctx, f)
	}
	return &model.StatsSummary{AppointmentsCount: 2, OrdersCount: 1, FailedAppointments: 1}, nil
}

// ChartsFacadeStub simulates grouped counts.
type ChartsFacadeStub struct {
	ByOfficeFn   func(context.Context, repository.Filter) ([]model.OfficeCount, error)
	ByUsernameFn func(context.Context, repository.Filter) ([]model.UsernameCount, error)
}

func (s ChartsFacadeStub) AppointmentsByOffice(ctx context.Context, f repository.Filter) ([]model.OfficeCount, error) {
	if s.ByOfficeFn != nil {
		return s.ByOfficeFn(ctx, f)
	}
	return []model.OfficeCount{{OfficeName: "Addis Ababa", Count: 3}}, nil
}

func (s ChartsFacadeStub) OrdersByUsername(ctx context.Context, f repository.Filter) ([]model.UsernameCount, error) {
	if s.ByUsernameFn != nil {
		return s.ByUsernameFn(ctx, f)
	}
	return []model.UsernameCount{{Username: "bot-1", Count: 5}}, nil
}

// UpdatesFacadeStub simulates the polling pass.
type UpdatesFacadeStub struct {
	PollFn func(context.Context) (*model.UpdateReport, error)

	mu    sync.Mutex
	calls int
}

// Calls returns how many polls were issued.
func (s *UpdatesFacadeStub) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *UpdatesFacadeStub) PollUpdates(ctx context.Context) (*model.UpdateReport, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.PollFn != nil {
		return s.PollFn(ctx)
	}
	return &model.UpdateReport{}, nil
}

// DashboardFacadeStub aggregates all facade stubs for router tests.
type DashboardFacadeStub struct {
	AuthFacadeStub
	OrderFacadeStub
	StatsFacadeStub
	ChartsFacadeStub
	UpdatesFacadeStub
}

// NotifierRecorder captures poller notifications.
type NotifierRecorder struct {
	mu           sync.Mutex
	Appointments []int64
	Orders       []int64
}

func (n *NotifierRecorder) NotifyNewAppointments(count int64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Appointments = append(n.Appointments, count)
}

func (n *NotifierRecorder) NotifyNewOrders(count int64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Orders = append(n.Orders, count)
}

// Snapshot returns copies of the recorded notifications.
func (n *NotifierRecorder) Snapshot() ([]int64, []int64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	appointments := append([]int64(nil), n.Appointments...)
	orders := append([]int64(nil), n.Orders...)
	return appointments, orders
}
