package usecase

import (
	"context"

	"github.com/passtrack/passboard/internal/domain/model"
	"github.com/passtrack/passboard/internal/domain/repository"
)

// StatsUseCase aggregates headline dashboard counts.
type StatsUseCase struct {
	orders       repository.OrderRepository
	appointments repository.AppointmentRepository
}

// NewStatsUseCase constructs StatsUseCase.
func NewStatsUseCase(orders repository.OrderRepository, appointments repository.AppointmentRepository) *StatsUseCase {
	return &StatsUseCase{orders: orders, appointments: appointments}
}

// Summary computes counts for the filter window. An appointment without a
// matching order counts as a failed appointment.
func (u *StatsUseCase) Summary(ctx context.Context, f repository.Filter) (*model.StatsSummary, error) {
	appointmentsCount, err := u.appointments.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	ordersCount, err := u.orders.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	paid, err := u.orders.CountByStatuses(ctx, f, []model.PaymentStatus{model.PaymentStatusPaid})
	if err != nil {
		return nil, err
	}
	failed, err := u.orders.CountByStatuses(ctx, f, model.FailedPaymentStatuses)
	if err != nil {
		return nil, err
	}

	return &model.StatsSummary{
		AppointmentsCount:  appointmentsCount,
		OrdersCount:        ordersCount,
		FailedAppointments: appointmentsCount - ordersCount,
		PaidOrders:         paid,
		FailedOrders:       failed,
	}, nil
}
