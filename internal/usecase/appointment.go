package usecase

import (
	"context"

	"github.com/passtrack/passboard/internal/domain/model"
	"github.com/passtrack/passboard/internal/domain/repository"
)

// AppointmentUseCase exposes appointment read operations for the dashboard.
type AppointmentUseCase struct {
	appointments repository.AppointmentRepository
}

// NewAppointmentUseCase constructs AppointmentUseCase.
func NewAppointmentUseCase(appointments repository.AppointmentRepository) *AppointmentUseCase {
	return &AppointmentUseCase{appointments: appointments}
}

// CountsByOffice returns per-office appointment counts, busiest first.
func (u *AppointmentUseCase) CountsByOffice(ctx context.Context, f repository.Filter) ([]model.OfficeCount, error) {
	return u.appointments.CountsByOffice(ctx, f)
}
